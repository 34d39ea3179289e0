package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/clients"
	"renoquote/services"
)

// HandleExportPDF renders the quote as a PDF. With ?scope=1 the scope-of-works
// document (subtask detail, no prices beyond the lines) is produced instead of
// the cost summary. When a document service is configured it renders; the
// local renderer is the fallback deployment mode.
func HandleExportPDF(app *pocketbase.PocketBase, docs *clients.DocumentsClient) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		adj, err := sess.RequireQuote("export pdf")
		if err != nil {
			return serviceError(e, err)
		}

		scope := e.Request.URL.Query().Get("scope") == "1"
		data := services.BuildQuoteExport(adj, sess.Client, sess.Areas, time.Now())

		var pdf []byte
		if docs != nil {
			pdf, err = generateRemotePDF(e, docs, adj, sess, scope)
		} else if scope {
			pdf, err = services.GenerateScopeOfWorksPDF(data)
		} else {
			pdf, err = services.GenerateQuoteSummaryPDF(data)
		}
		if err != nil {
			log.Printf("export: pdf generation failed: %v", err)
			return e.JSON(http.StatusBadGateway, map[string]string{
				"error": "document generation failed",
			})
		}

		filename := fmt.Sprintf("%s.pdf", data.ReferenceNumber)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		return e.Blob(http.StatusOK, "application/pdf", pdf)
	}
}

// generateRemotePDF asks the external document service for the render.
// Adjusted costs are attached only when adjustments exist, so an untouched
// quote renders exactly as the estimation service priced it.
func generateRemotePDF(e *core.RequestEvent, docs *clients.DocumentsClient, adj *services.Adjustment, sess *services.Session, scope bool) ([]byte, error) {
	kind := clients.DocumentQuoteSummary
	if scope {
		kind = clients.DocumentScopeOfWorks
	}

	dreq := clients.DocumentRequest{
		Kind:    kind,
		QuoteID: adj.Quote().ID,
		UserProfile: map[string]string{
			"name":    sess.Client.Name,
			"email":   sess.Client.Email,
			"phone":   sess.Client.Phone,
			"address": sess.Client.Address,
		},
	}
	if quoteHasAdjustments(adj) {
		dreq.AdjustedCosts = adj.EffectiveCostMap()
		total := adj.EffectiveTotal()
		dreq.AdjustedTotal = &total
	}
	return docs.Generate(e.Request.Context(), dreq)
}

// quoteHasAdjustments reports whether any reconciled value differs from the
// raw estimate: either pending session overrides or previously committed
// adjustments.
func quoteHasAdjustments(adj *services.Adjustment) bool {
	if adj.HasEdits() {
		return true
	}
	for _, item := range adj.Quote().CostBreakdown {
		if item.AdjustedCost != nil {
			return true
		}
	}
	return false
}

// HandleExportExcel renders the cost breakdown workbook.
func HandleExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		adj, err := sess.RequireQuote("export excel")
		if err != nil {
			return serviceError(e, err)
		}

		data := services.BuildQuoteExport(adj, sess.Client, sess.Areas, time.Now())
		xlsx, err := services.GenerateBreakdownExcel(data)
		if err != nil {
			log.Printf("export: excel generation failed: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{
				"error": "excel generation failed",
			})
		}

		filename := fmt.Sprintf("%s.xlsx", data.ReferenceNumber)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		return e.Blob(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", xlsx)
	}
}
