package handlers

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/services"
)

// HandleQuoteEmail composes the quote email as a raw MIME message: the
// reconciled summary in the body plus the requested documents attached. The
// quote summary PDF is always attached; ?scope=1 adds the scope-of-works
// document and ?breakdown=1 adds the Excel breakdown. Documents are
// generated concurrently and joined before composing; if only some succeed
// the response says how many. The message is returned to the caller for
// hand-off to whatever mail transport the deployment uses.
func HandleQuoteEmail(app *pocketbase.PocketBase, from string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		adj, err := sess.RequireQuote("email quote")
		if err != nil {
			return serviceError(e, err)
		}

		includeScope := e.Request.URL.Query().Get("scope") == "1"
		includeBreakdown := e.Request.URL.Query().Get("breakdown") == "1"

		data := services.BuildQuoteExport(adj, sess.Client, sess.Areas, time.Now())
		if data.ClientEmail == "" {
			return serviceError(e, &services.ValidationError{Fields: map[string]string{
				"email": "Client email is required",
			}})
		}

		type docJob struct {
			filename string
			generate func(services.QuoteExportData) ([]byte, error)
		}
		jobs := []docJob{
			{fmt.Sprintf("%s.pdf", data.ReferenceNumber), services.GenerateQuoteSummaryPDF},
		}
		if includeScope {
			jobs = append(jobs, docJob{
				fmt.Sprintf("%s-scope.pdf", data.ReferenceNumber),
				services.GenerateScopeOfWorksPDF,
			})
		}
		if includeBreakdown {
			jobs = append(jobs, docJob{
				fmt.Sprintf("%s.xlsx", data.ReferenceNumber),
				services.GenerateBreakdownExcel,
			})
		}

		var wg sync.WaitGroup
		attachments := make([]services.EmailAttachment, len(jobs))
		errs := make([]error, len(jobs))
		for i, job := range jobs {
			wg.Add(1)
			go func(i int, job docJob) {
				defer wg.Done()
				doc, err := job.generate(data)
				if err != nil {
					errs[i] = fmt.Errorf("%s: %w", job.filename, err)
					return
				}
				attachments[i] = services.EmailAttachment{Filename: job.filename, Data: doc}
			}(i, job)
		}
		wg.Wait()

		var failures []error
		ready := attachments[:0]
		for i, att := range attachments {
			if errs[i] != nil {
				failures = append(failures, errs[i])
				continue
			}
			ready = append(ready, att)
		}
		if len(failures) == len(jobs) {
			log.Printf("quote_email: all %d document(s) failed: %v", len(jobs), failures[0])
			return e.JSON(http.StatusInternalServerError, map[string]string{
				"error": "could not generate quote documents",
			})
		}
		if len(failures) > 0 {
			partial := &services.PartialFailure{
				Succeeded: len(jobs) - len(failures),
				Total:     len(jobs),
				Errs:      failures,
			}
			log.Printf("quote_email: %v", partial)
			return e.JSON(http.StatusMultiStatus, map[string]any{
				"generated": partial.Succeeded,
				"total":     partial.Total,
				"error":     partial.Error(),
			})
		}

		msg, err := services.ComposeQuoteEmail(data, services.EmailOptions{
			From:             from,
			IncludeBreakdown: includeBreakdown,
			Attachments:      ready,
		})
		if err != nil {
			return serviceError(e, err)
		}

		return e.Blob(http.StatusOK, "message/rfc822", msg)
	}
}
