package services

import (
	"fmt"
	"time"
)

// QuoteExportRow is one reconciled line in an exported quote document.
type QuoteExportRow struct {
	Index       int
	Component   string
	Description string
	Cost        float64 // effective cost: override > saved adjustment > estimate
	RangeMin    float64
	RangeMax    float64
	Subtasks    []string // populated only for the scope-of-works document
	Adjusted    bool     // the effective cost differs from the original estimate
}

// QuoteExportData holds everything the PDF/Excel/email renderers need.
// Costs are always the reconciled values, never the raw estimate, so
// exported documents match what the user currently sees.
type QuoteExportData struct {
	Title           string
	ReferenceNumber string
	ClientName      string
	ClientEmail     string
	CreatedDate     string
	GeneratedDate   string
	AreaNames       []string
	TotalFloorArea  float64
	TotalWallArea   float64
	Rows            []QuoteExportRow
	Total           float64
	OriginalTotal   *float64
	Analysis        string
	Confidence      string
}

// FormatQuoteRef constructs a quote reference number from the quote id and
// date, e.g. RQ-20260831-4F2A. The short id suffix keeps references unique
// without leaking the full quote id into documents.
func FormatQuoteRef(quoteID string, t time.Time) string {
	suffix := quoteID
	if len(suffix) > 4 {
		suffix = suffix[:4]
	}
	return fmt.Sprintf("RQ-%s-%s", t.Format("20060102"), suffix)
}

// BuildQuoteExport assembles the reconciled export data for the current
// adjustment session. Subtasks for the scope-of-works are taken from the
// merged selection across all valid areas, so the document reflects every
// room, not just the primary one.
func BuildQuoteExport(adj *Adjustment, client ClientInfo, store *AreaStore, now time.Time) QuoteExportData {
	q := adj.Quote()

	var names []string
	valid := store.ValidAreas()
	for _, a := range valid {
		names = append(names, a.Name)
	}

	merged, err := MergeComponents(store.Areas(), nil)
	if err != nil {
		merged = MergedSelection{}
	}

	rows := make([]QuoteExportRow, 0, len(q.CostBreakdown))
	for i, item := range q.CostBreakdown {
		cost := adj.EffectiveCost(i)
		var subtasks []string
		for _, def := range ComponentCatalog {
			if def.Key != item.Component {
				continue
			}
			for _, sub := range def.Subtasks {
				if merged[item.Component][sub] {
					subtasks = append(subtasks, sub)
				}
			}
		}
		adjusted := cost != item.EstimatedCost ||
			(item.OriginalCost != nil && cost != *item.OriginalCost)
		rows = append(rows, QuoteExportRow{
			Index:       i + 1,
			Component:   ComponentLabel(item.Component),
			Description: item.Description,
			Cost:        cost,
			RangeMin:    item.CostRangeMin,
			RangeMax:    item.CostRangeMax,
			Subtasks:    subtasks,
			Adjusted:    adjusted,
		})
	}

	return QuoteExportData{
		Title:           "Renovation Quote",
		ReferenceNumber: FormatQuoteRef(q.ID, now),
		ClientName:      client.Name,
		ClientEmail:     client.Email,
		CreatedDate:     q.CreatedAt,
		GeneratedDate:   now.Format("2006-01-02"),
		AreaNames:       names,
		TotalFloorArea:  TotalFloorArea(valid),
		TotalWallArea:   TotalWallArea(valid),
		Rows:            rows,
		Total:           adj.EffectiveTotal(),
		OriginalTotal:   q.OriginalTotalCost,
		Analysis:        q.AIAnalysis,
		Confidence:      q.ConfidenceLevel,
	}
}
