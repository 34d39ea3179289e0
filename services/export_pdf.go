package services

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuoteSummaryPDF renders the quote summary document: client header,
// reconciled per-component costs with ranges, and the effective total.
// It returns the raw PDF bytes or an error.
func GenerateQuoteSummaryPDF(data QuoteExportData) ([]byte, error) {
	m := maroto.New(newQuotePDFConfig())

	addQuoteHeader(m, data)
	addCostTableHeader(m)
	for _, r := range data.Rows {
		addCostTableRow(m, r)
	}
	addQuoteSummary(m, data)
	addQuoteFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote summary PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateScopeOfWorksPDF renders the scope-of-works document: one section
// per component listing its selected subtasks. Costs shown are the same
// reconciled values as the summary document.
func GenerateScopeOfWorksPDF(data QuoteExportData) ([]byte, error) {
	m := maroto.New(newQuotePDFConfig())

	heading := data
	heading.Title = "Scope of Works"
	addQuoteHeader(m, heading)

	sectionText := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left}
	costText := props.Text{Size: 9, Align: align.Right}
	taskText := props.Text{Size: 8, Align: align.Left}

	for _, r := range data.Rows {
		m.AddRows(
			row.New(8).Add(
				col.New(9).Add(text.New(fmt.Sprintf("%d. %s", r.Index, r.Component), sectionText)),
				col.New(3).Add(text.New(FormatMoney(r.Cost), costText)),
			),
		)
		if r.Description != "" {
			m.AddRows(
				row.New(6).Add(
					col.New(12).Add(text.New("   "+r.Description, taskText)),
				),
			)
		}
		for _, sub := range r.Subtasks {
			m.AddRows(
				row.New(5).Add(
					col.New(12).Add(text.New("   - "+formatSubtask(sub), taskText)),
				),
			)
		}
		m.AddRows(row.New(2))
	}

	addQuoteSummary(m, data)
	addQuoteFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate scope of works PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func newQuotePDFConfig() *entity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()
}

// addQuoteHeader adds the title, reference number, client and date rows.
func addQuoteHeader(m core.Maroto, data QuoteExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	gray := &props.Color{Red: 80, Green: 80, Blue: 80}
	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Reference: %s", data.ReferenceNumber), props.Text{
					Size: 9, Align: align.Left, Color: gray,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.GeneratedDate), props.Text{
					Size: 9, Align: align.Right, Color: gray,
				}),
			),
		),
	)
	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Prepared for: %s", data.ClientName), props.Text{
					Size: 9, Align: align.Left, Color: gray,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Areas: %s", strings.Join(data.AreaNames, ", ")), props.Text{
					Size: 9, Align: align.Right, Color: gray,
				}),
			),
		),
	)
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Floor area %.2f m2  |  Wall area %.2f m2",
					data.TotalFloorArea, data.TotalWallArea), props.Text{
					Size: 9, Align: align.Left, Color: gray,
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addCostTableHeader adds the column header row for the cost breakdown table.
func addCostTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(
				text.New("#", headerText),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New("Component", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New("Description", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Range", headerText),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New("Cost", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addCostTableRow adds a single reconciled line item. Adjusted lines get a
// light highlight so edited costs stand out from raw estimates.
func addCostTableRow(m core.Maroto, r QuoteExportRow) {
	var cellStyle *props.Cell
	if r.Adjusted {
		bg := &props.Color{Red: 255, Green: 249, Blue: 230}
		cellStyle = &props.Cell{BackgroundColor: bg}
	}

	baseText := props.Text{Size: 8, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	rangeStr := fmt.Sprintf("%s - %s", FormatMoney(r.RangeMin), FormatMoney(r.RangeMax))

	colIndex := col.New(1).Add(text.New(fmt.Sprintf("%d", r.Index), baseText))
	colComp := col.New(3).Add(text.New(r.Component, leftText))
	colDesc := col.New(3).Add(text.New(r.Description, leftText))
	colRange := col.New(2).Add(text.New(rangeStr, rightText))
	colCost := col.New(3).Add(text.New(FormatMoney(r.Cost), rightText))

	if cellStyle != nil {
		colIndex = colIndex.WithStyle(cellStyle)
		colComp = colComp.WithStyle(cellStyle)
		colDesc = colDesc.WithStyle(cellStyle)
		colRange = colRange.WithStyle(cellStyle)
		colCost = colCost.WithStyle(cellStyle)
	}

	m.AddRows(
		row.New(7).Add(colIndex, colComp, colDesc, colRange, colCost),
	)
}

// addQuoteSummary adds the effective total and, when adjustments exist, the
// original estimate for comparison.
func addQuoteSummary(m core.Maroto, data QuoteExportData) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	if data.OriginalTotal != nil && *data.OriginalTotal != data.Total {
		m.AddRows(
			row.New(8).Add(
				col.New(9).Add(
					text.New("Original Estimate", labelStyle),
				).WithStyle(summaryCell),
				col.New(3).Add(
					text.New(FormatMoney(*data.OriginalTotal), valueStyle),
				).WithStyle(summaryCell),
			),
		)
	}

	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(
				text.New("Total", labelStyle),
			).WithStyle(summaryCell),
			col.New(3).Add(
				text.New(FormatMoney(data.Total), valueStyle),
			).WithStyle(summaryCell),
		),
	)
}

// addQuoteFooter adds the confidence level and analysis note.
func addQuoteFooter(m core.Maroto, data QuoteExportData) {
	m.AddRows(row.New(6))

	gray := &props.Color{Red: 120, Green: 120, Blue: 120}
	if data.Confidence != "" {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New(fmt.Sprintf("Confidence: %s", data.Confidence), props.Text{
						Size: 8, Align: align.Left, Color: gray,
					}),
				),
			),
		)
	}
	if data.Analysis != "" {
		m.AddRows(
			row.New(10).Add(
				col.New(12).Add(
					text.New(data.Analysis, props.Text{
						Size: 8, Align: align.Left, Color: gray,
					}),
				),
			),
		)
	}
}

// formatSubtask turns a subtask key like "hot_water_unit" into display text.
func formatSubtask(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
