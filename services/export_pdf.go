package services

import (
	"fmt"
	"math"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"buildtrack/models"
)

// GenerateCostPDF creates a printable cost summary using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateCostPDF(data CostReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addCostHeader(m, data)
	addTradeTableHeader(m)
	for _, entry := range data.Summary.EntriesByTrade {
		addTradeRow(m, entry)
	}
	addQuotationSection(m, data.Accepted)
	addCostTotals(m, data.Summary)
	addCostFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addCostHeader adds the title, address, and date to the PDF.
func addCostHeader(m core.Maroto, data CostReportData) {
	// Title row
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.ProjectName+" - Cost Summary", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	// Address and date row
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(data.Address, props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.GeneratedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addTradeTableHeader adds the column header row for the per-trade table.
func addTradeTableHeader(m core.Maroto) {
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
			col.New(4).Add(
				text.New("Trade", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New("Quoted", headerText),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New("Actual", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Variance", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addTradeRow adds a single per-trade cost row.
func addTradeRow(m core.Maroto, entry models.CostEntry) {
	baseText := props.Text{
		Size:  8,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	label := models.TradeCategoryLabels[entry.TradeCategory]
	if label == "" {
		label = string(entry.TradeCategory)
	}

	m.AddRows(
		row.New(7).Add(
			col.New(4).Add(text.New(label, leftText)),
			col.New(3).Add(text.New(FormatZAR(entry.QuotedAmount), rightText)),
			col.New(3).Add(text.New(FormatZAR(entry.ActualAmount), rightText)),
			col.New(2).Add(text.New(FormatZAR(entry.Variance), rightText)),
		),
	)
}

// addQuotationSection lists the accepted quotations backing the roll-up.
func addQuotationSection(m core.Maroto, accepted []models.Quotation) {
	if len(accepted) == 0 {
		return
	}

	m.AddRows(row.New(6))
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("Accepted Quotations", props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	rowBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	rowCell := &props.Cell{BackgroundColor: rowBg}
	baseText := props.Text{Size: 8, Align: align.Left}
	rightText := props.Text{Size: 8, Align: align.Right}

	for i, q := range accepted {
		label := models.TradeCategoryLabels[q.TradeCategory]
		if label == "" {
			label = string(q.TradeCategory)
		}

		colSupplier := col.New(5).Add(text.New(q.SupplierName, baseText))
		colTrade := col.New(4).Add(text.New(label, baseText))
		colTotal := col.New(3).Add(text.New(FormatZAR(q.TotalInclVAT), rightText))

		// Zebra stripe alternate rows.
		if i%2 == 1 {
			colSupplier = colSupplier.WithStyle(rowCell)
			colTrade = colTrade.WithStyle(rowCell)
			colTotal = colTotal.WithStyle(rowCell)
		}

		m.AddRows(row.New(7).Add(colSupplier, colTrade, colTotal))
	}
}

// addCostTotals adds the budget and variance section at the bottom of the PDF.
func addCostTotals(m core.Maroto, summary models.CostSummary) {
	// Spacer before totals
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	addTotal := func(label string, amount float64) {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(
					text.New(label, labelStyle),
				).WithStyle(summaryCell),
				col.New(4).Add(
					text.New(FormatZAR(amount), valueStyle),
				).WithStyle(summaryCell),
			),
		)
	}

	addTotal("Total Budget", summary.TotalBudget)
	addTotal(fmt.Sprintf("Contingency (%s%%)", formatQty(summary.ContingencyPercent)), summary.ContingencyAmount)
	addTotal("Budget incl. Contingency", summary.BudgetInclContingency)
	addTotal("Total Quoted (accepted)", summary.TotalQuoted)
	addTotal("Variance", summary.TotalVariance)
}

// addCostFooter adds the generated-date line at the bottom.
func addCostFooter(m core.Maroto, data CostReportData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", data.GeneratedDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}

// formatQty returns a string representation of a numeric value.
// Whole numbers are formatted without decimals; fractional values get 2 decimal places.
func formatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}
