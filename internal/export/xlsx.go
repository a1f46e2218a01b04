// Package export writes priced estimates to spreadsheet formats so they can
// be handed to a client or fed into other estimating tools.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/BuildQuote/internal/model"
)

const (
	summarySheet = "Summary"
	linesSheet   = "Line Items"
)

// ExportEstimateXLSX writes an estimate workbook with a summary sheet and a
// line-item sheet. Materials that could not be priced get their own warning
// section so the spreadsheet never hides a gap.
func ExportEstimateXLSX(path, projectName string, est model.Estimate) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}
	if _, err := f.NewSheet(linesSheet); err != nil {
		return fmt.Errorf("create line items sheet: %w", err)
	}

	// Summary sheet.
	summary := [][]interface{}{
		{"Project", projectName},
		{"Created", est.CreatedAt.Format("2006-01-02 15:04")},
		{},
		{"Materials subtotal", est.Subtotal},
		{"Labor hours", est.LaborHours},
		{"Labor rate ($/hr)", est.LaborRate},
		{"Labor cost", est.LaborCost},
		{"Total", est.Total},
	}
	if !est.FullyPriced() {
		summary = append(summary, []interface{}{},
			[]interface{}{"WARNING", fmt.Sprintf("%d materials have no price and are not included in the subtotal", len(est.Unpriced))})
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("write summary row %d: %w", i+1, err)
		}
	}

	// Line items sheet.
	rows := [][]interface{}{
		{"Category", "Material", "Quantity", "Unit", "Unit Price", "Line Total", "Price Source"},
	}
	for _, line := range est.Lines {
		rows = append(rows, []interface{}{
			string(line.Category), line.Name, line.Quantity, line.Unit,
			line.UnitPrice, line.LineTotal, string(line.PriceSource),
		})
	}
	if len(est.Unpriced) > 0 {
		rows = append(rows, []interface{}{}, []interface{}{"UNPRICED MATERIALS"})
		for _, item := range est.Unpriced {
			rows = append(rows, []interface{}{
				string(item.Category), item.Name, item.Quantity, item.Unit, "no price available",
			})
		}
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(linesSheet, cell, &row); err != nil {
			return fmt.Errorf("write line item row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
