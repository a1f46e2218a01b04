// Package importer reads supplier or user price lists from CSV and Excel
// files into user price overrides. It supports automatic delimiter
// detection, flexible column mapping, and case-insensitive header
// recognition, since price lists come from whatever a supplier exports.
package importer

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// PriceEntry is one parsed row of a price list.
type PriceEntry struct {
	MaterialName string
	Price        float64
	Unit         string
	SupplierName string
}

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Entries  []PriceEntry
	Errors   []string
	Warnings []string
}

// OverrideWriter stores one user price override. Implemented by the price
// store.
type OverrideWriter interface {
	SetOverride(ctx context.Context, materialName, zipCode string, price float64, supplierName string) error
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Material int
	Price    int
	Unit     int
	Supplier int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"material": {"material", "name", "item", "description", "desc", "product", "sku description"},
	"price":    {"price", "unit price", "cost", "unit cost", "each", "rate"},
	"unit":     {"unit", "uom", "unit of measure", "per"},
	"supplier": {"supplier", "vendor", "store", "source"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe. The delimiter
// that produces the most consistent column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each
// column role. Returns the mapping and true if a header was detected, or a
// default positional mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Material: -1, Price: -1, Unit: -1, Supplier: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "material":
					if mapping.Material == -1 {
						mapping.Material = i
					}
				case "price":
					if mapping.Price == -1 {
						mapping.Price = i
					}
				case "unit":
					if mapping.Unit == -1 {
						mapping.Unit = i
					}
				case "supplier":
					if mapping.Supplier == -1 {
						mapping.Supplier = i
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping: Material, Price, Unit, Supplier
		return ColumnMapping{Material: 0, Price: 1, Unit: 2, Supplier: 3}, false
	}

	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a PriceEntry from a row using the given column mapping.
// Returns the entry, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (PriceEntry, string, string) {
	var warning string

	material := getCell(row, mapping.Material)
	if material == "" {
		return PriceEntry{}, fmt.Sprintf("%s: missing material name", rowLabel), ""
	}

	priceStr := getCell(row, mapping.Price)
	priceStr = strings.TrimPrefix(priceStr, "$")
	priceStr = strings.ReplaceAll(priceStr, ",", "")
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price <= 0 {
		return PriceEntry{}, fmt.Sprintf("%s: invalid price %q", rowLabel, getCell(row, mapping.Price)), ""
	}

	unit := getCell(row, mapping.Unit)
	if unit == "" {
		unit = "each"
		warning = fmt.Sprintf("%s: no unit given, assuming %q", rowLabel, unit)
	}

	return PriceEntry{
		MaterialName: material,
		Price:        price,
		Unit:         unit,
		SupplierName: getCell(row, mapping.Supplier),
	}, "", warning
}

// parseRows converts raw rows into price entries, detecting the header row.
func parseRows(rows [][]string) ImportResult {
	var result ImportResult
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "file contains no rows")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	start := 0
	if hasHeader {
		start = 1
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 {
			continue
		}
		empty := true
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		entry, errMsg, warnMsg := parseRow(row, mapping, fmt.Sprintf("row %d", i+1))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warnMsg != "" {
			result.Warnings = append(result.Warnings, warnMsg)
		}
		result.Entries = append(result.Entries, entry)
	}

	return result
}

// ImportFile parses a price list from a CSV or XLSX file based on its
// extension.
func ImportFile(path string) (ImportResult, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return importCSV(path)
	case ".xlsx":
		return importXLSX(path)
	default:
		return ImportResult{}, fmt.Errorf("unsupported price list format %q", filepath.Ext(path))
	}
}

func importCSV(path string) (ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{}, err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = DetectCSVDelimiter(data)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return ImportResult{}, fmt.Errorf("parse csv: %w", err)
	}
	return parseRows(rows), nil
}

func importXLSX(path string) (ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ImportResult{}, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ImportResult{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return parseRows(rows), nil
}

// ApplyOverrides writes the parsed entries to the override store for the
// given market. Row-level failures are collected, not fatal.
func ApplyOverrides(ctx context.Context, w OverrideWriter, zipCode string, result ImportResult) (int, []string) {
	applied := 0
	var errs []string
	for _, e := range result.Entries {
		if err := w.SetOverride(ctx, e.MaterialName, zipCode, e.Price, e.SupplierName); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", e.MaterialName, err))
			continue
		}
		applied++
	}
	return applied, errs
}
