package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/piwi3910/BuildQuote/internal/model"
)

// ExportBOMCSV writes the raw bill of materials as CSV, one row per item in
// build-sequence order. Useful for feeding purchasing systems that don't
// care about pricing.
func ExportBOMCSV(path string, list model.MaterialList) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "category", "material", "quantity", "unit"}); err != nil {
		return err
	}
	for _, item := range list.Items {
		row := []string{
			item.ID,
			string(item.Category),
			item.Name,
			strconv.FormatFloat(item.Quantity, 'f', -1, 64),
			item.Unit,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
