// BuildQuote: construction material and cost estimator.
//
// A command-line tool for contractors: describe a deck, kitchen, or
// bathroom project in a JSON file and get back a code-compliant bill of
// materials with aggregated prices and labor.
//
// Build:
//   go build -o buildquote ./cmd/buildquote
//
// Usage:
//   buildquote -project deck.json
//   buildquote -project deck.json -xlsx estimate.xlsx -csv bom.csv
//   buildquote -import-prices supplier.csv -zip 97205
//
// Configuration comes from the environment (or a local .env file):
//   BUILDQUOTE_DB_PATH        price database (default ~/.buildquote/prices.db)
//   BUILDQUOTE_ESTIMATOR_URL  AI price estimation service base URL
//   BUILDQUOTE_ESTIMATOR_KEY  API key for the estimation service
//   BUILDQUOTE_ZIP_CODE       default market zip code
//   BUILDQUOTE_LABOR_RATE     default labor rate in $/hr
//
// Defaults not set in the environment come from ~/.buildquote/config.json,
// which also tracks recently opened project files.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/piwi3910/BuildQuote/internal/aiprice"
	"github.com/piwi3910/BuildQuote/internal/calc"
	"github.com/piwi3910/BuildQuote/internal/config"
	"github.com/piwi3910/BuildQuote/internal/estimate"
	"github.com/piwi3910/BuildQuote/internal/export"
	"github.com/piwi3910/BuildQuote/internal/importer"
	"github.com/piwi3910/BuildQuote/internal/model"
	"github.com/piwi3910/BuildQuote/internal/pricing"
	"github.com/piwi3910/BuildQuote/internal/project"
	"github.com/piwi3910/BuildQuote/internal/store"
)

func main() {
	projectPath := flag.String("project", "", "path to a project JSON file")
	importPath := flag.String("import-prices", "", "import a CSV/XLSX price list as user price overrides")
	zipFlag := flag.String("zip", "", "market zip code (overrides project file and config)")
	rateFlag := flag.Float64("labor-rate", 0, "labor rate in $/hr (overrides project file and config)")
	xlsxOut := flag.String("xlsx", "", "write the priced estimate to an XLSX workbook")
	csvOut := flag.String("csv", "", "write the bill of materials to a CSV file")
	offline := flag.Bool("offline", false, "skip the AI price estimator even if configured")
	flag.Parse()

	cfg := config.Load()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open price store: %v", err)
	}
	defer st.Close()

	ctx := context.Background()

	zip := firstNonEmpty(*zipFlag, cfg.DefaultZipCode)

	if *importPath != "" {
		runImport(ctx, st, *importPath, zip)
		if *projectPath == "" {
			return
		}
	}

	if *projectPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	proj, err := project.Load(*projectPath)
	if err != nil {
		log.Fatalf("load project: %v", err)
	}
	if err := project.RememberProject(project.DefaultConfigPath(), *projectPath); err != nil {
		log.Printf("warning: could not update recent projects: %v", err)
	}

	calculator, err := calculatorFor(proj)
	if err != nil {
		log.Fatal(err)
	}
	list, err := calculator.Calculate()
	if err != nil {
		log.Fatalf("calculate materials: %v", err)
	}

	zip = firstNonEmpty(*zipFlag, proj.ZipCode, cfg.DefaultZipCode)
	rate := *rateFlag
	if rate <= 0 {
		rate = proj.LaborRate
	}
	if rate <= 0 {
		rate = cfg.DefaultLaborRate
	}

	var estimator pricing.Estimator
	if !*offline && cfg.EstimatorURL != "" {
		estimator = aiprice.NewClient(cfg.EstimatorURL, cfg.EstimatorKey)
	}
	aggregator := pricing.NewWithStores(pricing.DefaultConfig(), st, st, estimator, st)

	queries := make([]pricing.Query, len(list.Items))
	for i, item := range list.Items {
		queries[i] = pricing.Query{
			MaterialName: item.Name,
			Category:     string(item.Category),
			Unit:         item.Unit,
			ZipCode:      zip,
		}
	}
	aggregated := aggregator.AggregateBatch(ctx, queries)

	prices := make(map[string]model.AggregatedPrice, len(aggregated))
	for _, agg := range aggregated {
		prices[agg.MaterialName] = agg
	}

	est := estimate.Assemble(list, prices, rate)
	printEstimate(proj.Name, est)

	if *xlsxOut != "" {
		if err := export.ExportEstimateXLSX(*xlsxOut, proj.Name, est); err != nil {
			log.Fatalf("export xlsx: %v", err)
		}
		fmt.Printf("wrote %s\n", *xlsxOut)
	}
	if *csvOut != "" {
		if err := export.ExportBOMCSV(*csvOut, list); err != nil {
			log.Fatalf("export csv: %v", err)
		}
		fmt.Printf("wrote %s\n", *csvOut)
	}
}

// calculatorFor picks the calculator matching the project type.
func calculatorFor(proj model.Project) (calc.Calculator, error) {
	switch proj.Type {
	case model.ProjectDeck:
		return calc.NewDeck(proj.Deck.Dimensions, proj.Deck.Options), nil
	case model.ProjectKitchen:
		return calc.NewKitchen(proj.Kitchen.Dimensions, proj.Kitchen.Options), nil
	case model.ProjectBathroom:
		return calc.NewBathroom(proj.Bathroom.Dimensions, proj.Bathroom.Options), nil
	}
	return nil, fmt.Errorf("unknown project type %q", proj.Type)
}

func runImport(ctx context.Context, st *store.PriceStore, path, zip string) {
	if zip == "" {
		log.Fatal("price import needs a zip code: pass -zip or set BUILDQUOTE_ZIP_CODE")
	}
	result, err := importer.ImportFile(path)
	if err != nil {
		log.Fatalf("import prices: %v", err)
	}
	for _, w := range result.Warnings {
		log.Printf("warning: %s", w)
	}
	for _, e := range result.Errors {
		log.Printf("skipped: %s", e)
	}
	applied, errs := importer.ApplyOverrides(ctx, st, zip, result)
	for _, e := range errs {
		log.Printf("failed: %s", e)
	}
	fmt.Printf("imported %d price overrides for %s\n", applied, zip)
}

func printEstimate(name string, est model.Estimate) {
	fmt.Printf("Estimate: %s\n\n", name)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tMATERIAL\tQTY\tUNIT\tUNIT PRICE\tLINE TOTAL\tSOURCE")
	for _, line := range est.Lines {
		fmt.Fprintf(w, "%s\t%s\t%.4g\t%s\t$%.2f\t$%.2f\t%s\n",
			line.Category, line.Name, line.Quantity, line.Unit,
			line.UnitPrice, line.LineTotal, line.PriceSource)
	}
	for _, item := range est.Unpriced {
		fmt.Fprintf(w, "%s\t%s\t%.4g\t%s\tNO PRICE\t-\t-\n",
			item.Category, item.Name, item.Quantity, item.Unit)
	}
	w.Flush()

	fmt.Println()
	if len(est.Unpriced) > 0 {
		fmt.Printf("WARNING: %d materials have no price and are excluded from the subtotal\n\n", len(est.Unpriced))
	}
	fmt.Printf("Materials subtotal:  $%.2f\n", est.Subtotal)
	fmt.Printf("Labor (%.1f h @ $%.2f/h):  $%.2f\n", est.LaborHours, est.LaborRate, est.LaborCost)
	fmt.Printf("Total:  $%.2f\n", est.Total)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
