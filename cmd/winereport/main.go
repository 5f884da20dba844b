// Command winereport summarizes a sales export from the command line.
//
// Usage:
//
//	winereport --file export.csv          # KPI tiles as text
//	winereport --file export.csv --json   # full summary as JSON
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/schollz/progressbar/v3"

	"winereport/internal/csv"
	"winereport/internal/report"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	file := flag.String("file", "", "Path to the sales export CSV")
	asJSON := flag.Bool("json", false, "Print the full summary as JSON")
	flag.Parse()

	if *file == "" {
		log.Fatalf("Usage: winereport --file export.csv [--json]")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("read export: %v", err)
	}

	records := report.Records(csv.Tokenize(string(data)))

	bar := progressbar.Default(int64(len(records)))
	acc := report.NewAccumulator()
	for _, rec := range records {
		acc.Add(rec)
		_ = bar.Add(1)
	}

	summary, err := acc.Summarize()
	if err != nil {
		log.Fatalf("summarize: %v", err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			log.Fatalf("encode summary: %v", err)
		}
		return
	}

	printTiles(summary)
}

// printTiles writes the KPI tiles the dashboard shows, as aligned text.
func printTiles(s *report.Summary) {
	t := s.Totals

	tiles := []struct {
		label string
		value string
	}{
		{"Net Sales", report.Money0(t.NetSales)},
		{"Total Collected", report.Money0(t.OrderTotal)},
		{"Orders", fmt.Sprintf("%d", t.TotalOrders)},
		{"Units Sold", fmt.Sprintf("%.0f", t.TotalUnits)},
		{"Avg Order Value", report.Money0(t.AvgOrderValue)},
		{"Avg Bottle Price", report.Money2(t.AvgBottlePrice)},
		{"Unique Customers", fmt.Sprintf("%d", t.UniqueCustomers)},
		{"Repeat Rate", report.Percent(t.RepeatRate)},
		{"Avg Bottles / Customer", fmt.Sprintf("%.1f", t.AvgBottlesPerCustomer)},
		{"Shipped Orders", fmt.Sprintf("%d", t.ShippingCount)},
		{"Pickup Orders", fmt.Sprintf("%d", t.PickupCount)},
		{"Taxes Collected", report.Money0(t.Taxes)},
		{"Peak Month", monthTile(t.Peak)},
		{"Lowest Month", monthTile(t.Low)},
	}

	for _, tile := range tiles {
		fmt.Printf("%-24s %s\n", tile.label, tile.value)
	}

	if len(s.Monthly) > 0 {
		fmt.Println("\nMonthly Net Sales")
		for _, m := range s.Monthly {
			fmt.Printf("  %-10s %12s  orders=%-4d units=%.0f\n",
				report.MonthLabel(m.Key), report.Money0(m.NetSales), m.Orders, m.Units)
		}
	}

	if len(s.TopRevenue) > 0 {
		fmt.Println("\nTop Products by Revenue")
		for _, p := range s.TopRevenue {
			fmt.Printf("  %-24s %12s  units=%.0f\n", p.SKU, report.Money0(p.NetSales), p.Units)
		}
	}
}

func monthTile(m report.MonthBucket) string {
	if m.Key == "" {
		return "n/a"
	}
	return fmt.Sprintf("%s (%s)", report.MonthLabel(m.Key), report.Money0(m.NetSales))
}
