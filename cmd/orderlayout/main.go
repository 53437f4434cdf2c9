// Command orderlayout extracts purchase order fields from a PDF, hOCR or
// image file and prints them.
//
// Usage:
//
//	orderlayout [-config layout.yaml] [-pages 1,3-4] [-log-level debug] [-lines] [-json] FILE
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tsawler/orderlayout"
	"github.com/tsawler/orderlayout/internal/logging"
	"github.com/tsawler/orderlayout/model"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("orderlayout", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "YAML file with extraction thresholds")
		pages      = fs.String("pages", "", "comma separated 1-indexed pages or ranges to read, e.g. 1,3-4 (default all)")
		logLevel   = fs.String("log-level", "warn", "log level: debug, info, warn, error")
		showLines  = fs.Bool("lines", false, "print reconstructed lines instead of the order")
		asJSON     = fs.Bool("json", false, "print the order as JSON")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: orderlayout [flags] FILE\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	logger, err := logging.New(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Error: creating logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	ext := orderlayout.Open(fs.Arg(0)).Logger(logger)
	if *configPath != "" {
		ext = ext.ConfigFile(*configPath)
	}
	if *pages != "" {
		numbers, err := parsePages(*pages)
		if err != nil {
			fmt.Fprintf(stderr, "Error: invalid -pages: %v\n", err)
			return 2
		}
		ext = ext.Pages(numbers...)
	}

	if *showLines {
		layouts, err := ext.Lines()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		for i, l := range layouts {
			fmt.Fprintf(stdout, "--- page %d (%d lines) ---\n%s\n", i+1, l.LineCount(), l.GetText())
		}
		return 0
	}

	order, err := ext.Order()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(order); err != nil {
			fmt.Fprintf(stderr, "Error: encoding order: %v\n", err)
			return 1
		}
		return 0
	}

	printOrder(stdout, order)
	return 0
}

// parsePages parses a list such as "1,3-4". Ranges are inclusive.
func parsePages(s string) ([]int, error) {
	var numbers []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		from, to, isRange := strings.Cut(part, "-")
		first, err := strconv.Atoi(strings.TrimSpace(from))
		if err != nil {
			return nil, fmt.Errorf("page %q: %w", part, err)
		}
		last := first
		if isRange {
			last, err = strconv.Atoi(strings.TrimSpace(to))
			if err != nil {
				return nil, fmt.Errorf("page range %q: %w", part, err)
			}
			if last < first {
				return nil, fmt.Errorf("page range %q: end before start", part)
			}
		}

		for n := first; n <= last; n++ {
			numbers = append(numbers, n)
		}
	}
	if len(numbers) == 0 {
		return nil, errors.New("no pages given")
	}
	return numbers, nil
}

// printOrder writes a human readable summary
func printOrder(w io.Writer, order *model.OrderDocument) {
	if info := order.OrderInfo; info != nil {
		fmt.Fprintln(w, "Order")
		printField(w, "Number", info.OrderNumber)
		printField(w, "Date", info.OrderDate)
		printField(w, "Class", info.OrderClass)
		printField(w, "Delivery way", info.DeliveryWay)
		printField(w, "Payment method", info.PaymentMethod)
		printField(w, "Items amount", info.ItemsAmount)
		printField(w, "Net weight", info.NetWeight)
		fmt.Fprintln(w)
	}

	if c := order.CustomerInfo; c != nil {
		fmt.Fprintln(w, "Customer")
		printField(w, "DMS number", c.DMSNumber)
		printField(w, "Name", c.Customer)
		printField(w, "Company", c.Company)
		printField(w, "Email", c.Email)
		printField(w, "Phone", c.Phone)
		printField(w, "CTDI ID", c.CTDIID)
		fmt.Fprintln(w)
	}

	if a := order.DeliveryAddress; a != nil {
		fmt.Fprintln(w, "Delivery address")
		printField(w, "Recipient", a.RecipientName)
		printField(w, "Company", a.CompanyName)
		printField(w, "Street", a.Street)
		printField(w, "City", a.City)
		printField(w, "State", a.State)
		printField(w, "Zip code", a.ZipCode)
		printField(w, "Country", a.Country)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Items (%d)\n", order.ItemCount())
	for _, item := range order.Items {
		fmt.Fprintf(w, "  %-10s %-30s %5d  %-4s %6s%%  %10s %10s %10s\n",
			item.PartNumber, item.Description, item.Quantity, item.DiscountCode,
			item.DiscountPct.String(), amount(item.RetailPerUnit), amount(item.NetPerUnit), amount(item.NetSummary))
	}
	fmt.Fprintf(w, "Net total: %s\n", order.NetTotal().StringFixed(2))
}

func printField(w io.Writer, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(w, "  %-15s %s\n", label+":", value)
}

func amount(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return d.Decimal.StringFixed(2)
}
