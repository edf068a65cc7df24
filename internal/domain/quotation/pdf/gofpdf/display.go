package gofpdf

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"zuccess/go_backend/internal/domain/quotation"
)

var moneyPrinter = message.NewPrinter(language.English)

// formatNum renders a grouped two-decimal amount, e.g. 1126 -> "1,126.00".
func formatNum(v float64) string {
	return moneyPrinter.Sprintf("%.2f", v)
}

var percentSuffix = regexp.MustCompile(`\s*\(\d+(?:\.\d+)?%\)\s*$`)

func isTaxLine(name string) bool {
	n := strings.ToLower(name)
	return strings.Contains(n, "tax") || strings.Contains(n, "ضريبة")
}

func isInstallationLine(name string) bool {
	n := strings.ToLower(name)
	return strings.Contains(n, "installation") || strings.Contains(n, "programming")
}

type tableRow struct {
	num    string
	name   string
	qty    string
	rate   string
	amount string
}

// displayRows shapes quotation lines for the itemized table. This is purely
// presentational; the underlying quotation is never mutated. Tax rows are
// folded into the summary block instead of being listed. Installation and
// programming charges display net of tax (divided by 1+taxRate): their
// stored magnitude is treated as already tax-inclusive. "(15%)"-style name
// suffixes are stripped. An empty line list yields a single "No items" row
// so the table always renders.
func displayRows(lines []quotation.LineItem, taxRate float64) []tableRow {
	var rows []tableRow
	for _, line := range lines {
		if isTaxLine(line.Name) {
			continue
		}
		rate, amount := line.UnitPrice, line.Subtotal
		if isInstallationLine(line.Name) {
			rate /= 1 + taxRate
			amount /= 1 + taxRate
		}
		name := strings.TrimSpace(percentSuffix.ReplaceAllString(line.Name, ""))
		if name == "" {
			name = "—"
		}
		rows = append(rows, tableRow{
			num:    fmt.Sprintf("%d", len(rows)+1),
			name:   name,
			qty:    formatNum(line.Qty),
			rate:   formatNum(rate),
			amount: formatNum(amount),
		})
	}
	if len(rows) == 0 {
		rows = append(rows, tableRow{num: "1", name: "No items", qty: "0.00", rate: "0.00", amount: "0.00"})
	}
	return rows
}

// summarize recomputes the totals block from the stored lines rather than
// trusting Quotation.Total; renderer and calculator are decoupled
// collaborators. The subtotal sums the displayed (net-of-tax) amounts, so
// re-applying the tax rate reproduces the stored grand total.
func summarize(lines []quotation.LineItem, taxRate float64) (subTotal, totalWithTax float64) {
	for _, line := range lines {
		if isTaxLine(line.Name) {
			continue
		}
		amount := line.Subtotal
		if isInstallationLine(line.Name) {
			amount /= 1 + taxRate
		}
		subTotal += amount
	}
	totalWithTax = math.Round(subTotal*(1+taxRate)*100) / 100
	return subTotal, totalWithTax
}
