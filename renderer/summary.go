package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/stockbook"
	md "github.com/nao1215/markdown"
)

// Profit renders the profit made on one product.
func Profit(r stockbook.ProfitReport, opts Options) string {
	return fmt.Sprintf("Profit on %s (%v cost): %s\n", r.Product, r.Method, opts.money(r.Profit))
}

// SalesSummary renders the per-product sales report.
func SalesSummary(s stockbook.SalesSummary, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sales Report")
	if len(s.Lines) == 0 {
		doc.PlainText("No sales.")
		return doc.String() + "\n"
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Product", "Sold", "Revenue", "Profit"},
		Rows:      [][]string{},
	}
	for _, line := range s.Lines {
		table.Rows = append(table.Rows, []string{
			line.Product,
			line.Quantity.String(),
			opts.money(line.Revenue),
			opts.optionalMoney(line.Profit),
		})
	}
	doc.Table(table)
	doc.PlainTextf("Total profit (%v cost): %s", s.Method, opts.money(s.Profit))
	return doc.String() + "\n"
}

// PurchaseSummary renders the per-product purchase report.
func PurchaseSummary(lines []stockbook.PurchaseSummaryLine, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Purchase Report")
	if len(lines) == 0 {
		doc.PlainText("No purchases.")
		return doc.String() + "\n"
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Product", "Purchased", "Cost"},
		Rows:      [][]string{},
	}
	var total stockbook.Money
	for _, line := range lines {
		total = total.Add(line.Cost)
		table.Rows = append(table.Rows, []string{
			line.Product,
			line.Quantity.String(),
			opts.money(line.Cost),
		})
	}
	doc.Table(table)
	doc.PlainTextf("Total cost: %s", opts.money(total))
	return doc.String() + "\n"
}

// SalesLog renders every sale with its profit.
func SalesLog(log []stockbook.SaleProfit, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sales Log")
	if len(log) == 0 {
		doc.PlainText("No sales.")
		return doc.String() + "\n"
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"#", "Product", "Quantity", "Total", "Profit"},
		Rows:      [][]string{},
	}
	for i, sp := range log {
		table.Rows = append(table.Rows, []string{
			fmt.Sprint(i + 1),
			sp.Tx.Product,
			sp.Tx.Quantity.String(),
			opts.money(sp.Tx.Total()),
			opts.optionalMoney(sp.Profit),
		})
	}
	doc.Table(table)
	return doc.String()
}

// Stats renders the operation counters.
func Stats(counts []stockbook.OperationCount) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Statistics")
	if len(counts) == 0 {
		doc.PlainText("No operations.")
		return doc.String() + "\n"
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Operation", "Outcome", "Count"},
		Rows:      [][]string{},
	}
	for _, c := range counts {
		table.Rows = append(table.Rows, []string{c.Operation, c.Outcome, fmt.Sprint(c.Count)})
	}
	doc.Table(table)
	return doc.String()
}
