package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/stockbook"
	md "github.com/nao1215/markdown"
)

// Purchase renders the confirmation of a purchase.
func Purchase(r stockbook.PurchaseReceipt, opts Options) string {
	verb := "Product added"
	if r.Restocked {
		verb = "Product restocked"
	}
	return fmt.Sprintf("%s: %v; Total cost: %s\n", verb, r.Tx, opts.money(r.TotalCost))
}

// Sale renders the confirmation of a sale.
func Sale(r stockbook.SaleReceipt, opts Options) string {
	return fmt.Sprintf("Product sold: %v; Total: %s; Stock: %v -> %v\n",
		r.Tx, opts.money(r.Tx.Total()), r.Before.Quantity, r.After.Quantity)
}

// SalesHistory renders every sale in chronological order.
func SalesHistory(sales []stockbook.SaleTx, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sales History")
	if len(sales) == 0 {
		doc.PlainText("No sales.")
		return doc.String() + "\n"
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"#", "Product", "Quantity", "Sale Price", "Total"},
		Rows:      [][]string{},
	}
	for i, tx := range sales {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i + 1),
			tx.Product,
			tx.Quantity.String(),
			opts.money(tx.SalePrice),
			opts.money(tx.Total()),
		})
	}
	doc.Table(table)
	return doc.String()
}

// PurchaseHistory renders every purchase in chronological order.
func PurchaseHistory(purchases []stockbook.PurchaseTx, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Purchase History")
	if len(purchases) == 0 {
		doc.PlainText("No purchases.")
		return doc.String() + "\n"
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"#", "Product", "Quantity", "Purchase Price", "Total"},
		Rows:      [][]string{},
	}
	for i, tx := range purchases {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i + 1),
			tx.Product,
			tx.Quantity.String(),
			opts.money(tx.PurchasePrice),
			opts.money(tx.Total()),
		})
	}
	doc.Table(table)
	return doc.String()
}
