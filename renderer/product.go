package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/stockbook"
	md "github.com/nao1215/markdown"
)

// Product renders a product with its lots.
func Product(p stockbook.Product, opts Options) string {
	return Snapshot(stockbook.ProductReport(p), opts)
}

// Snapshot renders a product snapshot with its lots.
func Snapshot(s stockbook.ProductSnapshot, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(s.Name)
	if s.Description != "" {
		doc.PlainText(s.Description)
		doc.PlainText("")
	}
	doc.BulletList(
		fmt.Sprintf("Quantity: %v", s.Quantity),
		fmt.Sprintf("Sale price: %s", opts.money(s.SalePrice)),
	)
	doc.PlainText("")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Lot", "Quantity", "Unit Cost", "Cost"},
		Rows:      [][]string{},
	}
	for i, lot := range s.Lots {
		table.Rows = append(table.Rows, []string{
			fmt.Sprint(i + 1),
			lot.Quantity.String(),
			opts.money(lot.UnitCost),
			opts.money(lot.Cost()),
		})
	}
	doc.Table(table)
	return doc.String()
}

// Products renders the list of products.
func Products(products []stockbook.ProductSnapshot, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Products")
	if len(products) == 0 {
		doc.PlainText("No products.")
		return doc.String() + "\n"
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{"Product", "Description", "Quantity", "Sale Price", "Lots"},
		Rows:      [][]string{},
	}
	for _, p := range products {
		lots := make([]string, 0, len(p.Lots))
		for _, lot := range p.Lots {
			lots = append(lots, fmt.Sprintf("%v @ %s", lot.Quantity, opts.money(lot.UnitCost)))
		}
		table.Rows = append(table.Rows, []string{
			p.Name,
			p.Description,
			p.Quantity.String(),
			opts.money(p.SalePrice),
			strings.Join(lots, ", "),
		})
	}
	doc.Table(table)
	return doc.String()
}

// Edited renders the confirmation of an edit, listing what changed.
func Edited(r stockbook.EditReceipt, opts Options) string {
	var changes []string
	if r.Before.Description != r.After.Description {
		changes = append(changes, fmt.Sprintf("description %q -> %q", r.Before.Description, r.After.Description))
	}
	if !r.Before.SalePrice.Equal(r.After.SalePrice) {
		changes = append(changes, fmt.Sprintf("sale price %s -> %s", opts.money(r.Before.SalePrice), opts.money(r.After.SalePrice)))
	}
	if len(changes) == 0 {
		return fmt.Sprintf("Product %s unchanged\n", r.After.Name)
	}
	return fmt.Sprintf("Product %s updated: %s\n", r.After.Name, strings.Join(changes, "; "))
}

// Deleted renders the confirmation of a deletion.
func Deleted(r stockbook.DeleteReceipt) string {
	return fmt.Sprintf("Product %s deleted, %v units removed from stock\n", r.Product.Name, r.Product.Quantity)
}
