package stockbook

import (
	"iter"
	"slices"

	"github.com/google/uuid"
)

// Ledger is the append-only history of purchases and sales.
//
// In a Ledger transactions are always in chronological order: insertion order
// is the only clock. Nothing is ever removed or edited, not even when the
// product is deleted from the catalog.
type Ledger struct {
	purchases []PurchaseTx
	sales     []SaleTx
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		purchases: make([]PurchaseTx, 0),
		sales:     make([]SaleTx, 0),
	}
}

// RecordPurchase appends a purchase.
func (l *Ledger) RecordPurchase(tx PurchaseTx) { l.purchases = append(l.purchases, tx) }

// RecordSale appends a sale.
func (l *Ledger) RecordSale(tx SaleTx) { l.sales = append(l.sales, tx) }

// Purchases returns an iterator that yields the purchases accepted by all
// filters, in chronological order.
func (l *Ledger) Purchases(filters ...func(PurchaseTx) bool) iter.Seq2[int, PurchaseTx] {
	return func(yield func(int, PurchaseTx) bool) {
		for i, tx := range l.purchases {
			if !acceptAll(tx, filters) {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Sales returns an iterator that yields the sales accepted by all filters, in
// chronological order.
func (l *Ledger) Sales(filters ...func(SaleTx) bool) iter.Seq2[int, SaleTx] {
	return func(yield func(int, SaleTx) bool) {
		for i, tx := range l.sales {
			if !acceptAll(tx, filters) {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

func acceptAll[T any](tx T, filters []func(T) bool) bool {
	for _, filter := range filters {
		if !filter(tx) {
			return false
		}
	}
	return true
}

// PurchasesFor returns every purchase recorded under this product name.
func (l *Ledger) PurchasesFor(name string) []PurchaseTx {
	return collect(l.Purchases(func(tx PurchaseTx) bool { return tx.Product == name }))
}

// SalesFor returns every sale recorded under this product name.
func (l *Ledger) SalesFor(name string) []SaleTx {
	return collect(l.Sales(func(tx SaleTx) bool { return tx.Product == name }))
}

// SalesOf returns the sales of one product generation, ignoring sales of an
// earlier, deleted product that had the same name.
func (l *Ledger) SalesOf(id uuid.UUID) []SaleTx {
	return collect(l.Sales(func(tx SaleTx) bool { return tx.ProductID == id }))
}

// PurchasesOf returns the purchases of one product generation.
func (l *Ledger) PurchasesOf(id uuid.UUID) []PurchaseTx {
	return collect(l.Purchases(func(tx PurchaseTx) bool { return tx.ProductID == id }))
}

// AllPurchases returns a copy of the purchase history.
func (l *Ledger) AllPurchases() []PurchaseTx { return slices.Clone(l.purchases) }

// AllSales returns a copy of the sale history.
func (l *Ledger) AllSales() []SaleTx { return slices.Clone(l.sales) }

func collect[T any](seq iter.Seq2[int, T]) []T {
	out := make([]T, 0)
	for _, v := range seq {
		out = append(out, v)
	}
	return out
}
