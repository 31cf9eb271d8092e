// Package renderer turns inventory results into markdown.
package renderer

import (
	"errors"
	"fmt"

	"github.com/etnz/stockbook"
)

// Options holds configuration for rendering.
type Options struct {
	Currency string // Currency is the ISO 4217 code amounts are displayed in. Empty shows plain decimals.
}

func (o Options) money(m stockbook.Money) string { return m.Display(o.Currency) }

// optionalMoney renders an amount that may be unresolvable.
func (o Options) optionalMoney(m *stockbook.Money) string {
	if m == nil {
		return "n/a"
	}
	return o.money(*m)
}

// Result renders the result of stockbook.Inventory.Execute.
func Result(result any, opts Options) string {
	switch v := result.(type) {
	case stockbook.PurchaseReceipt:
		return Purchase(v, opts)
	case stockbook.SaleReceipt:
		return Sale(v, opts)
	case stockbook.Product:
		return Product(v, opts)
	case stockbook.EditReceipt:
		return Edited(v, opts)
	case stockbook.DeleteReceipt:
		return Deleted(v)
	case stockbook.ProductSnapshot:
		return Snapshot(v, opts)
	case []stockbook.ProductSnapshot:
		return Products(v, opts)
	case stockbook.ProfitReport:
		return Profit(v, opts)
	case stockbook.SalesSummary:
		return SalesSummary(v, opts)
	case []stockbook.PurchaseSummaryLine:
		return PurchaseSummary(v, opts)
	case []stockbook.SaleProfit:
		return SalesLog(v, opts)
	case []stockbook.SaleTx:
		return SalesHistory(v, opts)
	case []stockbook.PurchaseTx:
		return PurchaseHistory(v, opts)
	default:
		return fmt.Sprintf("%v", result)
	}
}

// Error renders an error returned by the inventory as a one line message.
func Error(err error) string {
	var se *stockbook.StockError
	var fe *stockbook.FieldError
	switch {
	case errors.As(err, &se):
		return fmt.Sprintf("Error: not enough %s in stock: %v requested, %v available", se.Product, se.Requested, se.Available)
	case errors.Is(err, stockbook.ErrProductNotFound) && errors.As(err, &fe):
		return fmt.Sprintf("Error: unavailable product %q", fe.Value)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
