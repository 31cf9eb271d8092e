package stockbook

import (
	"slices"
)

// ProductSnapshot is a point-in-time view of a product, as shown in reports.
type ProductSnapshot struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Quantity    Quantity `json:"quantity"`
	SalePrice   Money    `json:"salePrice"`
	Lots        []Lot    `json:"lots"`
}

// SalesSummaryLine aggregates the sales of one product name.
type SalesSummaryLine struct {
	Product  string   `json:"product"`
	Quantity Quantity `json:"quantity"`
	Revenue  Money    `json:"revenue"`
	// Profit is nil when the product is no longer in the catalog: its cost
	// basis cannot be resolved.
	Profit *Money `json:"profit"`
}

// SalesSummary is the per-product sales report.
type SalesSummary struct {
	Method CostBasisMethod    `json:"method"`
	Lines  []SalesSummaryLine `json:"lines"`
	Profit Money              `json:"profit"` // Profit is the sum of the resolvable line profits.
}

// PurchaseSummaryLine aggregates the lots of one product.
type PurchaseSummaryLine struct {
	Product  string   `json:"product"`
	Quantity Quantity `json:"quantity"`
	Cost     Money    `json:"cost"`
}

// SaleProfit is one sale of the sales log, with its profit contribution.
type SaleProfit struct {
	Tx     SaleTx `json:"tx"`
	Profit *Money `json:"profit"` // nil when unresolvable.
}

// AccountingSystem is a stateless engine that derives totals, cost bases and
// profits from a catalog and a ledger. It never mutates them.
type AccountingSystem struct {
	Catalog *Catalog
	Ledger  *Ledger
	Method  CostBasisMethod
}

// NewAccountingSystem creates an accounting system over a catalog and a ledger.
func NewAccountingSystem(catalog *Catalog, ledger *Ledger, method CostBasisMethod) *AccountingSystem {
	return &AccountingSystem{Catalog: catalog, Ledger: ledger, Method: method}
}

// PurchaseTotal is the total cost of a purchase.
func PurchaseTotal(tx PurchaseTx) Money { return tx.Total() }

// SaleTotal is the revenue of a sale.
func SaleTotal(tx SaleTx) Money { return tx.Total() }

// ProductReport returns the snapshot view of a product.
func ProductReport(p Product) ProductSnapshot {
	return ProductSnapshot{
		Name:        p.Name,
		Description: p.Description,
		Quantity:    p.Quantity,
		SalePrice:   p.SalePrice,
		Lots:        slices.Clone(p.Lots),
	}
}

// ProductsReport returns a snapshot of every product, in creation order.
func (as *AccountingSystem) ProductsReport() []ProductSnapshot {
	out := make([]ProductSnapshot, 0, as.Catalog.Len())
	for p := range as.Catalog.All() {
		out = append(out, ProductReport(p))
	}
	return out
}

// Profit computes the profit made on all the sales of the named product.
//
// Only the current product counts: sales of an earlier product with the same
// name, deleted since, are not attributed to its lots. A product that is not
// in the catalog has no resolvable cost basis and yields ErrProductNotFound.
func (as *AccountingSystem) Profit(name string) (Money, error) {
	p, err := as.Catalog.Get(name)
	if err != nil {
		return Money{}, err
	}
	var total Money
	for _, sp := range as.saleProfits(p) {
		total = total.Add(sp)
	}
	return total, nil
}

// saleProfits returns the profit of each sale of the product, in order.
func (as *AccountingSystem) saleProfits(p Product) []Money {
	sales := as.Ledger.SalesOf(p.ID)
	profits := make([]Money, 0, len(sales))
	switch as.Method {
	case FIFO:
		var consumed Quantity
		for _, tx := range sales {
			cost := lots(p.Lots).fifoCostOfSelling(consumed, tx.Quantity)
			consumed = consumed.Add(tx.Quantity)
			profits = append(profits, tx.Total().Sub(cost))
		}
	default:
		for _, tx := range sales {
			profits = append(profits, tx.Total().Sub(lots(p.Lots).averageCostOfSelling(tx.Quantity)))
		}
	}
	return profits
}

// SalesHistory returns all sales in chronological order.
func (as *AccountingSystem) SalesHistory() []SaleTx { return as.Ledger.AllSales() }

// PurchaseHistory returns all purchases in chronological order.
func (as *AccountingSystem) PurchaseHistory() []PurchaseTx { return as.Ledger.AllPurchases() }

// SalesLog returns every sale with its own profit contribution.
func (as *AccountingSystem) SalesLog() []SaleProfit {
	// Profits are computed per product generation, then matched back to the
	// ledger order.
	byID := make(map[string][]Money)
	for p := range as.Catalog.All() {
		byID[p.ID.String()] = as.saleProfits(p)
	}
	next := make(map[string]int)

	out := make([]SaleProfit, 0)
	for _, tx := range as.Ledger.Sales() {
		line := SaleProfit{Tx: tx}
		id := tx.ProductID.String()
		if profits, ok := byID[id]; ok && next[id] < len(profits) {
			profit := profits[next[id]]
			line.Profit = &profit
			next[id]++
		}
		out = append(out, line)
	}
	return out
}

// SalesSummary aggregates sales per product name, in order of first sale.
func (as *AccountingSystem) SalesSummary() SalesSummary {
	summary := SalesSummary{Method: as.Method, Lines: make([]SalesSummaryLine, 0)}
	index := make(map[string]int)
	for _, sp := range as.SalesLog() {
		i, ok := index[sp.Tx.Product]
		if !ok {
			i = len(summary.Lines)
			index[sp.Tx.Product] = i
			summary.Lines = append(summary.Lines, SalesSummaryLine{Product: sp.Tx.Product})
		}
		line := &summary.Lines[i]
		line.Quantity = line.Quantity.Add(sp.Tx.Quantity)
		line.Revenue = line.Revenue.Add(sp.Tx.Total())
		if sp.Profit != nil {
			if line.Profit == nil {
				line.Profit = new(Money)
			}
			*line.Profit = line.Profit.Add(*sp.Profit)
		}
	}
	for _, line := range summary.Lines {
		if line.Profit != nil {
			summary.Profit = summary.Profit.Add(*line.Profit)
		}
	}
	return summary
}

// PurchaseSummary aggregates the lots of every product in the catalog.
func (as *AccountingSystem) PurchaseSummary() []PurchaseSummaryLine {
	out := make([]PurchaseSummaryLine, 0, as.Catalog.Len())
	for p := range as.Catalog.All() {
		out = append(out, PurchaseSummaryLine{
			Product:  p.Name,
			Quantity: lots(p.Lots).quantity(),
			Cost:     lots(p.Lots).cost(),
		})
	}
	return out
}
