package stockbook

import "fmt"

// Lot is one purchase's quantity and unit cost, retained for cost basis
// computation for as long as the product exists.
type Lot struct {
	Quantity Quantity `json:"quantity"`
	UnitCost Money    `json:"unitCost"`
}

// Cost is the total cost of the lot.
func (l Lot) Cost() Money { return l.UnitCost.Mul(l.Quantity) }

func (l Lot) String() string { return fmt.Sprintf("(%v, %v)", l.Quantity, l.UnitCost) }

type lots []Lot

// quantity returns the total number of units ever purchased in these lots.
func (l lots) quantity() Quantity {
	var total Quantity
	for _, lot := range l {
		total = total.Add(lot.Quantity)
	}
	return total
}

// cost returns the total cost of all lots.
func (l lots) cost() Money {
	var total Money
	for _, lot := range l {
		total = total.Add(lot.Cost())
	}
	return total
}

// averageCost returns the weighted average unit cost over all lots.
func (l lots) averageCost() Money {
	return l.cost().Div(l.quantity())
}

// averageCostOfSelling returns the cost of quantity units valued at the
// weighted average unit cost. It multiplies before dividing, so the result is
// exact whenever the cost is.
func (l lots) averageCostOfSelling(quantity Quantity) Money {
	return l.cost().Mul(quantity).Div(l.quantity())
}

// fifoCostOfSelling calculates the cost of selling quantityToSell units
// using FIFO, once the first 'consumed' units have already been sold.
// Units beyond the last lot have no known cost and contribute nothing.
func (l lots) fifoCostOfSelling(consumed, quantityToSell Quantity) Money {
	var costOfSoldUnits Money

	for _, currentLot := range l {
		if quantityToSell.IsZero() {
			break
		}
		available := currentLot.Quantity
		if consumed >= available {
			// This lot is exhausted by earlier sales.
			consumed = consumed.Sub(available)
			continue
		}
		available = available.Sub(consumed)
		consumed = 0

		taken := min(available, quantityToSell)
		costOfSoldUnits = costOfSoldUnits.Add(currentLot.UnitCost.Mul(taken))
		quantityToSell = quantityToSell.Sub(taken)
	}
	return costOfSoldUnits
}

// CostBasisMethod defines the method for calculating the cost of sold units.
type CostBasisMethod int

const (
	// AverageCost applies the weighted average unit cost of every lot ever
	// purchased to every sale.
	AverageCost CostBasisMethod = iota
	// FIFO (First-In, First-Out) consumes the lots in purchase order, sale after sale.
	FIFO
)

func (m CostBasisMethod) String() string {
	switch m {
	case AverageCost:
		return "average"
	case FIFO:
		return "fifo"
	default:
		return "unknown"
	}
}

// ParseCostBasisMethod parses a string into a CostBasisMethod.
func ParseCostBasisMethod(s string) (CostBasisMethod, error) {
	switch s {
	case "average", "":
		return AverageCost, nil
	case "fifo":
		return FIFO, nil
	default:
		return 0, fmt.Errorf("unknown cost basis method: %q", s)
	}
}

// UnmarshalText lets configuration loaders decode the method by name.
func (m *CostBasisMethod) UnmarshalText(text []byte) error {
	v, err := ParseCostBasisMethod(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m CostBasisMethod) MarshalText() ([]byte, error) { return []byte(m.String()), nil }
