package stockbook

import (
	"fmt"

	"github.com/google/uuid"
)

// PurchaseTx records units of a product bought at a unit cost.
type PurchaseTx struct {
	Product       string    `json:"product"`       // Product is the product name.
	ProductID     uuid.UUID `json:"productId"`     // ProductID identifies the product generation the purchase belongs to.
	Quantity      Quantity  `json:"quantity"`      // Quantity is the number of units bought.
	PurchasePrice Money     `json:"purchasePrice"` // PurchasePrice is the unit cost.
}

// Total returns the total cost of the purchase.
func (t PurchaseTx) Total() Money { return t.PurchasePrice.Mul(t.Quantity) }

func (t PurchaseTx) String() string {
	return fmt.Sprintf("PurchaseTx{Product: %q, Quantity: %v, PurchasePrice: %v}", t.Product, t.Quantity, t.PurchasePrice)
}

// SaleTx records units of a product sold at the product's sale price.
type SaleTx struct {
	Product   string    `json:"product"`   // Product is the product name.
	ProductID uuid.UUID `json:"productId"` // ProductID identifies the product generation the sale belongs to.
	Quantity  Quantity  `json:"quantity"`  // Quantity is the number of units sold.
	SalePrice Money     `json:"salePrice"` // SalePrice is the unit price at the time of the sale.
}

// Total returns the revenue of the sale.
func (t SaleTx) Total() Money { return t.SalePrice.Mul(t.Quantity) }

func (t SaleTx) String() string {
	return fmt.Sprintf("SaleTx{Product: %q, Quantity: %v, SalePrice: %v}", t.Product, t.Quantity, t.SalePrice)
}
