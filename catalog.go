package stockbook

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/google/uuid"
)

// Product is a stocked product.
//
// Quantity always equals the units purchased in Lots minus the units Sold.
// Only purchases and sales move Quantity, Lots and Sold; an edit can only
// change Description and SalePrice.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    Quantity  `json:"quantity"`
	SalePrice   Money     `json:"salePrice"`
	Lots        []Lot     `json:"lots"`
	Sold        Quantity  `json:"sold"`
}

// AverageCost returns the weighted average unit cost over all the product's lots.
func (p Product) AverageCost() Money { return lots(p.Lots).averageCost() }

// check verifies the stock invariant.
func (p *Product) check() error {
	purchased := lots(p.Lots).quantity()
	if p.Sold > purchased || purchased-p.Sold != p.Quantity {
		return fmt.Errorf("%w: product %q has %v in stock, but %v purchased and %v sold", ErrCorruptedState, p.Name, p.Quantity, purchased, p.Sold)
	}
	return nil
}

// clone returns a copy that shares no memory with p.
func (p *Product) clone() Product {
	c := *p
	c.Lots = slices.Clone(p.Lots)
	return c
}

// ProductEdit lists the product fields an edit may change. A nil field is
// left untouched.
type ProductEdit struct {
	Description *string
	SalePrice   *Money
}

// Catalog owns the set of products, indexed by their case-sensitive name.
type Catalog struct {
	products map[string]*Product
	names    []string // creation order
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{products: make(map[string]*Product)}
}

// AddOrRestock creates the product with a single lot, or, if it already
// exists, appends a new lot and increments its stock. A restock never changes
// the description or the sale price.
func (c *Catalog) AddOrRestock(name, description string, quantity Quantity, salePrice, purchasePrice Money) (p Product, restocked bool, err error) {
	if name == "" {
		return Product{}, false, &FieldError{Field: "name", Value: name, Err: ErrInvalidName}
	}
	if quantity.IsZero() {
		return Product{}, false, &FieldError{Field: "quantity", Value: quantity, Err: ErrInvalidQuantity}
	}
	if salePrice.IsNegative() {
		return Product{}, false, &FieldError{Field: "sale_price", Value: salePrice, Err: ErrInvalidPrice}
	}
	if purchasePrice.IsNegative() {
		return Product{}, false, &FieldError{Field: "purchase_price", Value: purchasePrice, Err: ErrInvalidPrice}
	}
	lot := Lot{Quantity: quantity, UnitCost: purchasePrice}

	if existing, ok := c.products[name]; ok {
		if err := existing.check(); err != nil {
			return Product{}, false, err
		}
		if lots(existing.Lots).quantity() > math.MaxUint64-quantity {
			return Product{}, false, &FieldError{Field: "quantity", Value: quantity, Err: ErrInvalidQuantity}
		}
		existing.Lots = append(existing.Lots, lot)
		existing.Quantity = existing.Quantity.Add(quantity)
		return existing.clone(), true, nil
	}

	created := &Product{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Quantity:    quantity,
		SalePrice:   salePrice,
		Lots:        []Lot{lot},
	}
	c.products[name] = created
	c.names = append(c.names, name)
	return created.clone(), false, nil
}

// Get returns a copy of the named product.
func (c *Catalog) Get(name string) (Product, error) {
	p, ok := c.products[name]
	if !ok {
		return Product{}, notFound(name)
	}
	return p.clone(), nil
}

// Edit changes the description and/or the sale price of a product.
func (c *Catalog) Edit(name string, edit ProductEdit) (Product, error) {
	p, ok := c.products[name]
	if !ok {
		return Product{}, notFound(name)
	}
	if edit.SalePrice != nil && edit.SalePrice.IsNegative() {
		return Product{}, &FieldError{Field: "sale_price", Value: *edit.SalePrice, Err: ErrInvalidPrice}
	}
	if err := p.check(); err != nil {
		return Product{}, err
	}
	if edit.Description != nil {
		p.Description = *edit.Description
	}
	if edit.SalePrice != nil {
		p.SalePrice = *edit.SalePrice
	}
	return p.clone(), nil
}

// Delete removes the product entirely. Its ledger history is not affected.
func (c *Catalog) Delete(name string) error {
	if _, ok := c.products[name]; !ok {
		return notFound(name)
	}
	delete(c.products, name)
	c.names = slices.DeleteFunc(c.names, func(n string) bool { return n == name })
	return nil
}

// ConsumeStock removes sold units from the stock on hand and returns the
// weighted average unit cost as an estimate of their cost. Lots are kept
// as they are.
func (c *Catalog) ConsumeStock(name string, quantity Quantity) (Money, error) {
	p, ok := c.products[name]
	if !ok {
		return Money{}, notFound(name)
	}
	if quantity.IsZero() {
		return Money{}, &FieldError{Field: "quantity", Value: quantity, Err: ErrInvalidQuantity}
	}
	if err := p.check(); err != nil {
		return Money{}, err
	}
	if quantity.GreaterThan(p.Quantity) {
		return Money{}, &StockError{Product: name, Requested: quantity, Available: p.Quantity}
	}
	p.Quantity = p.Quantity.Sub(quantity)
	p.Sold = p.Sold.Add(quantity)
	return p.AverageCost(), nil
}

// All iterates over a copy of each product, in creation order.
func (c *Catalog) All() iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for _, name := range c.names {
			if !yield(c.products[name].clone()) {
				return
			}
		}
	}
}

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.names) }

// Check verifies the stock invariant of every product.
func (c *Catalog) Check() error {
	for _, name := range c.names {
		if err := c.products[name].check(); err != nil {
			return err
		}
	}
	return nil
}
