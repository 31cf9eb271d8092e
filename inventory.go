package stockbook

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

// PurchaseReceipt confirms a purchase.
type PurchaseReceipt struct {
	Tx        PurchaseTx `json:"tx"`
	Product   Product    `json:"product"` // Product is the product after the purchase.
	TotalCost Money      `json:"totalCost"`
	Restocked bool       `json:"restocked"` // Restocked is false when the purchase created the product.
}

// SaleReceipt confirms a sale, with the product before and after it.
type SaleReceipt struct {
	Tx     SaleTx  `json:"tx"`
	Before Product `json:"before"`
	After  Product `json:"after"`
}

// EditReceipt confirms an edit.
type EditReceipt struct {
	Before Product `json:"before"`
	After  Product `json:"after"`
}

// DeleteReceipt confirms a deletion. Product is the removed product.
type DeleteReceipt struct {
	Product Product `json:"product"`
}

// ProfitReport is the profit made on one product.
type ProfitReport struct {
	Product string          `json:"product"`
	Method  CostBasisMethod `json:"method"`
	Profit  Money           `json:"profit"`
}

// State is a JSON friendly dump of the whole inventory.
type State struct {
	Method    CostBasisMethod `json:"method"`
	Products  []Product       `json:"products"`
	Purchases []PurchaseTx    `json:"purchases"`
	Sales     []SaleTx        `json:"sales"`
}

// Inventory is the single entry point to the catalog and the ledger.
//
// Every operation is atomic: the request is fully validated before anything
// is mutated, and on error nothing has changed. An Inventory is not safe for
// concurrent use.
type Inventory struct {
	catalog    *Catalog
	ledger     *Ledger
	accounting *AccountingSystem
	validate   *validator.Validate
	logger     *slog.Logger
	metrics    *Metrics
}

// Option configures an Inventory.
type Option func(*Inventory)

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(inv *Inventory) { inv.logger = logger }
}

// WithMetrics sets the metrics the inventory reports to.
func WithMetrics(m *Metrics) Option {
	return func(inv *Inventory) { inv.metrics = m }
}

// WithCostBasisMethod sets the method used to compute profits.
func WithCostBasisMethod(method CostBasisMethod) Option {
	return func(inv *Inventory) { inv.accounting.Method = method }
}

// New creates an empty inventory.
func New(opts ...Option) *Inventory {
	catalog, ledger := NewCatalog(), NewLedger()
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterCustomTypeFunc(moneyValue, Money{})

	inv := &Inventory{
		catalog:    catalog,
		ledger:     ledger,
		accounting: NewAccountingSystem(catalog, ledger, AverageCost),
		validate:   validate,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Method returns the cost basis method in use.
func (inv *Inventory) Method() CostBasisMethod { return inv.accounting.Method }

// Metrics returns the metrics the inventory reports to, possibly nil.
func (inv *Inventory) Metrics() *Metrics { return inv.metrics }

// check validates a request against its struct tags and converts the first
// failure into a *FieldError.
func (inv *Inventory) check(req any) error {
	err := inv.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("cannot validate %T: %w", req, err)
	}
	fe := verrs[0]
	switch fe.StructField() {
	case "Name":
		return &FieldError{Field: "name", Value: fe.Value(), Err: ErrInvalidName}
	case "Quantity":
		return &FieldError{Field: "quantity", Value: fe.Value(), Err: ErrInvalidQuantity}
	case "SalePrice":
		return &FieldError{Field: "sale_price", Value: fe.Value(), Err: ErrInvalidPrice}
	case "PurchasePrice":
		return &FieldError{Field: "purchase_price", Value: fe.Value(), Err: ErrInvalidPrice}
	default:
		return &FieldError{Field: fe.Field(), Value: fe.Value(), Err: err}
	}
}

// done records the outcome of an operation and passes err through.
func (inv *Inventory) done(op CommandType, err error, attrs ...any) error {
	inv.metrics.observe(op, err)
	if err != nil {
		inv.logger.Info("operation rejected", append([]any{"op", op, "error", err}, attrs...)...)
	}
	return err
}

// Purchase buys units of a product, creating it on first purchase or adding a
// lot to it otherwise.
func (inv *Inventory) Purchase(req Purchase) (PurchaseReceipt, error) {
	if err := inv.check(req); err != nil {
		return PurchaseReceipt{}, inv.done(CmdPurchase, err, "product", req.Name)
	}
	p, restocked, err := inv.catalog.AddOrRestock(req.Name, req.Description, req.Quantity, req.SalePrice, req.PurchasePrice)
	if err != nil {
		return PurchaseReceipt{}, inv.done(CmdPurchase, err, "product", req.Name)
	}
	tx := PurchaseTx{
		Product:       p.Name,
		ProductID:     p.ID,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
	}
	inv.ledger.RecordPurchase(tx)
	inv.metrics.setStock(p)
	inv.logger.Debug("purchase recorded", "product", p.Name, "quantity", tx.Quantity, "price", tx.PurchasePrice, "restocked", restocked)
	return PurchaseReceipt{Tx: tx, Product: p, TotalCost: PurchaseTotal(tx), Restocked: restocked}, inv.done(CmdPurchase, nil)
}

// Sell sells units of a product at its current sale price.
func (inv *Inventory) Sell(req Sell) (SaleReceipt, error) {
	if err := inv.check(req); err != nil {
		return SaleReceipt{}, inv.done(CmdSell, err, "product", req.Name)
	}
	before, err := inv.catalog.Get(req.Name)
	if err != nil {
		return SaleReceipt{}, inv.done(CmdSell, err, "product", req.Name)
	}
	if _, err := inv.catalog.ConsumeStock(req.Name, req.Quantity); err != nil {
		return SaleReceipt{}, inv.done(CmdSell, err, "product", req.Name)
	}
	after, err := inv.catalog.Get(req.Name)
	if err != nil {
		return SaleReceipt{}, inv.done(CmdSell, fmt.Errorf("product %q vanished during sale: %w", req.Name, ErrCorruptedState))
	}
	tx := SaleTx{
		Product:   before.Name,
		ProductID: before.ID,
		Quantity:  req.Quantity,
		SalePrice: before.SalePrice,
	}
	inv.ledger.RecordSale(tx)
	inv.metrics.setStock(after)
	inv.logger.Debug("sale recorded", "product", tx.Product, "quantity", tx.Quantity, "price", tx.SalePrice, "stock", after.Quantity)
	return SaleReceipt{Tx: tx, Before: before, After: after}, inv.done(CmdSell, nil)
}

// GetProduct returns the named product.
func (inv *Inventory) GetProduct(name string) (Product, error) {
	if err := inv.check(Get{Name: name}); err != nil {
		return Product{}, inv.done(CmdGet, err)
	}
	p, err := inv.catalog.Get(name)
	return p, inv.done(CmdGet, err, "product", name)
}

// EditProduct changes the description and/or the sale price of a product.
func (inv *Inventory) EditProduct(req Edit) (EditReceipt, error) {
	if err := inv.check(req); err != nil {
		return EditReceipt{}, inv.done(CmdEdit, err, "product", req.Name)
	}
	before, err := inv.catalog.Get(req.Name)
	if err != nil {
		return EditReceipt{}, inv.done(CmdEdit, err, "product", req.Name)
	}
	after, err := inv.catalog.Edit(req.Name, ProductEdit{Description: req.Description, SalePrice: req.SalePrice})
	if err != nil {
		return EditReceipt{}, inv.done(CmdEdit, err, "product", req.Name)
	}
	inv.logger.Debug("product edited", "product", after.Name, "description", after.Description, "sale_price", after.SalePrice)
	return EditReceipt{Before: before, After: after}, inv.done(CmdEdit, nil)
}

// DeleteProduct removes a product from the catalog. Its history stays in the
// ledger.
func (inv *Inventory) DeleteProduct(name string) (DeleteReceipt, error) {
	if err := inv.check(Delete{Name: name}); err != nil {
		return DeleteReceipt{}, inv.done(CmdDelete, err)
	}
	p, err := inv.catalog.Get(name)
	if err != nil {
		return DeleteReceipt{}, inv.done(CmdDelete, err, "product", name)
	}
	if err := inv.catalog.Delete(name); err != nil {
		return DeleteReceipt{}, inv.done(CmdDelete, err, "product", name)
	}
	inv.metrics.dropStock(name)
	inv.logger.Debug("product deleted", "product", name, "id", p.ID)
	return DeleteReceipt{Product: p}, inv.done(CmdDelete, nil)
}

// ReportProduct returns the snapshot of the named product.
func (inv *Inventory) ReportProduct(name string) (ProductSnapshot, error) {
	if err := inv.check(ReportProduct{Name: name}); err != nil {
		return ProductSnapshot{}, inv.done(CmdReportProduct, err)
	}
	p, err := inv.catalog.Get(name)
	if err != nil {
		return ProductSnapshot{}, inv.done(CmdReportProduct, err, "product", name)
	}
	return ProductReport(p), inv.done(CmdReportProduct, nil)
}

// ReportProducts returns the snapshot of every product.
func (inv *Inventory) ReportProducts() []ProductSnapshot {
	inv.done(CmdReportProducts, nil)
	return inv.accounting.ProductsReport()
}

// ReportProfit returns the profit made on the named product, using the
// configured cost basis method.
func (inv *Inventory) ReportProfit(name string) (Money, error) {
	if err := inv.check(ReportProfit{Name: name}); err != nil {
		return Money{}, inv.done(CmdReportProfit, err)
	}
	profit, err := inv.accounting.Profit(name)
	return profit, inv.done(CmdReportProfit, err, "product", name)
}

// ReportSalesHistory returns all sales in chronological order.
func (inv *Inventory) ReportSalesHistory() []SaleTx {
	inv.done(CmdSalesHistory, nil)
	return inv.accounting.SalesHistory()
}

// ReportPurchaseHistory returns all purchases in chronological order.
func (inv *Inventory) ReportPurchaseHistory() []PurchaseTx {
	inv.done(CmdPurchaseHistory, nil)
	return inv.accounting.PurchaseHistory()
}

// ReportSalesSummary aggregates sales per product.
func (inv *Inventory) ReportSalesSummary() SalesSummary {
	inv.done(CmdReportSales, nil)
	return inv.accounting.SalesSummary()
}

// ReportPurchaseSummary aggregates purchases per product.
func (inv *Inventory) ReportPurchaseSummary() []PurchaseSummaryLine {
	inv.done(CmdReportPurchases, nil)
	return inv.accounting.PurchaseSummary()
}

// ReportSalesLog lists every sale with its profit.
func (inv *Inventory) ReportSalesLog() []SaleProfit {
	inv.done(CmdReportLog, nil)
	return inv.accounting.SalesLog()
}

// State returns a copy of the whole inventory.
func (inv *Inventory) State() State {
	products := make([]Product, 0, inv.catalog.Len())
	for p := range inv.catalog.All() {
		products = append(products, p)
	}
	return State{
		Method:    inv.accounting.Method,
		Products:  products,
		Purchases: inv.ledger.AllPurchases(),
		Sales:     inv.ledger.AllSales(),
	}
}

// Execute runs a command and returns its result:
//
//	Purchase        PurchaseReceipt
//	Sell            SaleReceipt
//	Get             Product
//	Edit            EditReceipt
//	Delete          DeleteReceipt
//	ReportProduct   ProductSnapshot
//	ReportProducts  []ProductSnapshot
//	ReportProfit    ProfitReport
//	ReportSales     SalesSummary
//	ReportPurchases []PurchaseSummaryLine
//	ReportLog       []SaleProfit
//	SalesHistory    []SaleTx
//	PurchaseHistory []PurchaseTx
func (inv *Inventory) Execute(cmd Command) (any, error) {
	switch c := cmd.(type) {
	case Purchase:
		return inv.Purchase(c)
	case Sell:
		return inv.Sell(c)
	case Get:
		return inv.GetProduct(c.Name)
	case Edit:
		return inv.EditProduct(c)
	case Delete:
		return inv.DeleteProduct(c.Name)
	case ReportProduct:
		return inv.ReportProduct(c.Name)
	case ReportProducts:
		return inv.ReportProducts(), nil
	case ReportProfit:
		profit, err := inv.ReportProfit(c.Name)
		if err != nil {
			return nil, err
		}
		return ProfitReport{Product: c.Name, Method: inv.accounting.Method, Profit: profit}, nil
	case ReportSales:
		return inv.ReportSalesSummary(), nil
	case ReportPurchases:
		return inv.ReportPurchaseSummary(), nil
	case ReportLog:
		return inv.ReportSalesLog(), nil
	case SalesHistory:
		return inv.ReportSalesHistory(), nil
	case PurchaseHistory:
		return inv.ReportPurchaseHistory(), nil
	default:
		return nil, fmt.Errorf("unsupported command %T", cmd)
	}
}
