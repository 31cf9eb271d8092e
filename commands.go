package stockbook

// CommandType is a typed string for identifying inventory commands.
type CommandType string

// Command types used for identifying commands.
const (
	CmdPurchase        CommandType = "purchase"
	CmdSell            CommandType = "sell"
	CmdGet             CommandType = "get"
	CmdEdit            CommandType = "edit"
	CmdDelete          CommandType = "delete"
	CmdReportProduct   CommandType = "report-product"
	CmdReportProducts  CommandType = "report-products"
	CmdReportProfit    CommandType = "report-profit"
	CmdReportSales     CommandType = "report-sales"
	CmdReportPurchases CommandType = "report-purchases"
	CmdReportLog       CommandType = "report-log"
	CmdSalesHistory    CommandType = "sales-history"
	CmdPurchaseHistory CommandType = "purchase-history"
)

// Command is one request to the inventory. The set of commands is closed:
// every implementation lives in this file and Inventory.Execute handles each
// of them.
type Command interface {
	What() CommandType
	command()
}

// Purchase buys units of a product, creating it if needed. Description and
// SalePrice are only used when the product is created.
type Purchase struct {
	Name          string   `validate:"required"`
	Description   string
	Quantity      Quantity `validate:"gt=0"`
	SalePrice     Money    `validate:"gte=0"`
	PurchasePrice Money    `validate:"gte=0"`
}

// Sell sells units of a product at its current sale price.
type Sell struct {
	Name     string   `validate:"required"`
	Quantity Quantity `validate:"gt=0"`
}

// Get shows a product.
type Get struct {
	Name string `validate:"required"`
}

// Edit changes a product's description and/or sale price.
type Edit struct {
	Name        string `validate:"required"`
	Description *string
	SalePrice   *Money `validate:"omitempty,gte=0"`
}

// Delete removes a product from the catalog.
type Delete struct {
	Name string `validate:"required"`
}

// ReportProduct shows the snapshot of one product.
type ReportProduct struct {
	Name string `validate:"required"`
}

// ReportProducts shows the snapshot of every product.
type ReportProducts struct{}

// ReportProfit computes the profit made on one product.
type ReportProfit struct {
	Name string `validate:"required"`
}

// ReportSales summarises sales per product.
type ReportSales struct{}

// ReportPurchases summarises purchases per product.
type ReportPurchases struct{}

// ReportLog lists every sale with its profit.
type ReportLog struct{}

// SalesHistory lists every sale.
type SalesHistory struct{}

// PurchaseHistory lists every purchase.
type PurchaseHistory struct{}

func (Purchase) What() CommandType        { return CmdPurchase }
func (Sell) What() CommandType            { return CmdSell }
func (Get) What() CommandType             { return CmdGet }
func (Edit) What() CommandType            { return CmdEdit }
func (Delete) What() CommandType          { return CmdDelete }
func (ReportProduct) What() CommandType   { return CmdReportProduct }
func (ReportProducts) What() CommandType  { return CmdReportProducts }
func (ReportProfit) What() CommandType    { return CmdReportProfit }
func (ReportSales) What() CommandType     { return CmdReportSales }
func (ReportPurchases) What() CommandType { return CmdReportPurchases }
func (ReportLog) What() CommandType       { return CmdReportLog }
func (SalesHistory) What() CommandType    { return CmdSalesHistory }
func (PurchaseHistory) What() CommandType { return CmdPurchaseHistory }

func (Purchase) command()        {}
func (Sell) command()            {}
func (Get) command()             {}
func (Edit) command()            {}
func (Delete) command()          {}
func (ReportProduct) command()   {}
func (ReportProducts) command()  {}
func (ReportProfit) command()    {}
func (ReportSales) command()     {}
func (ReportPurchases) command() {}
func (ReportLog) command()       {}
func (SalesHistory) command()    {}
func (PurchaseHistory) command() {}
