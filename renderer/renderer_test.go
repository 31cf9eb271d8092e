package renderer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/etnz/stockbook"
)

func TestPurchase(t *testing.T) {
	testCases := []struct {
		name    string
		receipt stockbook.PurchaseReceipt
		opts    Options
		want    string
	}{
		{
			name: "new product",
			receipt: stockbook.PurchaseReceipt{
				Tx:        stockbook.PurchaseTx{Product: "Potato", Quantity: 100, PurchasePrice: stockbook.M(15)},
				TotalCost: stockbook.M(1500),
			},
			want: "Product added: PurchaseTx{Product: \"Potato\", Quantity: 100, PurchasePrice: 15}; Total cost: 1500\n",
		},
		{
			name: "restock in dollars",
			receipt: stockbook.PurchaseReceipt{
				Tx:        stockbook.PurchaseTx{Product: "Potato", Quantity: 50, PurchasePrice: stockbook.M(18)},
				TotalCost: stockbook.M(900),
				Restocked: true,
			},
			opts: Options{Currency: "USD"},
			want: "Product restocked: PurchaseTx{Product: \"Potato\", Quantity: 50, PurchasePrice: 18}; Total cost: $900.00\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Purchase(tc.receipt, tc.opts); got != tc.want {
				t.Errorf("Purchase() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSale(t *testing.T) {
	r := stockbook.SaleReceipt{
		Tx:     stockbook.SaleTx{Product: "Potato", Quantity: 2, SalePrice: stockbook.M(15)},
		Before: stockbook.Product{Name: "Potato", Quantity: 100},
		After:  stockbook.Product{Name: "Potato", Quantity: 98},
	}
	want := "Product sold: SaleTx{Product: \"Potato\", Quantity: 2, SalePrice: 15}; Total: 30; Stock: 100 -> 98\n"
	if got := Sale(r, Options{}); got != want {
		t.Errorf("Sale() = %q, want %q", got, want)
	}
}

// containsAll reports every want missing from got.
func containsAll(t *testing.T, name, got string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("%s does not contain %q:\n%s", name, want, got)
		}
	}
}

func TestSalesHistory(t *testing.T) {
	sales := []stockbook.SaleTx{
		{Product: "Potato", Quantity: 2, SalePrice: stockbook.M(15)},
		{Product: "Carrot", Quantity: 1, SalePrice: stockbook.M(0.5)},
	}
	got := SalesHistory(sales, Options{})
	containsAll(t, "SalesHistory()", got, "# Sales History", "Sale Price", "Potato", "Carrot", "0.5")
	if strings.Index(got, "Potato") > strings.Index(got, "Carrot") {
		t.Errorf("SalesHistory() is not in chronological order:\n%s", got)
	}

	if got := SalesHistory(nil, Options{}); got != "# Sales History\nNo sales.\n" {
		t.Errorf("SalesHistory(nil) = %q", got)
	}
}

func TestSalesSummary(t *testing.T) {
	profit := stockbook.M(9)
	s := stockbook.SalesSummary{
		Method: stockbook.AverageCost,
		Lines: []stockbook.SalesSummaryLine{
			{Product: "Potato", Quantity: 3, Revenue: stockbook.M(45), Profit: &profit},
			{Product: "Carrot", Quantity: 4, Revenue: stockbook.M(8)},
		},
		Profit: stockbook.M(9),
	}
	got := SalesSummary(s, Options{})
	containsAll(t, "SalesSummary()", got, "# Sales Report", "Revenue", "Potato", "45", "n/a")
	if want := "Total profit (average cost): 9\n"; !strings.HasSuffix(got, want) {
		t.Errorf("SalesSummary() does not end with %q:\n%s", want, got)
	}
}

func TestSnapshot(t *testing.T) {
	s := stockbook.ProductSnapshot{
		Name:        "Potato",
		Description: "Made in Ukraine",
		Quantity:    98,
		SalePrice:   stockbook.M(15),
		Lots:        []stockbook.Lot{{Quantity: 100, UnitCost: stockbook.M(12)}},
	}
	got := Snapshot(s, Options{})
	containsAll(t, "Snapshot()", got, "## Potato", "Made in Ukraine", "Quantity: 98", "Sale price: 15", "Unit Cost", "1200")
}

func TestEdited(t *testing.T) {
	before := stockbook.Product{Name: "Potato", Description: "old", SalePrice: stockbook.M(15)}
	after := stockbook.Product{Name: "Potato", Description: "new", SalePrice: stockbook.M(15)}

	want := "Product Potato updated: description \"old\" -> \"new\"\n"
	if got := Edited(stockbook.EditReceipt{Before: before, After: after}, Options{}); got != want {
		t.Errorf("Edited() = %q, want %q", got, want)
	}
	if got := Edited(stockbook.EditReceipt{Before: before, After: before}, Options{}); got != "Product Potato unchanged\n" {
		t.Errorf("Edited() without change = %q", got)
	}
}

func TestError(t *testing.T) {
	inv := stockbook.New()
	inv.Purchase(stockbook.Purchase{Name: "Potato", Quantity: 10, SalePrice: stockbook.M(2), PurchasePrice: stockbook.M(1)})

	_, oversell := inv.Sell(stockbook.Sell{Name: "Potato", Quantity: 11})
	_, missing := inv.Sell(stockbook.Sell{Name: "Carrot", Quantity: 1})
	_, zero := inv.Sell(stockbook.Sell{Name: "Potato", Quantity: 0})

	testCases := []struct {
		name string
		err  error
		want string
	}{
		{"insufficient stock", oversell, "Error: not enough Potato in stock: 11 requested, 10 available"},
		{"not found", missing, `Error: unavailable product "Carrot"`},
		{"invalid quantity", zero, "Error: invalid quantity: 0"},
		{"other", fmt.Errorf("boom"), "Error: boom"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Error(tc.err); got != tc.want {
				t.Errorf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResult(t *testing.T) {
	inv := stockbook.New()
	commands := []stockbook.Command{
		stockbook.Purchase{Name: "Potato", Quantity: 10, SalePrice: stockbook.M(2), PurchasePrice: stockbook.M(1)},
		stockbook.Sell{Name: "Potato", Quantity: 1},
		stockbook.Get{Name: "Potato"},
		stockbook.Edit{Name: "Potato"},
		stockbook.ReportProduct{Name: "Potato"},
		stockbook.ReportProducts{},
		stockbook.ReportProfit{Name: "Potato"},
		stockbook.ReportSales{},
		stockbook.ReportPurchases{},
		stockbook.ReportLog{},
		stockbook.SalesHistory{},
		stockbook.PurchaseHistory{},
		stockbook.Delete{Name: "Potato"},
	}
	for _, cmd := range commands {
		t.Run(string(cmd.What()), func(t *testing.T) {
			result, err := inv.Execute(cmd)
			if err != nil {
				t.Fatalf("Execute() unexpected error: %v", err)
			}
			got := Result(result, Options{})
			if got == "" || strings.HasPrefix(got, "{") {
				t.Errorf("Result(%T) has no dedicated rendering: %q", result, got)
			}
		})
	}
}
