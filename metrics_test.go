package stockbook

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Observe(t *testing.T) {
	m := NewMetrics()
	inv := New(WithMetrics(m))

	inv.Purchase(Purchase{Name: "Potato", Quantity: 10, SalePrice: M(2), PurchasePrice: M(1)})
	inv.Purchase(Purchase{Name: "Potato", Quantity: 5, PurchasePrice: M(1)})
	inv.Sell(Sell{Name: "Potato", Quantity: 3})
	inv.Sell(Sell{Name: "Carrot", Quantity: 1})

	testCases := []struct {
		op, outcome string
		want        float64
	}{
		{"purchase", "ok", 2},
		{"sell", "ok", 1},
		{"sell", "not_found", 1},
		{"sell", "insufficient_stock", 0},
	}
	for _, tc := range testCases {
		t.Run(tc.op+"/"+tc.outcome, func(t *testing.T) {
			got := testutil.ToFloat64(m.operations.WithLabelValues(tc.op, tc.outcome))
			if got != tc.want {
				t.Errorf("operations_total{%s,%s} = %v, want %v", tc.op, tc.outcome, got, tc.want)
			}
		})
	}

	if got := testutil.ToFloat64(m.stock.WithLabelValues("Potato")); got != 12 {
		t.Errorf("stock_units{Potato} = %v, want 12", got)
	}

	inv.DeleteProduct("Potato")
	if n := testutil.CollectAndCount(m.stock); n != 0 {
		t.Errorf("stock gauges after delete = %d, want 0", n)
	}
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	m.observe(CmdSell, nil)
	m.setStock(Product{Name: "Potato"})
	m.dropStock("Potato")
	if counts, err := m.Counts(); counts != nil || err != nil {
		t.Errorf("Counts() on nil metrics = %v, %v, want nil, nil", counts, err)
	}
}

func TestOutcome(t *testing.T) {
	testCases := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{notFound("Potato"), "not_found"},
		{&StockError{Product: "Potato"}, "insufficient_stock"},
		{fmt.Errorf("wrapped: %w", ErrCorruptedState), "corrupted_state"},
		{&FieldError{Field: "quantity", Err: ErrInvalidQuantity}, "invalid_quantity"},
		{errors.New("boom"), "error"},
	}
	for _, tc := range testCases {
		if got := outcome(tc.err); got != tc.want {
			t.Errorf("outcome(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
