package stockbook

import (
	"cmp"
	"errors"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts the inventory operations and tracks the stock on hand.
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	stock      *prometheus.GaugeVec
}

// OperationCount is the number of times an operation ended with an outcome.
type OperationCount struct {
	Operation string `json:"operation"`
	Outcome   string `json:"outcome"`
	Count     uint64 `json:"count"`
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stockbook",
			Name:      "operations_total",
			Help:      "Number of inventory operations, by operation and outcome.",
		}, []string{"operation", "outcome"}),
		stock: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "stockbook",
			Name:      "stock_units",
			Help:      "Units on hand, by product.",
		}, []string{"product"}),
	}
	m.registry.MustRegister(m.operations, m.stock)
	return m
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// observe counts one operation. The outcome is "ok" or the error kind.
func (m *Metrics) observe(op CommandType, err error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(string(op), outcome(err)).Inc()
}

func (m *Metrics) setStock(p Product) {
	if m == nil {
		return
	}
	m.stock.WithLabelValues(p.Name).Set(float64(p.Quantity))
}

func (m *Metrics) dropStock(name string) {
	if m == nil {
		return
	}
	m.stock.DeleteLabelValues(name)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrProductNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidName):
		return "invalid_name"
	case errors.Is(err, ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, ErrInvalidPrice):
		return "invalid_price"
	case errors.Is(err, ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, ErrCorruptedState):
		return "corrupted_state"
	default:
		return "error"
	}
}

// Counts returns the operation counters, sorted by operation then outcome.
func (m *Metrics) Counts() ([]OperationCount, error) {
	if m == nil {
		return nil, nil
	}
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}
	var counts []OperationCount
	for _, family := range families {
		if family.GetName() != "stockbook_operations_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			c := OperationCount{Count: uint64(metric.GetCounter().GetValue())}
			for _, label := range metric.GetLabel() {
				switch label.GetName() {
				case "operation":
					c.Operation = label.GetValue()
				case "outcome":
					c.Outcome = label.GetValue()
				}
			}
			counts = append(counts, c)
		}
	}
	slices.SortFunc(counts, func(a, b OperationCount) int {
		return cmp.Or(cmp.Compare(a.Operation, b.Operation), cmp.Compare(a.Outcome, b.Outcome))
	})
	return counts, nil
}
