package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/etnz/stockbook"
	"github.com/etnz/stockbook/auth"
	"github.com/stretchr/testify/require"
)

// newTestSession returns a plain session writing both results and errors to out.
func newTestSession(t *testing.T, method stockbook.CostBasisMethod) (*Session, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	cfg := &Config{CostMethod: method, LogLevel: slog.LevelWarn, Plain: true}
	return NewSession(cfg, &out, &out), &out
}

// validToken logs in through a real gate.
func validToken(t *testing.T) auth.Token {
	t.Helper()
	gate, err := auth.NewGate("pass")
	require.NoError(t, err)
	token, err := gate.Verify("pass")
	require.NoError(t, err)
	return token
}

func TestSessionRun(t *testing.T) {
	s, out := newTestSession(t, stockbook.AverageCost)
	script := strings.Join([]string{
		`purchase -desc "Made in Ukraine" -sale 15 Potato 100 12`,
		"",
		"# sell a few",
		"sell Potato 2",
		"report profit Potato",
		"exit",
		"sell Potato 1",
	}, "\n")

	err := s.Run(context.Background(), validToken(t), strings.NewReader(script))
	require.NoError(t, err)
	require.Equal(t, 0, s.Failures)

	want := strings.Join([]string{
		`Product added: PurchaseTx{Product: "Potato", Quantity: 100, PurchasePrice: 12}; Total cost: 1200`,
		`Product sold: SaleTx{Product: "Potato", Quantity: 2, SalePrice: 15}; Total: 30; Stock: 100 -> 98`,
		`Profit on Potato (average cost): 6`,
		"",
	}, "\n")
	require.Equal(t, want, out.String())

	p, err := s.Inventory.GetProduct("Potato")
	require.NoError(t, err)
	require.Equal(t, stockbook.Quantity(98), p.Quantity, "lines after exit must not run")
}

func TestSessionRunUnauthorized(t *testing.T) {
	s, out := newTestSession(t, stockbook.AverageCost)

	err := s.Run(context.Background(), auth.Token{}, strings.NewReader("purchase Potato 1 1\n"))
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Empty(t, out.String())
	require.Empty(t, s.Inventory.State().Products)
}

func TestSessionRunCanceled(t *testing.T) {
	s, _ := newTestSession(t, stockbook.AverageCost)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx, validToken(t), strings.NewReader("purchase Potato 1 1\n"))
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, s.Inventory.State().Products)
}

func TestSessionFailures(t *testing.T) {
	script := "sell Carrot 1\npurchase Potato 10 1\n"

	t.Run("keep going", func(t *testing.T) {
		s, out := newTestSession(t, stockbook.AverageCost)
		require.NoError(t, s.Run(context.Background(), validToken(t), strings.NewReader(script)))
		require.Equal(t, 1, s.Failures)
		require.Contains(t, out.String(), `Error: unavailable product "Carrot"`)
		require.Len(t, s.Inventory.State().Products, 1)
	})

	t.Run("stop on failure", func(t *testing.T) {
		s, _ := newTestSession(t, stockbook.AverageCost)
		s.StopOnFailure = true
		require.NoError(t, s.Run(context.Background(), validToken(t), strings.NewReader(script)))
		require.Equal(t, 1, s.Failures)
		require.Empty(t, s.Inventory.State().Products)
	})
}

func TestSessionEchoAndPrompt(t *testing.T) {
	s, out := newTestSession(t, stockbook.AverageCost)
	s.Echo = true
	s.Prompt = "stockbook> "

	require.NoError(t, s.Run(context.Background(), validToken(t), strings.NewReader("x\n")))
	require.Equal(t, "stockbook> > x\n", out.String())
}

func TestSessionControls(t *testing.T) {
	s, out := newTestSession(t, stockbook.FIFO)
	s.Exec("purchase -sale 3 Potato 10 1")
	s.Exec("sell Potato 4")

	t.Run("help", func(t *testing.T) {
		out.Reset()
		require.False(t, s.Exec("help"))
		require.Equal(t, Help, out.String())
	})

	t.Run("stats", func(t *testing.T) {
		out.Reset()
		require.False(t, s.Exec("stats"))
		require.Contains(t, out.String(), "# Statistics")
		require.Contains(t, out.String(), "purchase")
	})

	t.Run("query", func(t *testing.T) {
		out.Reset()
		require.False(t, s.Exec("query '$.products[*].quantity'"))
		require.Equal(t, "```json\n[\n  6\n]\n```\n", out.String())
	})

	t.Run("invalid query", func(t *testing.T) {
		out.Reset()
		failures := s.Failures
		require.False(t, s.Exec("query '$.products[?('"))
		require.Equal(t, failures+1, s.Failures)
		require.True(t, strings.HasPrefix(out.String(), "Error: "))
	})

	t.Run("exit", func(t *testing.T) {
		require.True(t, s.Exec("exit"))
	})
}

func TestQuery(t *testing.T) {
	inv := stockbook.New()
	_, err := inv.Purchase(stockbook.Purchase{Name: "Potato", Quantity: 10, SalePrice: stockbook.M(3), PurchasePrice: stockbook.M(1)})
	require.NoError(t, err)
	_, err = inv.Purchase(stockbook.Purchase{Name: "Carrot", Quantity: 5, SalePrice: stockbook.M(2), PurchasePrice: stockbook.M(1)})
	require.NoError(t, err)
	_, err = inv.Sell(stockbook.Sell{Name: "Potato", Quantity: 4})
	require.NoError(t, err)

	testCases := []struct {
		path string
		want string
	}{
		{"$.method", `"average"`},
		{"$.products[*].name", "[\n  \"Potato\",\n  \"Carrot\"\n]"},
		{"$.sales[0].quantity", "4"},
		{"$.purchases[?(@.product == 'Carrot')].quantity", "[\n  5\n]"},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			got, err := Query(inv.State(), tc.path)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, name := range []string{"shell", "run", "topic"} {
		require.Contains(t, c.Sub, name)
	}
	require.Contains(t, c.Sub["run"].Flags, "k")
	require.Contains(t, c.Sub["run"].Flags, "method")
	require.NotContains(t, c.Sub["shell"].Flags, "k")
}
