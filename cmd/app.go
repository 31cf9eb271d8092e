// Package cmd implements the CLI application to manage the inventory.
package cmd

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/stockbook"
	"github.com/etnz/stockbook/auth"
	"github.com/etnz/stockbook/renderer"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&shellCmd{}, "inventory")
	c.Register(&runCmd{}, "inventory")
	c.Register(&topicCmd{}, "documentation")
}

// sessionFlags are the flags shared by the commands that open a session.
// They override the configuration.
type sessionFlags struct {
	plain    bool
	method   string
	currency string
	dotenv   string
}

func (s *sessionFlags) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&s.plain, "plain", false, "Print raw markdown instead of styling it for the terminal.")
	f.StringVar(&s.method, "method", "", "The cost basis method (average, fifo) used for profits. Overrides STOCKBOOK_COST_METHOD.")
	f.StringVar(&s.currency, "currency", "", "ISO 4217 currency to display amounts in. Overrides STOCKBOOK_CURRENCY.")
	f.StringVar(&s.dotenv, "env", ".env", "Dotenv file to read the configuration from, if it exists.")
}

// config loads the configuration and applies the flags on top of it.
func (s *sessionFlags) config() (*Config, error) {
	cfg, err := LoadConfig(s.dotenv)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if s.method != "" {
		m, err := stockbook.ParseCostBasisMethod(s.method)
		if err != nil {
			return nil, err
		}
		cfg.CostMethod = m
	}
	if s.currency != "" {
		if err := stockbook.ValidateCurrency(s.currency); err != nil {
			return nil, err
		}
		cfg.Currency = s.currency
	}
	cfg.Plain = cfg.Plain || s.plain
	return cfg, nil
}

// newGate creates the password gate described by cfg.
func newGate(cfg *Config) (*auth.Gate, error) {
	if cfg.PasswordHash != "" {
		return auth.NewGateFromHash(cfg.PasswordHash)
	}
	return auth.NewGate(cfg.Password)
}

// NewSession creates a session over a new inventory configured by cfg.
func NewSession(cfg *Config, out, errOut io.Writer) *Session {
	logger := NewLogger(cfg, errOut)
	inv := stockbook.New(
		stockbook.WithLogger(logger),
		stockbook.WithMetrics(stockbook.NewMetrics()),
		stockbook.WithCostBasisMethod(cfg.CostMethod),
	)
	return &Session{
		Inventory: inv,
		Options:   renderer.Options{Currency: cfg.Currency},
		Printer:   &Printer{W: out, Plain: cfg.Plain},
		Errors:    errOut,
		Logger:    logger,
	}
}

// login prompts for the password on stdin. in must be the reader the session
// reads from afterwards.
func login(cfg *Config, in *bufio.Reader) (auth.Token, subcommands.ExitStatus, bool) {
	gate, err := newGate(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return auth.Token{}, subcommands.ExitFailure, false
	}
	read := auth.Lines(in)
	if fd := int(os.Stdin.Fd()); auth.IsTerminal(fd) {
		read = auth.Hidden(fd, os.Stdout)
	}
	token, err := gate.Prompt(read, os.Stdout)
	if errors.Is(err, auth.ErrAborted) {
		return auth.Token{}, subcommands.ExitSuccess, false
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return auth.Token{}, subcommands.ExitFailure, false
	}
	return token, subcommands.ExitSuccess, true
}
