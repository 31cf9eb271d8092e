package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/stockbook"
	"github.com/google/shlex"
)

// Control is a shell instruction that does not reach the inventory.
type Control string

const (
	CtrlHelp  Control = "help"
	CtrlStats Control = "stats"
	CtrlQuery Control = "query"
	CtrlExit  Control = "exit"
)

// Line is one parsed shell line: either an inventory command or a control
// instruction. An empty line has neither.
type Line struct {
	Command stockbook.Command
	Control Control
	Args    []string // Args are the control arguments.
}

// Empty reports whether the line has nothing to do.
func (l Line) Empty() bool { return l.Command == nil && l.Control == "" }

// ErrUsage reports a line that does not follow the command syntax.
var ErrUsage = errors.New("usage")

func usageError(usage string) error { return fmt.Errorf("%w: %s", ErrUsage, usage) }

const (
	usagePurchase = "purchase [-desc <text>] [-sale <price>] <name> <quantity> <purchase-price>"
	usageSell     = "sell <name> <quantity>"
	usageGet      = "get <name>"
	usageDelete   = "delete <name>"
	usageEdit     = "edit [-desc <text>] [-sale <price>] <name>"
	usageReport   = "report product <name> | products | profit <name> | sales | purchases | log"
	usageHistory  = "history sales | purchases"
	usageQuery    = "query <jsonpath>"
)

// moneyFlag is a flag.Value for prices.
type moneyFlag struct {
	value stockbook.Money
	set   bool
}

func (m *moneyFlag) String() string { return m.value.String() }

func (m *moneyFlag) Set(s string) error {
	v, err := stockbook.ParseMoney(s)
	if err != nil {
		return err
	}
	m.value, m.set = v, true
	return nil
}

// ParseLine parses one shell line. Words are split like a POSIX shell does,
// so names and descriptions with spaces can be quoted. Everything after a
// '#' outside of quotes is a comment.
func ParseLine(line string) (Line, error) {
	words, err := shlex.Split(line)
	if err != nil {
		return Line{}, fmt.Errorf("cannot split %q: %w", line, err)
	}
	if len(words) == 0 {
		return Line{}, nil
	}
	name, args := words[0], words[1:]

	switch name {
	case "help", "?":
		return Line{Control: CtrlHelp, Args: args}, nil
	case "stats":
		return Line{Control: CtrlStats}, nil
	case "exit", "x", "quit":
		return Line{Control: CtrlExit}, nil
	case "query":
		if len(args) != 1 {
			return Line{}, usageError(usageQuery)
		}
		return Line{Control: CtrlQuery, Args: args}, nil
	}

	cmd, err := parseCommand(name, args)
	if err != nil {
		return Line{}, err
	}
	return Line{Command: cmd}, nil
}

func parseCommand(name string, args []string) (stockbook.Command, error) {
	switch name {
	case "purchase", "buy":
		return parsePurchase(args)
	case "sell":
		if len(args) != 2 {
			return nil, usageError(usageSell)
		}
		q, err := stockbook.ParseQuantity(args[1])
		if err != nil {
			return nil, err
		}
		return stockbook.Sell{Name: args[0], Quantity: q}, nil
	case "get":
		if len(args) != 1 {
			return nil, usageError(usageGet)
		}
		return stockbook.Get{Name: args[0]}, nil
	case "delete":
		if len(args) != 1 {
			return nil, usageError(usageDelete)
		}
		return stockbook.Delete{Name: args[0]}, nil
	case "edit":
		return parseEdit(args)
	case "report":
		return parseReport(args)
	case "history":
		return parseHistory(args)
	default:
		return nil, fmt.Errorf("unknown command %q, type help for the list of commands", name)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.SetOutput(io.Discard)
	return f
}

func parsePurchase(args []string) (stockbook.Command, error) {
	f := newFlagSet("purchase")
	desc := f.String("desc", "", "product description, used when the product is created")
	var sale moneyFlag
	f.Var(&sale, "sale", "unit sale price, used when the product is created")
	if err := f.Parse(args); err != nil {
		return nil, fmt.Errorf("%w (%s)", err, usagePurchase)
	}
	if f.NArg() != 3 {
		return nil, usageError(usagePurchase)
	}
	q, err := stockbook.ParseQuantity(f.Arg(1))
	if err != nil {
		return nil, err
	}
	price, err := stockbook.ParseMoney(f.Arg(2))
	if err != nil {
		return nil, err
	}
	return stockbook.Purchase{
		Name:          f.Arg(0),
		Description:   *desc,
		Quantity:      q,
		SalePrice:     sale.value,
		PurchasePrice: price,
	}, nil
}

func parseEdit(args []string) (stockbook.Command, error) {
	f := newFlagSet("edit")
	desc := f.String("desc", "", "new product description")
	var sale moneyFlag
	f.Var(&sale, "sale", "new unit sale price")
	if err := f.Parse(args); err != nil {
		return nil, fmt.Errorf("%w (%s)", err, usageEdit)
	}
	if f.NArg() != 1 {
		return nil, usageError(usageEdit)
	}

	edit := stockbook.Edit{Name: f.Arg(0)}
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "desc":
			edit.Description = desc
		case "sale":
			edit.SalePrice = &sale.value
		}
	})
	return edit, nil
}

func parseReport(args []string) (stockbook.Command, error) {
	if len(args) == 0 {
		return nil, usageError(usageReport)
	}
	switch kind, rest := args[0], args[1:]; {
	case kind == "product" && len(rest) == 1:
		return stockbook.ReportProduct{Name: rest[0]}, nil
	case kind == "profit" && len(rest) == 1:
		return stockbook.ReportProfit{Name: rest[0]}, nil
	case kind == "products" && len(rest) == 0:
		return stockbook.ReportProducts{}, nil
	case kind == "sales" && len(rest) == 0:
		return stockbook.ReportSales{}, nil
	case kind == "purchases" && len(rest) == 0:
		return stockbook.ReportPurchases{}, nil
	case kind == "log" && len(rest) == 0:
		return stockbook.ReportLog{}, nil
	default:
		return nil, usageError(usageReport)
	}
}

func parseHistory(args []string) (stockbook.Command, error) {
	if len(args) != 1 {
		return nil, usageError(usageHistory)
	}
	switch args[0] {
	case "sales":
		return stockbook.SalesHistory{}, nil
	case "purchases":
		return stockbook.PurchaseHistory{}, nil
	default:
		return nil, usageError(usageHistory)
	}
}

// Help is the list of shell commands.
var Help = strings.Join([]string{
	"# Commands",
	"",
	"- `" + usagePurchase + "`",
	"- `" + usageSell + "`",
	"- `" + usageGet + "`",
	"- `" + usageEdit + "`",
	"- `" + usageDelete + "`",
	"- `" + usageReport + "`",
	"- `" + usageHistory + "`",
	"- `stats`",
	"- `" + usageQuery + "`",
	"- `help`",
	"- `exit` (or `x`)",
	"",
}, "\n")
