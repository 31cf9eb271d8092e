package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockbook/auth"
	"github.com/google/subcommands"
)

type shellCmd struct {
	sessionFlags
}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "start an interactive inventory session" }
func (*shellCmd) Usage() string {
	return `stockbook shell [-plain] [-method <method>] [-currency <code>] [-env <file>]

  Asks for the password, then reads commands from the standard input until
  'exit' or 'x'. Type 'help' for the list of commands.

  The inventory lives in memory only: it is lost when the session ends.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) { c.sessionFlags.SetFlags(f) }

func (c *shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "Error: shell takes no arguments.")
		return subcommands.ExitUsageError
	}
	cfg, err := c.config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	in := bufio.NewReader(os.Stdin)
	token, status, ok := login(cfg, in)
	if !ok {
		return status
	}

	session := NewSession(cfg, os.Stdout, os.Stderr)
	if auth.IsTerminal(int(os.Stdin.Fd())) {
		session.Prompt = "stockbook> "
	}
	session.Printer.Print(Help)
	if err := session.Run(ctx, token, in); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
