package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type runCmd struct {
	sessionFlags
	keepGoing bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "execute a script of inventory commands" }
func (*runCmd) Usage() string {
	return `stockbook run [-k] [-plain] [-method <method>] [-currency <code>] [-env <file>] <script>

  Asks for the password, then executes the script one line at a time, the
  same way the shell would. Empty lines and '#' comments are ignored.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	c.sessionFlags.SetFlags(f)
	f.BoolVar(&c.keepGoing, "k", false, "Keep going after a failed line.")
}

func (c *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: run takes exactly one script.")
		return subcommands.ExitUsageError
	}
	cfg, err := c.config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	script, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening script %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer script.Close()

	token, status, ok := login(cfg, bufio.NewReader(os.Stdin))
	if !ok {
		return status
	}

	session := NewSession(cfg, os.Stdout, os.Stderr)
	session.Echo = true
	session.StopOnFailure = !c.keepGoing
	if err := session.Run(ctx, token, script); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if session.Failures > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
