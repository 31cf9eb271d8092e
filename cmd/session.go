package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/etnz/stockbook"
	"github.com/etnz/stockbook/auth"
	"github.com/etnz/stockbook/renderer"
)

// ErrUnauthorized is returned when a session is started without a valid token.
var ErrUnauthorized = errors.New("unauthorized: a valid token is required")

// Session runs shell lines against one inventory.
type Session struct {
	Inventory *stockbook.Inventory
	Options   renderer.Options
	Printer   *Printer     // Printer receives the rendered results.
	Errors    io.Writer    // Errors receives one line per rejected line.
	Logger    *slog.Logger // Logger may be nil.
	Prompt    string       // Prompt is printed before reading each line, when not empty.
	Echo      bool         // Echo prints each line read, for scripts.

	// StopOnFailure ends Run at the first line that fails.
	StopOnFailure bool

	Failures int // Failures counts the lines that ended in error.
}

// Run reads and executes lines from r until the end of the input, an exit
// line, or the cancellation of ctx.
func (s *Session) Run(ctx context.Context, token auth.Token, r io.Reader) error {
	if !token.Valid() {
		return ErrUnauthorized
	}
	scanner := bufio.NewScanner(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.Prompt != "" {
			fmt.Fprint(s.Printer.W, s.Prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()
		if s.Echo {
			fmt.Fprintf(s.Printer.W, "> %s\n", line)
		}
		failures := s.Failures
		if done := s.Exec(line); done {
			return nil
		}
		if s.StopOnFailure && s.Failures > failures {
			return nil
		}
	}
}

// Exec executes one line. It returns true when the line ends the session.
func (s *Session) Exec(text string) (done bool) {
	line, err := ParseLine(text)
	if err != nil {
		s.fail(text, err)
		return false
	}
	if line.Empty() {
		return false
	}
	if line.Command != nil {
		result, err := s.Inventory.Execute(line.Command)
		if err != nil {
			s.fail(text, err)
			return false
		}
		s.Printer.Print(renderer.Result(result, s.Options))
		return false
	}

	switch line.Control {
	case CtrlExit:
		return true
	case CtrlHelp:
		s.Printer.Print(Help)
	case CtrlStats:
		counts, err := s.Inventory.Metrics().Counts()
		if err != nil {
			s.fail(text, err)
			return false
		}
		s.Printer.Print(renderer.Stats(counts))
	case CtrlQuery:
		out, err := Query(s.Inventory.State(), line.Args[0])
		if err != nil {
			s.fail(text, err)
			return false
		}
		s.Printer.Print("```json\n" + out + "\n```\n")
	}
	return false
}

func (s *Session) fail(line string, err error) {
	s.Failures++
	if s.Logger != nil {
		s.Logger.Debug("line failed", "line", line, "error", err)
	}
	fmt.Fprintln(s.Errors, renderer.Error(err))
}
