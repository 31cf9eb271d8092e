// Package auth implements the single password gate in front of the
// inventory shell.
//
// A successful check returns a Token. The shell refuses to start a session
// without a valid one, so the only way to hold a Token is to have gone through
// the Gate.
package auth

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

var (
	// ErrInvalidCredentials indicates a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAborted indicates the user gave up entering the password.
	ErrAborted = errors.New("authentication aborted")
)

// escape is the input that leaves the password prompt.
const escape = "x"

// Token is the capability to use the inventory. The zero Token is not valid.
type Token struct {
	granted bool
}

// Valid reports whether the token was granted by a Gate.
func (t Token) Valid() bool { return t.granted }

// Gate checks a password against a bcrypt hash.
type Gate struct {
	hash []byte
}

// NewGate creates a gate for a plain text password.
func NewGate(password string) (*Gate, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("cannot hash password: %w", err)
	}
	return &Gate{hash: hash}, nil
}

// NewGateFromHash creates a gate for a bcrypt hash.
func NewGateFromHash(hash string) (*Gate, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("invalid password hash: %w", err)
	}
	return &Gate{hash: []byte(hash)}, nil
}

// Verify returns a valid token if password matches.
func (g *Gate) Verify(password string) (Token, error) {
	if err := bcrypt.CompareHashAndPassword(g.hash, []byte(password)); err != nil {
		return Token{}, ErrInvalidCredentials
	}
	return Token{granted: true}, nil
}

// ReadFunc reads one password.
type ReadFunc func() (string, error)

// Lines reads passwords as lines of r.
func Lines(r *bufio.Reader) ReadFunc {
	return func() (string, error) {
		line, err := r.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}
}

// Hidden reads passwords from the terminal fd without echoing them.
func Hidden(fd int, out io.Writer) ReadFunc {
	return func() (string, error) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}
}

// IsTerminal reports whether fd is a terminal, where Hidden can be used.
func IsTerminal(fd int) bool { return term.IsTerminal(fd) }

// Prompt asks for the password until it is right. Entering "x" or reaching
// the end of the input returns ErrAborted.
func (g *Gate) Prompt(read ReadFunc, out io.Writer) (Token, error) {
	for {
		fmt.Fprintf(out, "Enter password, or %s to escape:\n", escape)
		password, err := read()
		if errors.Is(err, io.EOF) {
			return Token{}, ErrAborted
		}
		if err != nil {
			return Token{}, fmt.Errorf("cannot read password: %w", err)
		}
		if password == escape {
			return Token{}, ErrAborted
		}
		token, err := g.Verify(password)
		if err == nil {
			return token, nil
		}
		fmt.Fprintln(out, "Wrong password.")
	}
}
