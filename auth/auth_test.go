package auth

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGateVerify(t *testing.T) {
	gate, err := NewGate("password")
	require.NoError(t, err)

	token, err := gate.Verify("password")
	require.NoError(t, err)
	require.True(t, token.Valid())

	token, err = gate.Verify("Password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.False(t, token.Valid())
}

func TestNewGateFromHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	gate, err := NewGateFromHash(string(hash))
	require.NoError(t, err)
	_, err = gate.Verify("s3cret")
	require.NoError(t, err)

	_, err = NewGateFromHash("not a hash")
	require.Error(t, err)
}

func TestZeroTokenIsInvalid(t *testing.T) {
	var token Token
	require.False(t, token.Valid())
}

func TestPrompt(t *testing.T) {
	gate, err := NewGate("password")
	require.NoError(t, err)

	testCases := []struct {
		name      string
		input     string
		wantErr   error
		wantWrong int
	}{
		{name: "right away", input: "password\n"},
		{name: "after a mistake", input: "oops\n  password  \n", wantWrong: 1},
		{name: "no trailing newline", input: "password"},
		{name: "escape", input: "nope\nx\npassword\n", wantErr: ErrAborted, wantWrong: 1},
		{name: "end of input", input: "nope\n", wantErr: ErrAborted, wantWrong: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			token, err := gate.Prompt(Lines(bufio.NewReader(strings.NewReader(tc.input))), &out)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.False(t, token.Valid())
			} else {
				require.NoError(t, err)
				require.True(t, token.Valid())
			}
			require.Equal(t, tc.wantWrong, strings.Count(out.String(), "Wrong password."))
			require.Contains(t, out.String(), "Enter password, or x to escape:")
		})
	}
}
