// Package prompt collects interactive operator input: plain lines with
// defaults, masked secrets, and yes/no confirmations. Secrets are read
// without echo and are never written anywhere by this package.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// ErrMissingCredential reports that a required secret was empty in both the
// environment and the interactive prompt.
var ErrMissingCredential = errors.New("missing credential")

// Prompter reads operator input from a terminal or any reader.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int // stdin descriptor for masked reads; -1 when not a terminal
}

// New returns a Prompter bound to stdin/stdout. Masked input is used when
// stdin is a terminal.
func New() *Prompter {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		fd = -1
	}
	return &Prompter{in: bufio.NewReader(os.Stdin), out: os.Stdout, fd: fd}
}

// NewWithIO returns a Prompter over arbitrary streams. Masked input is
// disabled; secrets are read as plain lines.
func NewWithIO(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, fd: -1}
}

// Line prompts for one line of input, returning def when the operator just
// presses enter.
func (p *Prompter) Line(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", errors.Wrapf(err, "read %s", label)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Secret prompts for a value without echoing it back.
func (p *Prompter) Secret(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	if p.fd >= 0 {
		raw, err := term.ReadPassword(p.fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", errors.Wrapf(err, "read %s", label)
		}
		return strings.TrimSpace(string(raw)), nil
	}
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", errors.Wrapf(err, "read %s", label)
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question, defaulting to no.
func (p *Prompter) Confirm(label string) (bool, error) {
	answer, err := p.Line(label+" (y/N)", "n")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// Credential returns the named environment variable when set, otherwise
// prompts for the secret. Empty in both places is ErrMissingCredential.
func (p *Prompter) Credential(envVar, label string) (string, error) {
	if v := strings.TrimSpace(os.Getenv(envVar)); v != "" {
		return v, nil
	}
	v, err := p.Secret(label)
	if err != nil {
		return "", err
	}
	if v == "" {
		return "", errors.Wrapf(ErrMissingCredential, "%s (set %s or enter it when prompted)", label, envVar)
	}
	return v, nil
}
