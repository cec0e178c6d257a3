package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// errNoInput is returned when stdin ends before a prompt is answered.
var errNoInput = errors.New("no input")

// prompter asks questions on out and reads one line per answer from in.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{scanner: bufio.NewScanner(in), out: out}
}

// ask prints label and returns the trimmed answer.
func (p *prompter) ask(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", errNoInput
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// askDefault returns def when the answer is empty.
func (p *prompter) askDefault(label, def string) (string, error) {
	v, err := p.ask(fmt.Sprintf("%s [%s]", label, def))
	if err != nil {
		return "", err
	}
	if v == "" {
		return def, nil
	}
	return v, nil
}

// arg returns args[i] when present, otherwise prompts for it.
func (p *prompter) arg(args []string, i int, label string) (string, error) {
	if i < len(args) && args[i] != "" {
		return args[i], nil
	}
	return p.ask(label)
}
