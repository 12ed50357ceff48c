// Package lineinput implements the read_line(prompt) -> line | EOF
// contract §6 names as an external collaborator: a line-editing/history
// front end is explicitly out of scope for this core (§1), so this is
// deliberately minimal — a prompt print plus one buffered line read, not
// a readline reimplementation. It uses golang.org/x/term the same way
// main.go does (term.IsTerminal) to decide whether printing the prompt
// makes sense for the current stdin.
package lineinput

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Reader reads lines from an underlying source, printing a prompt before
// each read when that source is an interactive terminal.
type Reader struct {
	in     *bufio.Reader
	out    io.Writer
	isTerm bool
}

// New wraps in (normally os.Stdin) and writes prompts to out (normally
// os.Stdout).
func New(in *os.File, out io.Writer) *Reader {
	return &Reader{
		in:     bufio.NewReader(in),
		out:    out,
		isTerm: term.IsTerminal(int(in.Fd())),
	}
}

// ReadLine prints prompt (when stdin is a terminal) and reads one line,
// with its trailing newline stripped. It returns ("", false) at EOF.
func (r *Reader) ReadLine(prompt string) (string, bool) {
	if r.isTerm {
		fmt.Fprint(r.out, prompt)
	}

	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\n"), true
}
