// Package ast defines the data model produced by the lexer and parser and
// consumed by the expander and executor: tokens, redirections, commands,
// and pipelines.
package ast

import "modernc.org/scanner"

// Quoting records how a fragment of a token's text was quoted at lex time.
// It governs whether the expander may act on the fragment and whether a
// substituted value is subject to word splitting.
type Quoting int

const (
	// NoQuote means the fragment was written outside any quotes.
	NoQuote Quoting = iota
	// Single means the fragment was written inside '...'; no character
	// has special meaning, including '$'.
	Single
	// Double means the fragment was written inside "..."; '$' retains
	// its expansion meaning but whitespace does not split the token.
	Double
)

// Kind classifies a Token.
type Kind int

const (
	Word Kind = iota
	Pipe
	Lt  // <
	Gt  // >
	Dgt // >>
	Dlt // <<
)

// Fragment is a contiguous run of text carrying one quoting mode. A single
// Word token may be assembled from several adjacent fragments of differing
// quoting with no separating whitespace, e.g. a"b"'c'$D.
type Fragment struct {
	Text    string
	Quoting Quoting
}

// Token is a single lexical unit: an operator, or a WORD built from one or
// more fragments.
type Token struct {
	Kind      Kind
	Fragments []Fragment // only meaningful for Word
	Pos       scanner.Position
}

// RawText concatenates a Word token's fragments with no regard for quoting,
// for diagnostics (e.g. naming the offending token in a syntax error).
func (t Token) RawText() string {
	s := ""
	for _, f := range t.Fragments {
		s += f.Text
	}
	return s
}

// AllQuoted reports whether every fragment of the token was quoted (single
// or double), i.e. the token carries no unquoted fragment at all. A token
// with zero fragments (an empty, never-quoted WORD) is not AllQuoted.
func (t Token) AllQuoted() bool {
	if len(t.Fragments) == 0 {
		return false
	}
	for _, f := range t.Fragments {
		if f.Quoting == NoQuote {
			return false
		}
	}
	return true
}

// AllUnquoted reports whether the token carries no quoted fragment at
// all — "originally quoted" in §4.3's empty-argv-removal rule means the
// opposite of this.
func (t Token) AllUnquoted() bool {
	for _, f := range t.Fragments {
		if f.Quoting != NoQuote {
			return false
		}
	}
	return true
}

// RedirOp identifies the kind of redirection.
type RedirOp int

const (
	In      RedirOp = iota // <
	Out                    // >
	Append                 // >>
	Heredoc                // <<
)

// Redir is a single redirection attached to a Command. Target is the word
// following the operator (a file path for In/Out/Append, a delimiter for
// Heredoc). The heredoc collector never fills in HeredocBody here: it
// stores the collected body on the matching ExpandedRedir instead.
type Redir struct {
	Op          RedirOp
	Target      string
	TargetToken Token // preserved for expansion and, for Heredoc, quoting-of-delimiter checks
	HeredocBody *string
}

// Command is a single, pre-expansion stage of a Pipeline: WORD tokens kept
// structured (fragments + quoting) so the expander can apply quote-aware
// substitution and word splitting before the executor ever sees a plain
// argv.
type Command struct {
	Words  []Token
	Redirs []Redir
}

// Pipeline is an ordered, non-empty sequence of Commands connected by '|'.
type Pipeline struct {
	Commands []Command
}

// ExpandedRedir is a Redir after its target has been expanded (heredoc
// targets are never expanded — see §4.3 — so Target there is the literal
// delimiter).
type ExpandedRedir struct {
	Op          RedirOp
	Target      string
	HeredocBody *string
}

// ExpandedCommand is a single pipeline stage after variable expansion and
// word splitting: a plain argv plus its expanded redirections.
type ExpandedCommand struct {
	Argv   []string
	Redirs []ExpandedRedir

	// Pid is set once the stage has been forked as an external process;
	// it stays zero for built-ins executed in the parent.
	Pid int
}

// ExpandedPipeline is a Pipeline after expansion, ready for the executor.
type ExpandedPipeline struct {
	Commands []ExpandedCommand
}
