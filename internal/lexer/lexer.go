// Package lexer converts a raw shell input line into a flat token stream,
// respecting single- and double-quoting and the '|', '<', '>', '<<', '>>'
// operators. It is grounded on the quote-tracking cursor used throughout
// this codebase's string-boundary-aware scanning (see
// internal/quotescan), adapted from byte-at-a-time "am I in a string"
// bookkeeping to "what quoting governs this fragment."
package lexer

import (
	"fmt"

	"github.com/rubiojr/minishell/internal/ast"
	"github.com/rubiojr/minishell/internal/quotescan"
	"modernc.org/scanner"
)

// Lex scans line (with no trailing newline) into a token stream. On an
// unterminated quote it returns a modernc.org/scanner.ErrList carrying the
// offending position, matching the error shape used by the parser.
func Lex(line string) ([]ast.Token, error) {
	var errs scanner.ErrList
	var tokens []ast.Token

	c := quotescan.New(line)
	ch, ok := c.Next()

	for ok {
		switch {
		case ch == ' ' || ch == '\t':
			ch, ok = c.Next()

		case ch == '|':
			tokens = append(tokens, ast.Token{Kind: ast.Pipe, Pos: pos(c.Pos())})
			ch, ok = c.Next()

		case ch == '<' && c.LookingAt("<<"):
			tokens = append(tokens, ast.Token{Kind: ast.Dlt, Pos: pos(c.Pos())})
			c.Next()
			ch, ok = c.Next()

		case ch == '<':
			tokens = append(tokens, ast.Token{Kind: ast.Lt, Pos: pos(c.Pos())})
			ch, ok = c.Next()

		case ch == '>' && c.LookingAt(">>"):
			tokens = append(tokens, ast.Token{Kind: ast.Dgt, Pos: pos(c.Pos())})
			c.Next()
			ch, ok = c.Next()

		case ch == '>':
			tokens = append(tokens, ast.Token{Kind: ast.Gt, Pos: pos(c.Pos())})
			ch, ok = c.Next()

		default:
			var word ast.Token
			var err error
			word, ch, ok, err = lexWord(c, ch)
			if err != nil {
				errs = append(errs, scanner.ErrWithPosition{Pos: pos(c.Pos()), Err: err})
				return nil, errs
			}
			tokens = append(tokens, word)
		}
	}

	return tokens, nil
}

// lexWord assembles one WORD token out of a maximal run of adjacent
// fragments (quoted or not) with no separating whitespace or operator.
func lexWord(c *quotescan.Cursor, ch byte) (ast.Token, byte, bool, error) {
	startPos := c.Pos()
	tok := ast.Token{Kind: ast.Word, Pos: pos(startPos)}
	ok := true

	for {
		switch ch {
		case '\'':
			text, next, more, err := scanQuoted(c, '\'')
			if err != nil {
				return tok, next, more, fmt.Errorf("unterminated single quote")
			}
			tok.Fragments = append(tok.Fragments, ast.Fragment{Text: text, Quoting: ast.Single})
			ch, ok = next, more

		case '"':
			text, next, more, err := scanQuoted(c, '"')
			if err != nil {
				return tok, next, more, fmt.Errorf("unterminated double quote")
			}
			tok.Fragments = append(tok.Fragments, ast.Fragment{Text: text, Quoting: ast.Double})
			ch, ok = next, more

		case ' ', '\t', '|', '<', '>':
			return tok, ch, ok, nil

		default:
			text, next, more := scanUnquoted(c, ch)
			tok.Fragments = append(tok.Fragments, ast.Fragment{Text: text, Quoting: ast.NoQuote})
			ch, ok = next, more
		}

		if !ok {
			return tok, ch, ok, nil
		}
	}
}

// scanQuoted reads the body of a '...' or "..." run, starting with the
// opening quote as the current byte. It returns the literal body (quotes
// stripped) and the next unconsumed byte/ok pair, or an error if the
// quote never closes.
func scanQuoted(c *quotescan.Cursor, quote byte) (string, byte, bool, error) {
	var body []byte
	for {
		ch, ok := c.Next()
		if !ok {
			return "", 0, false, fmt.Errorf("unterminated quote %q", quote)
		}
		if ch == quote {
			next, more := c.Next()
			return string(body), next, more, nil
		}
		body = append(body, ch)
	}
}

// scanUnquoted reads a maximal run of unquoted, non-whitespace,
// non-operator, non-quote characters, starting with ch as the current
// byte. Returns the run and the next unconsumed byte/ok pair.
func scanUnquoted(c *quotescan.Cursor, ch byte) (string, byte, bool) {
	body := []byte{ch}
	for {
		next, ok := c.Next()
		if !ok {
			return string(body), 0, false
		}
		switch next {
		case ' ', '\t', '|', '<', '>', '\'', '"':
			return string(body), next, true
		}
		body = append(body, next)
	}
}

func pos(column int) scanner.Position {
	return scanner.Position{Filename: "<stdin>", Line: 1, Column: column + 1}
}
