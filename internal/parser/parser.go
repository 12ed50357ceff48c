// Package parser validates a lexer token stream's grammar and builds the
// linked pipeline of ast.Command records it describes:
//
//	pipeline := command ( PIPE command )*
//	command  := element+
//	element  := WORD | redir
//	redir    := (LT | GT | DGT) WORD
//	          | DLT WORD              -- heredoc delimiter
//
// The grammar is four short productions, so this is a small hand-written
// recursive descent parser rather than a generated one. Syntax errors are
// reported as modernc.org/scanner.ErrList values, the same shape the rest
// of this codebase uses for position-carrying errors.
package parser

import (
	"fmt"

	"github.com/rubiojr/minishell/internal/ast"
	"modernc.org/scanner"
)

// Parse turns tokens into a Pipeline. A nil, nil result means the input was
// empty (after trimming) and there is nothing to execute.
func Parse(tokens []ast.Token) (*ast.Pipeline, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	if tokens[0].Kind == ast.Pipe {
		return nil, syntaxErr(tokens[0], "unexpected token")
	}
	if tokens[len(tokens)-1].Kind == ast.Pipe {
		return nil, syntaxErr(tokens[len(tokens)-1], "unexpected end of input")
	}

	var pipeline ast.Pipeline
	start := 0
	for i, t := range tokens {
		if t.Kind != ast.Pipe {
			continue
		}
		if i == start {
			return nil, syntaxErr(t, "unexpected token")
		}
		cmd, err := parseCommand(tokens[start:i])
		if err != nil {
			return nil, err
		}
		pipeline.Commands = append(pipeline.Commands, cmd)
		start = i + 1
	}

	cmd, err := parseCommand(tokens[start:])
	if err != nil {
		return nil, err
	}
	pipeline.Commands = append(pipeline.Commands, cmd)

	return &pipeline, nil
}

// parseCommand assembles one pipeline stage from a run of tokens
// containing no PIPE, appending WORDs to Argv and redirections to Redirs
// in their relative order.
func parseCommand(tokens []ast.Token) (ast.Command, error) {
	var cmd ast.Command

	i := 0
	for i < len(tokens) {
		t := tokens[i]
		switch t.Kind {
		case ast.Word:
			cmd.Words = append(cmd.Words, t)
			i++

		case ast.Lt, ast.Gt, ast.Dgt, ast.Dlt:
			if i+1 >= len(tokens) || tokens[i+1].Kind != ast.Word {
				return ast.Command{}, syntaxErr(t, "expected a word after redirection operator")
			}
			target := tokens[i+1]
			op := redirOp(t.Kind)
			r := ast.Redir{Op: op, Target: target.RawText(), TargetToken: target}
			cmd.Redirs = append(cmd.Redirs, r)
			i += 2

		default:
			return ast.Command{}, syntaxErr(t, "unexpected token")
		}
	}

	return cmd, nil
}

func redirOp(k ast.Kind) ast.RedirOp {
	switch k {
	case ast.Lt:
		return ast.In
	case ast.Gt:
		return ast.Out
	case ast.Dgt:
		return ast.Append
	default: // ast.Dlt
		return ast.Heredoc
	}
}

func syntaxErr(t ast.Token, msg string) error {
	var errs scanner.ErrList
	near := t.RawText()
	if near == "" {
		near = tokenSymbol(t.Kind)
	}
	errs = append(errs, scanner.ErrWithPosition{
		Pos: t.Pos,
		Err: fmt.Errorf("syntax error near %q: %s", near, msg),
	})
	return errs
}

func tokenSymbol(k ast.Kind) string {
	switch k {
	case ast.Pipe:
		return "|"
	case ast.Lt:
		return "<"
	case ast.Gt:
		return ">"
	case ast.Dgt:
		return ">>"
	case ast.Dlt:
		return "<<"
	default:
		return ""
	}
}

// FirstError extracts and formats the first syntax error out of err, the
// way ast/parse.go's firstParseError does for this codebase's other
// parser: a one-line REPL input carries no source snippet worth printing,
// so this just surfaces "<stdin>:line:col: message".
func FirstError(err error) error {
	if el, ok := err.(scanner.ErrList); ok && len(el) > 0 {
		e := el[0]
		return fmt.Errorf("%s: %s", e.Pos, e.Err.Error())
	}
	return err
}
