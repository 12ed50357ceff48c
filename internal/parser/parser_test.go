package parser

import (
	"testing"

	"github.com/rubiojr/minishell/internal/ast"
	"github.com/rubiojr/minishell/internal/lexer"
)

func mustLex(t *testing.T, line string) []ast.Token {
	t.Helper()
	tokens, err := lexer.Lex(line)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	return tokens
}

func TestParseSingleCommand(t *testing.T) {
	tokens := mustLex(t, "echo hello")
	pipeline, err := Parse(tokens)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(pipeline.Commands) != 1 {
		t.Fatalf("expected 1 command, got %d", len(pipeline.Commands))
	}
	if len(pipeline.Commands[0].Words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(pipeline.Commands[0].Words))
	}
}

func TestParsePipeline(t *testing.T) {
	tokens := mustLex(t, "a | b | c")
	pipeline, err := Parse(tokens)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(pipeline.Commands) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(pipeline.Commands))
	}
}

func TestParseRedirection(t *testing.T) {
	tokens := mustLex(t, "cat < in.txt > out.txt")
	pipeline, err := Parse(tokens)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	cmd := pipeline.Commands[0]
	if len(cmd.Redirs) != 2 {
		t.Fatalf("expected 2 redirs, got %d", len(cmd.Redirs))
	}
	if cmd.Redirs[0].Target != "in.txt" || cmd.Redirs[1].Target != "out.txt" {
		t.Fatalf("unexpected redir targets: %+v", cmd.Redirs)
	}
}

func TestParseEmptyInput(t *testing.T) {
	pipeline, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if pipeline != nil {
		t.Fatalf("expected a nil pipeline for empty input, got %+v", pipeline)
	}
}

func TestParseLeadingPipeIsSyntaxError(t *testing.T) {
	tokens := mustLex(t, "| a")
	_, err := Parse(tokens)
	if err == nil {
		t.Fatal("expected a syntax error for a leading pipe")
	}
}

func TestParseDanglingRedirectionIsSyntaxError(t *testing.T) {
	tokens := mustLex(t, "echo >")
	_, err := Parse(tokens)
	if err == nil {
		t.Fatal("expected a syntax error for a redirection with no target")
	}
}

func TestFirstErrorFormatsPosition(t *testing.T) {
	tokens := mustLex(t, "echo >")
	_, err := Parse(tokens)
	if err == nil {
		t.Fatal("expected an error")
	}
	formatted := FirstError(err)
	if formatted == nil {
		t.Fatal("expected a non-nil formatted error")
	}
}
