// Package repl implements the top-level read-eval-print loop: read a
// line, lex, parse, expand, collect any heredocs, execute, repeat. It is
// the Go-idiomatic replacement for this codebase's ast/parse.go
// firstParseError-driven single-shot parse, turned into a loop around
// one line at a time instead of one whole source file.
package repl

import (
	"os"

	"github.com/rubiojr/minishell/internal/expand"
	"github.com/rubiojr/minishell/internal/heredoc"
	"github.com/rubiojr/minishell/internal/lexer"
	"github.com/rubiojr/minishell/internal/lineinput"
	"github.com/rubiojr/minishell/internal/parser"
	"github.com/rubiojr/minishell/internal/shellenv"
	"github.com/rubiojr/minishell/internal/shellerr"
	"github.com/rubiojr/minishell/internal/shellexec"
	"github.com/rubiojr/minishell/internal/sigdispatch"
)

// Prompt is the primary prompt string, printed only when stdin is a
// terminal (internal/lineinput).
const Prompt = "minishell$> "

// Run drives the loop until EOF on stdin, returning the exit status the
// process should use — last_status at the moment the loop ends, matching
// a real shell exiting with the status of its last command.
func Run(selfExe string) int {
	env := shellenv.New(os.Args[0])
	disp := sigdispatch.New(os.Stdout)
	reader := lineinput.New(os.Stdin, os.Stdout)

	for {
		disp.SetMode(sigdispatch.Interactive)
		disp.ClearInterrupted()

		line, ok := reader.ReadLine(Prompt)
		if !ok {
			break
		}

		if disp.Interrupted() {
			env.LastStatus = 130
			continue
		}

		runLine(line, env, disp, reader, selfExe)
	}

	return env.LastStatus
}

// runLine lexes, parses, expands, collects heredocs for, and executes one
// input line, reporting any error along the way and leaving env.LastStatus
// set to the outcome.
func runLine(line string, env *shellenv.Env, disp *sigdispatch.Dispatcher, reader *lineinput.Reader, selfExe string) {
	tokens, err := lexer.Lex(line)
	if err != nil {
		shellerr.Report(os.Stderr, "", parser.FirstError(err).Error())
		env.LastStatus = 2
		return
	}

	pipeline, err := parser.Parse(tokens)
	if err != nil {
		shellerr.Report(os.Stderr, "", parser.FirstError(err).Error())
		env.LastStatus = 2
		return
	}
	if pipeline == nil {
		return
	}

	expanded := expand.Expand(pipeline, env)

	disp.SetMode(sigdispatch.Heredoc)
	disp.ClearInterrupted()
	herr := heredoc.Collect(pipeline, expanded, env, reader.ReadLine, disp.Interrupted)
	if herr != nil {
		env.LastStatus = 130
		return
	}

	shellexec.Run(expanded, env, os.Stdin, os.Stdout, os.Stderr, disp, selfExe)
}
