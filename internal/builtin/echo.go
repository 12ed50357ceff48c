package builtin

import (
	"io"
	"strings"

	"github.com/rubiojr/minishell/internal/shellenv"
)

// echo implements: echo [-n] args...
//
// Args are joined with a single space; a trailing newline is appended
// unless -n was given. Any run of hyphen followed by one or more 'n's
// ("-n", "-nn", ...) immediately after the command name is consumed as
// the flag.
func echo(argv []string, env *shellenv.Env, stdout, stderr io.Writer) int {
	args := argv[1:]
	noNewline := false
	if len(args) > 0 && isNFlag(args[0]) {
		noNewline = true
		args = args[1:]
	}

	io.WriteString(stdout, strings.Join(args, " "))
	if !noNewline {
		io.WriteString(stdout, "\n")
	}
	return 0
}

// isNFlag reports whether s is "-" followed by one or more 'n's.
func isNFlag(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != 'n' {
			return false
		}
	}
	return true
}
