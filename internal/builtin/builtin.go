// Package builtin implements the shell's built-in commands — cd, echo,
// env, exit, export, pwd, unset — and the name-to-implementation registry
// the executor dispatches through. The registry is adapted from
// modules.Register/Get in this codebase's stdlib-module registry: there,
// a name maps to a Module describing importable functions; here, a name
// maps directly to the Go function that runs it, since built-ins need no
// code-generation indirection.
package builtin

import (
	"io"

	"github.com/rubiojr/minishell/internal/shellenv"
)

// Func is a built-in's implementation. It receives argv (including the
// command name at index 0), the shared Env, and the stdout/stderr the
// executor has already wired up (possibly redirected), and returns the
// command's exit status.
type Func func(argv []string, env *shellenv.Env, stdout, stderr io.Writer) int

var registry = map[string]Func{
	"cd":     cd,
	"echo":   echo,
	"env":    env,
	"exit":   exit,
	"export": export,
	"pwd":    pwd,
	"unset":  unset,
}

// Lookup returns the Func registered for name, if any.
func Lookup(name string) (Func, bool) {
	f, ok := registry[name]
	return f, ok
}

// IsBuiltin reports whether name is a registered built-in.
func IsBuiltin(name string) bool {
	_, ok := registry[name]
	return ok
}
