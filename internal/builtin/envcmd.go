package builtin

import (
	"fmt"
	"io"

	"github.com/rubiojr/minishell/internal/shellenv"
)

// env implements: env
//
// Prints every NAME=VALUE in Env whose name is marked exported, one per
// line, ignoring any arguments.
func env(argv []string, e *shellenv.Env, stdout, stderr io.Writer) int {
	for _, name := range e.Exported() {
		fmt.Fprintf(stdout, "%s=%s\n", name, e.GetOrEmpty(name))
	}
	return 0
}
