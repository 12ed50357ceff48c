package builtin

import (
	"fmt"
	"io"

	"github.com/rubiojr/minishell/internal/shellenv"
)

// unset implements: unset NAME...
//
// Removes each valid name from Env. An invalid name sets status 1 but
// does not stop the remaining names from being processed.
func unset(argv []string, env *shellenv.Env, stdout, stderr io.Writer) int {
	status := 0
	for _, name := range argv[1:] {
		if !shellenv.ValidName(name) {
			fmt.Fprintf(stderr, "minishell: unset: %q: not a valid identifier\n", name)
			status = 1
			continue
		}
		env.Unset(name)
	}
	return status
}
