package builtin

import (
	"fmt"
	"io"
	"strings"

	"github.com/rubiojr/minishell/internal/shellenv"
)

// export implements: export [NAME[=VALUE]...]
//
// With no arguments, prints every exported variable in sorted order as
// `declare -x NAME="VALUE"`. With arguments, each must match the
// variable-name rule, optionally followed by "=value"; an invalid name
// reports an error and sets status 1 but does not stop the remaining
// arguments from being processed. Setting a name without "=" marks an
// existing variable exported without changing its value, or creates an
// empty exported variable if it was absent — the §9 Open Question
// decision: create-if-absent, mark-exported-if-present.
func export(argv []string, env *shellenv.Env, stdout, stderr io.Writer) int {
	args := argv[1:]

	if len(args) == 0 {
		for _, name := range env.Exported() {
			fmt.Fprintf(stdout, "declare -x %s=%q\n", name, env.GetOrEmpty(name))
		}
		return 0
	}

	status := 0
	for _, arg := range args {
		name, value, hasValue := strings.Cut(arg, "=")
		if !shellenv.ValidName(name) {
			fmt.Fprintf(stderr, "minishell: export: %q: not a valid identifier\n", name)
			status = 1
			continue
		}
		env.Export(name, value, hasValue)
	}
	return status
}
