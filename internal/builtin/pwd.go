package builtin

import (
	"io"
	"os"

	"github.com/rubiojr/minishell/internal/shellenv"
)

// pwd implements: pwd
//
// Prints the current working directory, ignoring any arguments.
func pwd(argv []string, env *shellenv.Env, stdout, stderr io.Writer) int {
	wd, err := os.Getwd()
	if err != nil {
		io.WriteString(stderr, "minishell: pwd: "+err.Error()+"\n")
		return 1
	}
	io.WriteString(stdout, wd+"\n")
	return 0
}
