package builtin

import (
	"io"
	"os"

	"github.com/rubiojr/minishell/internal/shellenv"
)

// cd implements: cd [path]
//
//	no arg or "~" -> $HOME (unset HOME is an error)
//	"-"           -> $OLDPWD, and the new directory is echoed
//	else          -> the literal path
//
// On success OLDPWD is set to the prior cwd and PWD to the new one.
func cd(argv []string, env *shellenv.Env, stdout, stderr io.Writer) int {
	var target string
	echoTarget := false

	switch {
	case len(argv) < 2 || argv[1] == "~":
		home, ok := env.Get("HOME")
		if !ok {
			io.WriteString(stderr, "minishell: cd: HOME not set\n")
			return 1
		}
		target = home

	case argv[1] == "-":
		old, ok := env.Get("OLDPWD")
		if !ok {
			io.WriteString(stderr, "minishell: cd: OLDPWD not set\n")
			return 1
		}
		target = old
		echoTarget = true

	default:
		target = argv[1]
	}

	prevWD, err := os.Getwd()
	if err != nil {
		io.WriteString(stderr, "minishell: cd: "+err.Error()+"\n")
		return 1
	}

	if err := os.Chdir(target); err != nil {
		io.WriteString(stderr, "minishell: cd: "+err.Error()+"\n")
		return 1
	}

	newWD, err := os.Getwd()
	if err != nil {
		newWD = target
	}

	env.Export("OLDPWD", prevWD, true)
	env.Export("PWD", newWD, true)

	if echoTarget {
		io.WriteString(stdout, newWD+"\n")
	}
	return 0
}
