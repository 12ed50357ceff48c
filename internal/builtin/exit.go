package builtin

import (
	"io"
	"os"
	"strconv"

	"github.com/rubiojr/minishell/internal/shellenv"
)

// exit implements: exit [n]
//
// No argument exits with last_status. A numeric argument exits with
// n mod 256. A non-numeric argument prints an error and exits with 255.
// More than one argument is an error that does NOT exit. exit calls
// os.Exit directly — the way modules/os/runtime.go's Exit does — which
// is correct whether this built-in runs in the shell's own process
// (single built-in pipeline, §4.5) or in a forked pipeline stage: either
// way, os.Exit ends exactly the process it should.
func exit(argv []string, env *shellenv.Env, stdout, stderr io.Writer) int {
	args := argv[1:]

	if len(args) > 1 {
		io.WriteString(stderr, "minishell: exit: too many arguments\n")
		return 1
	}

	if len(args) == 0 {
		os.Exit(env.LastStatus & 0xff)
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		io.WriteString(stderr, "minishell: exit: numeric argument required\n")
		os.Exit(255)
	}

	code := ((n % 256) + 256) % 256
	os.Exit(code)
	return code // unreachable; satisfies the Func signature
}
