package shellexec

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rubiojr/minishell/internal/builtin"
	"github.com/rubiojr/minishell/internal/shellenv"
)

// TrampolineArg is the hidden os.Args[1] cmd/minishell/main.go recognizes
// to run a single built-in and exit, instead of starting the REPL.
//
// Go offers no raw fork(): the safe, documented way to put arbitrary code
// in a child process is the same one this codebase's own test harness
// uses in cmd/cmd.go (os.Executable() plus exec.Command(self, ...)) to
// sandbox a test run in a subprocess. The executor reuses that exact
// trick for the one case §4.5 requires a forked child to run a built-in:
// when the built-in is one stage of a multi-stage pipeline, rather than
// the pipeline's sole command. (A built-in alone in the pipeline runs
// directly in the shell's own process — see runSingleBuiltin — matching
// "Otherwise (external command OR N>1): fork" in §4.5.)
const TrampolineArg = "__minishell_builtin__"

// RunTrampoline implements the TrampolineArg branch. args is os.Args[2:]:
// the last_status and shell name the parent had before forking, followed
// by the built-in's own argv (argv[0] is the built-in's name). For "exit"
// with at most one argument it never returns, since exit calls os.Exit
// itself.
func RunTrampoline(args []string) int {
	if len(args) < 3 {
		fmt.Fprintln(os.Stderr, "minishell: malformed internal invocation")
		return 1
	}

	lastStatus, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "minishell: malformed internal invocation")
		return 1
	}
	shellName := args[1]
	argv := args[2:]

	env := shellenv.New(shellName)
	env.LastStatus = lastStatus

	fn, ok := builtin.Lookup(argv[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "minishell: %s: not a builtin\n", argv[0])
		return 1
	}
	return fn(argv, env, io.Writer(os.Stdout), io.Writer(os.Stderr))
}
