package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rubiojr/minishell/internal/repl"
	"github.com/rubiojr/minishell/internal/shellexec"
	"github.com/urfave/cli/v3"
)

var version = "v0.1.0"

func main() {
	// A built-in running as one stage of a multi-stage pipeline is a
	// re-exec of this very binary (see shellexec.TrampolineArg) — caught
	// here, before cli.Command ever sees os.Args, the same way a
	// Command's Action wouldn't know what to do with it.
	if len(os.Args) > 1 && os.Args[1] == shellexec.TrampolineArg {
		os.Exit(shellexec.RunTrampoline(os.Args[2:]))
	}

	selfExe, err := os.Executable()
	if err != nil {
		selfExe = os.Args[0]
	}

	cmd := &cli.Command{
		Name:    "minishell",
		Usage:   "An interactive POSIX-subset shell",
		Version: version,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			os.Exit(repl.Run(selfExe))
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
