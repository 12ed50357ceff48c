// Package shellexec runs an already-expanded Pipeline: it wires up
// redirections and inter-stage pipes, launches each stage, and reaps them
// to set last_status, per §4.5. It is grounded on compiler/compiler.go's
// Run (the closest thing this codebase has to "launch a unit of work and
// collect its outcome") and on main.go's direct os/exec usage, adapted
// from "run one rugo-compiled binary" to "run N processes wired by pipes
// with shell redirections layered on top."
package shellexec

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"github.com/rubiojr/minishell/internal/ast"
	"github.com/rubiojr/minishell/internal/builtin"
	"github.com/rubiojr/minishell/internal/shellenv"
	"github.com/rubiojr/minishell/internal/shellerr"
	"github.com/rubiojr/minishell/internal/sigdispatch"
)

// pipePair is one inter-stage pipe: r feeds the next stage's stdin, w
// feeds the previous stage's stdout.
type pipePair struct {
	r, w *os.File
}

// stageOutcome is either a started child to be waited on (cmd != nil) or
// an already-known status for a stage that never became a real process
// (a redirection failure, an unresolved command, or an empty argv).
type stageOutcome struct {
	cmd    *exec.Cmd
	status int
}

// Run executes pipeline to completion and records the result in
// env.LastStatus. stdin/stdout/stderr are the shell's own descriptors;
// selfExe is this binary's own path (os.Executable(), resolved once at
// startup), used to re-exec a built-in that is not the pipeline's sole
// command (see TrampolineArg).
func Run(pipeline *ast.ExpandedPipeline, env *shellenv.Env, stdin, stdout, stderr *os.File, disp *sigdispatch.Dispatcher, selfExe string) {
	n := len(pipeline.Commands)
	if n == 0 {
		return
	}

	if n == 1 {
		cmd := pipeline.Commands[0]
		if len(cmd.Argv) > 0 {
			if fn, ok := builtin.Lookup(cmd.Argv[0]); ok {
				runSingleBuiltin(cmd, fn, env, stdin, stdout, stderr)
				return
			}
		}
	}

	disp.SetMode(sigdispatch.Running)
	defer disp.SetMode(sigdispatch.Interactive)

	pipes := make([]pipePair, n-1)
	for i := 0; i < n-1; i++ {
		r, w, err := os.Pipe()
		if err != nil {
			shellerr.Report(stderr, "", err.Error())
			for j := 0; j < i; j++ {
				pipes[j].r.Close()
				pipes[j].w.Close()
			}
			env.LastStatus = 1
			return
		}
		pipes[i] = pipePair{r, w}
	}

	outcomes := make([]stageOutcome, n)
	var opened []*os.File

	for i := 0; i < n; i++ {
		cmd := pipeline.Commands[i]

		var defaultStdin io.Reader = stdin
		if i > 0 {
			defaultStdin = pipes[i-1].r
		}
		var defaultStdout io.Writer = stdout
		if i < n-1 {
			defaultStdout = pipes[i].w
		}

		rstdin, rstdout, stageOpened, rerr := applyRedirs(cmd.Redirs, defaultStdin, defaultStdout)
		opened = append(opened, stageOpened...)

		name := ""
		if len(cmd.Argv) > 0 {
			name = cmd.Argv[0]
		}

		if rerr != nil {
			shellerr.Report(stderr, name, rerr.Error())
			outcomes[i] = stageOutcome{status: 1}
			continue
		}

		if len(cmd.Argv) == 0 {
			outcomes[i] = stageOutcome{status: 0}
			continue
		}

		if builtin.IsBuiltin(name) {
			trampArgs := append([]string{TrampolineArg, strconv.Itoa(env.LastStatus), env.ShellName}, cmd.Argv...)
			ec := exec.Command(selfExe, trampArgs...)
			ec.Env = env.Environ()
			ec.Stdin = rstdin
			ec.Stdout = rstdout
			ec.Stderr = stderr
			if serr := ec.Start(); serr != nil {
				shellerr.Report(stderr, name, serr.Error())
				outcomes[i] = stageOutcome{status: 1}
				continue
			}
			pipeline.Commands[i].Pid = ec.Process.Pid
			outcomes[i] = stageOutcome{cmd: ec}
			continue
		}

		path, rstatus, rmsg := resolvePath(name, env)
		if rmsg != "" {
			shellerr.Report(stderr, name, rmsg)
			outcomes[i] = stageOutcome{status: rstatus}
			continue
		}

		ec := exec.Command(path, cmd.Argv[1:]...)
		ec.Env = env.Environ()
		ec.Stdin = rstdin
		ec.Stdout = rstdout
		ec.Stderr = stderr
		if serr := ec.Start(); serr != nil {
			shellerr.Report(stderr, name, serr.Error())
			outcomes[i] = stageOutcome{status: 1}
			continue
		}
		pipeline.Commands[i].Pid = ec.Process.Pid
		outcomes[i] = stageOutcome{cmd: ec}
	}

	// Every pipe fd and every redirection-opened file is closed here, in
	// the parent, before waiting — a stage's own copy (handed to it at
	// Start) is unaffected, but the parent's copy must go or a pipe
	// reader downstream never sees EOF once its writer stage exits.
	for _, p := range pipes {
		p.r.Close()
		p.w.Close()
	}
	closeFiles(opened)

	statuses := make([]int, n)
	for i, oc := range outcomes {
		if oc.cmd == nil {
			statuses[i] = oc.status
			continue
		}
		status, sig, signaled := waitStatus(oc.cmd.Wait())
		statuses[i] = status
		if signaled && sig == syscall.SIGINT && i == n-1 {
			fmt.Fprintln(stdout)
		}
	}

	env.LastStatus = statuses[n-1]
}

// runSingleBuiltin runs a built-in directly in the shell's own process —
// the §4.5 exception to forking, since there is nothing downstream that
// needs an independent address space. Redirections are applied to the
// built-in's stdout/stderr arguments rather than to the process's real
// fds, so the shell's own stdout survives untouched with no dup/restore
// needed.
func runSingleBuiltin(cmd ast.ExpandedCommand, fn builtin.Func, env *shellenv.Env, stdin, stdout, stderr *os.File) {
	_, rstdout, opened, err := applyRedirs(cmd.Redirs, stdin, stdout)
	if err != nil {
		shellerr.Report(stderr, cmd.Argv[0], err.Error())
		closeFiles(opened)
		env.LastStatus = 1
		return
	}

	status := fn(cmd.Argv, env, rstdout, stderr)
	closeFiles(opened)
	env.LastStatus = status
}

// waitStatus decodes the error Cmd.Wait returns into the §4.5/§7 exit
// status convention: the process's own exit code, or 128+signal when it
// died from a signal.
func waitStatus(err error) (status int, sig syscall.Signal, signaled bool) {
	if err == nil {
		return 0, 0, false
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		return 1, 0, false
	}
	ws, ok := exitErr.Sys().(syscall.WaitStatus)
	if !ok {
		return exitErr.ExitCode(), 0, false
	}
	if ws.Signaled() {
		return 128 + int(ws.Signal()), ws.Signal(), true
	}
	return ws.ExitStatus(), 0, false
}
