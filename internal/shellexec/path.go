package shellexec

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rubiojr/minishell/internal/shellenv"
)

// resolvePath implements §4.5's command-resolution rule: a name containing
// '/' is used verbatim; otherwise every ':'-separated $PATH entry is tried
// in order. Unlike exec.LookPath, this distinguishes "not found anywhere"
// (127) from "found but not a runnable regular file" (126), which the
// exit-status table in §4.5/§7 requires and os/exec's own lookup collapses.
func resolvePath(name string, env *shellenv.Env) (path string, status int, errMsg string) {
	if strings.Contains(name, "/") {
		exists, executable := statExecutable(name)
		if !exists {
			return "", 127, "command not found"
		}
		if !executable {
			return "", 126, "permission denied"
		}
		return name, 0, ""
	}

	foundNotExecutable := false
	for _, dir := range strings.Split(env.GetOrEmpty("PATH"), ":") {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		exists, executable := statExecutable(candidate)
		if !exists {
			continue
		}
		if executable {
			return candidate, 0, ""
		}
		foundNotExecutable = true
	}

	if foundNotExecutable {
		return "", 126, "permission denied"
	}
	return "", 127, "command not found"
}

func statExecutable(p string) (exists bool, executable bool) {
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return false, false
	}
	return true, info.Mode()&0111 != 0
}
