package shellexec

import (
	"io"
	"os"
	"strings"

	"github.com/rubiojr/minishell/internal/ast"
)

// applyRedirs walks redirs left to right, opening each target with the
// flags §4.5 specifies (IN: O_RDONLY; OUT: O_WRONLY|O_CREATE|O_TRUNC,
// 0644; APPEND: O_WRONLY|O_CREATE|O_APPEND, 0644; HEREDOC: the collected
// body as a reader) and returning the final stdin/stdout for the stage.
// A later redirection of the same fd overrides an earlier one, but every
// redirection is still opened as a side effect, per §3's Command
// invariant. On any open failure every file opened so far by this call is
// closed and the failure is returned; the caller reports it as a
// Redirection error (§7) and does not start the stage.
func applyRedirs(redirs []ast.ExpandedRedir, defaultStdin io.Reader, defaultStdout io.Writer) (stdin io.Reader, stdout io.Writer, opened []*os.File, err error) {
	stdin = defaultStdin
	stdout = defaultStdout

	closeOpened := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, r := range redirs {
		switch r.Op {
		case ast.In:
			f, oerr := os.OpenFile(r.Target, os.O_RDONLY, 0)
			if oerr != nil {
				closeOpened()
				return nil, nil, nil, oerr
			}
			opened = append(opened, f)
			stdin = f

		case ast.Out:
			f, oerr := os.OpenFile(r.Target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
			if oerr != nil {
				closeOpened()
				return nil, nil, nil, oerr
			}
			opened = append(opened, f)
			stdout = f

		case ast.Append:
			f, oerr := os.OpenFile(r.Target, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
			if oerr != nil {
				closeOpened()
				return nil, nil, nil, oerr
			}
			opened = append(opened, f)
			stdout = f

		case ast.Heredoc:
			body := ""
			if r.HeredocBody != nil {
				body = *r.HeredocBody
			}
			stdin = strings.NewReader(body)
		}
	}

	return stdin, stdout, opened, nil
}

// closeFiles closes every file in fs, ignoring errors — used on cleanup
// paths where the files are about to go out of scope regardless.
func closeFiles(fs []*os.File) {
	for _, f := range fs {
		f.Close()
	}
}
