// Package heredoc collects heredoc bodies before any pipeline stage is
// forked, so a SIGINT during body entry aborts cleanly in the parent
// (§4.4). It is a close adaptation of this codebase's own heredoc
// expansion pass, preprocess/preprocess.go's ExpandHeredocs: that function
// reads source lines into a slice until the delimiter line. This one reads
// from an interactive line reader instead of a pre-supplied string, stops
// at a line that equals the delimiter exactly (EOF also ends the body,
// with no error), and applies variable expansion to the collected lines
// exactly when the delimiter token was entirely unquoted.
package heredoc

import (
	"fmt"
	"strings"

	"github.com/rubiojr/minishell/internal/ast"
	"github.com/rubiojr/minishell/internal/expand"
	"github.com/rubiojr/minishell/internal/shellenv"
)

// LineReader reads one line at a time for heredoc body entry, printing
// the given secondary prompt. It returns (line, true) normally or
// ("", false) on EOF.
type LineReader func(prompt string) (string, bool)

// Aborted is returned by Collect when SIGINT interrupted heredoc entry
// partway through; the caller must abort the whole pipeline and set
// last_status=130 (§4.4, §4.6).
var Aborted = fmt.Errorf("heredoc collection interrupted")

// Collect walks pipeline in order and, for each HEREDOC redirection,
// reads lines via readLine (secondary prompt "> ") until a line equals
// the delimiter exactly, then stores the concatenated body (newline
// terminated) back onto the expanded pipeline's matching redirection.
// interrupted is polled between lines so a HEREDOC-context SIGINT can
// cancel collection before any fork (§4.6's HEREDOC row).
func Collect(parsed *ast.Pipeline, expanded *ast.ExpandedPipeline, env *shellenv.Env, readLine LineReader, interrupted func() bool) error {
	for ci := range parsed.Commands {
		for ri, r := range parsed.Commands[ci].Redirs {
			if r.Op != ast.Heredoc {
				continue
			}

			delimiter := r.Target
			expandBody := r.TargetToken.AllUnquoted()

			var lines []string
			for {
				if interrupted != nil && interrupted() {
					return Aborted
				}
				line, ok := readLine("> ")
				if !ok {
					// EOF ends heredoc collection the way it ends the
					// shell itself: whatever was collected stands.
					break
				}
				if line == delimiter {
					break
				}
				if expandBody {
					line = expand.ExpandLine(line, env)
				}
				lines = append(lines, line)
			}

			body := ""
			if len(lines) > 0 {
				body = strings.Join(lines, "\n") + "\n"
			}
			expanded.Commands[ci].Redirs[ri].HeredocBody = &body
		}
	}
	return nil
}
