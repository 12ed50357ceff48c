// Package expand performs $VAR, $?, $0 substitution on the already
// tokenized fragments the lexer and parser produced, quote-aware: single
// quoting suppresses all expansion, double quoting permits '$' expansion
// but not word splitting, and unquoted text does both. It runs after
// parsing and before heredoc collection, over every WORD token of every
// Command — both argv entries and non-heredoc redirection targets.
package expand

import (
	"strconv"
	"strings"

	"github.com/rubiojr/minishell/internal/ast"
	"github.com/rubiojr/minishell/internal/quotescan"
	"github.com/rubiojr/minishell/internal/shellenv"
)

// Expand substitutes variables across every word and non-heredoc
// redirection target of pipeline, producing a ready-to-execute
// ExpandedPipeline. Heredoc targets are left untouched — they are used
// verbatim to terminate the heredoc and to decide whether its body is
// expanded (internal/heredoc).
func Expand(pipeline *ast.Pipeline, env *shellenv.Env) *ast.ExpandedPipeline {
	out := &ast.ExpandedPipeline{}
	for _, cmd := range pipeline.Commands {
		var ec ast.ExpandedCommand
		for _, w := range cmd.Words {
			ec.Argv = append(ec.Argv, expandToken(w, env)...)
		}
		for _, r := range cmd.Redirs {
			if r.Op == ast.Heredoc {
				ec.Redirs = append(ec.Redirs, ast.ExpandedRedir{Op: r.Op, Target: r.Target})
				continue
			}
			ec.Redirs = append(ec.Redirs, ast.ExpandedRedir{
				Op:     r.Op,
				Target: expandNoSplit(r.TargetToken, env),
			})
		}
		out.Commands = append(out.Commands, ec)
	}
	return out
}

// ExpandLine applies DOUBLE-style substitution (expansion, no splitting)
// to a single heredoc body line, used by internal/heredoc when the
// heredoc's delimiter was entirely unquoted.
func ExpandLine(line string, env *shellenv.Env) string {
	return substitute(line, env)
}

// expandNoSplit expands tok the way DOUBLE-quoted text is expanded:
// substitution happens, but the result is never split, because it names a
// single redirection target.
func expandNoSplit(tok ast.Token, env *shellenv.Env) string {
	var sb strings.Builder
	for _, f := range tok.Fragments {
		if f.Quoting == ast.Single {
			sb.WriteString(f.Text)
		} else {
			sb.WriteString(substitute(f.Text, env))
		}
	}
	return sb.String()
}

// expandToken expands tok into zero or more argv entries, applying word
// splitting at the boundaries of unquoted substitutions only (§4.3).
func expandToken(tok ast.Token, env *shellenv.Env) []string {
	var result []string
	cur := ""
	// pending is set while cur holds a word still to be emitted; a word
	// built only from quoted fragments may be pending and empty.
	pending := false

	for _, f := range tok.Fragments {
		switch f.Quoting {
		case ast.Single:
			cur += f.Text
			pending = true

		case ast.Double:
			cur += substitute(f.Text, env)
			pending = true

		case ast.NoQuote:
			text := substitute(f.Text, env)
			if text == "" {
				continue
			}
			fields := strings.Fields(text)
			leadingWS := isSpace(text[0])
			trailingWS := isSpace(text[len(text)-1])

			if len(fields) == 0 {
				// Pure whitespace: a boundary with no word of its own.
				if pending {
					result = append(result, cur)
				}
				cur, pending = "", false
				continue
			}

			idx := 0
			if leadingWS {
				if pending {
					result = append(result, cur)
				}
				cur, pending = "", false
			} else {
				cur += fields[0]
				pending = true
				idx = 1
				if idx < len(fields) || trailingWS {
					// More fields or trailing whitespace follow: cur is a
					// complete word now and must be flushed before they're
					// appended, or it's silently discarded when the last
					// field overwrites cur below.
					result = append(result, cur)
					cur, pending = "", false
				}
			}
			for idx < len(fields) {
				last := idx == len(fields)-1
				if last && !trailingWS {
					cur, pending = fields[idx], true
				} else {
					result = append(result, fields[idx])
				}
				idx++
			}
		}
	}
	if pending {
		result = append(result, cur)
	}
	return result
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' }

// substitute scans text (a DOUBLE-quoted or unquoted fragment) for '$'
// and applies the recognized forms: $?, $0, $NAME, and a bare '$' before
// anything else (including end of fragment, a digit other than 0, or
// punctuation), which is literal — the following character is rescanned
// normally.
func substitute(text string, env *shellenv.Env) string {
	var sb strings.Builder
	i := 0
	for i < len(text) {
		if text[i] != '$' {
			sb.WriteByte(text[i])
			i++
			continue
		}
		if i+1 >= len(text) {
			sb.WriteByte('$')
			i++
			continue
		}
		next := text[i+1]
		switch {
		case next == '?':
			sb.WriteString(strconv.Itoa(env.LastStatus))
			i += 2
		case next == '0':
			sb.WriteString(env.ShellName)
			i += 2
		case quotescan.IsNameStart(next):
			j := i + 1
			for j < len(text) && quotescan.IsNameByte(text[j]) {
				j++
			}
			sb.WriteString(env.GetOrEmpty(text[i+1 : j]))
			i = j
		default:
			sb.WriteByte('$')
			i++
		}
	}
	return sb.String()
}
