// Package shellerr centralizes the "minishell: " error prefix (§7) so it
// is never hand-typed at each call site, the way ast/parse.go and
// compiler/compiler.go funnel every user-visible error through a single
// %w-wrapping convention.
package shellerr

import (
	"fmt"
	"io"
)

// Report writes "minishell: CONTEXT: MSG\n" to w, or "minishell: MSG\n"
// when context is empty. Per §7 this never terminates the shell; callers
// decide the resulting exit status independently.
func Report(w io.Writer, context, msg string) {
	if context == "" {
		fmt.Fprintf(w, "minishell: %s\n", msg)
		return
	}
	fmt.Fprintf(w, "minishell: %s: %s\n", context, msg)
}
