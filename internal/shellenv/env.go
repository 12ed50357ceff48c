// Package shellenv implements Env, the process-wide variable store, the
// exit status of the last foreground pipeline, and the shell's own
// invocation name ($0). It is grounded on the registry-of-state idiom this
// codebase uses elsewhere (modules.Register/Get's map-backed registry with
// a sorted Names enumerator), adapted from "registered stdlib modules" to
// "variables plus their exported bit."
package shellenv

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// variable holds a value and whether it is marked for export to child
// processes.
type variable struct {
	value    string
	exported bool
}

// Env is the shell's variable store plus the two pieces of process-wide
// state every component reads: the exit status of the last foreground
// pipeline and the shell's own name.
type Env struct {
	vars       map[string]*variable
	LastStatus int
	ShellName  string
}

// New builds an Env by importing the host process's environment verbatim,
// per §6: "Environment on entry is inherited verbatim into Env." Every
// inherited variable starts out exported, matching a real shell's
// behavior for variables it did not itself create.
func New(shellName string) *Env {
	e := &Env{vars: make(map[string]*variable), ShellName: shellName}
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		e.vars[name] = &variable{value: value, exported: true}
	}
	return e
}

// ValidName reports whether name satisfies the variable-name rule in §3:
// non-empty, first character alphabetic or '_', remainder alphanumeric or
// '_'.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		isAlpha := c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		isDigit := c >= '0' && c <= '9'
		if i == 0 && !isAlpha {
			return false
		}
		if i > 0 && !isAlpha && !isDigit {
			return false
		}
	}
	return true
}

// Get returns the value of name and whether it is set at all. An unset
// variable yields ("", false); callers needing the empty-string-on-unset
// behavior (§4.3) use GetOrEmpty instead.
func (e *Env) Get(name string) (string, bool) {
	v, ok := e.vars[name]
	if !ok {
		return "", false
	}
	return v.value, true
}

// GetOrEmpty returns the value of name, or "" if it is unset.
func (e *Env) GetOrEmpty(name string) string {
	v, _ := e.Get(name)
	return v
}

// Set assigns value to name, creating the variable if absent. The
// exported bit is left unchanged if the variable already exists (export
// semantics live in Export, not Set).
func (e *Env) Set(name, value string) {
	if v, ok := e.vars[name]; ok {
		v.value = value
		return
	}
	e.vars[name] = &variable{value: value}
}

// Export marks name as exported, creating it (as empty) if absent, and
// optionally assigning value when withValue is true. This implements the
// §9 Open Question decision: "export NAME" with no '=' creates the
// variable if absent and marks it exported if present, without touching
// an existing value.
func (e *Env) Export(name string, value string, withValue bool) {
	v, ok := e.vars[name]
	if !ok {
		v = &variable{}
		e.vars[name] = v
	}
	v.exported = true
	if withValue {
		v.value = value
	}
}

// Unset removes name entirely.
func (e *Env) Unset(name string) {
	delete(e.vars, name)
}

// Exported returns the sorted names of every exported variable, as used
// by the `env` builtin (§4.5).
func (e *Env) Exported() []string {
	names := make([]string, 0, len(e.vars))
	for name, v := range e.vars {
		if v.exported {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Names returns every variable name in sorted order, exported or not.
// (`export` with no arguments lists only Exported names.)
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsExported reports whether name is currently marked for export.
func (e *Env) IsExported(name string) bool {
	v, ok := e.vars[name]
	return ok && v.exported
}

// Environ flattens every exported variable into "NAME=VALUE" form, for
// passing as a child process's envp.
func (e *Env) Environ() []string {
	out := make([]string, 0, len(e.vars))
	for _, name := range e.Exported() {
		out = append(out, fmt.Sprintf("%s=%s", name, e.vars[name].value))
	}
	return out
}
