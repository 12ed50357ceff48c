package expand

import (
	"testing"

	"github.com/rubiojr/minishell/internal/lexer"
	"github.com/rubiojr/minishell/internal/parser"
	"github.com/rubiojr/minishell/internal/shellenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expandLine(t *testing.T, line string, env *shellenv.Env) []string {
	t.Helper()
	tokens, err := lexer.Lex(line)
	require.NoError(t, err)
	pipeline, err := parser.Parse(tokens)
	require.NoError(t, err)
	require.NotNil(t, pipeline)
	expanded := Expand(pipeline, env)
	require.Len(t, expanded.Commands, 1)
	return expanded.Commands[0].Argv
}

func newEnv() *shellenv.Env {
	e := shellenv.New("minishell")
	e.Set("NAME", "world")
	e.LastStatus = 7
	return e
}

func TestExpandSingleQuoteSuppressesAll(t *testing.T) {
	argv := expandLine(t, `echo '$NAME $?'`, newEnv())
	assert.Equal(t, []string{"echo", "$NAME $?"}, argv)
}

func TestExpandDoubleQuotePermitsVarsNoSplitting(t *testing.T) {
	argv := expandLine(t, `echo "hi $NAME  two  spaces"`, newEnv())
	assert.Equal(t, []string{"echo", "hi world  two  spaces"}, argv)
}

func TestExpandUnquotedSplitsOnWhitespace(t *testing.T) {
	env := newEnv()
	env.Set("LIST", "a  b   c")
	argv := expandLine(t, "echo $LIST", env)
	assert.Equal(t, []string{"echo", "a", "b", "c"}, argv)
}

func TestExpandQuestionAndZero(t *testing.T) {
	argv := expandLine(t, `echo $? $0`, newEnv())
	assert.Equal(t, []string{"echo", "7", "minishell"}, argv)
}

func TestExpandUnsetVarYieldsEmpty(t *testing.T) {
	argv := expandLine(t, `echo a$UNSET`, newEnv())
	assert.Equal(t, []string{"echo", "a"}, argv)
}

func TestExpandEmptyUnquotedArgvIsDropped(t *testing.T) {
	argv := expandLine(t, `echo $UNSET`, newEnv())
	assert.Equal(t, []string{"echo"}, argv)
}

func TestExpandQuotedEmptyArgvIsKept(t *testing.T) {
	argv := expandLine(t, `echo ""`, newEnv())
	assert.Equal(t, []string{"echo", ""}, argv)
}

func TestExpandBareDollarIsLiteral(t *testing.T) {
	argv := expandLine(t, `echo a$ b`, newEnv())
	assert.Equal(t, []string{"echo", "a$", "b"}, argv)
}

func TestExpandRedirectionTargetNoSplit(t *testing.T) {
	env := newEnv()
	env.Set("FILE", "out file.txt")
	tokens, err := lexer.Lex("cat > $FILE")
	require.NoError(t, err)
	pipeline, err := parser.Parse(tokens)
	require.NoError(t, err)
	expanded := Expand(pipeline, env)
	require.Len(t, expanded.Commands[0].Redirs, 1)
	assert.Equal(t, "out file.txt", expanded.Commands[0].Redirs[0].Target)
}

func TestExpandHeredocTargetUntouched(t *testing.T) {
	env := newEnv()
	tokens, err := lexer.Lex("cat << $NAME")
	require.NoError(t, err)
	pipeline, err := parser.Parse(tokens)
	require.NoError(t, err)
	expanded := Expand(pipeline, env)
	require.Len(t, expanded.Commands[0].Redirs, 1)
	assert.Equal(t, "$NAME", expanded.Commands[0].Redirs[0].Target)
}
