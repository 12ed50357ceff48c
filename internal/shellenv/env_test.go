package shellenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("_x"))
	assert.True(t, ValidName("Name1"))
	assert.False(t, ValidName(""))
	assert.False(t, ValidName("1name"))
	assert.False(t, ValidName("na-me"))
}

func TestSetAndGet(t *testing.T) {
	e := New("minishell")
	_, ok := e.Get("NOPE_NOT_SET")
	require.False(t, ok)

	e.Set("FOO", "bar")
	v, ok := e.Get("FOO")
	require.True(t, ok)
	assert.Equal(t, "bar", v)
	assert.Equal(t, "bar", e.GetOrEmpty("FOO"))
	assert.Equal(t, "", e.GetOrEmpty("STILL_NOPE"))
}

func TestSetDoesNotExportByDefault(t *testing.T) {
	e := New("minishell")
	e.Set("FOO", "bar")
	assert.False(t, e.IsExported("FOO"))
	assert.NotContains(t, e.Environ(), "FOO=bar")
}

func TestExportCreatesAbsentVariable(t *testing.T) {
	e := New("minishell")
	e.Export("FOO", "", false)
	assert.True(t, e.IsExported("FOO"))
	assert.Equal(t, "", e.GetOrEmpty("FOO"))
}

func TestExportWithoutValuePreservesExisting(t *testing.T) {
	e := New("minishell")
	e.Set("FOO", "bar")
	e.Export("FOO", "", false)
	assert.True(t, e.IsExported("FOO"))
	assert.Equal(t, "bar", e.GetOrEmpty("FOO"))
}

func TestExportWithValueOverwrites(t *testing.T) {
	e := New("minishell")
	e.Set("FOO", "bar")
	e.Export("FOO", "baz", true)
	assert.Equal(t, "baz", e.GetOrEmpty("FOO"))
	assert.Contains(t, e.Environ(), "FOO=baz")
}

func TestUnset(t *testing.T) {
	e := New("minishell")
	e.Set("FOO", "bar")
	e.Unset("FOO")
	_, ok := e.Get("FOO")
	assert.False(t, ok)
}

func TestNamesAndExportedAreSorted(t *testing.T) {
	e := &Env{vars: make(map[string]*variable), ShellName: "minishell"}
	e.Set("ZEBRA", "1")
	e.Set("APPLE", "2")
	e.Export("APPLE", "2", true)

	assert.Equal(t, []string{"APPLE", "ZEBRA"}, e.Names())
	assert.Equal(t, []string{"APPLE"}, e.Exported())
}
