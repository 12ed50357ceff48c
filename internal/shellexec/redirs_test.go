package shellexec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rubiojr/minishell/internal/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRedirsOutTruncatesAndCreates(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(target, []byte("stale"), 0644))

	redirs := []ast.ExpandedRedir{{Op: ast.Out, Target: target}}
	_, stdout, opened, err := applyRedirs(redirs, nil, nil)
	require.NoError(t, err)
	require.Len(t, opened, 1)

	stdout.Write([]byte("fresh"))
	closeFiles(opened)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data))
}

func TestApplyRedirsAppendKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(target, []byte("first\n"), 0644))

	redirs := []ast.ExpandedRedir{{Op: ast.Append, Target: target}}
	_, stdout, opened, err := applyRedirs(redirs, nil, nil)
	require.NoError(t, err)

	stdout.Write([]byte("second\n"))
	closeFiles(opened)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestApplyRedirsInMissingFileErrors(t *testing.T) {
	redirs := []ast.ExpandedRedir{{Op: ast.In, Target: "/no/such/file/anywhere"}}
	_, _, opened, err := applyRedirs(redirs, nil, nil)
	assert.Error(t, err)
	assert.Empty(t, opened)
}

func TestApplyRedirsHeredocBodyAsStdin(t *testing.T) {
	body := "hello\nworld\n"
	redirs := []ast.ExpandedRedir{{Op: ast.Heredoc, HeredocBody: &body}}
	stdin, _, opened, err := applyRedirs(redirs, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, opened)

	buf := make([]byte, len(body))
	n, _ := stdin.Read(buf)
	assert.Equal(t, body, string(buf[:n]))
}

func TestApplyRedirsLaterOverridesEarlierSameFd(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")

	redirs := []ast.ExpandedRedir{
		{Op: ast.Out, Target: first},
		{Op: ast.Out, Target: second},
	}
	_, stdout, opened, err := applyRedirs(redirs, nil, nil)
	require.NoError(t, err)
	require.Len(t, opened, 2)

	stdout.Write([]byte("to second"))
	closeFiles(opened)

	// Both are opened (and truncated) as a side effect, but only the
	// last one received the write.
	_, statErr := os.Stat(first)
	assert.NoError(t, statErr)
	data, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, "to second", string(data))
}

func TestResolvePathWithSlashNotFound(t *testing.T) {
	_, status, msg := resolvePath("/no/such/binary", nil)
	assert.Equal(t, 127, status)
	assert.Contains(t, msg, "not found")
}

func TestResolvePathSearchesPATH(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "mytool")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0755))

	env := newTestEnv(t, "PATH", dir)
	path, status, msg := resolvePath("mytool", env)
	assert.Equal(t, 0, status)
	assert.Empty(t, msg)
	assert.Equal(t, bin, path)
}

func TestResolvePathFoundButNotExecutable(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "mytool")
	require.NoError(t, os.WriteFile(bin, []byte("not executable"), 0644))

	env := newTestEnv(t, "PATH", dir)
	_, status, msg := resolvePath("mytool", env)
	assert.Equal(t, 126, status)
	assert.Contains(t, msg, "permission denied")
}

func TestResolvePathNotFoundAnywhere(t *testing.T) {
	env := newTestEnv(t, "PATH", strings.Join([]string{t.TempDir(), t.TempDir()}, ":"))
	_, status, msg := resolvePath("does-not-exist-anywhere", env)
	assert.Equal(t, 127, status)
	assert.Contains(t, msg, "not found")
}
