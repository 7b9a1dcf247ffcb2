package shell_test

import (
	"testing"

	"github.com/hbjs97/alienv/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialect(t *testing.T, name string) shell.Dialect {
	t.Helper()
	d, ok := shell.Lookup(name)
	require.True(t, ok, name)
	return d
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"bash", "zsh", "sh", "fish"} {
		assert.Equal(t, name, dialect(t, name).Name())
	}
	_, ok := shell.Lookup("tcsh")
	assert.False(t, ok)
	assert.Equal(t, []string{"bash", "fish", "sh", "zsh"}, shell.Supported())
}

func TestPosix_Statements(t *testing.T) {
	d := dialect(t, "zsh")
	assert.Equal(t, `export ALIAS_ENV='work'`, d.SetEnv("ALIAS_ENV", "work"))
	assert.Equal(t, `export ALIAS_ENV='NO ENV'`, d.SetEnv("ALIAS_ENV", "NO ENV"))
	assert.Equal(t, `alias ll="ls -la"`, d.Alias("ll", "ls -la"))
	assert.Equal(t, "unalias ll", d.Unalias("ll"))
	assert.Equal(t, `echo 'work*'`, d.Echo("work*"))
	assert.Equal(t, `echo 'it'\''s'`, d.Echo("it's"))
}

func TestFish_Statements(t *testing.T) {
	d := dialect(t, "fish")
	assert.Equal(t, `set -gx ALIAS_ENV 'NO ENV'`, d.SetEnv("ALIAS_ENV", "NO ENV"))
	assert.Equal(t, `alias ll "ls -la"`, d.Alias("ll", "ls -la"))
	assert.Equal(t, "functions -e ll", d.Unalias("ll"))
	assert.Equal(t, `echo 'it\'s'`, d.Echo("it's"))
}

func TestErrorStatement(t *testing.T) {
	assert.Equal(t, `echo 'Error: No such alias.'`, shell.ErrorStatement(dialect(t, "bash"), "No such alias."))
}

func TestHook_Posix(t *testing.T) {
	snippet := dialect(t, "bash").Hook("alienv")
	assert.Contains(t, snippet, "alienv shell integration (bash)")
	assert.Contains(t, snippet, `eval "$(command alienv "$@")"`)
}

func TestHook_Fish(t *testing.T) {
	snippet := dialect(t, "fish").Hook("alienv")
	assert.Contains(t, snippet, "function alienv")
	assert.Contains(t, snippet, "command alienv $argv")
}

func TestEmitter_Flush(t *testing.T) {
	e := shell.NewEmitter(dialect(t, "bash"), "ALIAS_ENV")
	e.EmitSetMarker("work")
	e.EmitAlias("ll", "ls -la")
	e.EmitUnalias("gs")
	e.EmitEcho("done")
	e.Emit("")

	assert.Equal(t, 4, e.Len())
	out, err := e.Flush()
	require.NoError(t, err)
	assert.Equal(t, `export ALIAS_ENV='work';alias ll="ls -la";unalias gs;echo 'done';`, out)
}

func TestEmitter_Empty(t *testing.T) {
	e := shell.NewEmitter(dialect(t, "bash"), "ALIAS_ENV")
	out, err := e.Flush()
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestEmitter_FlushOnce(t *testing.T) {
	e := shell.NewEmitter(dialect(t, "bash"), "ALIAS_ENV")
	e.EmitEcho("x")
	_, err := e.Flush()
	require.NoError(t, err)

	_, err = e.Flush()
	assert.ErrorIs(t, err, shell.ErrAlreadyFlushed)
	assert.Panics(t, func() { e.EmitEcho("y") })
}

func TestEmitter_StatementsIsCopy(t *testing.T) {
	e := shell.NewEmitter(dialect(t, "bash"), "ALIAS_ENV")
	e.EmitEcho("x")

	stmts := e.Statements()
	stmts[0] = "mutated"
	assert.Equal(t, []string{"echo 'x'"}, e.Statements())
}
