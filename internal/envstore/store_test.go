package envstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/alienv/internal/envstore"
	"github.com/hbjs97/alienv/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	for _, name := range []string{"work", "my-env", "v1.2", "a_b", "X"} {
		assert.NoError(t, envstore.ValidateName(name), name)
	}
	for _, name := range []string{"", "bad name!", "a/b", "NO ENV", ".", "..", "tab\there", "ünï"} {
		assert.ErrorIs(t, envstore.ValidateName(name), envstore.ErrInvalidName, name)
	}
}

func TestCreate_ThenExists(t *testing.T) {
	store := envstore.New(testutil.TempRoot(t), nil)

	require.NoError(t, store.Create("work"))

	exists, err := store.Exists("work")
	require.NoError(t, err)
	assert.True(t, exists)

	info, err := os.Stat(store.AliasFile("work"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestCreate_InvalidNameCreatesNothing(t *testing.T) {
	root := testutil.TempRoot(t)
	store := envstore.New(root, nil)

	err := store.Create("bad name!")
	assert.ErrorIs(t, err, envstore.ErrInvalidName)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreate_AlreadyExists(t *testing.T) {
	store := envstore.New(testutil.TempRoot(t), nil)
	require.NoError(t, store.Create("work"))

	err := store.Create("work")
	assert.ErrorIs(t, err, envstore.ErrAlreadyExists)
}

func TestCreate_MissingRoot(t *testing.T) {
	store := envstore.New(filepath.Join(t.TempDir(), "missing"), nil)

	err := store.Create("work")
	assert.ErrorIs(t, err, envstore.ErrFile)
}

func TestDelete_ThenNotExists(t *testing.T) {
	root := testutil.TempRoot(t)
	store := envstore.New(root, nil)
	testutil.SeedEnv(t, root, "work", `alias ll="ls -la"`)

	require.NoError(t, store.Delete("work"))

	exists, err := store.Exists("work")
	require.NoError(t, err)
	assert.False(t, exists)
	_, err = os.Stat(filepath.Join(root, "work"))
	assert.True(t, os.IsNotExist(err))
}

func TestDelete_NotFound(t *testing.T) {
	store := envstore.New(testutil.TempRoot(t), nil)

	assert.ErrorIs(t, store.Delete("ghost"), envstore.ErrNotFound)
}

func TestDelete_DotDotIsNotAnEnvironment(t *testing.T) {
	root := testutil.TempRoot(t)
	store := envstore.New(root, nil)

	assert.ErrorIs(t, store.Delete(".."), envstore.ErrNotFound)
	_, err := os.Stat(root)
	assert.NoError(t, err)
}

func TestList(t *testing.T) {
	root := testutil.TempRoot(t)
	store := envstore.New(root, nil)
	require.NoError(t, store.Create("work"))
	require.NoError(t, store.Create("home"))
	// 루트에 있는 일반 파일은 환경이 아니다
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), nil, 0600))

	names, err := store.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"work", "home"}, names)
}

func TestEnsureRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", ".alienv")
	store := envstore.New(root, nil)

	require.NoError(t, store.EnsureRoot())
	require.NoError(t, store.EnsureRoot())

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
