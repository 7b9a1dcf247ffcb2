package doctor_test

import (
	"path/filepath"
	"testing"

	"github.com/hbjs97/alienv/internal/doctor"
	"github.com/hbjs97/alienv/internal/envstore"
	"github.com/hbjs97/alienv/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRoot(t *testing.T) {
	ok := doctor.CheckRoot(envstore.New(testutil.TempRoot(t), nil))
	assert.Equal(t, doctor.StatusOK, ok.Status)

	missing := doctor.CheckRoot(envstore.New(filepath.Join(t.TempDir(), "missing"), nil))
	assert.Equal(t, doctor.StatusFail, missing.Status)
	assert.NotEmpty(t, missing.Fix)
}

func TestCheckMarker(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.SeedEnv(t, root, "work")
	store := envstore.New(root, nil)

	r := doctor.CheckMarker(testutil.Env{}.Lookup, "ALIAS_ENV", store)
	assert.Equal(t, doctor.StatusWarn, r.Status)

	r = doctor.CheckMarker(testutil.Env{"ALIAS_ENV": "NO ENV"}.Lookup, "ALIAS_ENV", store)
	assert.Equal(t, doctor.StatusOK, r.Status)

	r = doctor.CheckMarker(testutil.Env{"ALIAS_ENV": "work"}.Lookup, "ALIAS_ENV", store)
	assert.Equal(t, doctor.StatusOK, r.Status)

	r = doctor.CheckMarker(testutil.Env{"ALIAS_ENV": "ghost"}.Lookup, "ALIAS_ENV", store)
	assert.Equal(t, doctor.StatusFail, r.Status)
	assert.Contains(t, r.Fix, "NO ENV")
}

func TestCheckAliasFiles(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.SeedEnv(t, root, "good", `alias ll="ls -la"`)
	testutil.SeedEnv(t, root, "dup", `alias ll="ls -la"`, `alias ll="ls -l"`)
	testutil.SeedEnv(t, root, "bad", "not an alias")

	results := doctor.CheckAliasFiles(envstore.New(root, nil))
	require.Len(t, results, 3)

	byName := make(map[string]doctor.DiagResult)
	for _, r := range results {
		byName[r.Name] = r
	}
	assert.Equal(t, doctor.StatusOK, byName["env_good"].Status)
	assert.Equal(t, doctor.StatusWarn, byName["env_dup"].Status)
	assert.Contains(t, byName["env_dup"].Message, "ll")
	assert.Equal(t, doctor.StatusFail, byName["env_bad"].Status)
}

func TestRunAll(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.SeedEnv(t, root, "work")

	results := doctor.RunAll(envstore.New(root, nil), testutil.Env{"ALIAS_ENV": "work"}.Lookup, "ALIAS_ENV")
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, doctor.StatusOK, r.Status, "check %s should be OK", r.Name)
	}
}
