/*
File    : jcjl/internal/config/config_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoFilePresentUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	restore := chdir(t, dir)
	defer restore()

	cfg, err := Load()
	require.True(t, err.IsNil())
	assert.Equal(t, "jcjl >>> ", cfg.Prompt)
	assert.True(t, cfg.ColorEnabled())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	restore := chdir(t, dir)
	defer restore()

	contents := "color: false\nprompt: \"mine >>> \"\nhistoryFile: hist.txt\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte(contents), 0o644))

	cfg, err := Load()
	require.True(t, err.IsNil())
	assert.Equal(t, "mine >>> ", cfg.Prompt)
	assert.Equal(t, "hist.txt", cfg.HistoryFile)
	assert.False(t, cfg.ColorEnabled())
}

func TestLoad_MalformedFileIsConfigError(t *testing.T) {
	dir := t.TempDir()
	restore := chdir(t, dir)
	defer restore()

	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte("color: [this is not a bool"), 0o644))

	_, err := Load()
	assert.False(t, err.IsNil())
}

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}
