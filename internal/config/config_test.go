package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_OverridesDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader("domain: lezen\nformat: json\nshow_infos: false\n"))
	require.NoError(t, err)
	assert.Equal(t, "lezen", cfg.Domain)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.False(t, cfg.ShowInfos)
	assert.False(t, cfg.FailOnWarnings)
}

func TestDecode_Empty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecode_UnknownKey(t *testing.T) {
	_, err := Decode(strings.NewReader("formaat: json\n"))
	assert.Error(t, err)
}

func TestDecode_InvalidValues(t *testing.T) {
	_, err := Decode(strings.NewReader("format: html\n"))
	assert.ErrorContains(t, err, "format must be")

	_, err = Decode(strings.NewReader("color: sometimes\n"))
	assert.ErrorContains(t, err, "color must be")
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("OEFENCHECK_CONFIG", "")

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(ProjectFile, []byte("fail_on_warnings: true\n"), 0o644))
	cfg, err = Resolve("")
	require.NoError(t, err)
	assert.True(t, cfg.FailOnWarnings)

	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(other, []byte("xlsx: out.xlsx\n"), 0o644))
	cfg, err = Resolve(other)
	require.NoError(t, err)
	assert.Equal(t, "out.xlsx", cfg.XLSX)
	assert.False(t, cfg.FailOnWarnings)

	t.Setenv("OEFENCHECK_CONFIG", other)
	cfg, err = Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "out.xlsx", cfg.XLSX)

	_, err = Resolve(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
