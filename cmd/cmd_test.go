package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomLouwers/websitesara/internal/batch"
	"github.com/TomLouwers/websitesara/internal/config"
)

const legacyFile = `{
  "metadata": {"grade": 3, "level": "M"},
  "items": [
    {"id": 1, "question": {"text": "Lisa heeft 3 appels. Ze krijgt er 2 bij. Hoeveel appels heeft Lisa nu?"},
     "options": [{"text": "4"}, {"text": "5"}, {"text": "6"}], "answer": {"correct_index": 1}}
  ]
}`

func writeLegacy(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "legacy.json")
	require.NoError(t, os.WriteFile(path, []byte(legacyFile), 0o644))
	return path
}

func TestValidateFiles(t *testing.T) {
	path := writeLegacy(t)
	cfg := config.Default()
	cfg.Color = config.ColorNever
	cfg.XLSX = filepath.Join(t.TempDir(), "run.xlsx")

	var out, errOut bytes.Buffer
	err := validateFiles(&out, &errOut, cfg, []string{path})
	assert.ErrorIs(t, err, batch.ErrInvalidItems)
	assert.Contains(t, out.String(), "ITEM 1/1: G_G3_M_001")
	assert.Contains(t, out.String(), "legacy file converted")
	assert.Empty(t, errOut.String())
	assert.FileExists(t, cfg.XLSX)
}

func TestValidateFiles_JSON(t *testing.T) {
	cfg := config.Default()
	cfg.Format = config.FormatJSON

	var out, errOut bytes.Buffer
	err := validateFiles(&out, &errOut, cfg, []string{writeLegacy(t)})
	assert.ErrorIs(t, err, batch.ErrInvalidItems)

	var run batch.Run
	require.NoError(t, json.Unmarshal(out.Bytes(), &run))
	assert.Equal(t, 1, run.Summary.Invalid)
	assert.True(t, run.Files[0].Converted)
}

func TestValidateFiles_XLSXFailureIsAWarning(t *testing.T) {
	cfg := config.Default()
	cfg.Color = config.ColorNever
	cfg.XLSX = filepath.Join(t.TempDir(), "missing-dir", "run.xlsx")

	var out, errOut bytes.Buffer
	err := validateFiles(&out, &errOut, cfg, []string{writeLegacy(t)})
	assert.ErrorIs(t, err, batch.ErrInvalidItems)
	assert.Contains(t, errOut.String(), "warning:")
}

func TestValidateFiles_UnknownDomain(t *testing.T) {
	cfg := config.Default()
	cfg.Domain = "sterrenkunde"
	err := validateFiles(&bytes.Buffer{}, &bytes.Buffer{}, cfg, []string{writeLegacy(t)})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, batch.ErrInvalidItems)
}

func TestResultSchema(t *testing.T) {
	data, err := resultSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "oefencheck validation run", schema["title"])
	assert.Contains(t, string(data), "quality_breakdown")
	assert.Contains(t, string(data), "answer_positions")
}

func TestRulesCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"rules", "verhaaltjes", "G4-M"})
	require.NoError(t, rootCmd.Execute())

	var entry struct {
		Key  string         `json:"key"`
		Rule map[string]any `json:"rule"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	assert.Equal(t, "G4-M", entry.Key)
	assert.Equal(t, 100.0, entry.Rule["max_answer"])

	out.Reset()
	rootCmd.SetArgs([]string{"rules", "verhoudingen", "G3-M"})
	assert.Error(t, rootCmd.Execute())
}
