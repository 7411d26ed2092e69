package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["version"],
	"additionalProperties": false,
	"properties": {
		"version": {"enum": ["1"]},
		"server": {
			"type": "object",
			"additionalProperties": false,
			"properties": {"http_port": {"type": "integer"}}
		},
		"speech": {
			"type": "object",
			"additionalProperties": false,
			"properties": {
				"engine": {"enum": ["piper", "openai", "none"]}
			}
		}
	}
}`

func writeConfigFiles(t *testing.T, yamlBody string) (configPath, schemaPath string) {
	t.Helper()
	dir := t.TempDir()

	configPath = filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(yamlBody), 0o644))

	schemaPath = filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))

	return configPath, schemaPath
}

func TestLoadAndValidate(t *testing.T) {
	configPath, schemaPath := writeConfigFiles(t, `
version: "1"
server:
  http_port: 9090
speech:
  engine: none
`)

	cfg, err := LoadAndValidate(configPath, schemaPath)
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, SpeechEngineNone, cfg.Speech.Engine)

	// Unset fields are filled with defaults.
	assert.Equal(t, int64(25<<20), cfg.Pipeline.MaxUploadBytes)
	assert.Equal(t, "whisper-1", cfg.OpenAI.TranscribeModel)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.IntentModel)
	assert.Equal(t, "outputs/audio", cfg.Outputs.AudioDir)
}

func TestLoadAndValidate_SchemaViolation(t *testing.T) {
	configPath, schemaPath := writeConfigFiles(t, `
version: "1"
speech:
  engine: espeak
`)

	_, err := LoadAndValidate(configPath, schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadAndValidate_UnknownKey(t *testing.T) {
	configPath, schemaPath := writeConfigFiles(t, `
version: "1"
banana: true
`)

	_, err := LoadAndValidate(configPath, schemaPath)
	assert.Error(t, err)
}

func TestLoadAndValidate_InvalidYAML(t *testing.T) {
	configPath, schemaPath := writeConfigFiles(t, "version: [unclosed")

	_, err := LoadAndValidate(configPath, schemaPath)
	assert.Error(t, err)
}

func TestLoadAndValidate_MissingFile(t *testing.T) {
	_, schemaPath := writeConfigFiles(t, `version: "1"`)

	_, err := LoadAndValidate(filepath.Join(t.TempDir(), "nope.yaml"), schemaPath)
	assert.Error(t, err)
}

func TestApplyDefaults_EngineFallsBackToPiper(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	assert.Equal(t, SpeechEnginePiper, cfg.Speech.Engine)
	assert.Equal(t, "tts-1", cfg.Speech.OpenAI.Model)
	assert.Equal(t, "alloy", cfg.Speech.OpenAI.Voice)
}
