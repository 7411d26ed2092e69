package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/receptro-ai/receptro/internal/envvar"
)

// DefaultConfigPath returns the default path for the Receptro config directory.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "receptro", "config")
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "receptro")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "receptro")
	default: // Linux, BSD, etc.
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "receptro")
		}
		return filepath.Join(home, ".config", "receptro")
	}
}

// DefaultHTTPPort returns the HTTP port, honoring the environment override.
func DefaultHTTPPort() int {
	if v := os.Getenv(envvar.ReceptroServerHTTPPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			return port
		}
	}
	return 8080
}

const (
	defaultMaxUploadBytes  = 25 << 20 // 25 MiB, the Whisper API upload cap
	defaultTempDir         = "temp"
	defaultAudioDir        = "outputs/audio"
	defaultJSONDir         = "outputs/json"
	defaultTranscribeModel = "whisper-1"
	defaultIntentModel     = "gpt-4o"
	defaultVisionModel     = "gpt-4o"
	defaultSpeechModel     = "tts-1"
	defaultSpeechVoice     = "alloy"
)

// ApplyDefaults fills unset fields with their default values.
func (c *Config) ApplyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = DefaultHTTPPort()
	}
	if c.Pipeline.MaxUploadBytes == 0 {
		c.Pipeline.MaxUploadBytes = defaultMaxUploadBytes
	}
	if c.Pipeline.TempDir == "" {
		c.Pipeline.TempDir = defaultTempDir
	}
	if c.Outputs.AudioDir == "" {
		c.Outputs.AudioDir = defaultAudioDir
	}
	if c.Outputs.JSONDir == "" {
		c.Outputs.JSONDir = defaultJSONDir
	}
	if c.OpenAI.TranscribeModel == "" {
		c.OpenAI.TranscribeModel = defaultTranscribeModel
	}
	if c.OpenAI.IntentModel == "" {
		c.OpenAI.IntentModel = defaultIntentModel
	}
	if c.OpenAI.VisionModel == "" {
		c.OpenAI.VisionModel = defaultVisionModel
	}
	if c.Speech.Engine == "" {
		c.Speech.Engine = SpeechEnginePiper
	}
	if c.Speech.OpenAI.Model == "" {
		c.Speech.OpenAI.Model = defaultSpeechModel
	}
	if c.Speech.OpenAI.Voice == "" {
		c.Speech.OpenAI.Voice = defaultSpeechVoice
	}
}
