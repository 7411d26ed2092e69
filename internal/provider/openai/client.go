// Package openai implements the provider interfaces on top of the OpenAI
// platform APIs (Whisper transcription, chat completions, vision and speech).
package openai

import (
	"errors"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/receptro-ai/receptro/internal/envvar"
)

// Config holds the model assignments for the client.
type Config struct {
	APIKey          string
	BaseURL         string
	TranscribeModel string
	IntentModel     string
	VisionModel     string
	SpeechModel     string
	SpeechVoice     string
}

// Client talks to the OpenAI platform. It implements provider.Transcriber,
// provider.Completer, provider.VisionReader and provider.SpeechEngine.
type Client struct {
	api openai.Client
	cfg Config
}

// NewClient creates a new Client. The API key falls back to the
// OPENAI_API_KEY environment variable when not set in cfg.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(envvar.OpenAIAPIKey)
	}
	if cfg.APIKey == "" {
		return nil, errors.New("openai: missing API key")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		api: openai.NewClient(opts...),
		cfg: cfg,
	}, nil
}
