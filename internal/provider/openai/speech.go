package openai

import (
	"context"
	"fmt"
	"io"

	"github.com/openai/openai-go"

	"github.com/receptro-ai/receptro/internal/provider"
)

var _ provider.SpeechEngine = (*Client)(nil)

// Name returns the engine identifier.
func (c *Client) Name() string {
	return "openai"
}

// Synthesize renders text as WAV audio with the OpenAI speech API.
func (c *Client) Synthesize(ctx context.Context, req *provider.SpeechRequest) (*provider.SpeechResult, error) {
	if req.Text == "" {
		return nil, provider.ErrEmptyInput
	}

	resp, err := c.api.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModel(c.cfg.SpeechModel),
		Voice:          openai.AudioSpeechNewParamsVoice(c.cfg.SpeechVoice),
		Input:          req.Text,
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatWAV,
	})
	if err != nil {
		return nil, fmt.Errorf("openai: speech synthesis failed: %w", err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to read audio response: %w", err)
	}

	return &provider.SpeechResult{
		Audio:  audio,
		Format: "wav",
		Engine: c.Name(),
	}, nil
}
