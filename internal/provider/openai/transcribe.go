package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go"

	"github.com/receptro-ai/receptro/internal/provider"
)

var _ provider.Transcriber = (*Client)(nil)

// verboseTranscription mirrors the verbose_json fields not surfaced by the
// typed Transcription struct.
type verboseTranscription struct {
	Language string  `json:"language"`
	Duration float64 `json:"duration"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

// Transcribe converts speech audio into text with the Whisper API.
func (c *Client) Transcribe(ctx context.Context, req *provider.TranscribeRequest) (*provider.TranscribeResult, error) {
	if req.Audio == nil {
		return nil, provider.ErrEmptyInput
	}

	params := openai.AudioTranscriptionNewParams{
		Model:          openai.AudioModel(c.cfg.TranscribeModel),
		File:           openai.File(req.Audio, req.Filename, "application/octet-stream"),
		ResponseFormat: openai.AudioResponseFormatVerboseJSON,
	}
	if req.Language != "" {
		params.Language = openai.String(req.Language)
	}

	resp, err := c.api.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai: transcription failed: %w", err)
	}

	result := &provider.TranscribeResult{
		Text:  strings.TrimSpace(resp.Text),
		Model: c.cfg.TranscribeModel,
	}

	// Language, duration and segments only appear in the verbose payload.
	var verbose verboseTranscription
	if err := json.Unmarshal([]byte(resp.RawJSON()), &verbose); err == nil {
		result.Language = verbose.Language
		result.Duration = verbose.Duration
		for _, s := range verbose.Segments {
			result.Segments = append(result.Segments, provider.TranscriptSegment{
				Start: s.Start,
				End:   s.End,
				Text:  strings.TrimSpace(s.Text),
			})
		}
	}
	if result.Language == "" {
		result.Language = "unknown"
	}
	if len(result.Segments) == 0 && result.Text != "" {
		result.Segments = []provider.TranscriptSegment{
			{Start: 0, End: result.Duration, Text: result.Text},
		}
	}

	return result, nil
}
