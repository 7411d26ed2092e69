package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/receptro-ai/receptro/internal/provider"
)

// Transcription is the output of the speech-to-text stage.
type Transcription struct {
	Text     string                       `json:"text"`
	Language string                       `json:"language"`
	Duration float64                      `json:"duration"`
	Segments []provider.TranscriptSegment `json:"segments"`
	Metadata TranscriptionMetadata        `json:"metadata"`
}

// TranscriptionMetadata describes how the transcription was produced.
type TranscriptionMetadata struct {
	AudioFile string `json:"audio_file"`
	Model     string `json:"model"`
	Step      string `json:"step"`
}

// Transcriber is the speech-to-text stage service.
type Transcriber struct {
	provider provider.Transcriber
}

// NewTranscriber creates a new Transcriber service.
func NewTranscriber(p provider.Transcriber) *Transcriber {
	return &Transcriber{provider: p}
}

// TranscribeFile converts the speech in an audio file into text.
func (t *Transcriber) TranscribeFile(ctx context.Context, audioPath, language string) (*Transcription, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("transcribe: failed to open audio file: %w", err)
	}
	defer f.Close()

	result, err := t.provider.Transcribe(ctx, &provider.TranscribeRequest{
		Audio:    f,
		Filename: filepath.Base(audioPath),
		Language: language,
	})
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}

	return &Transcription{
		Text:     result.Text,
		Language: result.Language,
		Duration: result.Duration,
		Segments: result.Segments,
		Metadata: TranscriptionMetadata{
			AudioFile: filepath.Base(audioPath),
			Model:     result.Model,
			Step:      "speech_to_text",
		},
	}, nil
}
