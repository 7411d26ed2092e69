package service

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/receptro-ai/receptro/internal/provider"
	"github.com/receptro-ai/receptro/internal/xfs"
)

// Speech is the output of the text-to-speech stage.
type Speech struct {
	Text      string         `json:"text"`
	AudioFile string         `json:"audio_file,omitempty"`
	Filename  string         `json:"filename"`
	Metadata  SpeechMetadata `json:"metadata"`
}

// SpeechMetadata describes how the audio reply was produced.
type SpeechMetadata struct {
	Engine     string `json:"engine"`
	TextLength int    `json:"text_length"`
	Step       string `json:"step"`
	Note       string `json:"note,omitempty"`
}

// Synthesizer is the text-to-speech stage service. A nil engine degrades all
// synthesis to text-only replies instead of failing the pipeline.
type Synthesizer struct {
	engine     provider.SpeechEngine
	audioDir   string
	parameters map[string]any
}

// NewSynthesizer creates a new Synthesizer service.
func NewSynthesizer(engine provider.SpeechEngine, audioDir string, parameters map[string]any) *Synthesizer {
	return &Synthesizer{
		engine:     engine,
		audioDir:   audioDir,
		parameters: parameters,
	}
}

// Synthesize converts text into an audio reply saved under the audio output
// directory. Engine failures produce a text-only reply, never an error.
func (s *Synthesizer) Synthesize(ctx context.Context, text, filename string) (*Speech, error) {
	if filename == "" {
		filename = "response.wav"
	}

	if s.engine == nil {
		return s.textOnly(text, filename, "TTS engine not available, text response only"), nil
	}

	result, err := s.engine.Synthesize(ctx, &provider.SpeechRequest{
		Text:       text,
		Parameters: s.parameters,
	})
	if err != nil {
		slog.Warn("Speech synthesis failed, returning text only", "engine", s.engine.Name(), "error", err)
		return s.textOnly(text, filename, "synthesis failed: "+err.Error()), nil
	}

	if err := xfs.EnsureDir(s.audioDir); err != nil {
		return nil, err
	}

	outputPath := filepath.Join(s.audioDir, filename)
	if err := os.WriteFile(outputPath, result.Audio, 0o644); err != nil {
		slog.Warn("Failed to write audio reply, returning text only", "path", outputPath, "error", err)
		return s.textOnly(text, filename, "write failed: "+err.Error()), nil
	}

	return &Speech{
		Text:      text,
		AudioFile: outputPath,
		Filename:  filename,
		Metadata: SpeechMetadata{
			Engine:     result.Engine,
			TextLength: len(text),
			Step:       "text_to_speech",
		},
	}, nil
}

// textOnly builds the degraded reply used when no audio can be produced.
func (s *Synthesizer) textOnly(text, filename, note string) *Speech {
	return &Speech{
		Text:     text,
		Filename: filename,
		Metadata: SpeechMetadata{
			Engine:     "text_only",
			TextLength: len(text),
			Step:       "text_to_speech",
			Note:       note,
		},
	}
}
