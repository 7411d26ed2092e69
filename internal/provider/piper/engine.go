// Package piper implements provider.SpeechEngine with the local piper binary.
package piper

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/receptro-ai/receptro/internal/mapsafe"
	"github.com/receptro-ai/receptro/internal/provider"
)

// EngineName is the engine identifier.
const EngineName = "piper"

var _ provider.SpeechEngine = (*Engine)(nil)

// Engine synthesizes speech locally with piper.
type Engine struct {
	executor  *Executor
	modelPath string
	tempDir   string
}

// NewEngine creates a new piper engine.
func NewEngine(binPath, modelPath string) (*Engine, error) {
	executor, err := NewExecutor(binPath, 30*time.Second)
	if err != nil {
		return nil, err
	}

	return &Engine{
		executor:  executor,
		modelPath: modelPath,
		tempDir:   os.TempDir(),
	}, nil
}

// Name returns the engine identifier.
func (e *Engine) Name() string {
	return EngineName
}

// Synthesize renders text as WAV audio.
// Input: text bytes on stdin. Output: WAV audio bytes.
func (e *Engine) Synthesize(ctx context.Context, req *provider.SpeechRequest) (*provider.SpeechResult, error) {
	if req.Text == "" {
		return nil, provider.ErrEmptyInput
	}

	// Piper outputs to a file, so a temp file must be used, then read back.
	// This is a limitation of piper's CLI interface.
	outputFile := filepath.Join(e.tempDir, fmt.Sprintf("piper_%d.wav", time.Now().UnixNano()))
	defer os.Remove(outputFile)

	args := e.buildArgs(req, outputFile)

	// Piper reads text from stdin
	_, stderr, err := e.executor.Execute(ctx, args, strings.NewReader(req.Text))
	if err != nil {
		return nil, fmt.Errorf("execution failed: %w\nstderr: %s", err, stderr)
	}

	audio, err := os.ReadFile(outputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file: %w", err)
	}

	return &provider.SpeechResult{
		Audio:  audio,
		Format: "wav",
		Engine: EngineName,
	}, nil
}

// buildArgs builds piper command-line arguments.
func (e *Engine) buildArgs(req *provider.SpeechRequest, outputFile string) []string {
	args := []string{
		"--model", e.modelPath,
		"--output_file", outputFile,
	}

	p := req.Parameters
	if p == nil {
		return args
	}

	if v := mapsafe.Get(p, "speaker_id", -1); v >= 0 {
		args = append(args, "--speaker", fmt.Sprintf("%d", v))
	}
	if v := mapsafe.Get(p, "length_scale", 0.0); v > 0 {
		args = append(args, "--length_scale", fmt.Sprintf("%.2f", v))
	}
	if v := mapsafe.Get(p, "noise_scale", 0.0); v > 0 {
		args = append(args, "--noise_scale", fmt.Sprintf("%.2f", v))
	}
	if v := mapsafe.Get(p, "noise_w", 0.0); v > 0 {
		args = append(args, "--noise_w", fmt.Sprintf("%.2f", v))
	}
	if v := mapsafe.Get(p, "sentence_silence", 0.0); v > 0 {
		args = append(args, "--sentence_silence", fmt.Sprintf("%.2f", v))
	}

	return args
}
