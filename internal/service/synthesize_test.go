package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/receptro-ai/receptro/internal/provider"
)

type fakeSpeechEngine struct {
	audio []byte
	err   error
}

func (f *fakeSpeechEngine) Name() string { return "fake" }

func (f *fakeSpeechEngine) Synthesize(ctx context.Context, req *provider.SpeechRequest) (*provider.SpeechResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &provider.SpeechResult{Audio: f.audio, Format: "wav", Engine: "fake"}, nil
}

func TestSynthesizer_WritesAudioFile(t *testing.T) {
	dir := t.TempDir()
	engine := &fakeSpeechEngine{audio: []byte("RIFFfakewav")}

	synth := NewSynthesizer(engine, dir, nil)
	speech, err := synth.Synthesize(context.Background(), "hello world", "reply.wav")
	require.NoError(t, err)

	assert.Equal(t, "fake", speech.Metadata.Engine)
	assert.Equal(t, "reply.wav", speech.Filename)
	assert.Equal(t, filepath.Join(dir, "reply.wav"), speech.AudioFile)
	assert.Equal(t, len("hello world"), speech.Metadata.TextLength)

	data, err := os.ReadFile(speech.AudioFile)
	require.NoError(t, err)
	assert.Equal(t, []byte("RIFFfakewav"), data)
}

func TestSynthesizer_NilEngineTextOnly(t *testing.T) {
	synth := NewSynthesizer(nil, t.TempDir(), nil)
	speech, err := synth.Synthesize(context.Background(), "hello", "")
	require.NoError(t, err)

	assert.Equal(t, "text_only", speech.Metadata.Engine)
	assert.Empty(t, speech.AudioFile)
	assert.Equal(t, "response.wav", speech.Filename)
	assert.NotEmpty(t, speech.Metadata.Note)
}

func TestSynthesizer_EngineFailureDegrades(t *testing.T) {
	engine := &fakeSpeechEngine{err: errors.New("voice model missing")}

	synth := NewSynthesizer(engine, t.TempDir(), nil)
	speech, err := synth.Synthesize(context.Background(), "hello", "reply.wav")
	require.NoError(t, err)

	assert.Equal(t, "text_only", speech.Metadata.Engine)
	assert.Contains(t, speech.Metadata.Note, "voice model missing")
	assert.Empty(t, speech.AudioFile)
}
