// Package provider defines the interfaces the pipeline stages use to reach
// speech, language and vision services, remote or local.
package provider

import (
	"context"
	"errors"
	"io"
)

// Error definitions for the provider package.
var (
	ErrNotConfigured = errors.New("provider is not configured")
	ErrEmptyInput    = errors.New("provider input is empty")
)

// Transcriber converts speech audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, req *TranscribeRequest) (*TranscribeResult, error)
}

// TranscribeRequest encapsulates a speech-to-text call.
type TranscribeRequest struct {
	// Audio is the raw audio stream.
	Audio io.Reader

	// Filename is the original file name; some APIs use the extension
	// to sniff the container format.
	Filename string

	// Language is an optional ISO-639-1 language hint.
	Language string
}

// TranscribeResult contains the transcription output.
type TranscribeResult struct {
	Text     string
	Language string
	Duration float64
	Segments []TranscriptSegment
	Model    string
}

// TranscriptSegment is a single timed span of the transcript.
type TranscriptSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Completer generates text from a chat prompt.
type Completer interface {
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResult, error)
}

// CompletionRequest encapsulates a chat completion call.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int64

	// ForceJSON asks the model to emit a single valid JSON object.
	ForceJSON bool
}

// CompletionResult contains the completion output.
type CompletionResult struct {
	Text             string
	Model            string
	FinishReason     string
	PromptTokens     int64
	CompletionTokens int64
}

// VisionReader answers a text prompt about an image.
type VisionReader interface {
	ReadImage(ctx context.Context, req *VisionRequest) (*CompletionResult, error)
}

// VisionRequest encapsulates a vision call.
type VisionRequest struct {
	Prompt    string
	Image     []byte
	MIMEType  string
	MaxTokens int64
}

// SpeechEngine converts text into audio.
type SpeechEngine interface {
	// Name returns the engine identifier.
	Name() string

	// Synthesize renders text as audio and returns the encoded bytes.
	Synthesize(ctx context.Context, req *SpeechRequest) (*SpeechResult, error)
}

// SpeechRequest encapsulates a text-to-speech call.
type SpeechRequest struct {
	Text string

	// Parameters contains engine-specific synthesis parameters.
	Parameters map[string]any
}

// SpeechResult contains the synthesized audio.
type SpeechResult struct {
	Audio  []byte
	Format string // audio container, e.g. "wav"
	Engine string
}
