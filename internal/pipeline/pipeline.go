// Package pipeline ties the four stage services together behind a single
// entry point that routes a file to the audio or image pipeline, times each
// stage and persists the assembled result.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/receptro-ai/receptro/internal/metrics"
	"github.com/receptro-ai/receptro/internal/service"
	"github.com/receptro-ai/receptro/internal/store"
	"github.com/receptro-ai/receptro/internal/xfs"
)

// Error definitions for the pipeline package.
var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file too large")
)

// defaultResponse is used when the analysis yields no suggested response.
const defaultResponse = "Thank you for your message. I understand your request."

var audioExtensions = map[string]bool{
	".wav": true, ".mp3": true, ".m4a": true, ".mp4": true,
	".mpeg": true, ".mpga": true, ".webm": true,
}

var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".bmp": true,
	".tiff": true, ".gif": true,
}

// DetectKind routes a file to a pipeline by its extension.
func DetectKind(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case audioExtensions[ext]:
		return KindAudio
	case imageExtensions[ext]:
		return KindImage
	default:
		return KindUnknown
	}
}

// Params holds the orchestrator dependencies.
type Params struct {
	Transcriber    *service.Transcriber
	Interpreter    *service.Interpreter
	Synthesizer    *service.Synthesizer
	Extractor      *service.Extractor
	Store          *store.Store
	Metrics        *metrics.Metrics
	MaxUploadBytes int64
}

// Orchestrator runs files through the audio or image pipeline.
type Orchestrator struct {
	transcriber    *service.Transcriber
	interpreter    *service.Interpreter
	synthesizer    *service.Synthesizer
	extractor      *service.Extractor
	store          *store.Store
	metrics        *metrics.Metrics
	maxUploadBytes int64
}

// New creates a new Orchestrator.
func New(p Params) *Orchestrator {
	return &Orchestrator{
		transcriber:    p.Transcriber,
		interpreter:    p.Interpreter,
		synthesizer:    p.Synthesizer,
		extractor:      p.Extractor,
		store:          p.Store,
		metrics:        p.Metrics,
		maxUploadBytes: p.MaxUploadBytes,
	}
}

// Store returns the orchestrator's result store.
func (o *Orchestrator) Store() *store.Store {
	return o.store
}

// MaxUploadBytes returns the upload size cap.
func (o *Orchestrator) MaxUploadBytes() int64 {
	return o.maxUploadBytes
}

// ProcessFile routes a file to the matching pipeline, persists the result
// JSON and returns the result. Stage failures are recorded in the result;
// only file-level problems (missing, oversize, unsupported) return an error.
func (o *Orchestrator) ProcessFile(ctx context.Context, path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: file not found: %w", err)
	}
	if o.maxUploadBytes > 0 && info.Size() > o.maxUploadBytes {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, info.Size(), o.maxUploadBytes)
	}

	kind := DetectKind(path)
	slog.Info("Processing file", "path", path, "kind", kind, "size_bytes", info.Size())

	var result *Result
	switch kind {
	case KindAudio:
		result = o.processAudio(ctx, path)
	case KindImage:
		result = o.processImage(ctx, path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Ext(path))
	}

	outcome := "success"
	if result.Error != "" {
		outcome = "error"
	}
	o.metrics.CountRun(string(kind), outcome)

	outputPath, err := o.store.SaveResult(xfs.Stem(path), result)
	if err != nil {
		slog.Error("Failed to persist result", "error", err)
	} else {
		result.OutputJSON = outputPath
		slog.Info("Result saved", "path", outputPath)
	}

	return result, nil
}

// processAudio runs transcription, intent analysis and speech synthesis.
func (o *Orchestrator) processAudio(ctx context.Context, audioPath string) *Result {
	start := time.Now()
	result := &Result{
		ID:           uuid.NewString(),
		PipelineType: KindAudio,
		InputFile:    audioPath,
	}

	stageStart := time.Now()
	transcription, err := o.transcriber.TranscribeFile(ctx, audioPath, "")
	result.Performance.TranscriptionSeconds = o.observe("transcription", stageStart)
	if err != nil {
		slog.Error("Transcription failed", "error", err)
		result.Error = "speech-to-text failed: " + err.Error()
		result.Performance.TotalSeconds = round2(time.Since(start).Seconds())
		return result
	}
	result.Steps.Transcription = transcription

	stageStart = time.Now()
	interpretation, err := o.interpreter.Interpret(ctx, transcription.Text)
	result.Performance.IntentAnalysisSeconds = o.observe("intent_analysis", stageStart)
	if err != nil {
		slog.Error("Intent analysis failed", "error", err)
		result.Error = "intent analysis failed: " + err.Error()
		result.Performance.TotalSeconds = round2(time.Since(start).Seconds())
		return result
	}
	result.Steps.IntentAnalysis = interpretation

	responseText := interpretation.Analysis.SuggestedResponse
	if responseText == "" {
		responseText = defaultResponse
	}

	stageStart = time.Now()
	ttsFilename := fmt.Sprintf("response_%s.wav", xfs.Stem(audioPath))
	speech, err := o.synthesizer.Synthesize(ctx, responseText, ttsFilename)
	result.Performance.TTSSeconds = o.observe("tts", stageStart)
	if err != nil {
		slog.Error("Speech synthesis failed", "error", err)
		result.Error = "text-to-speech failed: " + err.Error()
		result.Performance.TotalSeconds = round2(time.Since(start).Seconds())
		return result
	}
	result.Steps.TextToSpeech = speech

	total := round2(time.Since(start).Seconds())
	result.Performance.TotalSeconds = total
	result.FinalOutput = &AudioOutput{
		OriginalAudio:     audioPath,
		TranscribedText:   transcription.Text,
		DetectedIntent:    interpretation.Analysis.Intent,
		ExtractedEntities: interpretation.Analysis.Entities.All(),
		Sentiment:         interpretation.Analysis.Sentiment,
		ResponseText:      responseText,
		ResponseAudio:     speech.AudioFile,
		Confidence:        interpretation.Analysis.Confidence,
		ProcessingSteps:   []string{"speech_to_text", "intent_analysis", "response_generation", "text_to_speech"},
		Metadata: OutputMetadata{
			TotalSteps:            4,
			PipelineType:          "complete_audio_processing",
			Success:               true,
			ProcessingTimeSeconds: total,
		},
	}

	slog.Info("Audio pipeline completed", "seconds", total)
	return result
}

// processImage runs document extraction.
func (o *Orchestrator) processImage(ctx context.Context, imagePath string) *Result {
	start := time.Now()
	result := &Result{
		ID:           uuid.NewString(),
		PipelineType: KindImage,
		InputFile:    imagePath,
	}

	stageStart := time.Now()
	extraction, err := o.extractor.ExtractFile(ctx, imagePath)
	result.Performance.ExtractionSeconds = o.observe("extraction", stageStart)
	if err != nil {
		slog.Error("Document extraction failed", "error", err)
		result.Error = "document extraction failed: " + err.Error()
		result.Performance.TotalSeconds = round2(time.Since(start).Seconds())
		return result
	}
	result.Steps.DocumentExtraction = extraction

	total := round2(time.Since(start).Seconds())
	result.Performance.TotalSeconds = total
	result.FinalOutput = &ImageOutput{
		InputImage:           imagePath,
		DocumentType:         extraction.DocumentType,
		ExtractedText:        extraction.ExtractedText,
		StructuredFields:     extraction.StructuredFields,
		ExtractedEntities:    extraction.Entities,
		ExtractionConfidence: extraction.Confidence,
		ProcessingSteps:      []string{"document_extraction", "text_structuring", "entity_extraction"},
		Metadata: OutputMetadata{
			TotalSteps:            1,
			PipelineType:          "complete_image_processing",
			Success:               true,
			ProcessingTimeSeconds: total,
		},
	}

	slog.Info("Image pipeline completed", "seconds", total)
	return result
}

// observe records a stage duration and returns it rounded.
func (o *Orchestrator) observe(stage string, start time.Time) float64 {
	seconds := time.Since(start).Seconds()
	o.metrics.ObserveStage(stage, seconds)
	return round2(seconds)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
