package pipeline

import (
	"github.com/receptro-ai/receptro/internal/service"
)

// Kind identifies which pipeline a file routes to.
type Kind string

const (
	KindAudio   Kind = "audio"
	KindImage   Kind = "image"
	KindUnknown Kind = "unknown"
)

// Result is the full record of one pipeline run.
type Result struct {
	ID           string      `json:"id"`
	PipelineType Kind        `json:"pipeline_type"`
	InputFile    string      `json:"input_file"`
	Steps        Steps       `json:"steps"`
	FinalOutput  any         `json:"final_output,omitempty"`
	Performance  Performance `json:"performance"`
	OutputJSON   string      `json:"output_json,omitempty"`
	Error        string      `json:"error,omitempty"`
}

// Steps collects the per-stage records of a run.
type Steps struct {
	Transcription      *service.Transcription  `json:"transcription,omitempty"`
	IntentAnalysis     *service.Interpretation `json:"intent_analysis,omitempty"`
	TextToSpeech       *service.Speech         `json:"text_to_speech,omitempty"`
	DocumentExtraction *service.Extraction     `json:"document_extraction,omitempty"`
}

// Performance records per-stage and total wall-clock seconds.
type Performance struct {
	TranscriptionSeconds  float64 `json:"transcription_seconds,omitempty"`
	IntentAnalysisSeconds float64 `json:"intent_analysis_seconds,omitempty"`
	TTSSeconds            float64 `json:"tts_seconds,omitempty"`
	ExtractionSeconds     float64 `json:"extraction_seconds,omitempty"`
	TotalSeconds          float64 `json:"total_seconds"`
}

// AudioOutput is the assembled final output of the audio pipeline.
type AudioOutput struct {
	OriginalAudio     string         `json:"original_audio"`
	TranscribedText   string         `json:"transcribed_text"`
	DetectedIntent    string         `json:"detected_intent"`
	ExtractedEntities []string       `json:"extracted_entities"`
	Sentiment         string         `json:"sentiment"`
	ResponseText      string         `json:"response_text"`
	ResponseAudio     string         `json:"response_audio,omitempty"`
	Confidence        string         `json:"confidence"`
	ProcessingSteps   []string       `json:"processing_steps"`
	Metadata          OutputMetadata `json:"metadata"`
}

// ImageOutput is the assembled final output of the image pipeline.
type ImageOutput struct {
	InputImage           string            `json:"input_image"`
	DocumentType         string            `json:"document_type"`
	ExtractedText        string            `json:"extracted_text"`
	StructuredFields     map[string]string `json:"structured_fields"`
	ExtractedEntities    []string          `json:"extracted_entities"`
	ExtractionConfidence string            `json:"extraction_confidence"`
	ProcessingSteps      []string          `json:"processing_steps"`
	Metadata             OutputMetadata    `json:"metadata"`
}

// OutputMetadata summarizes a completed run.
type OutputMetadata struct {
	TotalSteps            int     `json:"total_steps"`
	PipelineType          string  `json:"pipeline_type"`
	Success               bool    `json:"success"`
	ProcessingTimeSeconds float64 `json:"processing_time_seconds"`
}
