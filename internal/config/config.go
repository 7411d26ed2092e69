package config

// SpeechEngine identifies the text-to-speech engine.
type SpeechEngine string

const (
	// SpeechEnginePiper synthesizes locally with the piper binary.
	SpeechEnginePiper SpeechEngine = "piper"
	// SpeechEngineOpenAI synthesizes remotely with the OpenAI speech API.
	SpeechEngineOpenAI SpeechEngine = "openai"
	// SpeechEngineNone disables synthesis; pipeline results are text-only.
	SpeechEngineNone SpeechEngine = "none"
)

// Config holds the main configuration for the application.
type Config struct {
	Version  string         `json:"version"            yaml:"version"`
	Server   ServerConfig   `json:"server,omitempty"   yaml:"server,omitempty"`
	Pipeline PipelineConfig `json:"pipeline,omitempty" yaml:"pipeline,omitempty"`
	Outputs  OutputsConfig  `json:"outputs,omitempty"  yaml:"outputs,omitempty"`
	OpenAI   OpenAIConfig   `json:"openai,omitempty"   yaml:"openai,omitempty"`
	Speech   SpeechConfig   `json:"speech,omitempty"   yaml:"speech,omitempty"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	HTTPPort int `json:"http_port,omitempty" yaml:"http_port,omitempty"`
}

// PipelineConfig holds pipeline limits and scratch space.
type PipelineConfig struct {
	MaxUploadBytes int64  `json:"max_upload_bytes,omitempty" yaml:"max_upload_bytes,omitempty"`
	TempDir        string `json:"temp_dir,omitempty"         yaml:"temp_dir,omitempty"`
}

// OutputsConfig holds the output directories for audio replies and result JSON.
type OutputsConfig struct {
	AudioDir string `json:"audio_dir,omitempty" yaml:"audio_dir,omitempty"`
	JSONDir  string `json:"json_dir,omitempty"  yaml:"json_dir,omitempty"`
}

// OpenAIConfig holds model assignments for the OpenAI-backed stages.
// The API key is never configured in the file; it comes from the
// OPENAI_API_KEY environment variable.
type OpenAIConfig struct {
	BaseURL         string `json:"base_url,omitempty"         yaml:"base_url,omitempty"`
	TranscribeModel string `json:"transcribe_model,omitempty" yaml:"transcribe_model,omitempty"`
	IntentModel     string `json:"intent_model,omitempty"     yaml:"intent_model,omitempty"`
	VisionModel     string `json:"vision_model,omitempty"     yaml:"vision_model,omitempty"`
}

// SpeechConfig selects and configures the text-to-speech engine.
type SpeechConfig struct {
	Engine SpeechEngine       `json:"engine,omitempty" yaml:"engine,omitempty"`
	Piper  PiperSpeechConfig  `json:"piper,omitempty"  yaml:"piper,omitempty"`
	OpenAI OpenAISpeechConfig `json:"openai,omitempty" yaml:"openai,omitempty"`
}

// PiperSpeechConfig configures the local piper engine.
type PiperSpeechConfig struct {
	BinPath    string         `json:"bin_path,omitempty"   yaml:"bin_path,omitempty"`
	ModelPath  string         `json:"model_path,omitempty" yaml:"model_path,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// OpenAISpeechConfig configures the remote OpenAI speech engine.
type OpenAISpeechConfig struct {
	Model string `json:"model,omitempty" yaml:"model,omitempty"`
	Voice string `json:"voice,omitempty" yaml:"voice,omitempty"`
}
