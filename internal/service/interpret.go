package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/receptro-ai/receptro/internal/provider"
)

const (
	intentTemperature = 0.5
	intentMaxTokens   = 1500
)

// Interpretation is the output of the intent-analysis stage.
type Interpretation struct {
	OriginalText string                 `json:"original_text"`
	Analysis     Analysis               `json:"analysis"`
	Metadata     InterpretationMetadata `json:"metadata"`
}

// InterpretationMetadata describes how the analysis was produced.
type InterpretationMetadata struct {
	Model    string `json:"model"`
	Step     string `json:"step"`
	Repaired bool   `json:"repaired,omitempty"`
	Fallback bool   `json:"fallback,omitempty"`
}

// Analysis is the structured NLU record extracted from the text.
type Analysis struct {
	Intent                 string     `json:"intent"`
	IntentDescription      string     `json:"intent_description"`
	Entities               Entities   `json:"entities"`
	Parameters             Parameters `json:"parameters"`
	Sentiment              string     `json:"sentiment"`
	Urgency                string     `json:"urgency"`
	Confidence             string     `json:"confidence"`
	ConfidenceReasoning    string     `json:"confidence_reasoning"`
	SuggestedResponse      string     `json:"suggested_response"`
	NextSteps              []string   `json:"next_steps"`
	Category               string     `json:"category"`
	Subcategory            string     `json:"subcategory"`
	RequiresClarification  bool       `json:"requires_clarification"`
	ClarificationQuestions []string   `json:"clarification_questions"`
	ExtractedKeywords      []string   `json:"extracted_keywords"`
}

// Entities groups the extracted entity mentions.
type Entities struct {
	NamedEntities    []string `json:"named_entities"`
	Temporal         []string `json:"temporal"`
	Numerical        []string `json:"numerical"`
	ProductsServices []string `json:"products_services"`
	Actions          []string `json:"actions"`
}

// All returns every entity mention as a flat list.
func (e Entities) All() []string {
	var all []string
	all = append(all, e.NamedEntities...)
	all = append(all, e.Temporal...)
	all = append(all, e.Numerical...)
	all = append(all, e.ProductsServices...)
	all = append(all, e.Actions...)
	return all
}

// Parameters groups the actionable parameters by importance.
type Parameters struct {
	Required map[string]any `json:"required"`
	Optional map[string]any `json:"optional"`
	Context  map[string]any `json:"context"`
}

// Interpreter is the intent-analysis stage service.
type Interpreter struct {
	completer provider.Completer
}

// NewInterpreter creates a new Interpreter service.
func NewInterpreter(c provider.Completer) *Interpreter {
	return &Interpreter{completer: c}
}

// Interpret infers intent, entities, sentiment and a spoken-friendly
// suggested response from text.
func (i *Interpreter) Interpret(ctx context.Context, text string) (*Interpretation, error) {
	resp, err := i.completer.Complete(ctx, &provider.CompletionRequest{
		System:      intentSystemPrompt,
		Prompt:      intentPrompt(text),
		Temperature: intentTemperature,
		MaxTokens:   intentMaxTokens,
		ForceJSON:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("interpret: %w", err)
	}

	analysis, repaired, err := parseAnalysis(resp.Text)
	result := &Interpretation{
		OriginalText: text,
		Analysis:     *analysis,
		Metadata: InterpretationMetadata{
			Model:    resp.Model,
			Step:     "intent_analysis",
			Repaired: repaired,
		},
	}

	if err != nil {
		// The model produced something unparseable even after repair.
		// Degrade to a deterministic fallback analysis rather than failing.
		slog.Warn("Intent analysis JSON unparseable, using fallback", "error", err)
		result.Analysis = fallbackAnalysis(text)
		result.Metadata.Repaired = false
		result.Metadata.Fallback = true
	}

	return result, nil
}

// parseAnalysis decodes the model output, repairing malformed JSON when needed.
func parseAnalysis(text string) (*Analysis, bool, error) {
	cleaned := trimCodeFence(text)

	var analysis Analysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err == nil {
		return &analysis, false, nil
	}

	repaired, err := jsonrepair.JSONRepair(cleaned)
	if err != nil {
		return &Analysis{}, false, fmt.Errorf("repair failed: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), &analysis); err != nil {
		return &Analysis{}, false, fmt.Errorf("decode failed after repair: %w", err)
	}

	return &analysis, true, nil
}

// trimCodeFence strips a surrounding markdown code fence, if present.
func trimCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// fallbackAnalysis builds the degraded analysis used when the model output
// cannot be parsed.
func fallbackAnalysis(text string) Analysis {
	words := strings.Fields(text)
	if len(words) > 5 {
		words = words[:5]
	}

	return Analysis{
		Intent:            "general_request",
		IntentDescription: "Unable to parse specific intent",
		Entities: Entities{
			NamedEntities:    []string{},
			Temporal:         []string{},
			Numerical:        []string{},
			ProductsServices: []string{text},
			Actions:          []string{},
		},
		Parameters: Parameters{
			Required: map[string]any{"original_text": text},
			Optional: map[string]any{},
			Context:  map[string]any{},
		},
		Sentiment:           "neutral",
		Urgency:             "low",
		Confidence:          "low",
		ConfidenceReasoning: "JSON parsing failed, using fallback analysis",
		SuggestedResponse: fmt.Sprintf(
			"I heard you say: %s. Could you help me understand what you'd like me to help you with?", text),
		NextSteps:              []string{"request_clarification", "provide_general_help"},
		Category:               "general",
		Subcategory:            "unclear_request",
		RequiresClarification:  true,
		ClarificationQuestions: []string{"Could you please rephrase your request?", "What specific help do you need?"},
		ExtractedKeywords:      words,
	}
}
