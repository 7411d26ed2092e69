package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/receptro-ai/receptro/internal/provider"
)

// --- Mock types ---

type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, req *provider.CompletionRequest) (*provider.CompletionResult, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*provider.CompletionResult); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- Tests ---

const validAnalysisJSON = `{
	"intent": "information_request",
	"intent_description": "User wants current weather information",
	"entities": {
		"named_entities": [],
		"temporal": ["today"],
		"numerical": [],
		"products_services": ["weather"],
		"actions": ["check"]
	},
	"parameters": {
		"required": {"info_type": "weather"},
		"optional": {},
		"context": {}
	},
	"sentiment": "neutral",
	"urgency": "low",
	"confidence": "high",
	"confidence_reasoning": "Simple, direct request",
	"suggested_response": "I'll check today's weather for you right now!",
	"next_steps": ["fetch_weather_data"],
	"category": "information",
	"subcategory": "weather_inquiry",
	"requires_clarification": false,
	"clarification_questions": [],
	"extracted_keywords": ["weather", "today"]
}`

func TestInterpreter_ValidJSON(t *testing.T) {
	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, mock.Anything).Return(&provider.CompletionResult{
		Text:  validAnalysisJSON,
		Model: "gpt-4o",
	}, nil)

	interp := NewInterpreter(completer)
	result, err := interp.Interpret(context.Background(), "What's the weather like today?")
	require.NoError(t, err)

	assert.Equal(t, "information_request", result.Analysis.Intent)
	assert.Equal(t, "neutral", result.Analysis.Sentiment)
	assert.Equal(t, "high", result.Analysis.Confidence)
	assert.Equal(t, []string{"today"}, result.Analysis.Entities.Temporal)
	assert.Equal(t, "What's the weather like today?", result.OriginalText)
	assert.Equal(t, "gpt-4o", result.Metadata.Model)
	assert.False(t, result.Metadata.Repaired)
	assert.False(t, result.Metadata.Fallback)

	completer.AssertExpectations(t)
}

func TestInterpreter_FencedJSON(t *testing.T) {
	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, mock.Anything).Return(&provider.CompletionResult{
		Text:  "```json\n" + validAnalysisJSON + "\n```",
		Model: "gpt-4o",
	}, nil)

	interp := NewInterpreter(completer)
	result, err := interp.Interpret(context.Background(), "weather?")
	require.NoError(t, err)

	assert.Equal(t, "information_request", result.Analysis.Intent)
	assert.False(t, result.Metadata.Fallback)
}

func TestInterpreter_RepairedJSON(t *testing.T) {
	// Trailing comma makes this invalid JSON; jsonrepair should fix it.
	broken := `{"intent": "conversation", "sentiment": "positive", "confidence": "medium",}`

	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, mock.Anything).Return(&provider.CompletionResult{
		Text:  broken,
		Model: "gpt-4o",
	}, nil)

	interp := NewInterpreter(completer)
	result, err := interp.Interpret(context.Background(), "hello there")
	require.NoError(t, err)

	assert.Equal(t, "conversation", result.Analysis.Intent)
	assert.True(t, result.Metadata.Repaired)
	assert.False(t, result.Metadata.Fallback)
}

func TestInterpreter_FallbackOnGarbage(t *testing.T) {
	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, mock.Anything).Return(&provider.CompletionResult{
		Text:  "I could not produce JSON, sorry.",
		Model: "gpt-4o",
	}, nil)

	interp := NewInterpreter(completer)
	result, err := interp.Interpret(context.Background(), "please book me a very complicated trip somewhere")
	require.NoError(t, err)

	assert.True(t, result.Metadata.Fallback)
	assert.Equal(t, "general_request", result.Analysis.Intent)
	assert.Equal(t, "low", result.Analysis.Confidence)
	assert.True(t, result.Analysis.RequiresClarification)
	// Keywords are capped at the first five words.
	assert.Equal(t, []string{"please", "book", "me", "a", "very"}, result.Analysis.ExtractedKeywords)
	assert.NotEmpty(t, result.Analysis.SuggestedResponse)
}

func TestInterpreter_CompleterError(t *testing.T) {
	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, mock.Anything).Return(nil, errors.New("api unavailable"))

	interp := NewInterpreter(completer)
	_, err := interp.Interpret(context.Background(), "hello")
	assert.Error(t, err)
}

func TestInterpreter_RequestShape(t *testing.T) {
	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, mock.MatchedBy(func(req *provider.CompletionRequest) bool {
		return req.ForceJSON &&
			req.Temperature == intentTemperature &&
			req.MaxTokens == intentMaxTokens &&
			req.System != ""
	})).Return(&provider.CompletionResult{Text: validAnalysisJSON}, nil)

	interp := NewInterpreter(completer)
	_, err := interp.Interpret(context.Background(), "weather?")
	require.NoError(t, err)

	completer.AssertExpectations(t)
}

func TestTrimCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, trimCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, trimCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, trimCodeFence(`{"a":1}`))
}
