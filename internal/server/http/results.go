package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/receptro-ai/receptro/internal/store"
)

type (
	ListResultsOutput struct {
		Body struct {
			Results []store.Summary `json:"results"`
		}
	}

	GetResultInput struct {
		ID string `path:"id" minLength:"1"`
	}

	GetResultOutput struct {
		ContentType string `header:"Content-Type"`
		Body        []byte
	}
)

// ResultsHandler handles HTTP requests for persisted pipeline results.
type ResultsHandler struct {
	orchestrators *Orchestrators
}

// NewResultsHandler creates a new ResultsHandler instance.
func NewResultsHandler(api huma.API, orc *Orchestrators) *ResultsHandler {
	h := &ResultsHandler{orchestrators: orc}

	huma.Register(api, huma.Operation{
		OperationID:   "list-results",
		Method:        "GET",
		Path:          "/v1/results",
		Summary:       "List persisted pipeline results",
		Tags:          []string{"results"},
		DefaultStatus: http.StatusOK,
	}, h.handleList)

	huma.Register(api, huma.Operation{
		OperationID:   "get-result",
		Method:        "GET",
		Path:          "/v1/results/{id}",
		Summary:       "Fetch one pipeline result by ID",
		Tags:          []string{"results"},
		DefaultStatus: http.StatusOK,
	}, h.handleGet)

	return h
}

// handleList handles the list-results operation.
func (h *ResultsHandler) handleList(_ context.Context, _ *struct{}) (*ListResultsOutput, error) {
	summaries, err := h.orchestrators.Load().Store().ListResults()
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to list results", err)
	}

	out := &ListResultsOutput{}
	out.Body.Results = summaries
	return out, nil
}

// handleGet handles the get-result operation.
func (h *ResultsHandler) handleGet(_ context.Context, input *GetResultInput) (*GetResultOutput, error) {
	raw, err := h.orchestrators.Load().Store().GetResult(input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("result not found", err)
		}
		return nil, huma.Error500InternalServerError("failed to read result", err)
	}

	return &GetResultOutput{
		ContentType: "application/json",
		Body:        raw,
	}, nil
}
