package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/receptro-ai/receptro/internal/pipeline"
)

type (
	ProcessInput struct {
		RawBody huma.MultipartFormFiles[struct {
			File huma.FormFile `form:"file" contentType:"audio/*,image/*,application/octet-stream" required:"true"`
		}]
	}

	ProcessOutput struct {
		Body pipeline.Result
	}
)

// PipelineHandler handles HTTP requests for the processing pipeline.
type PipelineHandler struct {
	orchestrators *Orchestrators
}

// NewPipelineHandler creates a new PipelineHandler instance.
func NewPipelineHandler(api huma.API, orc *Orchestrators) *PipelineHandler {
	h := &PipelineHandler{orchestrators: orc}

	huma.Register(api, huma.Operation{
		OperationID:   "process-file",
		Method:        "POST",
		Path:          "/v1/pipeline",
		Summary:       "Process an audio or image file through the pipeline",
		Tags:          []string{"pipeline"},
		DefaultStatus: http.StatusOK,
	}, h.handleProcess)

	return h
}

// handleProcess handles the process-file operation.
func (h *PipelineHandler) handleProcess(ctx context.Context, input *ProcessInput) (*ProcessOutput, error) {
	formData := input.RawBody.Data()
	file := formData.File

	if !file.IsSet {
		return nil, huma.Error400BadRequest("file is required", nil)
	}

	orc := h.orchestrators.Load()

	if pipeline.DetectKind(file.Filename) == pipeline.KindUnknown {
		return nil, huma.Error400BadRequest("unsupported file type: "+file.Filename, nil)
	}
	if max := orc.MaxUploadBytes(); max > 0 && file.Size > max {
		return nil, huma.NewError(http.StatusRequestEntityTooLarge, "file too large", nil)
	}

	tempPath, err := orc.Store().SaveTemp(file.Filename, file)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to save upload", err)
	}
	defer orc.Store().RemoveTemp(tempPath)

	result, err := orc.ProcessFile(ctx, tempPath)
	if err != nil {
		switch {
		case errors.Is(err, pipeline.ErrUnsupportedType):
			return nil, huma.Error400BadRequest("unsupported file type", err)
		case errors.Is(err, pipeline.ErrFileTooLarge):
			return nil, huma.NewError(http.StatusRequestEntityTooLarge, "file too large", err)
		default:
			return nil, huma.Error500InternalServerError("pipeline failed", err)
		}
	}

	return &ProcessOutput{Body: *result}, nil
}
