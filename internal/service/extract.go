package service

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/receptro-ai/receptro/internal/provider"
)

const extractionMaxTokens = 1000

// Extraction is the output of the document-extraction stage.
type Extraction struct {
	ImageFile        string             `json:"image_file"`
	DocumentType     string             `json:"document_type"`
	ExtractedText    string             `json:"extracted_text"`
	StructuredFields map[string]string  `json:"structured_fields"`
	Entities         []string           `json:"entities"`
	Confidence       string             `json:"confidence"`
	Metadata         ExtractionMetadata `json:"metadata"`
}

// ExtractionMetadata describes how the extraction was produced.
type ExtractionMetadata struct {
	Model  string `json:"model"`
	Method string `json:"method"`
	Step   string `json:"step"`
}

// Extractor is the document-extraction stage service.
type Extractor struct {
	vision provider.VisionReader
}

// NewExtractor creates a new Extractor service.
func NewExtractor(v provider.VisionReader) *Extractor {
	return &Extractor{vision: v}
}

// ExtractFile pulls all visible text out of a document image and derives
// structured fields from it.
func (e *Extractor) ExtractFile(ctx context.Context, imagePath string) (*Extraction, error) {
	image, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("extract: failed to read image: %w", err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(imagePath))
	if !strings.HasPrefix(mimeType, "image/") {
		mimeType = "image/jpeg"
	}

	resp, err := e.vision.ReadImage(ctx, &provider.VisionRequest{
		Prompt:    extractionPrompt,
		Image:     image,
		MIMEType:  mimeType,
		MaxTokens: extractionMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	structured := parseDocumentText(text)

	confidence := "high"
	if text == "" {
		confidence = "low"
	}

	return &Extraction{
		ImageFile:        filepath.Base(imagePath),
		DocumentType:     structured.DocumentType,
		ExtractedText:    text,
		StructuredFields: structured.Fields,
		Entities:         structured.Entities,
		Confidence:       confidence,
		Metadata: ExtractionMetadata{
			Model:  resp.Model,
			Method: "direct_text_extraction",
			Step:   "document_extraction",
		},
	}, nil
}
