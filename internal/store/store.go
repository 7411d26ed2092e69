// Package store handles the pipeline's file bookkeeping: temp uploads,
// generated audio replies and persisted result JSON.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/receptro-ai/receptro/internal/xfs"
)

// Error definitions for the store package.
var (
	ErrNotFound    = errors.New("result not found")
	ErrBadFilename = errors.New("invalid file name")
)

// Store manages the temp, audio and JSON output directories.
type Store struct {
	tempDir  string
	audioDir string
	jsonDir  string
}

// New creates a Store and ensures all directories exist.
func New(tempDir, audioDir, jsonDir string) (*Store, error) {
	s := &Store{
		tempDir:  xfs.ExpandTilde(tempDir),
		audioDir: xfs.ExpandTilde(audioDir),
		jsonDir:  xfs.ExpandTilde(jsonDir),
	}

	for _, dir := range []string{s.tempDir, s.audioDir, s.jsonDir} {
		if err := xfs.EnsureDir(dir); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// AudioDir returns the audio output directory.
func (s *Store) AudioDir() string {
	return s.audioDir
}

// SaveTemp writes an uploaded file into the temp directory and returns its path.
func (s *Store) SaveTemp(filename string, r io.Reader) (string, error) {
	name := filepath.Base(filename)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", ErrBadFilename
	}

	path := filepath.Join(s.tempDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("store: failed to create temp file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("store: failed to write temp file: %w", err)
	}

	return path, nil
}

// RemoveTemp deletes a temp file; missing files are not an error.
func (s *Store) RemoveTemp(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return
	}
}

// SaveResult persists a result as <stem>_result.json and returns the path.
func (s *Store) SaveResult(stem string, result any) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("store: failed to encode result: %w", err)
	}

	path := filepath.Join(s.jsonDir, stem+"_result.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("store: failed to write result: %w", err)
	}

	return path, nil
}

// Summary is the listing view of a persisted result.
type Summary struct {
	ID           string `json:"id"`
	PipelineType string `json:"pipeline_type"`
	InputFile    string `json:"input_file"`
	File         string `json:"file"`
}

// resultHeader is the subset of the result JSON needed for lookup.
type resultHeader struct {
	ID           string `json:"id"`
	PipelineType string `json:"pipeline_type"`
	InputFile    string `json:"input_file"`
}

// ListResults returns summaries of every persisted result, sorted by file name.
func (s *Store) ListResults() ([]Summary, error) {
	entries, err := os.ReadDir(s.jsonDir)
	if err != nil {
		return nil, fmt.Errorf("store: failed to read results dir: %w", err)
	}

	summaries := make([]Summary, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(s.jsonDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var header resultHeader
		if err := json.Unmarshal(data, &header); err != nil {
			continue
		}

		summaries = append(summaries, Summary{
			ID:           header.ID,
			PipelineType: header.PipelineType,
			InputFile:    header.InputFile,
			File:         entry.Name(),
		})
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].File < summaries[j].File })
	return summaries, nil
}

// GetResult returns the raw JSON of the result with the given ID.
func (s *Store) GetResult(id string) (json.RawMessage, error) {
	entries, err := os.ReadDir(s.jsonDir)
	if err != nil {
		return nil, fmt.Errorf("store: failed to read results dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.jsonDir, entry.Name()))
		if err != nil {
			continue
		}

		var header resultHeader
		if err := json.Unmarshal(data, &header); err != nil {
			continue
		}
		if header.ID == id {
			return json.RawMessage(data), nil
		}
	}

	return nil, ErrNotFound
}

// AudioPath resolves a generated audio file by name, rejecting path traversal.
func (s *Store) AudioPath(filename string) (string, error) {
	name := filepath.Base(filename)
	if name != filename || name == "." || name == ".." {
		return "", ErrBadFilename
	}

	path := filepath.Join(s.audioDir, name)
	if _, err := os.Stat(path); err != nil {
		return "", ErrNotFound
	}

	return path, nil
}
