package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	base := t.TempDir()
	s, err := New(
		filepath.Join(base, "temp"),
		filepath.Join(base, "audio"),
		filepath.Join(base, "json"),
	)
	require.NoError(t, err)
	return s
}

func TestSaveTemp(t *testing.T) {
	s := newTestStore(t)

	path, err := s.SaveTemp("upload.wav", strings.NewReader("audio bytes"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "audio bytes", string(data))

	s.RemoveTemp(path)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveTemp_StripsDirectories(t *testing.T) {
	s := newTestStore(t)

	path, err := s.SaveTemp("../../etc/passwd.wav", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "passwd.wav", filepath.Base(path))
	assert.Equal(t, s.tempDir, filepath.Dir(path))
}

func TestSaveResult_And_Get(t *testing.T) {
	s := newTestStore(t)

	result := map[string]any{
		"id":            "abc-123",
		"pipeline_type": "audio",
		"input_file":    "greeting.wav",
	}
	path, err := s.SaveResult("greeting", result)
	require.NoError(t, err)
	assert.Equal(t, "greeting_result.json", filepath.Base(path))

	raw, err := s.GetResult("abc-123")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "audio", decoded["pipeline_type"])
}

func TestGetResult_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetResult("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListResults(t *testing.T) {
	s := newTestStore(t)

	_, err := s.SaveResult("b", map[string]any{"id": "2", "pipeline_type": "image", "input_file": "b.png"})
	require.NoError(t, err)
	_, err = s.SaveResult("a", map[string]any{"id": "1", "pipeline_type": "audio", "input_file": "a.wav"})
	require.NoError(t, err)

	summaries, err := s.ListResults()
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Sorted by file name.
	assert.Equal(t, "a_result.json", summaries[0].File)
	assert.Equal(t, "1", summaries[0].ID)
	assert.Equal(t, "b_result.json", summaries[1].File)
	assert.Equal(t, "image", summaries[1].PipelineType)
}

func TestAudioPath(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.audioDir, "reply.wav"), []byte("RIFF"), 0o644))

	path, err := s.AudioPath("reply.wav")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.audioDir, "reply.wav"), path)

	_, err = s.AudioPath("../reply.wav")
	assert.ErrorIs(t, err, ErrBadFilename)

	_, err = s.AudioPath("missing.wav")
	assert.ErrorIs(t, err, ErrNotFound)
}
