package mapsafe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	m := map[string]any{
		"speaker_id":   float64(3), // decoded JSON numbers arrive as float64
		"length_scale": 1.2,
		"voice":        "en_US",
		"enabled":      true,
	}

	assert.Equal(t, 3, Get(m, "speaker_id", -1))
	assert.Equal(t, 1.2, Get(m, "length_scale", 0.0))
	assert.Equal(t, "en_US", Get(m, "voice", ""))
	assert.Equal(t, true, Get(m, "enabled", false))

	// Missing keys and type mismatches fall back to the default.
	assert.Equal(t, -1, Get(m, "missing", -1))
	assert.Equal(t, 0.0, Get(m, "voice", 0.0))
	assert.False(t, Get(m, "voice", false))
}

func TestGet_NilMap(t *testing.T) {
	var m map[string]any
	assert.Equal(t, "fallback", Get(m, "anything", "fallback"))
}
