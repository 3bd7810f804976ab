package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOutput_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	l := WithRequestID("abc123")
	l.Info().Uint("painting_id", 7).Msg("saved")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kurevin-art", line["service"])
	assert.Equal(t, "abc123", line["request_id"])
	assert.Equal(t, float64(7), line["painting_id"])
	assert.Equal(t, "saved", line["message"])
	assert.Equal(t, "info", line["level"])
}
