package qr

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataURL(t *testing.T) {
	r := NewRenderer()

	url, err := r.DataURL("TAbc123?amount=20.000000")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, raw[:4])
}

func TestDataURLEmptyPayload(t *testing.T) {
	r := NewRenderer()

	_, err := r.DataURL("")
	assert.ErrorIs(t, err, ErrRender)
}
