//go:build unit

package qr_test

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"

	"commission-tracker/internal/pkg/qr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	g := qr.NewGenerator()

	code, err := g.Generate("http://localhost:3000/purchase/abc123")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(code.DataURL, "data:image/png;base64,"))
	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(code.DataURL, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(png[:4]))

	sum := sha256.Sum256([]byte(code.DataURL))
	assert.Equal(t, hex.EncodeToString(sum[:]), code.Hash)

	again, err := g.Generate("http://localhost:3000/purchase/abc123")
	require.NoError(t, err)
	assert.Equal(t, code.Hash, again.Hash, "same content renders the same image")
}

func TestGenerator_EmptyContent(t *testing.T) {
	_, err := qr.NewGenerator().Generate("")
	assert.ErrorIs(t, err, qr.ErrEmptyContent)
}
