package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aprovost/studiodesk/internal/encoding"
)

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := "email,interests,signed_up\nrené@example.com,Séances bébé,2026-01-15\n"

	r, err := encoding.NewUTF8Reader(bytes.NewReader([]byte(input)))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestNewUTF8Reader_Windows1252(t *testing.T) {
	// "rené" with é encoded as Windows-1252 0xE9.
	input := []byte{'r', 'e', 'n', 0xE9, '@', 'e', 'x', '.', 'c', 'o', 'm', '\n'}

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "rené@ex.com\n", string(got))
}

func TestNewUTF8Reader_StripsUTF8BOM(t *testing.T) {
	content := "email,interests\nana@example.com,Retratos\n"
	input := append([]byte{0xEF, 0xBB, 0xBF}, content...)

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	var input []byte

	input = append(input, 0xFF, 0xFE)
	for _, r := range "email\nana@ex.com\n" {
		input = append(input, byte(r), 0x00)
	}

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "email\nana@ex.com\n", string(got))
}
