package service

import (
	"encoding/base64"
	"testing"

	"github.com/klimatech/acbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}

func TestEncodeImageDeclaredType(t *testing.T) {
	att, err := EncodeImage([]byte("raw-bytes"), "image/jpeg")

	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", att.MimeType)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("raw-bytes")), att.Base64Data)
}

func TestEncodeImageSniffsWhenUndeclared(t *testing.T) {
	att, err := EncodeImage(pngHeader, "")

	require.NoError(t, err)
	assert.Equal(t, "image/png", att.MimeType)
}

func TestEncodeImageRejectsNonImage(t *testing.T) {
	_, err := EncodeImage([]byte("just plain text content"), "application/pdf")
	assert.ErrorIs(t, err, domain.ErrNotImage)

	_, err = EncodeImage([]byte("just plain text content"), "")
	assert.ErrorIs(t, err, domain.ErrNotImage)
}

func TestParseDataURL(t *testing.T) {
	att, err := ParseDataURL("data:image/png;base64,iVBORw0KGgo=")

	require.NoError(t, err)
	assert.Equal(t, "image/png", att.MimeType)
	assert.Equal(t, "iVBORw0KGgo=", att.Base64Data)
}

func TestParseDataURLPayloadAfterFirstComma(t *testing.T) {
	att, err := ParseDataURL("data:image/gif;base64,AAA,BBB")

	require.NoError(t, err)
	assert.Equal(t, "AAA,BBB", att.Base64Data)
}

func TestParseDataURLMalformed(t *testing.T) {
	_, err := ParseDataURL("image/png;base64,AAAA")
	assert.ErrorIs(t, err, domain.ErrBadDataURL)

	_, err = ParseDataURL("data:image/png;base64")
	assert.ErrorIs(t, err, domain.ErrBadDataURL)
}

func TestParseDataURLRejectsNonImage(t *testing.T) {
	_, err := ParseDataURL("data:text/plain;base64,AAAA")
	assert.ErrorIs(t, err, domain.ErrNotImage)
}
