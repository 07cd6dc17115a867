package service

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/klimatech/acbot/internal/domain"
)

// EncodeImage validates raw file bytes as an image and encodes them into an
// attachment. When the declared MIME type is empty it is sniffed from the
// content. Anything that is not image/* is rejected.
func EncodeImage(data []byte, mimeType string) (*domain.Attachment, error) {
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, domain.ErrNotImage
	}
	return &domain.Attachment{
		MimeType:   mimeType,
		Base64Data: base64.StdEncoding.EncodeToString(data),
	}, nil
}

// ParseDataURL converts a data URL into an attachment. The payload is
// everything after the first comma; the MIME type sits between "data:" and
// the first ";" of the header.
func ParseDataURL(raw string) (*domain.Attachment, error) {
	if !strings.HasPrefix(raw, "data:") {
		return nil, domain.ErrBadDataURL
	}
	header, payload, ok := strings.Cut(raw, ",")
	if !ok {
		return nil, domain.ErrBadDataURL
	}
	mimeType := strings.TrimPrefix(header, "data:")
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = mimeType[:i]
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, domain.ErrNotImage
	}
	return &domain.Attachment{MimeType: mimeType, Base64Data: payload}, nil
}
