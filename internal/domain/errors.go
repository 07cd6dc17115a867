package domain

import "errors"

var (
	ErrBusy          = errors.New("request already in progress")
	ErrNotImage      = errors.New("attachment is not an image")
	ErrEmptyResponse = errors.New("model returned empty response")
	ErrBadDataURL    = errors.New("malformed data url")
)
