package extract

import "errors"

var (
	ErrUnexpectedStatus  = errors.New("unexpected response status")
	ErrMalformedResponse = errors.New("malformed analysis response")
	ErrUnsupportedFile   = errors.New("unsupported file type")
)
