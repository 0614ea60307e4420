package propel

import "errors"

var (
	ErrFileOpen          = errors.New("schema file could not be opened")
	ErrUnsupportedFormat = errors.New("unsupported schema format")
	ErrInvalidSchema     = errors.New("invalid schema")
)
