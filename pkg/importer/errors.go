package importer

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported batch format")
	ErrMalformedBatch    = errors.New("malformed batch")
)
