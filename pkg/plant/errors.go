package plant

import "errors"

var (
	ErrInvalidPlant = errors.New("invalid plant data")
	ErrInvalidInput = errors.New("invalid care input")
)
