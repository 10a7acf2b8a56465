package garden

import "errors"

var (
	ErrPlantNotFound = errors.New("plant not found")
	ErrIDExhausted   = errors.New("could not allocate a unique plant id")
	ErrUnknownAction = errors.New("unknown care action")
)
