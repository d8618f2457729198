package humanid

import "errors"

var (
	// ErrDeserialization is returned when a snapshot blob is corrupted, of a
	// foreign format, or describes an inconsistent state.
	ErrDeserialization = errors.New("failed to deserialize id manager snapshot")

	// ErrInvalidOriginal is returned when input cannot be turned into an OriginalID.
	ErrInvalidOriginal = errors.New("invalid original identifier")

	ErrNilDictionary = errors.New("dictionary is nil")
)
