package simulate

import "codeberg.org/mutker/signalctl/internal/errors"

const (
	// Validation Errors
	ErrInvalidSamples = errors.ErrValidation
)
