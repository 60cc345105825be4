package metric

import "codeberg.org/mutker/signalctl/internal/errors"

const (
	// Validation Errors
	ErrInvalidReading = errors.ErrValidation
)
