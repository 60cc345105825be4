package scoring

import "codeberg.org/mutker/signalctl/internal/errors"

const (
	// Configuration Errors
	ErrInvalidConfig = errors.ErrInvalidConfig
	ErrInvalidRange  = errors.ErrorCode("scoring_invalid_range")
)
