package aggregate

import "codeberg.org/mutker/signalctl/internal/errors"

const (
	// Configuration Errors
	ErrInvalidConfig    = errors.ErrInvalidConfig
	ErrInvalidThreshold = errors.ErrorCode("aggregate_invalid_threshold")
)
