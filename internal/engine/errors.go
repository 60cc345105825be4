package engine

import "codeberg.org/mutker/signalctl/internal/errors"

const (
	// Configuration Errors
	ErrInvalidConfig = errors.ErrInvalidConfig

	// Initialization Errors
	ErrInitEngine = errors.ErrorCode("engine_init_failed")

	// Operation Errors
	ErrOperationTimeout = errors.ErrTimeout
)
