package store

import "codeberg.org/mutker/signalctl/internal/errors"

const (
	// Configuration Errors
	ErrInvalidConfig   = errors.ErrInvalidConfig
	ErrInvalidCapacity = errors.ErrorCode("store_invalid_capacity")

	// Ingestion Errors
	ErrInvalidReading = errors.ErrValidation
)
