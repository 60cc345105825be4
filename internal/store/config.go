package store

import "codeberg.org/mutker/signalctl/internal/errors"

const defaultCapacity = 1000

type Config struct {
	Capacity int
}

func DefaultConfig() Config {
	return Config{
		Capacity: defaultCapacity,
	}
}

func (c Config) Validate() error {
	errFactory := errors.New()

	if c.Capacity <= 0 {
		return errFactory.New(ErrInvalidCapacity)
	}

	return nil
}
