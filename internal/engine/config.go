package engine

import (
	"codeberg.org/mutker/signalctl/internal/aggregate"
	"codeberg.org/mutker/signalctl/internal/errors"
	"codeberg.org/mutker/signalctl/internal/scoring"
	"codeberg.org/mutker/signalctl/internal/store"
)

const defaultWindowMinutes = 5

type Config struct {
	Capacity         int
	WindowMinutes    int
	HealthyThreshold float64
	Scoring          scoring.Config
	Seed             int64 // 0 seeds from the clock
}

func DefaultConfig() Config {
	return Config{
		Capacity:         store.DefaultConfig().Capacity,
		WindowMinutes:    defaultWindowMinutes,
		HealthyThreshold: aggregate.DefaultConfig().HealthyThreshold,
		Scoring:          scoring.DefaultConfig(),
	}
}

func (c Config) Validate() error {
	errFactory := errors.New()

	if c.WindowMinutes <= 0 {
		return errFactory.New(errors.ErrInvalidInterval)
	}
	if err := (store.Config{Capacity: c.Capacity}).Validate(); err != nil {
		return err
	}
	if err := (aggregate.Config{HealthyThreshold: c.HealthyThreshold}).Validate(); err != nil {
		return err
	}

	return c.Scoring.Validate()
}
