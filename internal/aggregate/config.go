package aggregate

import "codeberg.org/mutker/signalctl/internal/errors"

const (
	defaultHealthyThreshold = 70.0
)

type Config struct {
	// HealthyThreshold is the quality score above which a record
	// counts toward the healthy ratio.
	HealthyThreshold float64
}

func DefaultConfig() Config {
	return Config{
		HealthyThreshold: defaultHealthyThreshold,
	}
}

func (c Config) Validate() error {
	errFactory := errors.New()

	if c.HealthyThreshold < 0 || c.HealthyThreshold > 100 {
		return errFactory.New(ErrInvalidThreshold)
	}

	return nil
}
