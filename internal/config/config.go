package config

import (
	"os"
	"strings"

	"codeberg.org/mutker/signalctl/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel = "info"

	defaultInterval      = 2
	defaultCapacity      = 1000
	defaultWindowMinutes = 5
	defaultThreshold     = 70.0
	defaultSamples       = 10
	defaultBaseFrequency = 1000.0
)

type Config struct {
	// Interval is the number of seconds between simulated batches in
	// monitor mode.
	Interval         int     `mapstructure:"interval"`
	Capacity         int     `mapstructure:"capacity"`
	WindowMinutes    int     `mapstructure:"window_minutes"`
	HealthyThreshold float64 `mapstructure:"healthy_threshold"`
	Samples          int     `mapstructure:"samples"`
	BaseFrequency    float64 `mapstructure:"base_frequency"`
	Seed             int64   `mapstructure:"seed"`
	LogLevel         string  `mapstructure:"log_level"`
	Debug            bool    `mapstructure:"debug"`
	Verbose          bool    `mapstructure:"verbose"`
}

// Load reads configuration from defaults, the TOML config file, the
// SIGNALCTL_* environment and command line flags, in ascending
// precedence. The file is optional; SIGNALCTL_CONFIG overrides the
// search path.
func Load() (*Config, error) {
	errFactory := errors.New()

	v := viper.New()
	v.SetDefault("interval", defaultInterval)
	v.SetDefault("capacity", defaultCapacity)
	v.SetDefault("window_minutes", defaultWindowMinutes)
	v.SetDefault("healthy_threshold", defaultThreshold)
	v.SetDefault("samples", defaultSamples)
	v.SetDefault("base_frequency", defaultBaseFrequency)
	v.SetDefault("seed", 0)
	v.SetDefault("log_level", DefaultLogLevel)

	flags := pflag.NewFlagSet("signalctl", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.Int("interval", defaultInterval, "Seconds between simulated batches")
	flags.Int("capacity", defaultCapacity, "Maximum records held in memory")
	flags.Int("window-minutes", defaultWindowMinutes, "Default aggregation window")
	flags.Int("samples", defaultSamples, "Samples per simulated batch")
	flags.Float64("base-frequency", defaultBaseFrequency, "Base frequency for simulation (Hz)")
	flags.Int64("seed", 0, "Random seed for simulation (0 = from clock)")
	flags.String("log-level", DefaultLogLevel, "Log level (debug, info, warning, error)")
	flags.Bool("debug", false, "Enable debugging mode")
	flags.Bool("verbose", false, "Enable verbose logging")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	flags.Visit(func(f *pflag.Flag) {
		v.Set(strings.ReplaceAll(f.Name, "-", "_"), f.Value.String())
	})

	v.SetEnvPrefix("SIGNALCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := os.Getenv("SIGNALCTL_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("signalctl")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errFactory.WithMessage(errors.ErrReadConfig, "Failed to read config file").
				WithData(err.Error())
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrReadConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.Interval <= 0 {
		return errFactory.New(errors.ErrInvalidInterval)
	}
	if !isValidLogLevel(c.LogLevel) {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	return nil
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warning", "error":
		return true
	default:
		return false
	}
}
