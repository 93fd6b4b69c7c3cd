package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/SathFenrir/lockroi/internal/roi"
	"github.com/spf13/viper"
)

// SliderBounds describes one numeric input: its range, step, and the value
// it starts at.
type SliderBounds struct {
	Min     float64 `mapstructure:"min"`
	Max     float64 `mapstructure:"max"`
	Step    float64 `mapstructure:"step"`
	Default float64 `mapstructure:"default"`
}

type Config struct {
	TablePath        string       `mapstructure:"table_path"`
	TableHasHeader   bool         `mapstructure:"table_has_header"`
	RewardConvention string       `mapstructure:"reward_convention"`
	RewardBaseline   float64      `mapstructure:"reward_baseline"`
	DefaultDay       int          `mapstructure:"default_day"`
	Token1           SliderBounds `mapstructure:"token1"`
	Token2           SliderBounds `mapstructure:"token2"`
	DebugLogging     bool         `mapstructure:"debug_logging"`
	LogFile          string       `mapstructure:"log_file"`
}

const (
	DefaultTablePath  = "multipliers.csv"
	DefaultDay        = 113
	DefaultLogFile    = "lockroi.log"
	DefaultConvention = string(roi.ConventionBaseline)
)

// LoadConfig reads the config file at path, applies defaults and
// environment overrides (LOCKROI_ prefix), and validates the result.
// A missing config file is not an error; defaults alone produce a usable
// configuration.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := map[string]interface{}{
		"table_path":        DefaultTablePath,
		"table_has_header":  false,
		"reward_convention": DefaultConvention,
		"reward_baseline":   roi.DefaultBaseline,
		"default_day":       DefaultDay,
		"token1.min":        0.5,
		"token1.max":        15.0,
		"token1.step":       0.1,
		"token1.default":    2.94,
		"token2.min":        0.10,
		"token2.max":        1.5,
		"token2.step":       0.05,
		"token2.default":    0.5,
		"debug_logging":     false,
		"log_file":          DefaultLogFile,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("LOCKROI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, validateConfig(&cfg)
}

func validateConfig(cfg *Config) error {
	if cfg.TablePath == "" {
		return errors.New("missing table_path in configuration")
	}
	switch roi.Convention(cfg.RewardConvention) {
	case roi.ConventionDirect, roi.ConventionBaseline:
	default:
		return fmt.Errorf("unknown reward_convention %q", cfg.RewardConvention)
	}
	if cfg.RewardBaseline <= 0 {
		return errors.New("invalid reward_baseline")
	}
	if cfg.DefaultDay < 0 {
		return errors.New("invalid default_day")
	}
	if err := validateSlider("token1", cfg.Token1); err != nil {
		return err
	}
	if err := validateSlider("token2", cfg.Token2); err != nil {
		return err
	}
	return nil
}

func validateSlider(name string, b SliderBounds) error {
	if b.Min >= b.Max {
		return fmt.Errorf("%s: min must be below max", name)
	}
	if b.Step <= 0 {
		return fmt.Errorf("%s: invalid step", name)
	}
	if b.Default < b.Min || b.Default > b.Max {
		return fmt.Errorf("%s: default %v outside [%v, %v]", name, b.Default, b.Min, b.Max)
	}
	return nil
}

// Calculator builds the ROI calculator configured by this config.
func (c *Config) Calculator() (*roi.Calculator, error) {
	return roi.NewCalculator(roi.Convention(c.RewardConvention), c.RewardBaseline)
}
