package perf

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/posegraph/generator"
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultSeed seeds the random graphs of the solver cases.
const DefaultSeed int64 = 111

// Config is the harness configuration as read from YAML.
type Config struct {
	// Seed for random graph generation.
	Seed int64 `yaml:"seed" json:"seed"`

	// RepeatScale multiplies every case's repetition count (min 1 rep).
	RepeatScale float64 `yaml:"repeat_scale" json:"repeat_scale" validate:"gt=0,finite"`

	// Filter keeps only cases whose name contains it; empty keeps all.
	Filter string `yaml:"filter" json:"filter"`

	// EdgeDensity of the random graphs; see generator.Config.
	EdgeDensity float64 `yaml:"edge_density" json:"edge_density" validate:"gte=1,finite"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level" validate:"loglevel"`

	// Format of the report: text or json.
	Format string `yaml:"format" json:"format" validate:"oneof=text json"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Seed:        DefaultSeed,
		RepeatScale: 1,
		EdgeDensity: generator.DefaultEdgeDensity,
		LogLevel:    "info",
		Format:      FormatText,
	}
}

// configValidate checks the struct tags of Config.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	_ = configValidate.RegisterValidation("finite", validateFinite)
	_ = configValidate.RegisterValidation("loglevel", validateLogLevel)
}

func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func validateLogLevel(fl validator.FieldLevel) bool {
	_, err := ParseLevel(fl.Field().String())
	return err == nil
}

// Validate checks every field against its validate tag.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig loads configuration with priority: env > file > defaults.
// An empty path or a missing file leaves the defaults in place.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := loadConfigFromEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// YAML first, then JSON.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return fmt.Errorf("parse config (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}
	return nil
}

// loadConfigFromEnv applies PERFGRAPH_* overrides. A value that does not
// parse is an error rather than a silent fallback.
func loadConfigFromEnv(cfg *Config) error {
	if v := os.Getenv("PERFGRAPH_SEED"); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("PERFGRAPH_SEED=%q: %w: %w", v, ErrInvalidConfig, err)
		}
		cfg.Seed = i
	}
	if v := os.Getenv("PERFGRAPH_REPEAT_SCALE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("PERFGRAPH_REPEAT_SCALE=%q: %w: %w", v, ErrInvalidConfig, err)
		}
		cfg.RepeatScale = f
	}
	if v := os.Getenv("PERFGRAPH_FILTER"); v != "" {
		cfg.Filter = v
	}
	if v := os.Getenv("PERFGRAPH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return nil
}
