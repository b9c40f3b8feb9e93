package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/lymphiz/internal/quiz"
)

// EnvPrefix prefixes every environment variable, e.g. LYMPHIZ_SEED.
const EnvPrefix = "LYMPHIZ"

// Config holds all runtime configuration.
type Config struct {
	// Dataset is an external JSON/YAML dataset. Empty uses the built-in one.
	Dataset string `envconfig:"DATASET"`

	// Seed fixes the random source. Zero seeds from the clock.
	Seed uint64 `envconfig:"SEED"`

	// MaxAttempts bounds the generators' redraw loops.
	MaxAttempts int `envconfig:"MAX_ATTEMPTS" default:"100"`

	// AllowTrivialSequences shows single-structure routes in the sequence game.
	AllowTrivialSequences bool `envconfig:"ALLOW_TRIVIAL_SEQUENCES" default:"false"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFile is the rotated log file. "-" disables file logging.
	LogFile string `envconfig:"LOG_FILE"`

	HTTPAddr    string        `envconfig:"HTTP_ADDR" default:":8080"`
	CORSOrigins []string      `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`
	RateLimit   float64       `envconfig:"RATE_LIMIT" default:"20"`
	RateBurst   int           `envconfig:"RATE_BURST" default:"40"`
	SessionTTL  time.Duration `envconfig:"SESSION_TTL" default:"2h"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: quiz.DefaultConfig().MaxAttempts,
		LogLevel:    "info",
		LogFile:     DefaultLogFile(),
		HTTPAddr:    ":8080",
		CORSOrigins: []string{"http://localhost:3000"},
		RateLimit:   20,
		RateBurst:   40,
		SessionTTL:  2 * time.Hour,
	}
}

// DefaultLogFile returns the log path under the user's state directory.
func DefaultLogFile() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "lymphiz", "lymphiz.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "lymphiz", "lymphiz.log")
	}
	return filepath.Join(home, ".local", "state", "lymphiz", "lymphiz.log")
}

// DefaultDotEnv is read when no dotenv file is named explicitly.
const DefaultDotEnv = ".env"

// OptionalDotEnv returns path when it exists and nil otherwise. Use it for
// the implicit default file; files named by the user go to FromEnv as is.
func OptionalDotEnv(path string) []string {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return []string{path}
}

// FromEnv loads every named dotenv file and then reads LYMPHIZ_* variables
// over the defaults. A named file that cannot be read is an error.
func FromEnv(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) > 0 {
		if err := godotenv.Load(dotenvFiles...); err != nil {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFile()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []string
	if c.MaxAttempts < 1 {
		errs = append(errs, fmt.Sprintf("max attempts must be positive, got %d", c.MaxAttempts))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Sprintf("unknown log level %q", c.LogLevel))
	}
	if c.RateLimit < 0 {
		errs = append(errs, fmt.Sprintf("rate limit must not be negative, got %v", c.RateLimit))
	}
	if c.RateLimit > 0 && c.RateBurst < 1 {
		errs = append(errs, fmt.Sprintf("rate burst must be positive, got %d", c.RateBurst))
	}
	if c.SessionTTL < 0 {
		errs = append(errs, fmt.Sprintf("session TTL must not be negative, got %s", c.SessionTTL))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Quiz returns the generator settings.
func (c Config) Quiz() quiz.Config {
	qc := quiz.DefaultConfig()
	qc.MaxAttempts = c.MaxAttempts
	qc.AllowTrivialSequences = c.AllowTrivialSequences
	return qc
}

// LogPath returns the log file, or "" when file logging is disabled.
func (c Config) LogPath() string {
	if c.LogFile == "-" {
		return ""
	}
	return c.LogFile
}
