package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/chinese-namegen/auth"
)

const (
	DefaultPort            = 3000
	DefaultAPIURL          = "https://ark.cn-beijing.volces.com/api/v3/chat/completions"
	DefaultModel           = "deepseek-r1-250120"
	DefaultStaticDir       = "web"
	DefaultUpstreamTimeout = 60 * time.Second
	DefaultMaxBodySize     = "1MiB"
)

// Config is built once at startup and passed by value to every component
type Config struct {
	Port                int
	APIKey              string
	APIURL              string
	Model               string
	StaticDir           string
	UpstreamTimeout     time.Duration
	MaxBodyBytes        int64
	ValidateSuggestions bool
	LogLevel            slog.Level
}

// String renders the config for logging with the API key masked
func (c Config) String() string {
	return fmt.Sprintf("port=%d api_url=%s model=%s static=%s timeout=%s max_body=%s validate=%t log_level=%s api_key=%s",
		c.Port, c.APIURL, c.Model, c.StaticDir, c.UpstreamTimeout,
		humanize.IBytes(uint64(c.MaxBodyBytes)), c.ValidateSuggestions, c.LogLevel, auth.MaskSecret(c.APIKey))
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile, maxBody, validate, logLevel string

	fs := flag.NewFlagSet("namegen-server", flag.ContinueOnError)

	fs.StringVar(&envFile, "env", ".env", "Optional dotenv file")

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StaticDir, "static", "", "Static file root")
	fs.StringVar(&maxBody, "max-body", "", "Max request body size, e.g. 1MiB (0 disables)")

	// Upstream
	fs.StringVar(&cfg.APIURL, "api-url", "", "Chat completions endpoint")
	fs.StringVar(&cfg.Model, "model", "", "Model identifier")
	fs.DurationVar(&cfg.UpstreamTimeout, "timeout", 0, "Upstream request timeout")
	fs.StringVar(&validate, "validate", "", "Validate upstream suggestions before relaying (true/false)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.APIKey, "api-key", "", "Upstream API key (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Existing environment wins over the dotenv file
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port out of range: %d", cfg.Port)
	}

	cfg.StaticDir = firstNonEmpty(cfg.StaticDir, os.Getenv("STATIC_DIR"), DefaultStaticDir)
	cfg.APIURL = firstNonEmpty(cfg.APIURL, os.Getenv("API_URL"), DefaultAPIURL)
	cfg.Model = firstNonEmpty(cfg.Model, os.Getenv("MODEL"), DefaultModel)

	if cfg.UpstreamTimeout == 0 {
		if s := os.Getenv("UPSTREAM_TIMEOUT"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid UPSTREAM_TIMEOUT env variable")
			}
			cfg.UpstreamTimeout = d
		} else {
			cfg.UpstreamTimeout = DefaultUpstreamTimeout
		}
	}
	if cfg.UpstreamTimeout < 0 {
		return Config{}, errors.New("timeout must be positive")
	}

	maxBody = firstNonEmpty(maxBody, os.Getenv("MAX_BODY_SIZE"), DefaultMaxBodySize)
	size, err := humanize.ParseBytes(maxBody)
	if err != nil {
		return Config{}, fmt.Errorf("invalid max body size %q: %w", maxBody, err)
	}
	cfg.MaxBodyBytes = int64(size)

	validate = firstNonEmpty(validate, os.Getenv("VALIDATE_SUGGESTIONS"), "true")
	cfg.ValidateSuggestions, err = strconv.ParseBool(validate)
	if err != nil {
		return Config{}, fmt.Errorf("invalid validate value %q", validate)
	}

	logLevel = firstNonEmpty(logLevel, os.Getenv("LOG_LEVEL"), "info")
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q", logLevel)
	}

	// Secrets - MUST be provided
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("API_KEY")
	}
	if err := auth.ValidateCredential(cfg.APIKey); err != nil {
		return Config{}, fmt.Errorf("API_KEY: %w", err)
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
