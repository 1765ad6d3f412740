package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned by Validate for values the services cannot run with.
var ErrInvalidConfig = errors.New("invalid configuration")

// SupportedLanguages are the response languages the Unisender API serves.
var SupportedLanguages = []string{"en", "ru", "ua"}

// Config holds all configuration for the Unisender services.
// It is read once at startup and treated as read-only afterwards.
type Config struct {
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	EnableLogging bool   `mapstructure:"ENABLE_LOGGING"`

	// Unisender API
	APIKey         string `mapstructure:"API_KEY"`
	Encoding       string `mapstructure:"ENCODING"`
	RetryCount     int    `mapstructure:"RETRY_COUNT"`
	RetryWaitMS    int    `mapstructure:"RETRY_WAIT_MS"`
	TimeoutSeconds int    `mapstructure:"TIMEOUT"` // 0 = no timeout
	Compression    bool   `mapstructure:"COMPRESSION"`
	Platform       string `mapstructure:"PLATFORM"`
	Lang           string `mapstructure:"LANG"`
	APIHost        string `mapstructure:"API_HOST"`
	Transport      string `mapstructure:"TRANSPORT"` // "http" or "mock"

	// Defaults for common operations
	DefaultSMSSender   string `mapstructure:"DEFAULT_SMS_SENDER"`
	DefaultEmailSender string `mapstructure:"DEFAULT_EMAIL_SENDER"`
	DefaultListID      string `mapstructure:"DEFAULT_LIST_ID"`

	// Public API Service Specific
	ServerPort   int    `mapstructure:"SERVER_PORT"`
	APIJWTSecret string `mapstructure:"API_JWT_SECRET"` // empty disables auth

	// Feature flags that are loaded and reported but not acted on.
	EnableCache        bool   `mapstructure:"ENABLE_CACHE"`
	CacheTTL           int    `mapstructure:"CACHE_TTL"`
	EnableRateLimiting bool   `mapstructure:"ENABLE_RATE_LIMITING"`
	RateLimitPerMinute int    `mapstructure:"RATE_LIMIT_PER_MINUTE"`
	WebhookURL         string `mapstructure:"WEBHOOK_URL"`
	WebhookSecret      string `mapstructure:"WEBHOOK_SECRET"`
}

// Timeout returns the request timeout; zero means none.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RetryWait returns the backoff step between transport attempts.
func (c Config) RetryWait() time.Duration {
	return time.Duration(c.RetryWaitMS) * time.Millisecond
}

// Validate checks the values that would otherwise fail on first use.
func (c Config) Validate() error {
	var problems []string

	if !isSupportedLanguage(c.Lang) {
		problems = append(problems, fmt.Sprintf("LANG must be one of %s, got %q", strings.Join(SupportedLanguages, ", "), c.Lang))
	}
	if c.RetryCount < 0 {
		problems = append(problems, "RETRY_COUNT must not be negative")
	}
	if c.RetryWaitMS < 0 {
		problems = append(problems, "RETRY_WAIT_MS must not be negative")
	}
	if c.TimeoutSeconds < 0 {
		problems = append(problems, "TIMEOUT must not be negative")
	}
	if c.Transport != "http" && c.Transport != "mock" {
		problems = append(problems, fmt.Sprintf("TRANSPORT must be http or mock, got %q", c.Transport))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func isSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// Load reads config.defaults.yaml (if any) and UNISENDER_* environment
// variables on top of the built-in defaults. serviceName is only used for
// log context.
func Load(serviceName string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config.defaults")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	return load(v, serviceName)
}

// LoadFile is Load with an explicit config file path.
func LoadFile(serviceName, path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	return load(v, serviceName)
}

func load(v *viper.Viper, serviceName string) (*Config, error) {
	v.SetEnvPrefix("UNISENDER") // UNISENDER_API_KEY, UNISENDER_LANG etc.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Printf("%s: configuration file not found; using defaults and environment variables.", serviceName)
		} else {
			return nil, fmt.Errorf("failed to read configuration: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Every key needs a default, otherwise AutomaticEnv values are invisible to Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ENABLE_LOGGING", true)

	v.SetDefault("API_KEY", "")
	v.SetDefault("ENCODING", "UTF-8")
	v.SetDefault("RETRY_COUNT", 4)
	v.SetDefault("RETRY_WAIT_MS", 250)
	v.SetDefault("TIMEOUT", 0)
	v.SetDefault("COMPRESSION", false)
	v.SetDefault("PLATFORM", "Go Unisender Service")
	v.SetDefault("LANG", "en")
	v.SetDefault("API_HOST", "https://api.unisender.com")
	v.SetDefault("TRANSPORT", "http")

	v.SetDefault("DEFAULT_SMS_SENDER", "")
	v.SetDefault("DEFAULT_EMAIL_SENDER", "")
	v.SetDefault("DEFAULT_LIST_ID", "")

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("API_JWT_SECRET", "")

	v.SetDefault("ENABLE_CACHE", false)
	v.SetDefault("CACHE_TTL", 3600)
	v.SetDefault("ENABLE_RATE_LIMITING", false)
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	v.SetDefault("WEBHOOK_URL", "")
	v.SetDefault("WEBHOOK_SECRET", "")
}
