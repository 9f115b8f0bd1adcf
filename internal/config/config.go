package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

const (
	defaultEnvFile         = ".env"
	defaultPort            = "5000"
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 120 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultEnvironment     = "local"
	defaultLogLevel        = "info"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server ServerConfig
	Site   SiteConfig
	Log    LogConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Addr returns the listen address for the configured port.
func (c ServerConfig) Addr() string { return ":" + c.Port }

// SiteConfig controls where built assets come from.
type SiteConfig struct {
	// PublicDir serves assets from disk instead of the embedded build when set.
	PublicDir   string
	Environment string
}

// IsLocal reports whether the process runs in a developer environment.
func (c SiteConfig) IsLocal() bool { return c.Environment == "local" }

// LogConfig controls the process logger.
type LogConfig struct {
	Level zapcore.Level
}

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from os.Getenv, relying only on provided maps and .env files.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load resolves configuration with precedence dotenv < OS env < explicit env map.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	var invalid []string
	duration := func(key, field string, fallback time.Duration) time.Duration {
		d, ok := durationWithDefault(lookup, key, fallback)
		if !ok {
			invalid = append(invalid, field)
		}
		return d
	}

	cfg := Config{
		Server: ServerConfig{
			Port:            strings.TrimSpace(stringWithDefault(lookup, "PORT", defaultPort)),
			ReadTimeout:     duration("MOOFAR_READ_TIMEOUT", "Server.ReadTimeout", defaultReadTimeout),
			WriteTimeout:    duration("MOOFAR_WRITE_TIMEOUT", "Server.WriteTimeout", defaultWriteTimeout),
			IdleTimeout:     duration("MOOFAR_IDLE_TIMEOUT", "Server.IdleTimeout", defaultIdleTimeout),
			ShutdownTimeout: duration("MOOFAR_SHUTDOWN_TIMEOUT", "Server.ShutdownTimeout", defaultShutdownTimeout),
		},
		Site: SiteConfig{
			PublicDir:   strings.TrimSpace(stringWithDefault(lookup, "MOOFAR_PUBLIC_DIR", "")),
			Environment: strings.ToLower(strings.TrimSpace(stringWithDefault(lookup, "MOOFAR_ENV", defaultEnvironment))),
		},
	}

	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(stringWithDefault(lookup, "LOG_LEVEL", defaultLogLevel))))
	if err != nil {
		invalid = append(invalid, "Log.Level")
	}
	cfg.Log.Level = level

	if err := validateConfig(cfg, invalid); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config, invalid []string) error {
	missing := append([]string(nil), invalid...)

	if port, err := strconv.Atoi(cfg.Server.Port); err != nil || port < 1 || port > 65535 {
		missing = append(missing, "Server.Port")
	}
	for field, d := range map[string]time.Duration{
		"Server.ReadTimeout":     cfg.Server.ReadTimeout,
		"Server.WriteTimeout":    cfg.Server.WriteTimeout,
		"Server.IdleTimeout":     cfg.Server.IdleTimeout,
		"Server.ShutdownTimeout": cfg.Server.ShutdownTimeout,
	} {
		if d <= 0 && !slices.Contains(missing, field) {
			missing = append(missing, field)
		}
	}
	if cfg.Site.Environment == "" {
		missing = append(missing, "Site.Environment")
	}
	if cfg.Site.PublicDir != "" {
		info, err := os.Stat(cfg.Site.PublicDir)
		if err != nil || !info.IsDir() {
			missing = append(missing, "Site.PublicDir")
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return &ValidationError{fields: missing}
	}
	return nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	file, err := os.Open(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	values := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		values[key] = strings.Trim(strings.TrimSpace(value), "\"'")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", absPath, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return fallback
}

// durationWithDefault reports false when the key is set but does not parse.
func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) (time.Duration, bool) {
	value, ok := lookup(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback, true
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback, false
	}
	return d, true
}
