// Package config loads runtime configuration from the environment, with an
// optional YAML overlay for tuning and persona templates.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Browser modes.
const (
	BrowserModeLocal = "local"
	BrowserModeCloud = "cloud"
)

// Config is the root runtime configuration.
type Config struct {
	Study     StudyConfig     `yaml:"study"`
	Browser   BrowserConfig   `yaml:"browser"`
	LLM       LLMConfig       `yaml:"llm"`
	LiveState LiveStateConfig `yaml:"live_state"`
	API       APIConfig       `yaml:"api"`
	BlobDir   string          `yaml:"blob_dir"`
	Queue     *QueueConfig    `yaml:"queue"`
}

// StudyConfig bounds session fan-out and the navigation loop.
type StudyConfig struct {
	MaxConcurrentSessions int           `yaml:"max_concurrent_sessions"`
	MaxStepsPerSession    int           `yaml:"max_steps_per_session"`
	StudyTimeout          time.Duration `yaml:"study_timeout"`
	SessionTimeout        time.Duration `yaml:"session_timeout"`
	PerActionTimeout      time.Duration `yaml:"per_action_timeout"`
	ActionRetries         int           `yaml:"action_retries"`
}

// BrowserConfig tunes the browser pool and cloud failover.
type BrowserConfig struct {
	DefaultMode         string        `yaml:"default_mode"` // local, cloud
	AcquireTimeout      time.Duration `yaml:"acquire_timeout"`
	FailoverCooldown    time.Duration `yaml:"failover_cooldown"`
	FailureThreshold    int           `yaml:"failure_threshold"`
	FailureWindow       time.Duration `yaml:"failure_window"`
	HealthProbeInterval time.Duration `yaml:"health_probe_interval"`
	ScreencastQuality   int           `yaml:"screencast_quality"` // JPEG quality 1-100
	CloudAPIURL         string        `yaml:"cloud_api_url"`
	CloudAPIKey         string        `yaml:"-"` // env only, never from file
}

// CloudConfigured reports whether cloud acquisition is possible at all.
func (b BrowserConfig) CloudConfigured() bool {
	return b.CloudAPIURL != "" && b.CloudAPIKey != ""
}

// LLMConfig points at the gateway.
type LLMConfig struct {
	GatewayURL     string        `yaml:"gateway_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	MaxRetries     int           `yaml:"max_retries"`
}

// LiveStateConfig tunes the live-state store.
type LiveStateConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// APIConfig tunes the HTTP server.
type APIConfig struct {
	Port             int      `yaml:"port"`
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
}

// Default returns the built-in configuration before env and file overlays.
func Default() *Config {
	return &Config{
		Study: StudyConfig{
			MaxConcurrentSessions: 5,
			MaxStepsPerSession:    30,
			StudyTimeout:          600 * time.Second,
			SessionTimeout:        600 * time.Second,
			PerActionTimeout:      15 * time.Second,
			ActionRetries:         1,
		},
		Browser: BrowserConfig{
			DefaultMode:         BrowserModeLocal,
			AcquireTimeout:      120 * time.Second,
			FailoverCooldown:    300 * time.Second,
			FailureThreshold:    3,
			FailureWindow:       5 * time.Minute,
			HealthProbeInterval: 60 * time.Second,
			ScreencastQuality:   60,
		},
		LLM: LLMConfig{
			RequestTimeout: 120 * time.Second,
			MaxRetries:     3,
		},
		LiveState: LiveStateConfig{
			TTL: 21600 * time.Second,
		},
		API: APIConfig{
			Port: 8080,
		},
		BlobDir: "./data/blobs",
		Queue:   DefaultQueueConfig(),
	}
}

// Load builds the effective configuration: defaults, then the optional YAML
// file named by WANDERLENS_CONFIG, then environment variables on top.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("WANDERLENS_CONFIG"); path != "" {
		if err := cfg.mergeFromFile(path); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides config fields from the recognized environment variables.
func (c *Config) applyEnv() {
	intEnv("MAX_CONCURRENT_SESSIONS", &c.Study.MaxConcurrentSessions)
	intEnv("MAX_STEPS_PER_SESSION", &c.Study.MaxStepsPerSession)
	secondsEnv("STUDY_TIMEOUT_SECONDS", &c.Study.StudyTimeout)
	secondsEnv("SESSION_TIMEOUT_SECONDS", &c.Study.SessionTimeout)
	millisEnv("PER_ACTION_TIMEOUT_MS", &c.Study.PerActionTimeout)
	intEnv("ACTION_RETRIES", &c.Study.ActionRetries)

	if v := os.Getenv("BROWSER_MODE_DEFAULT"); v != "" {
		c.Browser.DefaultMode = v
	}
	secondsEnv("FAILOVER_COOLDOWN_SECONDS", &c.Browser.FailoverCooldown)
	secondsEnv("ACQUIRE_TIMEOUT_SECONDS", &c.Browser.AcquireTimeout)
	intEnv("SCREENCAST_QUALITY", &c.Browser.ScreencastQuality)
	if v := os.Getenv("CLOUD_BROWSER_API_URL"); v != "" {
		c.Browser.CloudAPIURL = v
	}
	if v := os.Getenv("CLOUD_BROWSER_API_KEY"); v != "" {
		c.Browser.CloudAPIKey = v
	}

	secondsEnv("LIVE_STATE_TTL_SECONDS", &c.LiveState.TTL)

	if v := os.Getenv("LLM_GATEWAY_URL"); v != "" {
		c.LLM.GatewayURL = v
	}
	if v := os.Getenv("BLOB_DIR"); v != "" {
		c.BlobDir = v
	}
	intEnv("API_PORT", &c.API.Port)
	if v := os.Getenv("ALLOWED_WS_ORIGINS"); v != "" {
		c.API.AllowedWSOrigins = splitAndTrim(v)
	}
}

// splitAndTrim splits a comma-separated list, dropping empty entries.
func splitAndTrim(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate rejects configurations the runtime cannot honor.
func (c *Config) Validate() error {
	if c.Study.MaxConcurrentSessions < 1 {
		return fmt.Errorf("max_concurrent_sessions must be >= 1, got %d", c.Study.MaxConcurrentSessions)
	}
	if c.Study.MaxStepsPerSession < 1 {
		return fmt.Errorf("max_steps_per_session must be >= 1, got %d", c.Study.MaxStepsPerSession)
	}
	if c.Study.ActionRetries < 0 {
		return fmt.Errorf("action_retries must be >= 0, got %d", c.Study.ActionRetries)
	}
	switch c.Browser.DefaultMode {
	case BrowserModeLocal, BrowserModeCloud:
	default:
		return fmt.Errorf("browser default_mode must be local or cloud, got %q", c.Browser.DefaultMode)
	}
	if c.Browser.DefaultMode == BrowserModeCloud && !c.Browser.CloudConfigured() {
		return fmt.Errorf("browser default_mode is cloud but cloud credentials are not configured")
	}
	if q := c.Browser.ScreencastQuality; q < 1 || q > 100 {
		return fmt.Errorf("screencast_quality must be in [1, 100], got %d", q)
	}
	if c.LiveState.TTL <= 0 {
		return fmt.Errorf("live_state ttl must be positive, got %v", c.LiveState.TTL)
	}
	if c.Queue != nil {
		if err := c.Queue.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func intEnv(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func secondsEnv(key string, dst *time.Duration) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = time.Duration(n) * time.Second
		}
	}
}

func millisEnv(key string, dst *time.Duration) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = time.Duration(n) * time.Millisecond
		}
	}
}
