package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 5, cfg.Study.MaxConcurrentSessions)
	assert.Equal(t, 30, cfg.Study.MaxStepsPerSession)
	assert.Equal(t, 600*time.Second, cfg.Study.SessionTimeout)
	assert.Equal(t, BrowserModeLocal, cfg.Browser.DefaultMode)
	assert.Equal(t, 3, cfg.Browser.FailureThreshold)
	assert.Equal(t, 60, cfg.Browser.ScreencastQuality)
	assert.False(t, cfg.Browser.CloudConfigured())
	assert.Equal(t, 8080, cfg.API.Port)
	require.NotNil(t, cfg.Queue)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)

	require.NoError(t, cfg.Validate())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("WANDERLENS_CONFIG", "")
	t.Setenv("MAX_CONCURRENT_SESSIONS", "9")
	t.Setenv("MAX_STEPS_PER_SESSION", "12")
	t.Setenv("SESSION_TIMEOUT_SECONDS", "42")
	t.Setenv("PER_ACTION_TIMEOUT_MS", "2500")
	t.Setenv("BROWSER_MODE_DEFAULT", "cloud")
	t.Setenv("CLOUD_BROWSER_API_URL", "https://browsers.example.com")
	t.Setenv("CLOUD_BROWSER_API_KEY", "secret")
	t.Setenv("SCREENCAST_QUALITY", "85")
	t.Setenv("LLM_GATEWAY_URL", "gateway.internal:50051")
	t.Setenv("BLOB_DIR", "/var/lib/wanderlens/blobs")
	t.Setenv("ALLOWED_WS_ORIGINS", " https://app.example.com ,https://staging.example.com, ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Study.MaxConcurrentSessions)
	assert.Equal(t, 12, cfg.Study.MaxStepsPerSession)
	assert.Equal(t, 42*time.Second, cfg.Study.SessionTimeout)
	assert.Equal(t, 2500*time.Millisecond, cfg.Study.PerActionTimeout)
	assert.Equal(t, BrowserModeCloud, cfg.Browser.DefaultMode)
	assert.True(t, cfg.Browser.CloudConfigured())
	assert.Equal(t, 85, cfg.Browser.ScreencastQuality)
	assert.Equal(t, "gateway.internal:50051", cfg.LLM.GatewayURL)
	assert.Equal(t, "/var/lib/wanderlens/blobs", cfg.BlobDir)
	assert.Equal(t,
		[]string{"https://app.example.com", "https://staging.example.com"},
		cfg.API.AllowedWSOrigins)
}

func TestLoadYAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wanderlens.yaml")
	content := `
study:
  max_steps_per_session: 8
browser:
  screencast_quality: 42
  cloud_api_url: ${TEST_CLOUD_URL}
blob_dir: /srv/blobs
queue:
  worker_count: 4
persona_templates:
  impatient-shopper:
    profile:
      name: Izzy the Impatient Shopper
      patience: 1
      tech_literacy: 7
      device_preference: mobile
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv("WANDERLENS_CONFIG", path)
	t.Setenv("TEST_CLOUD_URL", "https://cloud.example.com")
	// Env still has the last word over the file.
	t.Setenv("SCREENCAST_QUALITY", "77")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Study.MaxStepsPerSession)
	assert.Equal(t, 77, cfg.Browser.ScreencastQuality, "environment overrides the file")
	assert.Equal(t, "https://cloud.example.com", cfg.Browser.CloudAPIURL)
	assert.Equal(t, "/srv/blobs", cfg.BlobDir)
	assert.Equal(t, 4, cfg.Queue.WorkerCount)
	// Untouched sections keep their defaults.
	assert.Equal(t, 5, cfg.Study.MaxConcurrentSessions)

	tpl, err := GetTemplate("impatient-shopper")
	require.NoError(t, err)
	assert.Equal(t, "Izzy the Impatient Shopper", tpl.Profile.Name)
	assert.Equal(t, 1, tpl.Profile.Patience)
	assert.Equal(t, 7, tpl.Profile.TechLiteracy)
	assert.Equal(t, "mobile", tpl.Profile.DevicePreference)
}

func TestLoadConfigFileMissing(t *testing.T) {
	t.Setenv("WANDERLENS_CONFIG", "/nonexistent/wanderlens.yaml")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config file")
}

func TestLoadConfigFileInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{{"), 0644))

	t.Setenv("WANDERLENS_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing yaml")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name: "cloud mode with credentials is valid",
			mutate: func(c *Config) {
				c.Browser.DefaultMode = BrowserModeCloud
				c.Browser.CloudAPIURL = "https://cloud.example.com"
				c.Browser.CloudAPIKey = "key"
			},
		},
		{
			name:    "zero concurrent sessions",
			mutate:  func(c *Config) { c.Study.MaxConcurrentSessions = 0 },
			wantErr: "max_concurrent_sessions",
		},
		{
			name:    "zero steps per session",
			mutate:  func(c *Config) { c.Study.MaxStepsPerSession = 0 },
			wantErr: "max_steps_per_session",
		},
		{
			name:    "negative action retries",
			mutate:  func(c *Config) { c.Study.ActionRetries = -1 },
			wantErr: "action_retries",
		},
		{
			name:    "unknown browser mode",
			mutate:  func(c *Config) { c.Browser.DefaultMode = "remote" },
			wantErr: "default_mode",
		},
		{
			name:    "cloud mode without credentials",
			mutate:  func(c *Config) { c.Browser.DefaultMode = BrowserModeCloud },
			wantErr: "cloud credentials",
		},
		{
			name:    "screencast quality too low",
			mutate:  func(c *Config) { c.Browser.ScreencastQuality = 0 },
			wantErr: "screencast_quality",
		},
		{
			name:    "screencast quality too high",
			mutate:  func(c *Config) { c.Browser.ScreencastQuality = 101 },
			wantErr: "screencast_quality",
		},
		{
			name:    "non-positive live state ttl",
			mutate:  func(c *Config) { c.LiveState.TTL = 0 },
			wantErr: "ttl",
		},
		{
			name:    "zero queue workers",
			mutate:  func(c *Config) { c.Queue.WorkerCount = 0 },
			wantErr: "worker_count",
		},
		{
			name:    "zero poll interval",
			mutate:  func(c *Config) { c.Queue.PollInterval = 0 },
			wantErr: "poll_interval",
		},
		{
			name: "orphan threshold below heartbeat",
			mutate: func(c *Config) {
				c.Queue.HeartbeatInterval = 30 * time.Second
				c.Queue.OrphanThreshold = 30 * time.Second
			},
			wantErr: "orphan_threshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitAndTrim("a, b ,,c"))
	assert.Equal(t, []string{"https://one.example"}, splitAndTrim("https://one.example"))
	assert.Empty(t, splitAndTrim(" , "))
}

func TestPersonaTemplates(t *testing.T) {
	tpl, err := GetTemplate("power-user")
	require.NoError(t, err)
	assert.Equal(t, "Priya the Power User", tpl.Profile.Name)
	assert.Equal(t, 9, tpl.Profile.TechLiteracy)

	_, err = GetTemplate("no-such-template")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown persona template")

	ids := TemplateIDs()
	for _, want := range []string{"power-user", "cautious-senior", "mobile-first", "screen-reader", "first-timer"} {
		assert.Contains(t, ids, want)
	}
}
