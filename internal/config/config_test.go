package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/suno-cli/internal/constants"
)

const testCookie = "__client=eyJhbGciOi.test; __client_uat=1712345678"

// validConfig returns a configuration that passes ValidateConfig.
func validConfig() *Config {
	return &Config{
		Cookie:            testCookie,
		ClerkBaseURL:      DefaultClerkBaseURL,
		ClerkJSVersion:    DefaultClerkJSVersion,
		StudioBaseURL:     DefaultStudioBaseURL,
		CDNBaseURL:        DefaultCDNBaseURL,
		SongPageBaseURL:   DefaultSongPageBaseURL,
		ModelVersion:      DefaultModelVersion,
		GenerationTimeout: DefaultGenerationTimeout,
		MinPollPause:      DefaultMinPollPause,
		MaxPollPause:      DefaultMaxPollPause,
		RequestTimeout:    DefaultRequestTimeout,
		LogLevel:          "info",
		SongCacheTTL:      DefaultSongCacheTTL,
		SongCacheSize:     DefaultSongCacheSize,
	}
}

// TestLoadConfig tests the LoadConfig function.
//
//nolint:paralleltest // Viper and the process environment are global.
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name          string
		filename      string
		content       string
		env           string
		expectError   bool
		expectedError string
		check         func(*testing.T, *Config)
	}{
		{
			name:     "file values override defaults",
			filename: "valid.yaml",
			content: `
cookie: "from_file=1"
model_version: "chirp-v3-5"
generation_timeout: "120s"
download_speed_limit: "1MB"
impersonate_browser: false
`,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "from_file=1", cfg.Cookie)
				assert.Equal(t, "chirp-v3-5", cfg.ModelVersion)
				assert.Equal(t, "120s", cfg.GenerationTimeout)
				assert.Equal(t, "1MB", cfg.DownloadSpeedLimit)
				assert.False(t, cfg.ImpersonateBrowser)
				assert.Equal(t, DefaultStudioBaseURL, cfg.StudioBaseURL)
				assert.Equal(t, DefaultMinPollPause, cfg.MinPollPause)
			},
		},
		{
			name:     "environment overrides file cookie",
			filename: "env.yaml",
			content:  `cookie: "from_file=1"`,
			env:      "from_env=2",
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "from_env=2", cfg.Cookie)
			},
		},
		{
			name:          "explicit missing file",
			filename:      "missing.yaml",
			expectError:   true,
			expectedError: "failed to read config from file",
		},
		{
			name:     "invalid yaml",
			filename: "invalid.yaml",
			content: `
invalid: yaml: content: [unclosed
`,
			expectError:   true,
			expectedError: "failed to read config from file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(CookieEnvVariable, tt.env)

			configPath := filepath.Join(t.TempDir(), tt.filename)

			if tt.content != "" {
				err := os.WriteFile(configPath, []byte(tt.content), constants.DefaultFilePermissions)
				require.NoError(t, err)
			}

			cfg, err := LoadConfig(configPath)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)

				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

// TestLoadConfig_DefaultFileIsOptional tests that the default config file may be absent.
//
//nolint:paralleltest // Changes the working directory and the environment.
func TestLoadConfig_DefaultFileIsOptional(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(CookieEnvVariable, testCookie)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, testCookie, cfg.Cookie)
	assert.Equal(t, DefaultClerkBaseURL, cfg.ClerkBaseURL)
	assert.Equal(t, DefaultClerkJSVersion, cfg.ClerkJSVersion)
	assert.Equal(t, DefaultModelVersion, cfg.ModelVersion)
	assert.Equal(t, DefaultGenerationTimeout, cfg.GenerationTimeout)
	assert.Equal(t, DefaultServerAddress, cfg.ServerAddress)
	assert.True(t, cfg.ImpersonateBrowser)
	assert.True(t, cfg.WriteTags)

	require.NoError(t, ValidateConfig(cfg))
	assert.Equal(t, 600*time.Second, cfg.ParsedGenerationTimeout)
	assert.Equal(t, time.Second, cfg.ParsedMinPollPause)
	assert.Equal(t, 6*time.Second, cfg.ParsedMaxPollPause)
}

// TestLoadConfig_DotEnv tests that a .env file in the working directory provides the cookie.
//
//nolint:paralleltest // Changes the working directory and the environment.
func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	// Register cleanup for the variable godotenv is about to set.
	t.Setenv(CookieEnvVariable, "")
	require.NoError(t, os.Unsetenv(CookieEnvVariable))

	err := os.WriteFile(
		filepath.Join(dir, ".env"),
		[]byte(CookieEnvVariable+"=from_dotenv=3\n"),
		constants.DefaultFilePermissions)
	require.NoError(t, err)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "from_dotenv=3", cfg.Cookie)
}

// TestValidateConfig tests the ValidateConfig function.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectedErr error
		errContains string
		check       func(*testing.T, *Config)
	}{
		{
			name: "valid config",
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, zapcore.InfoLevel, cfg.ParsedLogLevel)
				assert.Zero(t, cfg.ParsedSongCacheTTL)
				assert.Equal(t, int64(0), cfg.ParsedDownloadSpeedLimit)
				assert.Equal(t, 60*time.Second, cfg.ParsedRequestTimeout)
			},
		},
		{
			name:        "empty cookie",
			mutate:      func(c *Config) { c.Cookie = "   " },
			expectedErr: ErrEmptyCookie,
		},
		{
			name:        "malformed cookie",
			mutate:      func(c *Config) { c.Cookie = "no-separator" },
			errContains: "failed to parse cookie",
		},
		{
			name:        "relative studio URL",
			mutate:      func(c *Config) { c.StudioBaseURL = "studio-api.suno.ai" },
			expectedErr: ErrInvalidBaseURL,
		},
		{
			name:        "ftp CDN URL",
			mutate:      func(c *Config) { c.CDNBaseURL = "ftp://cdn1.suno.ai" },
			expectedErr: ErrInvalidBaseURL,
		},
		{
			name:        "invalid proxy",
			mutate:      func(c *Config) { c.ProxyURL = "not a url" },
			expectedErr: ErrInvalidBaseURL,
		},
		{
			name:        "empty model version",
			mutate:      func(c *Config) { c.ModelVersion = "" },
			expectedErr: ErrEmptyModelVersion,
		},
		{
			name:        "unknown log level",
			mutate:      func(c *Config) { c.LogLevel = "verbose" },
			expectedErr: ErrUnknownLogLevel,
		},
		{
			name:        "zero generation timeout",
			mutate:      func(c *Config) { c.GenerationTimeout = "0s" },
			expectedErr: ErrInvalidGenerationTimeout,
		},
		{
			name:        "unparsable generation timeout",
			mutate:      func(c *Config) { c.GenerationTimeout = "ten minutes" },
			errContains: "failed to parse generation timeout",
		},
		{
			name: "min pause above max pause",
			mutate: func(c *Config) {
				c.MinPollPause = "7s"
				c.MaxPollPause = "6s"
			},
			expectedErr: ErrInvalidPollPause,
		},
		{
			name:        "zero request timeout",
			mutate:      func(c *Config) { c.RequestTimeout = "0s" },
			expectedErr: ErrInvalidRequestTimeout,
		},
		{
			name:        "negative token renewals",
			mutate:      func(c *Config) { c.MaxTokenRenewals = -1 },
			expectedErr: ErrInvalidTokenRenewals,
		},
		{
			name: "cache without size",
			mutate: func(c *Config) {
				c.SongCacheTTL = "5m"
				c.SongCacheSize = 0
			},
			expectedErr: ErrInvalidSongCache,
		},
		{
			name:   "cache enabled",
			mutate: func(c *Config) { c.SongCacheTTL = "5m" },
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, 5*time.Minute, cfg.ParsedSongCacheTTL)
			},
		},
		{
			name: "cache disabled",
			mutate: func(c *Config) {
				c.SongCacheTTL = "0"
				c.SongCacheSize = 0
			},
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Zero(t, cfg.ParsedSongCacheTTL)
			},
		},
		{
			name:   "speed limit parsed",
			mutate: func(c *Config) { c.DownloadSpeedLimit = "1.5 MB" },
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, int64(1_500_000), cfg.ParsedDownloadSpeedLimit)
			},
		},
		{
			name:   "speed limit as a rate",
			mutate: func(c *Config) { c.DownloadSpeedLimit = "500 kbps" },
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, int64(500_000), cfg.ParsedDownloadSpeedLimit)
			},
		},
		{
			name:   "speed limit per second",
			mutate: func(c *Config) { c.DownloadSpeedLimit = "1MB/s" },
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, int64(1_000_000), cfg.ParsedDownloadSpeedLimit)
			},
		},
		{
			name:        "invalid speed limit",
			mutate:      func(c *Config) { c.DownloadSpeedLimit = "fast" },
			errContains: "failed to parse download speed limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			if tt.mutate != nil {
				tt.mutate(cfg)
			}

			err := ValidateConfig(cfg)

			switch {
			case tt.expectedErr != nil:
				require.ErrorIs(t, err, tt.expectedErr)
			case tt.errContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			default:
				require.NoError(t, err)
			}

			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

// TestParseSettings_IgnoresCookie tests that ParseSettings does not require a cookie.
func TestParseSettings_IgnoresCookie(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Cookie = ""

	require.NoError(t, ParseSettings(cfg))
}

// TestSaveConfig tests that SaveConfig rewrites only the cookie and keeps the rest of the file.
//
//nolint:paralleltest // Viper is global.
func TestSaveConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "existing cookie key",
			content: `# Suno settings.
log_level: debug
cookie: "old=1"
model_version: chirp-v3-0
`,
		},
		{
			name: "cookie key is absent",
			content: `log_level: debug
model_version: chirp-v3-0
`,
		},
		{
			name: "file is missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(CookieEnvVariable, "")

			configPath := filepath.Join(t.TempDir(), DefaultConfigFilename)

			if tt.content != "" {
				err := os.WriteFile(configPath, []byte(tt.content), constants.DefaultFilePermissions)
				require.NoError(t, err)

				_, err = LoadConfig(configPath)
				require.NoError(t, err)
			} else {
				_, err := LoadConfig(configPath)
				require.Error(t, err)
			}

			err := SaveConfig(&Config{Cookie: "new=2; other=3"})
			require.NoError(t, err)

			saved, err := os.ReadFile(configPath)
			require.NoError(t, err)

			var values map[string]string

			require.NoError(t, yaml.Unmarshal(saved, &values))
			assert.Equal(t, "new=2; other=3", values["cookie"])

			if tt.content != "" {
				assert.Equal(t, "debug", values["log_level"])
				assert.Equal(t, "chirp-v3-0", values["model_version"])
			}
		})
	}
}
