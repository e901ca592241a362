package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/suno-cli/internal/constants"
	"github.com/oshokin/suno-cli/internal/logger"
	"github.com/oshokin/suno-cli/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// Cookie is the raw Cookie header copied from a logged-in suno.com browser session.
	Cookie string `mapstructure:"cookie"`
	// ClerkBaseURL is the base URL of the Clerk authentication API.
	ClerkBaseURL string `mapstructure:"clerk_base_url"`
	// ClerkJSVersion is sent as the _clerk_js_version query parameter.
	ClerkJSVersion string `mapstructure:"clerk_js_version"`
	// StudioBaseURL is the base URL of the Suno studio API.
	StudioBaseURL string `mapstructure:"studio_base_url"`
	// CDNBaseURL is the base URL audio files are downloaded from.
	CDNBaseURL string `mapstructure:"cdn_base_url"`
	// SongPageBaseURL is the base URL of the public song pages.
	SongPageBaseURL string `mapstructure:"song_page_base_url"`
	// ModelVersion is the model identifier sent as "mv" in generation requests.
	ModelVersion string `mapstructure:"model_version"`
	// GenerationTimeout is the wall-clock budget for a generation to become ready (e.g., "600s").
	GenerationTimeout string `mapstructure:"generation_timeout"`
	// MinPollPause is the minimum pause after each song fetch while polling.
	MinPollPause string `mapstructure:"min_poll_pause"`
	// MaxPollPause is the maximum pause after each song fetch while polling.
	MaxPollPause string `mapstructure:"max_poll_pause"`
	// MaxTokenRenewals caps consecutive token renewals for one request. 0 means unlimited.
	MaxTokenRenewals int64 `mapstructure:"max_token_renewals"`
	// RequestTimeout is the timeout of a single HTTP request.
	RequestTimeout string `mapstructure:"request_timeout"`
	// ImpersonateBrowser enables the Chrome TLS fingerprint transport.
	ImpersonateBrowser bool `mapstructure:"impersonate_browser"`
	// ProxyURL routes all API traffic through the given proxy. Empty disables it.
	ProxyURL string `mapstructure:"proxy_url"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// OutputPath is the root directory songs are downloaded under.
	OutputPath string `mapstructure:"output_path"`
	// ReplaceSongs indicates whether to replace already downloaded songs.
	ReplaceSongs bool `mapstructure:"replace_songs"`
	// WriteTags indicates whether to write ID3 tags and cover art into downloaded songs.
	WriteTags bool `mapstructure:"write_tags"`
	// DownloadSpeedLimit sets the maximum download speed (e.g., "1MB", "500KB").
	DownloadSpeedLimit string `mapstructure:"download_speed_limit"`
	// ServerAddress is the listen address of the REST server.
	ServerAddress string `mapstructure:"server_address"`
	// SongCacheTTL is how long ready songs stay cached by the REST server. "0" disables caching.
	SongCacheTTL string `mapstructure:"song_cache_ttl"`
	// SongCacheSize is the maximum number of cached songs.
	SongCacheSize int `mapstructure:"song_cache_size"`
	// ParsedGenerationTimeout is the parsed generation timeout.
	ParsedGenerationTimeout time.Duration
	// ParsedMinPollPause is the parsed minimum poll pause.
	ParsedMinPollPause time.Duration
	// ParsedMaxPollPause is the parsed maximum poll pause.
	ParsedMaxPollPause time.Duration
	// ParsedRequestTimeout is the parsed HTTP request timeout.
	ParsedRequestTimeout time.Duration
	// ParsedSongCacheTTL is the parsed song cache TTL.
	ParsedSongCacheTTL time.Duration
	// ParsedDownloadSpeedLimit is the parsed download speed limit in bytes per second.
	ParsedDownloadSpeedLimit int64
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".suno-cli.yaml"

	// CookieEnvVariable is the environment variable the session cookie is read from.
	CookieEnvVariable = "SUNO_COOKIE"

	// DefaultClerkBaseURL is the default Clerk authentication API.
	DefaultClerkBaseURL = "https://clerk.suno.com"
	// DefaultClerkJSVersion is the Clerk JS SDK version the web app reports.
	DefaultClerkJSVersion = "4.73.2"
	// DefaultStudioBaseURL is the default Suno studio API.
	DefaultStudioBaseURL = "https://studio-api.suno.ai"
	// DefaultCDNBaseURL is the default audio CDN.
	DefaultCDNBaseURL = "https://cdn1.suno.ai"
	// DefaultSongPageBaseURL is the default base of the public song pages.
	DefaultSongPageBaseURL = "https://suno.com/song"
	// DefaultModelVersion is the default generation model.
	DefaultModelVersion = "chirp-v3-0"
	// DefaultGenerationTimeout is the default generation budget.
	DefaultGenerationTimeout = "600s"
	// DefaultMinPollPause is the default minimum pause between song fetches.
	DefaultMinPollPause = "1s"
	// DefaultMaxPollPause is the default maximum pause between song fetches.
	DefaultMaxPollPause = "6s"
	// DefaultRequestTimeout is the default timeout of a single HTTP request.
	DefaultRequestTimeout = "60s"
	// DefaultServerAddress is the default REST server listen address.
	DefaultServerAddress = "0.0.0.0:8000"
	// DefaultSongCacheTTL is the default lifetime of cached songs, caching is off.
	DefaultSongCacheTTL = "0"
	// DefaultSongCacheSize is the default number of cached songs.
	DefaultSongCacheSize = 1000

	// DefaultMaxLogLength is the default maximum size (in bytes) of a logged HTTP dump.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// cookieKey is the configuration key of the session cookie.
	cookieKey = "cookie"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyCookie indicates that the session cookie is missing.
	ErrEmptyCookie = errors.New("session cookie cannot be empty, set " + CookieEnvVariable + " or run 'auth login'")
	// ErrInvalidBaseURL indicates that one of the service URLs is not an absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("invalid base URL")
	// ErrEmptyModelVersion indicates that the model version is empty.
	ErrEmptyModelVersion = errors.New("model_version cannot be empty")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidGenerationTimeout indicates that the generation timeout is not positive.
	ErrInvalidGenerationTimeout = errors.New("generation_timeout must be positive")
	// ErrInvalidPollPause indicates that the poll pause range is invalid.
	ErrInvalidPollPause = errors.New("poll pauses must be non-negative and min_poll_pause <= max_poll_pause")
	// ErrInvalidRequestTimeout indicates that the request timeout is not positive.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrInvalidTokenRenewals indicates that the renewal cap is negative.
	ErrInvalidTokenRenewals = errors.New("max_token_renewals cannot be negative")
	// ErrInvalidSongCache indicates that the song cache settings are inconsistent.
	ErrInvalidSongCache = errors.New("song_cache_size must be positive when song_cache_ttl is set")
)

// LoadConfig loads configuration settings from an optional YAML file, the environment and a .env file.
// A missing file is only an error when its name was given explicitly.
func LoadConfig(configFilename string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	viper.Reset()
	setDefaults()

	if err := viper.BindEnv(cookieKey, CookieEnvVariable); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}

	isExplicit := configFilename != ""
	if !isExplicit {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	if err := viper.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		if isExplicit || !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("clerk_base_url", DefaultClerkBaseURL)
	viper.SetDefault("clerk_js_version", DefaultClerkJSVersion)
	viper.SetDefault("studio_base_url", DefaultStudioBaseURL)
	viper.SetDefault("cdn_base_url", DefaultCDNBaseURL)
	viper.SetDefault("song_page_base_url", DefaultSongPageBaseURL)
	viper.SetDefault("model_version", DefaultModelVersion)
	viper.SetDefault("generation_timeout", DefaultGenerationTimeout)
	viper.SetDefault("min_poll_pause", DefaultMinPollPause)
	viper.SetDefault("max_poll_pause", DefaultMaxPollPause)
	viper.SetDefault("max_token_renewals", 0)
	viper.SetDefault("request_timeout", DefaultRequestTimeout)
	viper.SetDefault("impersonate_browser", true)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("output_path", ".")
	viper.SetDefault("replace_songs", false)
	viper.SetDefault("write_tags", true)
	viper.SetDefault("server_address", DefaultServerAddress)
	viper.SetDefault("song_cache_ttl", DefaultSongCacheTTL)
	viper.SetDefault("song_cache_size", DefaultSongCacheSize)
}

// ValidateConfig checks the configuration for validity, sets derived fields
// and requires a session cookie.
func ValidateConfig(cfg *Config) error {
	if err := ParseSettings(cfg); err != nil {
		return err
	}

	cfg.Cookie = strings.TrimSpace(cfg.Cookie)
	if cfg.Cookie == "" {
		return ErrEmptyCookie
	}

	if _, err := utils.ParseRawCookies(cfg.Cookie); err != nil {
		return fmt.Errorf("failed to parse cookie: %w", err)
	}

	return nil
}

// ParseSettings validates everything except the cookie and sets derived fields.
//
//nolint:funlen,gocognit,cyclop // Validation functions naturally have high complexity and length due to sequential checks.
func ParseSettings(cfg *Config) error {
	var err error

	for name, value := range map[string]string{
		"clerk_base_url":     cfg.ClerkBaseURL,
		"studio_base_url":    cfg.StudioBaseURL,
		"cdn_base_url":       cfg.CDNBaseURL,
		"song_page_base_url": cfg.SongPageBaseURL,
	} {
		if err = validateBaseURL(value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	if cfg.ProxyURL != "" {
		if err = validateBaseURL(cfg.ProxyURL); err != nil {
			return fmt.Errorf("proxy_url: %w", err)
		}
	}

	if strings.TrimSpace(cfg.ModelVersion) == "" {
		return ErrEmptyModelVersion
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedGenerationTimeout, err = time.ParseDuration(cfg.GenerationTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse generation timeout: %w", err)
	}

	if cfg.ParsedGenerationTimeout <= 0 {
		return ErrInvalidGenerationTimeout
	}

	cfg.ParsedMinPollPause, err = time.ParseDuration(cfg.MinPollPause)
	if err != nil {
		return fmt.Errorf("failed to parse min poll pause: %w", err)
	}

	cfg.ParsedMaxPollPause, err = time.ParseDuration(cfg.MaxPollPause)
	if err != nil {
		return fmt.Errorf("failed to parse max poll pause: %w", err)
	}

	if cfg.ParsedMinPollPause < 0 || cfg.ParsedMaxPollPause < cfg.ParsedMinPollPause {
		return ErrInvalidPollPause
	}

	cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if cfg.ParsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	if cfg.MaxTokenRenewals < 0 {
		return ErrInvalidTokenRenewals
	}

	cfg.ParsedSongCacheTTL = 0

	if songCacheTTL := strings.TrimSpace(cfg.SongCacheTTL); songCacheTTL != "" && songCacheTTL != "0" {
		cfg.ParsedSongCacheTTL, err = time.ParseDuration(songCacheTTL)
		if err != nil {
			return fmt.Errorf("failed to parse song cache TTL: %w", err)
		}

		if cfg.ParsedSongCacheTTL > 0 && cfg.SongCacheSize <= 0 {
			return ErrInvalidSongCache
		}
	}

	var parsedDownloadSpeedLimit uint64

	if downloadSpeedLimit := strings.TrimSpace(cfg.DownloadSpeedLimit); downloadSpeedLimit != "" &&
		downloadSpeedLimit != "0" {
		parsedDownloadSpeedLimit, err = humanize.ParseBytes(trimRateSuffix(downloadSpeedLimit))
		if err != nil {
			return fmt.Errorf("failed to parse download speed limit: %w", err)
		}
	}

	// io.CopyN accepts only int64 so we transform it safely in order to use it later.
	cfg.ParsedDownloadSpeedLimit = utils.SafeUint64ToInt64(parsedDownloadSpeedLimit)

	return nil
}

// trimRateSuffix turns a rate such as "500 kbps" or "1MB/s" into a size humanize can parse.
func trimRateSuffix(rate string) string {
	lowered := strings.ToLower(rate)

	for _, suffix := range []string{"/s", "ps"} {
		if strings.HasSuffix(lowered, suffix) {
			return strings.TrimSpace(rate[:len(rate)-len(suffix)])
		}
	}

	return rate
}

func validateBaseURL(rawURL string) error {
	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: '%s'", ErrInvalidBaseURL, rawURL)
	}

	return nil
}

// SaveConfig stores the session cookie in the configuration file while preserving the original format and order.
func SaveConfig(cfg *Config) error {
	configFile := getConfigFilePath()

	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, cfg.Cookie, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	setCookieInNode(&node, cfg.Cookie)

	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getConfigFilePath returns the config file path from viper or the default.
func getConfigFilePath() string {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		return DefaultConfigFilename
	}

	return configFile
}

// handleMissingConfigFile creates a new config file holding only the cookie.
func handleMissingConfigFile(configFile, cookie string, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	content, err := yaml.Marshal(map[string]string{cookieKey: cookie})
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, content, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// setCookieInNode updates the cookie value in the YAML node tree, appending the key when absent.
func setCookieInNode(node *yaml.Node, cookie string) {
	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return
	}

	mapNode := node.Content[0]

	// Key-value pairs are stored as alternating nodes.
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value != cookieKey {
			continue
		}

		valueNode := mapNode.Content[i+1]
		valueNode.Value = cookie

		if valueNode.Style == 0 {
			valueNode.Style = yaml.DoubleQuotedStyle
		}

		return
	}

	mapNode.Content = append(mapNode.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: cookieKey},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: cookie, Style: yaml.DoubleQuotedStyle},
	)
}
