package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvAPIKey       = "MOVEFIT_API_KEY"
	EnvAPIHost      = "MOVEFIT_API_HOST"
	EnvAPIURL       = "MOVEFIT_API_URL"
	EnvRedisAddr    = "MOVEFIT_REDIS_ADDR"
	EnvOTLPEndpoint = "MOVEFIT_OTLP_ENDPOINT"
)

type Config struct {
	API       APIConfig       `toml:"api"`
	Cache     CacheConfig     `toml:"cache"`
	Playback  PlaybackConfig  `toml:"playback"`
	UI        UIConfig        `toml:"ui"`
	Log       LogConfig       `toml:"log"`
	Telemetry TelemetryConfig `toml:"telemetry"`
	Keybinds  KeybindConfig   `toml:"keybinds"`

	path string
}

type APIConfig struct {
	BaseURL string `toml:"base_url"`
	Host    string `toml:"host"`
	APIKey  string `toml:"api_key"`
	Limit   int    `toml:"limit"`
}

type CacheConfig struct {
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	TTLMinutes    int    `toml:"ttl_minutes"`
	MediaDir      string `toml:"media_dir"`
}

type PlaybackConfig struct {
	HWAccel string `toml:"hwdec"`
	Volume  int    `toml:"volume"`
	Loop    bool   `toml:"loop"`
	YTDL    bool   `toml:"ytdl"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
}

// LogConfig controls the optional rotating log file. An empty File logs to
// stderr only.
type LogConfig struct {
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

type TelemetryConfig struct {
	Enabled     bool   `toml:"enabled"`
	Endpoint    string `toml:"endpoint"`
	Insecure    bool   `toml:"insecure"`
	ServiceName string `toml:"service_name"`
}

type KeybindConfig struct {
	Search     string `toml:"search"`
	PlayPause  string `toml:"play_pause"`
	Stop       string `toml:"stop"`
	Fullscreen string `toml:"fullscreen"`
	NextPage   string `toml:"next_page"`
	PrevPage   string `toml:"prev_page"`
}

func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "https://exercisedb.p.rapidapi.com",
			Host:    "exercisedb.p.rapidapi.com",
			Limit:   1500,
		},
		Cache: CacheConfig{
			TTLMinutes: 24 * 60,
		},
		Playback: PlaybackConfig{
			HWAccel: "auto-safe",
			Volume:  80,
			Loop:    true,
			YTDL:    true,
		},
		UI: UIConfig{
			Fullscreen: false,
			Width:      1600,
			Height:     900,
		},
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Telemetry: TelemetryConfig{
			Endpoint:    "localhost:4318",
			Insecure:    true,
			ServiceName: "movefit",
		},
		Keybinds: KeybindConfig{
			Search:     "/",
			PlayPause:  "Space",
			Stop:       "Q",
			Fullscreen: "F",
			NextPage:   "PageDown",
			PrevPage:   "PageUp",
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "movefit"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config from the default location.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		cfg := DefaultConfig()
		cfg.applyEnv()
		return cfg, nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields the defaults.
// Environment variables, including ones from a .env file in the working
// directory, override file values.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, err
	}

	_ = godotenv.Load()
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.API.APIKey = v
	}
	if v := os.Getenv(EnvAPIHost); v != "" {
		c.API.Host = v
	}
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv(EnvRedisAddr); v != "" {
		c.Cache.RedisAddr = v
	}
	if v := os.Getenv(EnvOTLPEndpoint); v != "" {
		c.Telemetry.Endpoint = v
		c.Telemetry.Enabled = true
	}
	if v := os.Getenv("MOVEFIT_API_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.API.Limit = n
		}
	}
}

// Path is where Save writes.
func (c *Config) Path() string {
	return c.path
}

// CacheTTL is the response cache lifetime.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLMinutes) * time.Minute
}

// MediaDir returns the media cache directory, defaulting to a directory
// under the config dir.
func (c *Config) MediaDir() string {
	if c.Cache.MediaDir != "" {
		return c.Cache.MediaDir
	}
	if dir, err := ConfigDir(); err == nil {
		return filepath.Join(dir, "cache", "media")
	}
	return filepath.Join(os.TempDir(), "movefit", "media")
}

func (c *Config) Save() error {
	path := c.path
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
