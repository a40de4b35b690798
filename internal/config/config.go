// Package config loads runtime settings. Precedence, lowest first: built-in
// defaults, the YAML file, the environment (after .env is loaded), then CLI
// flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no explicit config path is given; it may be absent.
const DefaultPath = "deepcuts.yaml"

const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Generator GeneratorConfig `yaml:"generator"`
	Spotify   SpotifyConfig   `yaml:"spotify"`
	Cache     CacheConfig     `yaml:"cache"`
	Verify    VerifyConfig    `yaml:"verify"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

type GeneratorConfig struct {
	Provider string        `yaml:"provider"`
	Timeout  time.Duration `yaml:"timeout"`
	OpenAI   struct {
		Endpoint string `yaml:"endpoint"`
		Model    string `yaml:"model"`
		APIKey   string `yaml:"api_key"`
	} `yaml:"openai"`
	Ollama struct {
		Host  string `yaml:"host"`
		Model string `yaml:"model"`
	} `yaml:"ollama"`
	Gemini struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`
}

type SpotifyConfig struct {
	ClientID     string        `yaml:"client_id"`
	ClientSecret string        `yaml:"client_secret"`
	BaseURL      string        `yaml:"base_url"`
	TokenURL     string        `yaml:"token_url"`
	PageLimit    int           `yaml:"page_limit"`
	MaxAttempts  int           `yaml:"max_attempts"`
	RetryBackoff time.Duration `yaml:"retry_backoff"`
}

type CacheConfig struct {
	Size int           `yaml:"size"`
	TTL  time.Duration `yaml:"ttl"`
}

type VerifyConfig struct {
	Workers int `yaml:"workers"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	var c Config
	c.Server.Addr = ":8080"
	c.Server.ShutdownTimeout = 5 * time.Second
	c.Storage.Path = "deepcuts.db"
	c.Generator.Provider = ProviderOpenAI
	c.Generator.Timeout = 60 * time.Second
	c.Generator.OpenAI.Endpoint = "https://api.openai.com/v1/chat/completions"
	c.Generator.OpenAI.Model = "gpt-3.5-turbo"
	c.Generator.Ollama.Host = "http://localhost:11434"
	c.Generator.Ollama.Model = "llama3.1:8b"
	c.Generator.Gemini.Model = "gemini-2.5-flash"
	c.Spotify.BaseURL = "https://api.spotify.com/v1"
	c.Spotify.TokenURL = "https://accounts.spotify.com/api/token"
	c.Spotify.PageLimit = 10
	c.Spotify.MaxAttempts = 1
	c.Spotify.RetryBackoff = 500 * time.Millisecond
	c.Cache.Size = 128
	c.Cache.TTL = 10 * time.Minute
	c.Verify.Workers = 4
	c.Log.Level = "info"
	return c
}

// Load builds the configuration from path (DefaultPath when empty) and the
// environment. A missing default file is not an error; a missing explicit one is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	if err := cfg.mergeFile(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	}

	_ = godotenv.Load()
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	// Unmarshalling over the defaults keeps every key the file omits.
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	str := func(dst *string, keys ...string) {
		for _, k := range keys {
			if v := strings.TrimSpace(getenv(k)); v != "" {
				*dst = v
				return
			}
		}
	}
	var errs []error
	num := func(dst *int, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("config: %s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	dur := func(dst *time.Duration, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("config: %s: %w", key, err))
				return
			}
			*dst = d
		}
	}

	str(&c.Server.Addr, "DEEPCUTS_ADDR")
	if port := strings.TrimSpace(getenv("PORT")); port != "" && getenv("DEEPCUTS_ADDR") == "" {
		c.Server.Addr = ":" + strings.TrimPrefix(port, ":")
	}
	str(&c.Storage.Path, "DEEPCUTS_DB")

	str(&c.Generator.Provider, "GENERATOR_PROVIDER")
	dur(&c.Generator.Timeout, "GENERATOR_TIMEOUT")
	str(&c.Generator.OpenAI.APIKey, "OPENAI_API_KEY")
	str(&c.Generator.OpenAI.Endpoint, "OPENAI_ENDPOINT")
	str(&c.Generator.OpenAI.Model, "OPENAI_MODEL")
	str(&c.Generator.Ollama.Host, "OLLAMA_HOST")
	str(&c.Generator.Ollama.Model, "OLLAMA_MODEL")
	str(&c.Generator.Gemini.APIKey, "GEMINI_API_KEY", "GOOGLE_API_KEY")
	str(&c.Generator.Gemini.Model, "GEMINI_MODEL")

	str(&c.Spotify.ClientID, "SPOTIFY_CLIENT_ID")
	str(&c.Spotify.ClientSecret, "SPOTIFY_CLIENT_SECRET")
	str(&c.Spotify.BaseURL, "SPOTIFY_BASE_URL")
	str(&c.Spotify.TokenURL, "SPOTIFY_TOKEN_URL")
	num(&c.Spotify.PageLimit, "SPOTIFY_PAGE_LIMIT")
	num(&c.Spotify.MaxAttempts, "SPOTIFY_MAX_ATTEMPTS")
	if v := strings.TrimSpace(getenv("SPOTIFY_RETRY_BACKOFF_MS")); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("config: SPOTIFY_RETRY_BACKOFF_MS: %w", err))
		} else {
			c.Spotify.RetryBackoff = time.Duration(ms) * time.Millisecond
		}
	}

	num(&c.Cache.Size, "CACHE_SIZE")
	dur(&c.Cache.TTL, "CACHE_TTL")
	num(&c.Verify.Workers, "VERIFY_WORKERS")
	str(&c.Log.Level, "LOG_LEVEL")

	return errors.Join(errs...)
}

// Validate rejects settings no component can run with. Missing credentials are
// not checked here; they only fail the operations that need them.
func (c Config) Validate() error {
	switch c.Generator.Provider {
	case ProviderOpenAI, ProviderOllama, ProviderGemini:
	default:
		return fmt.Errorf("config: unknown generator provider %q", c.Generator.Provider)
	}
	if c.Spotify.PageLimit < 1 {
		return errors.New("config: spotify.page_limit must be at least 1")
	}
	if c.Spotify.MaxAttempts < 1 {
		return errors.New("config: spotify.max_attempts must be at least 1")
	}
	if c.Cache.Size < 0 {
		return errors.New("config: cache.size cannot be negative")
	}
	if c.Verify.Workers < 1 {
		return errors.New("config: verify.workers must be at least 1")
	}
	return nil
}
