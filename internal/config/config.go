package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/saulo-duarte/persona-quiz/internal/apperr"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Sampling holds the oracle generation parameters for one kind of call.
type Sampling struct {
	Temperature     float32 `yaml:"temperature"`
	TopK            float32 `yaml:"top_k"`
	TopP            float32 `yaml:"top_p"`
	MaxOutputTokens int32   `yaml:"max_output_tokens"`
}

type Oracle struct {
	APIKey           string   `yaml:"api_key"`
	Model            string   `yaml:"model"`
	Timeout          string   `yaml:"timeout"`
	VerifyOnStart    bool     `yaml:"verify_on_start"`
	StructuredOutput bool     `yaml:"structured_output"`
	Questions        Sampling `yaml:"questions"`
	Analysis         Sampling `yaml:"analysis"`
	FollowUp         Sampling `yaml:"follow_up"`
}

type Generation struct {
	Attempts         int    `yaml:"attempts"`
	RetryDelay       string `yaml:"retry_delay"`
	QuestionCount    int    `yaml:"question_count"`
	MinAnalysisChars int    `yaml:"min_analysis_chars"`
	MinFollowUpChars int    `yaml:"min_follow_up_chars"`
	Diversity        struct {
		Enabled      bool `yaml:"enabled"`
		MinWordLen   int  `yaml:"min_word_len"`
		MaxRepeats   int  `yaml:"max_repeats"`
		MaxRepeaters int  `yaml:"max_repeaters"`
	} `yaml:"diversity"`
}

type Config struct {
	App struct {
		Env string `yaml:"env"`
	} `yaml:"app"`
	Server struct {
		Port           string   `yaml:"port"`
		StaticDir      string   `yaml:"static_dir"`
		ReadTimeout    string   `yaml:"read_timeout"`
		WriteTimeout   string   `yaml:"write_timeout"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Oracle     Oracle     `yaml:"oracle"`
	Generation Generation `yaml:"generation"`
	Session    struct {
		MaxInteractions int    `yaml:"max_interactions"`
		Secret          string `yaml:"secret"`
	} `yaml:"session"`
	RateLimit struct {
		Requests int    `yaml:"requests"`
		Window   string `yaml:"window"`
	} `yaml:"rate_limit"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
}

// Default returns the configuration used when no file overrides a value.
func Default() Config {
	cfg := Config{}
	cfg.App.Env = EnvProduction
	cfg.Server.Port = "3000"
	cfg.Server.ReadTimeout = "15s"
	cfg.Server.WriteTimeout = "90s"
	cfg.Server.AllowedOrigins = []string{"*"}
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"

	cfg.Oracle.Model = "gemini-2.0-flash"
	cfg.Oracle.Timeout = "45s"
	cfg.Oracle.Questions = Sampling{Temperature: 0.7, TopK: 40, TopP: 0.95, MaxOutputTokens: 2048}
	cfg.Oracle.Analysis = Sampling{Temperature: 0.9, TopK: 40, TopP: 0.95, MaxOutputTokens: 2048}
	cfg.Oracle.FollowUp = Sampling{Temperature: 0.8, TopK: 40, TopP: 0.95, MaxOutputTokens: 1024}

	cfg.Generation.Attempts = 3
	cfg.Generation.RetryDelay = "1500ms"
	cfg.Generation.QuestionCount = 10
	cfg.Generation.MinAnalysisChars = 100
	cfg.Generation.MinFollowUpChars = 50
	cfg.Generation.Diversity.Enabled = true
	cfg.Generation.Diversity.MinWordLen = 4
	cfg.Generation.Diversity.MaxRepeats = 3
	cfg.Generation.Diversity.MaxRepeaters = 5

	cfg.Session.MaxInteractions = 3
	cfg.RateLimit.Requests = 20
	cfg.RateLimit.Window = "1h"
	return cfg
}

// Load reads YAML config from path on top of the defaults and then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, err
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, err
			}
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadEnvFile loads variables from a dotenv file without overriding the
// ones already set in the process environment.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (c *Config) applyEnv() {
	setString(&c.App.Env, "APP_ENV")
	setString(&c.Server.Port, "PORT")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Oracle.APIKey, "GEMINI_API_KEY")
	setString(&c.Oracle.APIKey, "GOOGLE_API_KEY")
	setString(&c.Oracle.Model, "GEMINI_MODEL")
	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Session.Secret, "SESSION_SECRET")
	if v := os.Getenv("RATE_LIMIT_REQUESTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RateLimit.Requests = n
		}
	}
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

// Validate fails fast on settings the server cannot run without.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Oracle.APIKey) == "" {
		return apperr.Configuration("GOOGLE_API_KEY is not set", nil)
	}
	if c.Session.Secret != "" && len(c.Session.Secret) < 32 {
		return apperr.Configuration("SESSION_SECRET must be at least 32 bytes", nil)
	}
	if c.Generation.Attempts < 1 {
		return apperr.Configuration("generation.attempts must be at least 1", nil)
	}
	if c.Session.MaxInteractions < 0 {
		return apperr.Configuration("session.max_interactions must not be negative", nil)
	}
	return nil
}

func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.App.Env, EnvDevelopment)
}

// Duration parses a duration string or returns the fallback if empty or invalid.
func Duration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
