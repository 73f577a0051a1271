package servercfg

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/andrewsvn/encoding-overseer/internal/negotiate"
	"github.com/caarlos0/env/v6"
)

const (
	defaultAddr           = ":8080"
	defaultLogLevel       = "info"
	defaultGracePeriodSec = 15

	// DefaultPreferredCoding is applied when neither flags, env nor the
	// config file name one. Explicit so the tie-break behavior never
	// depends on a zero value.
	DefaultPreferredCoding = "gzip"
)

type Config struct {
	Addr     string `env:"ADDRESS" json:"address"`
	LogLevel string `env:"LOG_LEVEL" json:"log_level"`

	// PreferredCoding breaks negotiation ties, "gzip" or "deflate".
	PreferredCoding string `env:"PREFERRED_CODING" json:"preferred_coding"`
	// CompressionLevel is handed through to the codec untouched by the
	// negotiation logic; 0 or below means the codec default.
	CompressionLevel int `env:"COMPRESSION_LEVEL" json:"compression_level"`

	GracePeriodSec int `env:"GRACE_PERIOD" json:"server_grace_period"`
}

func DefaultConfig() *Config {
	return &Config{
		Addr:            defaultAddr,
		LogLevel:        defaultLogLevel,
		PreferredCoding: DefaultPreferredCoding,
		GracePeriodSec:  defaultGracePeriodSec,
	}
}

// Read assembles the configuration from flags, environment variables and
// an optional JSON file. Flags and env win over the file, the file wins
// over defaults.
func Read() (*Config, error) {
	cfg := &Config{}
	cfgPath := cfg.bindFlags()
	flag.Parse()

	err := env.Parse(cfg)
	if err != nil {
		return nil, fmt.Errorf("can't parse environment: %w", err)
	}
	if envPath := os.Getenv("CONFIG"); envPath != "" {
		*cfgPath = envPath
	}

	if *cfgPath != "" {
		jsonCfg, err := NewConfigFromJSONFile(*cfgPath)
		if err != nil {
			return nil, err
		}
		cfg.FillOutEmptyValues(jsonCfg)
	}
	cfg.FillOutEmptyValues(DefaultConfig())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) bindFlags() *string {
	flag.StringVar(&cfg.Addr, "a", "",
		fmt.Sprintf("server address in form of host:port (default: %s)", defaultAddr))
	flag.StringVar(&cfg.LogLevel, "l", "",
		fmt.Sprintf("logging level (default: %s)", defaultLogLevel))
	flag.StringVar(&cfg.PreferredCoding, "p", "",
		fmt.Sprintf("preferred response coding, gzip or deflate (default: %s)", DefaultPreferredCoding))
	flag.IntVar(&cfg.CompressionLevel, "level", 0,
		"compression level passed to the codec (default: codec default)")
	flag.IntVar(&cfg.GracePeriodSec, "g", 0,
		fmt.Sprintf("shutdown grace period, seconds (default: %d)", defaultGracePeriodSec))
	return flag.String("c", "", "path to JSON config file")
}

func NewConfigFromJSONFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read config file: %w", err)
	}
	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("can't parse config file: %w", err)
	}
	return cfg, nil
}

func (cfg *Config) FillOutEmptyValues(src *Config) {
	if cfg.Addr == "" {
		cfg.Addr = src.Addr
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = src.LogLevel
	}
	if cfg.PreferredCoding == "" {
		cfg.PreferredCoding = src.PreferredCoding
	}
	if cfg.CompressionLevel == 0 {
		cfg.CompressionLevel = src.CompressionLevel
	}
	if cfg.GracePeriodSec == 0 {
		cfg.GracePeriodSec = src.GracePeriodSec
	}
}

func (cfg *Config) Validate() error {
	switch negotiate.Coding(cfg.PreferredCoding) {
	case negotiate.CodingGzip, negotiate.CodingDeflate:
		return nil
	default:
		return fmt.Errorf("unsupported preferred coding %q, expected gzip or deflate", cfg.PreferredCoding)
	}
}

// Negotiation converts the loaded configuration into the immutable value
// shared by all negotiation calls.
func (cfg *Config) Negotiation() negotiate.Config {
	return negotiate.Config{
		Preferred: negotiate.Coding(cfg.PreferredCoding),
	}
}
