package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development" validate:"required"`
	Server      struct {
		Port            int           `yaml:"port" default:"8000" validate:"gt=0,lte=65535"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console" validate:"oneof=console json"`
	} `yaml:"log"`
	Cache struct {
		// TTL guards the market indices fetch; the other windows follow
		// the publication cadence of their sources.
		TTL        time.Duration `yaml:"ttl" default:"300s"`
		MacroTTL   time.Duration `yaml:"macro_ttl" default:"24h"`
		PCETTL     time.Duration `yaml:"pce_ttl" default:"24h"`
		RatesTTL   time.Duration `yaml:"rates_ttl" default:"1h"`
		EventsTTL  time.Duration `yaml:"events_ttl" default:"1h"`
		MaxEntries int           `yaml:"max_entries" default:"8"`
	} `yaml:"cache"`
	MarketData struct {
		BaseURL       string        `yaml:"base_url" default:"https://query1.finance.yahoo.com/v1/fastinfo" validate:"url"`
		ProxySymbol   string        `yaml:"proxy_symbol" default:"UUP"`
		VolumeSymbols []string      `yaml:"volume_symbols" default:"[\"SPY\",\"QQQ\"]"`
		Timeout       time.Duration `yaml:"timeout" default:"10s"`
	} `yaml:"market_data"`
	BLS struct {
		BaseURL   string        `yaml:"base_url" default:"https://api.bls.gov/publicAPI/v2/timeseries/data/" validate:"url"`
		APIKey    string        `yaml:"api_key"`
		CPISeries string        `yaml:"cpi_series" default:"CUUR0000SA0"`
		NFPSeries string        `yaml:"nfp_series" default:"CES0000000001"`
		Timeout   time.Duration `yaml:"timeout" default:"10s"`
	} `yaml:"bls"`
	BEA struct {
		BaseURL string        `yaml:"base_url" default:"https://apps.bea.gov/api/data" validate:"url"`
		APIKey  string        `yaml:"api_key"`
		Timeout time.Duration `yaml:"timeout" default:"10s"`
	} `yaml:"bea"`
	FRED struct {
		BaseURL     string        `yaml:"base_url" default:"https://api.stlouisfed.org/fred/series/observations" validate:"url"`
		APIKey      string        `yaml:"api_key"`
		FundsSeries string        `yaml:"funds_series" default:"DFF"`
		VIXSeries   string        `yaml:"vix_series" default:"VIXCLS"`
		Timeout     time.Duration `yaml:"timeout" default:"10s"`
	} `yaml:"fred"`
	Feeds struct {
		FOMCURL     string        `yaml:"fomc_url" default:"https://www.federalreserve.gov/feeds/calendar.xml" validate:"url"`
		SpeechesURL string        `yaml:"speeches_url" default:"https://www.federalreserve.gov/feeds/speeches.xml" validate:"url"`
		Timeout     time.Duration `yaml:"timeout" default:"10s"`
	} `yaml:"feeds"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
}

// Load reads an optional YAML configuration file and fills in defaults.
// A missing file is not an error; defaults plus env overrides are a
// complete configuration.
func Load(path string) (*Config, error) {
	var c Config

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &c); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		case os.IsNotExist(err):
			// run on defaults
		default:
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
		c.Server.Port = p
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
		}
		c.Cache.TTL = time.Duration(secs) * time.Second
	}
	if v := os.Getenv("BLS_API_KEY"); v != "" {
		c.BLS.APIKey = v
	}
	if v := os.Getenv("BEA_API_KEY"); v != "" {
		c.BEA.APIKey = v
	}
	if v := os.Getenv("FRED_API_KEY"); v != "" {
		c.FRED.APIKey = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
