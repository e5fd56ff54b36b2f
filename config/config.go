package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"coinlist/pkg/coinlist"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
)

type Config struct {
	Coinlist CoinlistConfig `mapstructure:"coinlist"`
	Log      LogConfig      `mapstructure:"log"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Symbols  SymbolsConfig  `mapstructure:"symbols"`
}

type CoinlistConfig struct {
	REST         RESTConfig `mapstructure:"rest"`
	AccessKey    string     `mapstructure:"access_key"`
	AccessSecret string     `mapstructure:"access_secret"`
	SSM          SSMConfig  `mapstructure:"ssm"`
}

type RESTConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SSMConfig names the Parameter Store entries holding the credentials in prod.
type SSMConfig struct {
	AccessKeyParam    string `mapstructure:"access_key_param"`
	AccessSecretParam string `mapstructure:"access_secret_param"`
}

// LogConfig defines the logger configuration options.
type LogConfig struct {
	Level       string `mapstructure:"level"`       // log level: "debug", "info", "warn", "error"
	Format      string `mapstructure:"format"`      // log format: "json" or "console"
	OutputFile  string `mapstructure:"output_file"` // file path to store logs (optional)
	Environment string `mapstructure:"environment"` // environment: "dev" or "prod"
}

type MetricsConfig struct {
	// Textfile is written in the node-exporter textfile format after each run (optional).
	Textfile string `mapstructure:"textfile"`
}

type SymbolsConfig struct {
	OutputFile string `mapstructure:"output_file"`
}

const (
	DefaultBaseURL = coinlist.DefaultBaseURL
	DefaultTimeout = 10 * time.Second

	// Environment variables carrying the API credentials.
	EnvAccessKey    = "ACCESS_KEY"
	EnvAccessSecret = "ACCESS_SECRET"
)

// Load reads configuration from path (or config.yaml in . and ./config when
// path is empty), then applies .env values and environment overrides.
// A missing default config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config") // config.yaml
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Support environment variables with dot notation (e.g., COINLIST_REST_BASE_URL)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("coinlist.access_key", EnvAccessKey); err != nil {
		return nil, fmt.Errorf("bind %s: %w", EnvAccessKey, err)
	}
	if err := v.BindEnv("coinlist.access_secret", EnvAccessSecret); err != nil {
		return nil, fmt.Errorf("bind %s: %w", EnvAccessSecret, err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := loadDotEnv(v, ".env"); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("coinlist.rest.base_url", DefaultBaseURL)
	v.SetDefault("coinlist.rest.timeout", DefaultTimeout)
	v.SetDefault("coinlist.access_key", "")
	v.SetDefault("coinlist.access_secret", "")
	v.SetDefault("coinlist.ssm.access_key_param", "")
	v.SetDefault("coinlist.ssm.access_secret_param", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output_file", "")
	v.SetDefault("log.environment", "dev")
	v.SetDefault("metrics.textfile", "")
	v.SetDefault("symbols.output_file", "symbols.txt")
}

// loadDotEnv reads ACCESS_KEY and ACCESS_SECRET from a dotenv file as
// lowest-precedence values. The process environment is left untouched.
func loadDotEnv(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}

	env := viper.New()
	env.SetConfigFile(path)
	env.SetConfigType("env")
	if err := env.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if key := env.GetString(EnvAccessKey); key != "" {
		v.SetDefault("coinlist.access_key", key)
	}
	if secret := env.GetString(EnvAccessSecret); secret != "" {
		v.SetDefault("coinlist.access_secret", secret)
	}
	return nil
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var merr *multierror.Error

	if c.Coinlist.REST.BaseURL == "" {
		merr = multierror.Append(merr, errors.New("coinlist.rest.base_url is required"))
	} else if !strings.HasPrefix(c.Coinlist.REST.BaseURL, "https://") && !strings.HasPrefix(c.Coinlist.REST.BaseURL, "http://") {
		merr = multierror.Append(merr, fmt.Errorf("coinlist.rest.base_url must be an http(s) url: %q", c.Coinlist.REST.BaseURL))
	}
	if c.Coinlist.REST.Timeout <= 0 {
		merr = multierror.Append(merr, errors.New("coinlist.rest.timeout must be positive"))
	}
	if c.Coinlist.AccessKey == "" {
		merr = multierror.Append(merr, fmt.Errorf("access key is required (set %s)", EnvAccessKey))
	}
	if c.Coinlist.AccessSecret == "" {
		merr = multierror.Append(merr, fmt.Errorf("access secret is required (set %s)", EnvAccessSecret))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		merr = multierror.Append(merr, fmt.Errorf("log.format must be json or console: %q", c.Log.Format))
	}

	return merr.ErrorOrNil()
}
