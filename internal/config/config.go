// Package config loads application configuration and bootstraps logging.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultSourceURL is the archived snapshot the ETL reads by default.
const DefaultSourceURL = "https://web.archive.org/web/20230902185326/https://en.wikipedia.org/wiki/List_of_countries_by_GDP_%28nominal%29"

// Config holds the full application configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source" mapstructure:"source"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Store   StoreConfig   `yaml:"store" mapstructure:"store"`
	Query   QueryConfig   `yaml:"query" mapstructure:"query"`
	Journal JournalConfig `yaml:"journal" mapstructure:"journal"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// SourceConfig configures the page fetch.
type SourceConfig struct {
	URL         string `yaml:"url" mapstructure:"url"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	UserAgent   string `yaml:"user_agent" mapstructure:"user_agent"`
}

// OutputConfig configures the CSV sink.
type OutputConfig struct {
	CSVPath string `yaml:"csv_path" mapstructure:"csv_path"`
}

// StoreConfig configures the SQLite sink.
type StoreConfig struct {
	DBPath    string `yaml:"db_path" mapstructure:"db_path"`
	TableName string `yaml:"table_name" mapstructure:"table_name"`
}

// QueryConfig configures the post-load filter query.
type QueryConfig struct {
	MinBillions float64 `yaml:"min_billions" mapstructure:"min_billions"`
}

// JournalConfig configures the run progress journal.
type JournalConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("GDP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("source.url", DefaultSourceURL)
	v.SetDefault("source.timeout_secs", 30)
	v.SetDefault("source.user_agent", "gdp-cli/1.0")
	v.SetDefault("output.csv_path", "./Countries_by_GDP.csv")
	v.SetDefault("store.db_path", "World_Economies.db")
	v.SetDefault("store.table_name", "Countries_by_GDP")
	v.SetDefault("query.min_billions", 100)
	v.SetDefault("journal.path", "./etl_project_log.txt")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
