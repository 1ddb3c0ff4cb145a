package config

import (
	"strings"

	"github.com/AgnesBressan/AirRouteAM/pkg/engine/heuristics"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Dataset DatasetConfig `yaml:"dataset" mapstructure:"dataset"`
	Store   StoreConfig   `yaml:"store" mapstructure:"store"`
	Search  SearchConfig  `yaml:"search" mapstructure:"search"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

type DatasetConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// StoreConfig pebble directory holding the imported dataset.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

type SearchConfig struct {
	// Heuristic one of auto, geographic, hopcount, zero.
	Heuristic      string `yaml:"heuristic" mapstructure:"heuristic"`
	SnapCandidates int    `yaml:"snap_candidates" mapstructure:"snap_candidates"`
}

type ServerConfig struct {
	ListenAddr   string `yaml:"listen_addr" mapstructure:"listen_addr"`
	BatchWorkers int    `yaml:"batch_workers" mapstructure:"batch_workers"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Strategy parsed search.heuristic.
func (c SearchConfig) Strategy() heuristics.Strategy {
	s, _ := heuristics.ParseStrategy(c.Heuristic)
	return s
}

// Load reads config.yaml from the working directory when present, then AIRROUTE_*
// environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("AIRROUTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("dataset.path", "database.json")
	v.SetDefault("store.path", "airrouteDB")
	v.SetDefault("search.heuristic", string(heuristics.StrategyAuto))
	v.SetDefault("search.snap_candidates", 5)
	v.SetDefault("server.listen_addr", ":5000")
	v.SetDefault("server.batch_workers", 4)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := heuristics.ParseStrategy(c.Search.Heuristic); err != nil {
		return eris.Wrap(err, "config: search.heuristic")
	}
	if c.Search.SnapCandidates < 1 {
		return eris.New("config: search.snap_candidates must be at least 1")
	}
	if c.Server.BatchWorkers < 1 {
		return eris.New("config: server.batch_workers must be at least 1")
	}
	return nil
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
