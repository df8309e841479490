package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/ApurvGaikwad0/Buffer-Manager/internal/bufferpool"
)

// Config describes one buffer pool: the page file it sits on, how many
// frames it holds and which replacement policy it runs.
type Config struct {
	PageFile string `mapstructure:"page_file"`
	Capacity int    `mapstructure:"capacity"`
	Strategy string `mapstructure:"strategy"`

	// LRUK is the K parameter carried alongside the lru-k strategy tag.
	LRUK int `mapstructure:"lru_k"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Capacity: bufferpool.DefaultCapacity,
		Strategy: "fifo",
		LRUK:     2,
	}
}

// Load reads a YAML config file and validates it.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("capacity", bufferpool.DefaultCapacity)
	v.SetDefault("strategy", "fifo")
	v.SetDefault("lru_k", 2)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.PageFile == "" {
		return errors.New("config: page_file is required")
	}
	if c.Capacity <= 0 {
		return errors.New("config: capacity must be positive")
	}
	if _, err := bufferpool.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	return nil
}

// Open builds the pool this configuration describes.
func (c *Config) Open() (*bufferpool.Pool, error) {
	strat, err := bufferpool.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}
	var opts []bufferpool.Option
	if strat == bufferpool.LRUK {
		opts = append(opts, bufferpool.WithLRUKParam(c.LRUK))
	}
	return bufferpool.Open(c.PageFile, c.Capacity, strat, opts...)
}
