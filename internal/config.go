package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type SqlMaskConfig struct {
	AppName string `mapstructure:"app_name" json:"app_name"`

	Server struct {
		Addr         string        `mapstructure:"addr" json:"addr"`
		MaxFrameSize int           `mapstructure:"max_frame_size" json:"max_frame_size"`
		IdleTimeout  time.Duration `mapstructure:"idle_timeout" json:"idle_timeout"`
	} `mapstructure:"server" json:"server"`

	Cache struct {
		Size int `mapstructure:"size" json:"size"`
	} `mapstructure:"cache" json:"cache"`

	Log LogConfig `mapstructure:"log" json:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
	SeqURL string `mapstructure:"seq_url" json:"seq_url"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "sqlmask")

	v.SetDefault("server.addr", "127.0.0.1:8866")
	v.SetDefault("server.max_frame_size", 8<<20)
	v.SetDefault("server.idle_timeout", 0)

	v.SetDefault("cache.size", 1024)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.seq_url", "")
}

// LoadConfig reads configuration with precedence env > file > defaults.
// An empty path skips the file.
func LoadConfig(path string) (*SqlMaskConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SQLMASK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg SqlMaskConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *SqlMaskConfig) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("config: server.addr is required")
	}
	if c.Server.MaxFrameSize <= 0 {
		return fmt.Errorf("config: server.max_frame_size must be positive")
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("config: cache.size must not be negative")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log.format %q", c.Log.Format)
	}
	return nil
}
