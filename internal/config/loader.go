package config

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader reads a Config from disk via viper and can watch the file for
// changes, handing each validated reload to a callback.
type Loader struct {
	v      *viper.Viper
	mu     sync.RWMutex
	cur    Config
	logger *slog.Logger
}

// NewLoader builds a Loader bound to path. If path is empty, only the
// environment and defaults apply.
func NewLoader(path string, logger *slog.Logger) (*Loader, error) {
	v := viper.New()
	v.SetEnvPrefix("CHATSERVER")
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("grpc.address", def.GRPC.Address)
	v.SetDefault("ops.enabled", def.Ops.Enabled)
	v.SetDefault("ops.address", def.Ops.Address)
	v.SetDefault("tracing.enabled", def.Tracing.Enabled)
	v.SetDefault("tracing.service_name", def.Tracing.ServiceName)

	l := &Loader{v: v, logger: logger}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg, err := l.decode()
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.cur = cfg
	l.mu.Unlock()

	return l, nil
}

// Current returns the most recently loaded, validated Config.
func (l *Loader) Current() Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cur
}

// Watch starts watching the bound config file for changes, invoking onChange
// with every new validated Config. An invalid reload is logged and ignored,
// leaving Current() unchanged.
func (l *Loader) Watch(onChange func(Config)) {
	l.v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := l.decode()
		if err != nil {
			l.logger.Error("CONFIG_RELOAD_REJECTED", slog.Any("error", err))
			return
		}
		l.mu.Lock()
		l.cur = cfg
		l.mu.Unlock()
		l.logger.Info("CONFIG_RELOADED", slog.String("file", e.Name))
		if onChange != nil {
			onChange(cfg)
		}
	})
	l.v.WatchConfig()
}

func (l *Loader) decode() (Config, error) {
	cfg := Default()
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}
