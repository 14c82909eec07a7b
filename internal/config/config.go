// Package config defines the chat server's configuration shape and its
// defaults and validation, in the style of infodancer-pop3d's
// internal/config package.
package config

import (
	"errors"
	"fmt"
)

// Config holds the chat server's full runtime configuration.
type Config struct {
	LogLevel string      `mapstructure:"log_level"`
	GRPC     GRPCConfig  `mapstructure:"grpc"`
	Ops      OpsConfig   `mapstructure:"ops"`
	Tracing  TraceConfig `mapstructure:"tracing"`
}

// GRPCConfig configures the Chat gRPC listener.
type GRPCConfig struct {
	Address string `mapstructure:"address"`
}

// OpsConfig configures the /healthz and /metrics HTTP mux.
type OpsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

// TraceConfig configures OpenTelemetry trace export.
type TraceConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
}

// Default returns a Config with sensible default values.
func Default() Config {
	return Config{
		LogLevel: "info",
		GRPC: GRPCConfig{
			Address: "0.0.0.0:50051",
		},
		Ops: OpsConfig{
			Enabled: true,
			Address: ":9091",
		},
		Tracing: TraceConfig{
			Enabled:     false,
			ServiceName: "chatserver",
		},
	}
}

// Validate checks that the configuration is usable and returns an error if
// not.
func (c *Config) Validate() error {
	if c.GRPC.Address == "" {
		return errors.New("grpc.address is required")
	}

	if c.Ops.Enabled && c.Ops.Address == "" {
		return errors.New("ops.address is required when ops is enabled")
	}

	if c.Tracing.Enabled && c.Tracing.ServiceName == "" {
		return errors.New("tracing.service_name is required when tracing is enabled")
	}

	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q (valid: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}
