package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.LogLevel != "info" {
		t.Errorf("expected log_level 'info', got %q", cfg.LogLevel)
	}
	if cfg.GRPC.Address != "0.0.0.0:50051" {
		t.Errorf("expected grpc address '0.0.0.0:50051', got %q", cfg.GRPC.Address)
	}
	if !cfg.Ops.Enabled {
		t.Errorf("expected ops enabled by default")
	}
	if cfg.Ops.Address != ":9091" {
		t.Errorf("expected ops address ':9091', got %q", cfg.Ops.Address)
	}
	if cfg.Tracing.Enabled {
		t.Errorf("expected tracing disabled by default")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid default config", func(c *Config) {}, false},
		{"missing grpc address", func(c *Config) { c.GRPC.Address = "" }, true},
		{"ops enabled without address", func(c *Config) {
			c.Ops.Enabled = true
			c.Ops.Address = ""
		}, true},
		{"tracing enabled without service name", func(c *Config) {
			c.Tracing.Enabled = true
			c.Tracing.ServiceName = ""
		}, true},
		{"invalid log level", func(c *Config) { c.LogLevel = "verbose" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
