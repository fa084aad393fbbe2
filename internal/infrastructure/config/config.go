package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// Reconciliation
	ResidualTolerance string `env:"RESIDUAL_TOLERANCE" envDefault:"0.01"`

	// Metrics push (optional - leave URL empty to disable)
	MetricsPushgatewayURL string        `env:"METRICS_PUSHGATEWAY_URL" envDefault:""`
	MetricsJob            string        `env:"METRICS_JOB"             envDefault:"divrec"`
	MetricsPushTimeout    time.Duration `env:"METRICS_PUSH_TIMEOUT"    envDefault:"10s"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
