package config

import "time"

type Config struct {
	App            AppConfig            `mapstructure:"app"`
	HTTP           HTTPConfig           `mapstructure:"http"`
	Logging        LoggingConfig        `mapstructure:"logging"`
	Providers      ProvidersConfig      `mapstructure:"providers"`
	HTTPClient     HTTPClientConfig     `mapstructure:"http_client"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
	Tracing        TracingConfig        `mapstructure:"tracing"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type HTTPConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type ProvidersConfig struct {
	Shift4 Shift4Config `mapstructure:"shift4"`
	Oppwa  OppwaConfig  `mapstructure:"oppwa"`
}

type Shift4Config struct {
	APIKey string `mapstructure:"api_key"`
	APIURL string `mapstructure:"api_url"`
}

type OppwaConfig struct {
	APIKey   string `mapstructure:"api_key"`
	APIURL   string `mapstructure:"api_url"`
	EntityID string `mapstructure:"entity_id"`
}

// HTTPClientConfig bounds every outbound provider call. A finite timeout is
// mandatory; its absence is a defect.
type HTTPClientConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32        `mapstructure:"max_requests"`
	Interval         time.Duration `mapstructure:"interval"`
	Timeout          time.Duration `mapstructure:"timeout"`
	FailureThreshold uint32        `mapstructure:"failure_threshold"`
}

type TracingConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	JaegerEndpoint string `mapstructure:"jaeger_endpoint"`
}
