package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/kingsmao/okx-funding-connector/pkg/logger"
	"github.com/kingsmao/okx-funding-connector/pkg/schema"
)

// Config 连接 OKX 所需的全部配置，来自 .env 文件或环境变量
type Config struct {
	schema.Credentials `mapstructure:",squash"`

	BaseURL              string `mapstructure:"OKX_BASE_URL"`
	DemoTrading          bool   `mapstructure:"OKX_DEMO_TRADING"`
	CallTimeoutInSeconds string `mapstructure:"OKX_CALL_TIMEOUT"`
	LogLevel             string `mapstructure:"LOG_LEVEL"`

	HttpConnectTimeoutInSeconds string `mapstructure:"HTTP_CONNECT_TIMEOUT"`
	HttpConnKeepAliveInSeconds  string `mapstructure:"HTTP_CONN_KEEP_ALIVE"`
	HttpIdleConnInSeconds       string `mapstructure:"HTTP_IDLE_CONN"`
	HttpMaxAllIdleConnsCount    string `mapstructure:"HTTP_MAX_ALL_IDLE_CONNS"`
	HttpMaxHostIdleConnsCount   string `mapstructure:"HTTP_MAX_HOST_IDLE_CONNS"`
	HttpResponseHeaderInSeconds string `mapstructure:"HTTP_RESPONSE_HEADER"`
	HttpTLSHandshakeInSeconds   string `mapstructure:"HTTP_TLS_HANDSHAKE"`
}

var envKeys = []string{
	"OKX_API_KEY", "OKX_SECRET_KEY", "OKX_PASSPHRASE",
	"OKX_BASE_URL", "OKX_DEMO_TRADING", "OKX_CALL_TIMEOUT", "LOG_LEVEL",
	"HTTP_CONNECT_TIMEOUT", "HTTP_CONN_KEEP_ALIVE", "HTTP_IDLE_CONN",
	"HTTP_MAX_ALL_IDLE_CONNS", "HTTP_MAX_HOST_IDLE_CONNS",
	"HTTP_RESPONSE_HEADER", "HTTP_TLS_HANDSHAKE",
}

// Load reads ./.env (if present) and the environment. Environment wins.
func Load() (*Config, error) {
	return LoadFrom(".")
}

func LoadFrom(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	// AutomaticEnv 只对已知 key 生效，Unmarshal 前需要显式绑定
	for _, k := range envKeys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("cannot bind env %s: %w", k, err)
		}
	}

	v.SetDefault("OKX_BASE_URL", "https://www.okx.com")
	v.SetDefault("OKX_DEMO_TRADING", false)
	v.SetDefault("OKX_CALL_TIMEOUT", "10")
	v.SetDefault("LOG_LEVEL", "INFO")
	v.SetDefault("HTTP_CONNECT_TIMEOUT", "5")
	v.SetDefault("HTTP_CONN_KEEP_ALIVE", "30")
	v.SetDefault("HTTP_IDLE_CONN", "90")
	v.SetDefault("HTTP_MAX_ALL_IDLE_CONNS", "10")
	v.SetDefault("HTTP_MAX_HOST_IDLE_CONNS", "5")
	v.SetDefault("HTTP_RESPONSE_HEADER", "5")
	v.SetDefault("HTTP_TLS_HANDSHAKE", "5")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("cannot read env file: %w", err)
		}
		logger.Debug("no .env file in %s, using environment only", dir)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config: %w", err)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg, cfg.Validate()
}

// Validate checks the numeric settings up front so later accessors cannot fail.
func (c *Config) Validate() error {
	for name, val := range map[string]string{
		"OKX_CALL_TIMEOUT":         c.CallTimeoutInSeconds,
		"HTTP_CONNECT_TIMEOUT":     c.HttpConnectTimeoutInSeconds,
		"HTTP_CONN_KEEP_ALIVE":     c.HttpConnKeepAliveInSeconds,
		"HTTP_IDLE_CONN":           c.HttpIdleConnInSeconds,
		"HTTP_MAX_ALL_IDLE_CONNS":  c.HttpMaxAllIdleConnsCount,
		"HTTP_MAX_HOST_IDLE_CONNS": c.HttpMaxHostIdleConnsCount,
		"HTTP_RESPONSE_HEADER":     c.HttpResponseHeaderInSeconds,
		"HTTP_TLS_HANDSHAKE":       c.HttpTLSHandshakeInSeconds,
	} {
		if _, err := strconv.Atoi(val); err != nil {
			return fmt.Errorf("config %s must be an integer, got %q", name, val)
		}
	}
	if c.BaseURL == "" {
		return fmt.Errorf("config OKX_BASE_URL cannot be empty")
	}
	return nil
}

func (c Config) CallTimeout() time.Duration {
	return seconds(c.CallTimeoutInSeconds)
}

func (c Config) HttpConnectTimeout() time.Duration {
	return seconds(c.HttpConnectTimeoutInSeconds)
}

func (c Config) HttpConnKeepAlive() time.Duration {
	return seconds(c.HttpConnKeepAliveInSeconds)
}

func (c Config) HttpIdleConn() time.Duration {
	return seconds(c.HttpIdleConnInSeconds)
}

func (c Config) HttpResponseHeader() time.Duration {
	return seconds(c.HttpResponseHeaderInSeconds)
}

func (c Config) HttpTLSHandshake() time.Duration {
	return seconds(c.HttpTLSHandshakeInSeconds)
}

func (c Config) HttpMaxAllIdleConns() int {
	n, _ := strconv.Atoi(c.HttpMaxAllIdleConnsCount)
	return n
}

func (c Config) HttpMaxHostIdleConns() int {
	n, _ := strconv.Atoi(c.HttpMaxHostIdleConnsCount)
	return n
}

func seconds(s string) time.Duration {
	i, _ := strconv.Atoi(s)
	return time.Duration(i) * time.Second
}
