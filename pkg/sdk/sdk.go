package sdk

import (
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/kingsmao/okx-funding-connector/internal/exchange/okx/funding"
	"github.com/kingsmao/okx-funding-connector/internal/exchange/okx/rest"
	"github.com/kingsmao/okx-funding-connector/pkg/config"
	"github.com/kingsmao/okx-funding-connector/pkg/interfaces"
	"github.com/kingsmao/okx-funding-connector/pkg/logger"
)

// SDK provides a high-level interface for the OKX funding account
type SDK struct {
	cfg     *config.Config
	funding *funding.FundingREST
}

// NewSDK wires config into the HTTP client, signer and dispatcher.
func NewSDK(cfg *config.Config) (*SDK, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	httpClient, err := config.NewHTTPClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot init the http client: %w", err)
	}

	client := resty.NewWithClient(httpClient).SetBaseURL(cfg.BaseURL)
	return newSDK(cfg, rest.NewRestyTransport(client)), nil
}

// NewSDKFromEnv loads config from ./.env and the environment.
func NewSDKFromEnv() (*SDK, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewSDK(cfg)
}

func newSDK(cfg *config.Config, t interfaces.Transport) *SDK {
	if cfg.LogLevel != "" {
		logger.SetLogLevelFromString(cfg.LogLevel)
	}

	opts := []rest.Option{rest.WithDemoTrading(cfg.DemoTrading)}
	if cfg.Credentials.Complete() {
		opts = append(opts, rest.WithSigner(rest.NewHMACSigner(cfg.Credentials)))
	} else {
		// 没有凭证时只能访问公共接口
		logger.Warn("OKX credentials incomplete, only public endpoints are usable")
	}

	logger.WithFields(logger.Fields{
		"baseURL": cfg.BaseURL,
		"demo":    cfg.DemoTrading,
	}).Info("okx funding sdk initialized")

	return &SDK{
		cfg:     cfg,
		funding: funding.NewFundingREST(rest.NewDispatcher(t, opts...)),
	}
}

// Funding returns the funding account REST client.
func (s *SDK) Funding() interfaces.FundingClient {
	return s.funding
}

func (s *SDK) Config() config.Config {
	return *s.cfg
}
