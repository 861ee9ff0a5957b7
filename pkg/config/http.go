package config

import (
	"fmt"
	"net"
	"net/http"

	"golang.org/x/net/http2"
)

// NewHTTPClient builds the pooled client used by the resty transport.
func NewHTTPClient(c *Config) (*http.Client, error) {
	tr := &http.Transport{
		ResponseHeaderTimeout: c.HttpResponseHeader(),
		Proxy:                 http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			KeepAlive: c.HttpConnKeepAlive(),
			Timeout:   c.HttpConnectTimeout(),
		}).DialContext,
		MaxIdleConns:        c.HttpMaxAllIdleConns(),
		IdleConnTimeout:     c.HttpIdleConn(),
		TLSHandshakeTimeout: c.HttpTLSHandshake(),
		MaxIdleConnsPerHost: c.HttpMaxHostIdleConns(),
	}

	if err := http2.ConfigureTransport(tr); err != nil {
		return nil, fmt.Errorf("cannot configure http2 transport: %w", err)
	}

	return &http.Client{
		Transport: tr,
		Timeout:   c.CallTimeout(),
	}, nil
}
