package rest

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/kingsmao/okx-funding-connector/pkg/interfaces"
	"github.com/kingsmao/okx-funding-connector/pkg/schema"
)

const (
	HeaderAccessKey        = "OK-ACCESS-KEY"
	HeaderAccessSign       = "OK-ACCESS-SIGN"
	HeaderAccessTimestamp  = "OK-ACCESS-TIMESTAMP"
	HeaderAccessPassphrase = "OK-ACCESS-PASSPHRASE"
	HeaderSimulatedTrading = "x-simulated-trading"

	// OKX 要求 ISO 8601 毫秒精度 UTC 时间
	timestampLayout = "2006-01-02T15:04:05.000Z"
)

// HMACSigner signs requests the way OKX v5 expects:
// base64(hmac_sha256(secret, timestamp + METHOD + requestPath + body)).
type HMACSigner struct {
	credentials schema.Credentials
}

func NewHMACSigner(c schema.Credentials) *HMACSigner {
	return &HMACSigner{credentials: c}
}

func (s *HMACSigner) Authenticate(req *interfaces.HTTPRequest, now time.Time) error {
	if !s.credentials.Complete() {
		return schema.NewArgumentError("credentials", "api key, secret key and passphrase are required for %s", req.Path)
	}
	if req.Header == nil {
		req.Header = http.Header{}
	}

	ts := now.UTC().Format(timestampLayout)
	req.Header.Set(HeaderAccessKey, s.credentials.APIKey)
	req.Header.Set(HeaderAccessPassphrase, s.credentials.Passphrase)
	req.Header.Set(HeaderAccessTimestamp, ts)
	req.Header.Set(HeaderAccessSign, sign(ts, req.Method, req.RequestPath(), string(req.Body), s.credentials.SecretKey))
	return nil
}

func sign(timestamp, method, requestPath, body, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(timestamp + method + requestPath + body))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
