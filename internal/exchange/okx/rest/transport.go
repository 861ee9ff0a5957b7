package rest

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/kingsmao/okx-funding-connector/pkg/interfaces"
)

// RestyTransport is the default Transport.
type RestyTransport struct{ http *resty.Client }

// NewRestyTransport wraps c. A nil c gets a plain client pointed at OKX.
func NewRestyTransport(c *resty.Client) *RestyTransport {
	if c == nil {
		c = resty.New().SetBaseURL(OKXBaseURL).SetTimeout(10 * time.Second)
	}
	return &RestyTransport{http: c}
}

func (t *RestyTransport) Do(ctx context.Context, req *interfaces.HTTPRequest) (*interfaces.HTTPResponse, error) {
	r := t.http.R().SetContext(ctx).SetHeaderMultiValues(req.Header)
	if len(req.Body) > 0 {
		r.SetBody(req.Body)
	}

	// query 已按参数顺序编码并参与签名，直接拼进 URL，避免 resty 重新排序
	resp, err := r.Execute(req.Method, req.RequestPath())
	if err != nil {
		return nil, err
	}
	return &interfaces.HTTPResponse{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}
