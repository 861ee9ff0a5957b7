package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/kingsmao/okx-funding-connector/pkg/interfaces"
	"github.com/kingsmao/okx-funding-connector/pkg/logger"
	"github.com/kingsmao/okx-funding-connector/pkg/schema"
)

const successCode = "0"

// envelope is the common OKX v5 response shape.
type envelope struct {
	Code string          `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// Dispatcher sends endpoint calls through a Transport, signing the ones that
// need it. It holds no per-call state and is safe for concurrent use.
type Dispatcher struct {
	transport interfaces.Transport
	signer    interfaces.Signer
	demo      bool
	now       func() time.Time
}

type Option func(*Dispatcher)

func WithSigner(s interfaces.Signer) Option {
	return func(d *Dispatcher) { d.signer = s }
}

// WithDemoTrading routes calls to the OKX demo environment.
func WithDemoTrading(enabled bool) Option {
	return func(d *Dispatcher) { d.demo = enabled }
}

func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

func NewDispatcher(t interfaces.Transport, opts ...Option) *Dispatcher {
	d := &Dispatcher{transport: t, now: time.Now}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SendList calls an endpoint whose data is zero or more records. A success
// with no records yields an empty, non-nil slice.
func SendList[T any](ctx context.Context, d *Dispatcher, ep Endpoint, params *Params) (schema.Result[[]T], error) {
	env, meta, err := d.send(ctx, ep, params)
	if err != nil {
		return schema.Result[[]T]{}, err
	}
	if env.Code != successCode {
		return schema.NewFailure[[]T](&schema.APIError{Code: env.Code, Message: env.Msg}, meta), nil
	}

	items, err := decodeData[T](env.Data)
	if err != nil {
		return schema.Result[[]T]{}, malformed(ep, meta.StatusCode, err)
	}
	return schema.NewSuccess(items, meta), nil
}

// SendSingle calls an endpoint whose data carries exactly one record.
func SendSingle[T any](ctx context.Context, d *Dispatcher, ep Endpoint, params *Params) (schema.Result[T], error) {
	env, meta, err := d.send(ctx, ep, params)
	if err != nil {
		return schema.Result[T]{}, err
	}
	if env.Code != successCode {
		return schema.NewFailure[T](&schema.APIError{Code: env.Code, Message: env.Msg}, meta), nil
	}

	items, err := decodeData[T](env.Data)
	if err != nil {
		return schema.Result[T]{}, malformed(ep, meta.StatusCode, err)
	}
	if len(items) == 0 {
		return schema.Result[T]{}, malformed(ep, meta.StatusCode, errors.New("empty data"))
	}
	return schema.NewSuccess(items[0], meta), nil
}

func decodeData[T any](raw json.RawMessage) ([]T, error) {
	items := make([]T, 0)
	if len(raw) == 0 || string(raw) == "null" {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, nil
}

func (d *Dispatcher) send(ctx context.Context, ep Endpoint, params *Params) (*envelope, schema.ResponseMeta, error) {
	meta := schema.ResponseMeta{Method: ep.Method, Path: ep.Path}
	if params == nil {
		params = NewParams()
	}
	if err := params.Err(); err != nil {
		return nil, meta, err
	}

	req, err := d.buildRequest(ep, params)
	if err != nil {
		return nil, meta, err
	}
	if err := ctx.Err(); err != nil {
		return nil, meta, cancelled(err)
	}

	logger.WithFields(logger.Fields{
		"exchange": schema.OKX,
		"method":   req.Method,
		"path":     req.RequestPath(),
		"body":     string(req.Body),
		"signed":   ep.Signed,
		"state":    "beforeOKXCall",
	}).Debug("okx.send")

	start := time.Now()
	resp, err := d.transport.Do(ctx, req)
	meta.Latency = time.Since(start)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, meta, cancelled(ctxErr)
		}
		if errors.Is(err, context.Canceled) {
			return nil, meta, cancelled(err)
		}
		return nil, meta, &schema.TransportError{Method: ep.Method, Path: ep.Path, Err: err}
	}

	meta.StatusCode = resp.StatusCode
	meta.Header = resp.Header
	meta.Body = resp.Body

	// 保存原始响应结果用于调试
	logger.WithFields(logger.Fields{
		"exchange":     schema.OKX,
		"method":       req.Method,
		"path":         req.RequestPath(),
		"httpStatus":   resp.StatusCode,
		"latency":      meta.Latency.String(),
		"responseBody": string(resp.Body),
		"state":        "afterOKXCall",
	}).Debug("okx.send")

	var env envelope
	if err := json.Unmarshal(resp.Body, &env); err != nil || env.Code == "" {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, meta, &schema.TransportError{
				Method:     ep.Method,
				Path:       ep.Path,
				StatusCode: resp.StatusCode,
				Err:        fmt.Errorf("unexpected response: %s", truncate(resp.Body, 256)),
			}
		}
		if err == nil {
			err = errors.New("missing envelope code")
		}
		return nil, meta, malformed(ep, resp.StatusCode, err)
	}

	if env.Code != successCode {
		logger.WithFields(logger.Fields{
			"path": ep.Path,
			"code": env.Code,
			"msg":  env.Msg,
		}).Warn("okx application error")
	}
	return &env, meta, nil
}

func (d *Dispatcher) buildRequest(ep Endpoint, params *Params) (*interfaces.HTTPRequest, error) {
	req := &interfaces.HTTPRequest{
		Method: ep.Method,
		Path:   ep.Path,
		Header: http.Header{},
	}
	req.Header.Set("Accept", "application/json")

	if ep.carriesBody() {
		body, err := params.JSON()
		if err != nil {
			return nil, fmt.Errorf("unable to encode %s body: %w", ep, err)
		}
		req.Body = body
		req.Header.Set("Content-Type", "application/json")
	} else {
		req.Query = params.Query()
	}

	if d.demo {
		req.Header.Set(HeaderSimulatedTrading, "1")
	}

	if ep.Signed {
		if d.signer == nil {
			return nil, schema.NewArgumentError("credentials", "%s requires a signer", ep)
		}
		if err := d.signer.Authenticate(req, d.now()); err != nil {
			return nil, err
		}
	}
	return req, nil
}

func cancelled(cause error) error {
	return fmt.Errorf("%w: %w", schema.ErrCancelled, cause)
}

func malformed(ep Endpoint, status int, cause error) error {
	return &schema.TransportError{
		Method:     ep.Method,
		Path:       ep.Path,
		StatusCode: status,
		Err:        fmt.Errorf("%w: %w", schema.ErrMalformedResponse, cause),
	}
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
