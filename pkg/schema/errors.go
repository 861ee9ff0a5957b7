package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument 参数在本地校验阶段失败，请求不会发出
	ErrInvalidArgument = errors.New("okx: invalid argument")
	// ErrUnrecognizedEnumValue 收到未知的枚举 wire token
	ErrUnrecognizedEnumValue = errors.New("okx: unrecognized enum value")
	// ErrTransport 网络、超时、非 OKX 响应等传输层失败
	ErrTransport = errors.New("okx: transport failure")
	// ErrMalformedResponse 响应体无法解析
	ErrMalformedResponse = errors.New("okx: malformed response")
	// ErrCancelled 调用方取消了请求
	ErrCancelled = errors.New("okx: request cancelled")
)

// ArgumentError describes an input rejected before dispatch.
type ArgumentError struct {
	Name   string
	Reason string
}

func NewArgumentError(name, format string, args ...interface{}) *ArgumentError {
	return &ArgumentError{Name: name, Reason: fmt.Sprintf(format, args...)}
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("okx: invalid argument %q: %s", e.Name, e.Reason)
}

func (e *ArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// EnumError is returned when a wire token has no domain value.
type EnumError struct {
	Enum  string
	Token string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("okx: unrecognized %s token %q", e.Enum, e.Token)
}

func (e *EnumError) Is(target error) bool { return target == ErrUnrecognizedEnumValue }

// TransportError wraps everything that went wrong between sending the request
// and holding a decoded OKX envelope.
type TransportError struct {
	Method     string
	Path       string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("okx: %s %s failed (http %d): %v", e.Method, e.Path, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("okx: %s %s failed: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// APIError is an application-level failure reported inside a well-formed
// envelope. It travels inside Result and is never returned as a Go error by
// the client.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"msg"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("okx api error (code: %s, message: %s)", e.Code, e.Message)
}
