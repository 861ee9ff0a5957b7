package rest

import "net/http"

const (
	OKXBaseURL = "https://www.okx.com"
)

// Endpoint is a fixed (path, method) pair plus whether OKX expects it signed.
type Endpoint struct {
	Path   string
	Method string
	Signed bool
}

func Private(method, path string) Endpoint {
	return Endpoint{Path: path, Method: method, Signed: true}
}

func Public(method, path string) Endpoint {
	return Endpoint{Path: path, Method: method}
}

// carriesBody reports whether parameters travel in the JSON body instead of
// the query string.
func (e Endpoint) carriesBody() bool {
	return e.Method != http.MethodGet && e.Method != http.MethodDelete
}

func (e Endpoint) String() string {
	return e.Method + " " + e.Path
}
