package schema

import (
	"github.com/samber/mo"
)

// Result is the outcome of one exchange call that reached OKX and came back as
// a well-formed envelope. It holds either the payload or the exchange's
// application error, never both. The zero Result, returned next to a Go error,
// holds neither and reports OK() == false.
type Result[T any] struct {
	value mo.Option[mo.Either[*APIError, T]]
	Meta  ResponseMeta
}

func NewSuccess[T any](data T, meta ResponseMeta) Result[T] {
	return Result[T]{value: mo.Some(mo.Right[*APIError, T](data)), Meta: meta}
}

func NewFailure[T any](apiErr *APIError, meta ResponseMeta) Result[T] {
	return Result[T]{value: mo.Some(mo.Left[*APIError, T](apiErr)), Meta: meta}
}

// OK reports whether OKX accepted the request (code "0").
func (r Result[T]) OK() bool {
	v, ok := r.value.Get()
	return ok && v.IsRight()
}

func (r Result[T]) Data() (T, bool) {
	if v, ok := r.value.Get(); ok {
		return v.Right()
	}
	var zero T
	return zero, false
}

func (r Result[T]) Failure() (*APIError, bool) {
	if v, ok := r.value.Get(); ok {
		return v.Left()
	}
	return nil, false
}

// Err returns the application error as an error value, or nil on success.
// An empty Result has no application error either.
func (r Result[T]) Err() error {
	if apiErr, ok := r.Failure(); ok {
		return apiErr
	}
	return nil
}

// Match calls onSuccess or onFailure; an empty Result calls neither.
func (r Result[T]) Match(onSuccess func(T), onFailure func(*APIError)) {
	v, ok := r.value.Get()
	if !ok {
		return
	}
	if apiErr, isLeft := v.Left(); isLeft {
		onFailure(apiErr)
		return
	}
	data, _ := v.Right()
	onSuccess(data)
}
