package rest

import (
	"bytes"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/samber/mo"
	"github.com/shopspring/decimal"

	"github.com/kingsmao/okx-funding-connector/pkg/schema"
)

type paramValue struct {
	str  string
	list []string
}

func (v paramValue) equal(o paramValue) bool {
	if v.list == nil || o.list == nil {
		return v.list == nil && o.list == nil && v.str == o.str
	}
	if len(v.list) != len(o.list) {
		return false
	}
	for i := range v.list {
		if v.list[i] != o.list[i] {
			return false
		}
	}
	return true
}

// Params is an ordered wire parameter mapping. The order keys are added in is
// the order they are encoded and signed in.
type Params struct {
	keys   []string
	values map[string]paramValue
	err    error
}

func NewParams() *Params {
	return &Params{values: make(map[string]paramValue)}
}

// Set always inserts. Setting a key twice with a different value panics.
func (p *Params) Set(name string, v interface{}) *Params {
	val, err := canonical(v)
	if err != nil {
		if p.err == nil {
			p.err = schema.NewArgumentError(name, "%v", err)
		}
		return p
	}
	p.put(name, val)
	return p
}

// SetOptional inserts only when the option holds a value.
func SetOptional[T any](p *Params, name string, v mo.Option[T]) *Params {
	if x, ok := v.Get(); ok {
		p.Set(name, x)
	}
	return p
}

// SetJoined inserts a comma separated list when at least one item is given.
func (p *Params) SetJoined(name string, items []string) *Params {
	if len(items) == 0 {
		return p
	}
	return p.Set(name, strings.Join(items, ","))
}

func (p *Params) put(name string, val paramValue) {
	if old, ok := p.values[name]; ok {
		if !old.equal(val) {
			panic(fmt.Sprintf("rest: parameter %q set twice with different values", name))
		}
		return
	}
	p.keys = append(p.keys, name)
	p.values[name] = val
}

// Err returns the first conversion failure, if any.
func (p *Params) Err() error { return p.err }

func (p *Params) Len() int { return len(p.keys) }

func (p *Params) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Get returns the canonical string form of name; lists come back comma joined.
func (p *Params) Get(name string) (string, bool) {
	v, ok := p.values[name]
	if !ok {
		return "", false
	}
	if v.list != nil {
		return strings.Join(v.list, ","), true
	}
	return v.str, true
}

// Query encodes k=v pairs in insertion order.
func (p *Params) Query() string {
	var sb strings.Builder
	for i, k := range p.keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		v, _ := p.Get(k)
		sb.WriteString(url.QueryEscape(k))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(v))
	}
	return sb.String()
}

// JSON encodes the mapping as a JSON object in insertion order.
func (p *Params) JSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		var val []byte
		if v := p.values[k]; v.list != nil {
			val, err = json.Marshal(v.list)
		} else {
			val, err = json.Marshal(v.str)
		}
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// canonical converts a value to the form OKX expects on the wire. Decimals use
// their plain string form, times are epoch milliseconds.
func canonical(v interface{}) (paramValue, error) {
	switch x := v.(type) {
	case schema.WireEncoder:
		s, err := x.Encode()
		if err != nil {
			return paramValue{}, err
		}
		return paramValue{str: s}, nil
	case string:
		return paramValue{str: x}, nil
	case []string:
		list := make([]string, len(x))
		copy(list, x)
		return paramValue{list: list}, nil
	case decimal.Decimal:
		return paramValue{str: x.String()}, nil
	case schema.Amount:
		return paramValue{str: x.Decimal.String()}, nil
	case int:
		return paramValue{str: strconv.Itoa(x)}, nil
	case int64:
		return paramValue{str: strconv.FormatInt(x, 10)}, nil
	case bool:
		return paramValue{str: strconv.FormatBool(x)}, nil
	case time.Time:
		return paramValue{str: strconv.FormatInt(x.UnixMilli(), 10)}, nil
	case schema.Millis:
		return paramValue{str: x.Wire()}, nil
	default:
		panic(fmt.Sprintf("rest: unsupported parameter type %T", v))
	}
}
