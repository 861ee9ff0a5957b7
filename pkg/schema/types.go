package schema

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeName is kept for log fields shared with the other connectors.
type ExchangeName string

const OKX ExchangeName = "okx"

// Amount is a decimal transported as a JSON string. OKX sends "" for numeric
// fields that do not apply, which decodes to zero.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount { return Amount{Decimal: d} }

// ParseAmount 解析字符串金额
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{Decimal: d}, nil
}

// MustAmount panics on malformed input; meant for literals.
func MustAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	if isEmptyJSON(b) {
		a.Decimal = decimal.Zero
		return nil
	}
	return a.Decimal.UnmarshalJSON(b)
}

// Millis is a timestamp carried as decimal milliseconds since epoch.
type Millis struct {
	time.Time
}

func NewMillis(t time.Time) Millis { return Millis{Time: t} }

// Wire 返回毫秒时间戳字符串
func (m Millis) Wire() string {
	return strconv.FormatInt(m.UnixMilli(), 10)
}

func (m Millis) MarshalJSON() ([]byte, error) {
	if m.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(strconv.Quote(m.Wire())), nil
}

func (m *Millis) UnmarshalJSON(b []byte) error {
	if isEmptyJSON(b) {
		m.Time = time.Time{}
		return nil
	}
	ms, err := strconv.ParseInt(string(bytes.Trim(b, `"`)), 10, 64)
	if err != nil {
		return err
	}
	m.Time = time.UnixMilli(ms)
	return nil
}

func isEmptyJSON(b []byte) bool {
	s := string(b)
	return s == `""` || s == "null" || s == ""
}

// Credentials 签名所需的 API 凭证
type Credentials struct {
	APIKey     string `json:"apiKey" mapstructure:"OKX_API_KEY"`
	SecretKey  string `json:"secretKey" mapstructure:"OKX_SECRET_KEY"`
	Passphrase string `json:"passphrase" mapstructure:"OKX_PASSPHRASE"`
}

func (c Credentials) Complete() bool {
	return c.APIKey != "" && c.SecretKey != "" && c.Passphrase != ""
}

// ResponseMeta carries HTTP-level facts about one call.
type ResponseMeta struct {
	Method     string
	Path       string
	StatusCode int
	Header     http.Header
	Body       []byte
	Latency    time.Duration
}
