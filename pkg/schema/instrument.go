package schema

import (
	"fmt"
	"strings"
)

// 常见计价币种，用于无分隔符币对的反解析
var commonQuotes = []string{"USDT", "USDC", "USD", "BTC", "ETH", "EUR"}

// InstrumentID normalizes a margin pair or contract underlying to OKX form:
// "BTC/USDT", "btc-usdt" and "BTCUSDT" all become "BTC-USDT".
func InstrumentID(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("instrument id cannot be empty")
	}

	// 已经是 OKX 格式
	if strings.Contains(s, "-") {
		parts := strings.Split(s, "-")
		for _, p := range parts {
			if p == "" {
				return "", fmt.Errorf("invalid instrument id: %s", s)
			}
		}
		return s, nil
	}

	if strings.Contains(s, "/") {
		base, quote, err := parseBaseQuote(s)
		if err != nil {
			return "", err
		}
		return base + "-" + quote, nil
	}

	base, quote, err := splitByQuote(s)
	if err != nil {
		return "", err
	}
	return base + "-" + quote, nil
}

// parseBaseQuote 解析 [base]/[quote] 格式
func parseBaseQuote(baseQuote string) (base, quote string, err error) {
	parts := strings.Split(baseQuote, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid format: must be [base]/[quote], got: %s", baseQuote)
	}

	base = strings.TrimSpace(parts[0])
	quote = strings.TrimSpace(parts[1])
	if base == "" || quote == "" {
		return "", "", fmt.Errorf("invalid format: base and quote cannot be empty, got: %s", baseQuote)
	}
	return base, quote, nil
}

func splitByQuote(symbol string) (base, quote string, err error) {
	for _, q := range commonQuotes {
		if strings.HasSuffix(symbol, q) {
			potentialBase := strings.TrimSuffix(symbol, q)
			if len(potentialBase) >= 2 {
				return potentialBase, q, nil
			}
		}
	}
	return "", "", fmt.Errorf("cannot parse instrument id: %s", symbol)
}
