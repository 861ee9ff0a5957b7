package funding

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kingsmao/okx-funding-connector/internal/exchange/okx/rest"
	"github.com/kingsmao/okx-funding-connector/pkg/schema"
)

var (
	// 余币宝/出借年化利率范围 1% - 365%
	minLendingRate = decimal.RequireFromString("0.01")
	maxLendingRate = decimal.RequireFromString("3.65")
)

func requireString(name, v string) error {
	if strings.TrimSpace(v) == "" {
		return schema.NewArgumentError(name, "is required")
	}
	return nil
}

func requirePositive(name string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return schema.NewArgumentError(name, "must be positive, got %s", v)
	}
	return nil
}

func requireNonNegative(name string, v decimal.Decimal) error {
	if v.IsNegative() {
		return schema.NewArgumentError(name, "must not be negative, got %s", v)
	}
	return nil
}

func requireRate(name string, v decimal.Decimal) error {
	if v.LessThan(minLendingRate) || v.GreaterThan(maxLendingRate) {
		return schema.NewArgumentError(name, "must be between %s and %s, got %s", minLendingRate, maxLendingRate, v)
	}
	return nil
}

// pageLimit returns the limit to send: absent means the default of 100.
func pageLimit(page schema.Page) (int, error) {
	limit := page.Limit.OrElse(schema.DefaultPageLimit)
	if limit < schema.MinPageLimit || limit > schema.MaxPageLimit {
		return 0, schema.NewArgumentError("limit", "must be between %d and %d, got %d",
			schema.MinPageLimit, schema.MaxPageLimit, limit)
	}
	return limit, nil
}

// setPage appends after, before and limit in that order.
func setPage(p *rest.Params, page schema.Page) error {
	limit, err := pageLimit(page)
	if err != nil {
		return err
	}
	rest.SetOptional(p, "after", page.After)
	rest.SetOptional(p, "before", page.Before)
	p.Set("limit", limit)
	return nil
}
