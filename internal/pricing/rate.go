package pricing

import (
	"context"
	"net/url"

	"go-jewel-storefront/internal/pkg/flex"

	"go.uber.org/zap"
)

// Getter is the slice of the API client the rate lookup needs.
type Getter interface {
	Get(ctx context.Context, path string, out any) error
}

type RateLookup struct {
	api    Getter
	logger *zap.Logger
}

func NewRateLookup(api Getter, logger *zap.Logger) *RateLookup {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RateLookup{api: api, logger: logger}
}

// rateDTO field names match case-insensitively, so "Rate"/"CPer" also land here.
type rateDTO struct {
	Rate flex.Decimal `json:"rate"`
	Per  flex.Decimal `json:"per"`
	CPer flex.Decimal `json:"cper"`
}

// Lookup fetches the rate for metal and purity. Failures come back as a
// RateFailed rate, never as a silent zero.
func (l *RateLookup) Lookup(ctx context.Context, metal, purity string) Rate {
	if metal == "" || purity == "" {
		return FallbackRate(RateLoading, "")
	}

	q := url.Values{}
	q.Set("metal", metal)
	q.Set("purity", purity)

	var res struct {
		Success bool    `json:"success"`
		Data    rateDTO `json:"data"`
		Message string  `json:"message"`
	}
	if err := l.api.Get(ctx, "/rates?"+q.Encode(), &res); err != nil {
		l.logger.Warn("rate lookup failed", zap.String("metal", metal), zap.String("purity", purity), zap.Error(err))
		return FallbackRate(RateFailed, "Rate unavailable for "+metal+" "+purity)
	}

	rate := res.Data.Rate
	if !res.Success || !rate.Valid {
		return FallbackRate(RateFailed, "Rate unavailable for "+metal+" "+purity)
	}

	out := Rate{Status: RateKnown, Rate: rate.Decimal, Per: hundred, CPer: hundred}
	if res.Data.Per.Valid {
		out.Per = res.Data.Per.Decimal
	}
	if res.Data.CPer.Valid {
		out.CPer = res.Data.CPer.Decimal
	}
	return out
}
