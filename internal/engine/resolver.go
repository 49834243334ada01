package engine

import (
	"context"
	"fmt"
	"strings"

	domsvc "RegimeCast/internal/domain/service"
)

// AssetResolver expands an asset identifier into a concrete price series.
// Identifiers of the "X-Y" form (a separator, no whitespace) denote a
// synthetic pair: both legs are fetched and their elementwise difference is
// returned. Any fetch failure aborts the whole call as data-unavailable.
type AssetResolver struct {
	source domsvc.PriceSource
}

func NewAssetResolver(source domsvc.PriceSource) *AssetResolver {
	return &AssetResolver{source: source}
}

// Resolve fetches the series for asset, synthesizing the difference series
// for paired identifiers.
func (r *AssetResolver) Resolve(ctx context.Context, asset string, limit int) ([]float64, error) {
	legA, legB, synthetic := splitPair(asset)
	if !synthetic {
		prices, err := r.source.Load(ctx, asset, limit)
		if err != nil {
			return nil, fmt.Errorf("%w: load %s: %v", ErrDataUnavailable, asset, err)
		}
		return prices, nil
	}

	a, err := r.source.Load(ctx, legA, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s leg %s: %v", ErrDataUnavailable, asset, legA, err)
	}
	b, err := r.source.Load(ctx, legB, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s leg %s: %v", ErrDataUnavailable, asset, legB, err)
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %s legs differ in length (%d vs %d)", ErrDataUnavailable, asset, len(a), len(b))
	}

	diff := make([]float64, len(a))
	for i := range a {
		diff[i] = a[i] - b[i]
	}
	return diff, nil
}

// splitPair recognizes "X-Y" synthetic identifiers. Both legs must be
// non-empty and the identifier must contain no whitespace.
func splitPair(asset string) (string, string, bool) {
	if strings.ContainsAny(asset, " \t") {
		return "", "", false
	}
	i := strings.Index(asset, "-")
	if i <= 0 || i >= len(asset)-1 {
		return "", "", false
	}
	return asset[:i], asset[i+1:], true
}
