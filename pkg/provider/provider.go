// Package provider defines the upstream client contracts. Each client issues
// exactly one outbound call per invocation, applies the matching normalizer
// and returns a canonical value, or an UpstreamError identifying the failed
// provider. No retries, no caching, no shared state.
package provider

import (
	"context"

	"worldinfo/pkg/domain"
)

// Person fetches one random person.
type Person interface {
	Fetch(ctx context.Context) (*domain.PersonInfo, error)
	Name() string
}

// Country looks up a country by name. code is the optional ISO-3166 alpha-2
// code used for the flag fallback; implementations must yield the same
// canonical shape regardless of which upstream provider backs them.
type Country interface {
	Lookup(ctx context.Context, name, code string) (*domain.CountryInfo, error)
	Name() string
}

// Exchange fetches the USD/KZT rates for a base currency.
type Exchange interface {
	Rates(ctx context.Context, base string) (*domain.ExchangeInfo, error)
	Name() string
}

// News fetches up to five articles for a country or topic string.
type News interface {
	TopStories(ctx context.Context, query string) ([]domain.NewsItem, error)
	Name() string
}
