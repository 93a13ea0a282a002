// Package aggregate orchestrates the four upstream stages into one composite
// result. The stages form a directed dependency graph: person feeds country
// which feeds exchange, and person independently feeds news, so the news
// branch runs concurrently with the country/exchange chain.
package aggregate

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"worldinfo/pkg/domain"
	"worldinfo/pkg/provider"
)

// Service runs the aggregation pipeline.
type Service struct {
	person   provider.Person
	country  provider.Country
	exchange provider.Exchange
	news     provider.News
	logger   *slog.Logger
}

// New creates a new aggregation service.
func New(
	person provider.Person,
	country provider.Country,
	exchange provider.Exchange,
	news provider.News,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		person:   person,
		country:  country,
		exchange: exchange,
		news:     news,
		logger:   logger.With("service", "Aggregate"),
	}
}

// Compose runs the pipeline and assembles a best-effort composite. Every
// stage after person degrades into a failed slot instead of aborting the
// request; only a person failure is returned as an error, since all other
// stages consume its output.
func (s *Service) Compose(ctx context.Context) (*domain.AggregateResult, error) {
	person, err := s.person.Fetch(ctx)
	if err != nil {
		s.logger.Error("person stage failed, aborting pipeline", "error", err)
		return nil, err
	}

	res := &domain.AggregateResult{User: domain.OK(*person)}

	// The two branches write disjoint slots; Wait is the synchronization
	// point before res is read.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		res.Country, res.Exchange = s.countryChain(gctx, person)
		return nil
	})
	g.Go(func() error {
		items, err := s.news.TopStories(gctx, person.CountryName)
		if err != nil {
			s.logger.Warn("news stage failed", "error", err)
			res.News = domain.Failed[[]domain.NewsItem](err)
			return nil
		}
		res.News = domain.OK(items)
		return nil
	})
	_ = g.Wait()

	return res, nil
}

// countryChain runs the country stage and, when it yields a currency code,
// the exchange stage that causally depends on it.
func (s *Service) countryChain(ctx context.Context, person *domain.PersonInfo) (domain.Slot[domain.CountryInfo], domain.Slot[domain.ExchangeInfo]) {
	country, err := s.country.Lookup(ctx, person.CountryName, person.CountryCode)
	if err != nil {
		s.logger.Warn("country stage failed", "error", err)
		return domain.Failed[domain.CountryInfo](err),
			domain.Failed[domain.ExchangeInfo](&domain.DependencyError{Stage: "exchange", DependsOn: "country"})
	}

	countrySlot := domain.OK(*country)
	if country.CurrencyCode == "" || country.CurrencyCode == domain.NA {
		// A no-match country is a degraded success with no currency to look
		// up; the exchange stage never attempts an outbound call.
		return countrySlot,
			domain.Failed[domain.ExchangeInfo](&domain.DependencyError{Stage: "exchange", DependsOn: "country"})
	}

	exchange, err := s.exchange.Rates(ctx, country.CurrencyCode)
	if err != nil {
		s.logger.Warn("exchange stage failed", "error", err)
		return countrySlot, domain.Failed[domain.ExchangeInfo](err)
	}
	return countrySlot, domain.OK(*exchange)
}
