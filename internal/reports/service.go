package reports

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Service computes and caches report summaries.
type Service struct {
	logger *slog.Logger
	repo   Repository
	cache  *Cache
}

// NewService constructs a reports Service. cache may be nil, in which case
// every request recomputes from the database.
func NewService(logger *slog.Logger, repo Repository, cache *Cache) *Service {
	return &Service{logger: logger, repo: repo, cache: cache}
}

// Summary aggregates sales and purchases for the period, fetching both row
// sets concurrently. Results are cached per period until a writer bumps the
// cache version.
func (s *Service) Summary(ctx context.Context, p Period, topN int) (Summary, error) {
	key, err := s.cache.BuildKey(ctx, keySummary(p))
	if err != nil {
		s.logger.Warn("build report cache key", slog.Any("error", err))
		return s.computeSummary(ctx, p, topN)
	}

	var summary Summary
	err = s.cache.FetchJSON(ctx, key, &summary, func(ctx context.Context) (interface{}, error) {
		return s.computeSummary(ctx, p, topN)
	})
	if err != nil {
		return Summary{}, err
	}
	return summary, nil
}

func (s *Service) computeSummary(ctx context.Context, p Period, topN int) (Summary, error) {
	var (
		sales     []SaleRecord
		purchases []PurchaseRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sales, err = s.repo.SaleRecords(gctx, p)
		return err
	})
	g.Go(func() error {
		var err error
		purchases, err = s.repo.PurchaseRecords(gctx, p)
		return err
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	return Aggregate(sales, purchases, topN), nil
}

// Dashboard returns the landing page counters. Cached briefly under the same
// version as summaries so writes refresh it too.
func (s *Service) Dashboard(ctx context.Context) (DashboardStats, error) {
	key, err := s.cache.BuildKey(ctx, keyDashboard())
	if err != nil {
		s.logger.Warn("build dashboard cache key", slog.Any("error", err))
		return s.repo.Dashboard(ctx)
	}

	var stats DashboardStats
	err = s.cache.FetchJSON(ctx, key, &stats, func(ctx context.Context) (interface{}, error) {
		return s.repo.Dashboard(ctx)
	})
	if err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}

// Warm recomputes the all-time summary so the next read is a cache hit.
func (s *Service) Warm(ctx context.Context) error {
	_, err := s.Summary(ctx, Period{}, DefaultTopN)
	return err
}
