// Package service provides the business logic layer (use cases).
// BusinessService orchestrates the data store, the snapshot cache and the
// pure calculation engine: dashboard, monthly results, restock lists, and
// all entity CRUD with derived-field computation.
package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rividoceria/doceria-api/internal/domain"
	"github.com/rividoceria/doceria-api/internal/engine"
	"github.com/rividoceria/doceria-api/internal/infra/observability"
	"github.com/rividoceria/doceria-api/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("service/business")

// BusinessService orchestrates all business operations via the Supabase store.
type BusinessService struct {
	store    port.DataStore
	snapshot port.Cache[*domain.Snapshot]
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewBusinessService creates a new business service.
func NewBusinessService(store port.DataStore, snapshot port.Cache[*domain.Snapshot], metrics *observability.Metrics, logger *zap.Logger) *BusinessService {
	return &BusinessService{store: store, snapshot: snapshot, metrics: metrics, logger: logger}
}

func snapshotKey(userID string) string {
	return "snapshot:" + userID
}

// invalidateSnapshot drops the cached snapshot after any mutation so the
// next derived view sees fresh data.
func (s *BusinessService) invalidateSnapshot(userID string) {
	s.snapshot.Delete(snapshotKey(userID))
}

// LoadSnapshot loads the complete per-user dataset, fanning the nine store
// reads out concurrently. Results are cached per user with a short TTL;
// every mutation for that user invalidates the entry.
func (s *BusinessService) LoadSnapshot(ctx context.Context, userID string) (*domain.Snapshot, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.LoadSnapshot")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", userID))

	if snap, ok := s.snapshot.Get(snapshotKey(userID)); ok {
		s.metrics.IncrCacheHit("snapshot")
		return snap, nil
	}
	s.metrics.IncrCacheMiss("snapshot")

	start := time.Now()
	snap := &domain.Snapshot{UserID: userID}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.Ingredients, err = s.store.ListIngredients(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Recipes, err = s.store.ListRecipes(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.ProductionRuns, err = s.store.ListProductionRuns(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Transactions, err = s.store.ListTransactions(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Bills, err = s.store.ListBills(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Categories, err = s.store.ListCategories(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.ProductCategories, err = s.store.ListProductCategories(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Goals, err = s.store.ListGoals(gctx, userID)
		return err
	})
	g.Go(func() error {
		settings, err := s.getOrDefaultSettings(gctx, userID)
		if err != nil {
			return err
		}
		snap.Settings = *settings
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.metrics.SetSnapshotSize("ingredients", len(snap.Ingredients))
	s.metrics.SetSnapshotSize("recipes", len(snap.Recipes))
	s.metrics.SetSnapshotSize("transactions", len(snap.Transactions))
	s.metrics.SetSnapshotSize("bills", len(snap.Bills))
	s.logger.Debug("snapshot loaded",
		zap.String("user_id", userID),
		zap.Duration("elapsed", time.Since(start)),
	)

	s.snapshot.Set(snapshotKey(userID), snap)
	return snap, nil
}

// ============================================================
// Derived views
// ============================================================

// GetDashboard builds the dashboard for the month containing ref.
func (s *BusinessService) GetDashboard(ctx context.Context, userID string, ref domain.Date) (*domain.Dashboard, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.GetDashboard")
	defer span.End()

	start := time.Now()
	snap, err := s.LoadSnapshot(ctx, userID)
	if err != nil {
		s.metrics.IncrRequest("error")
		return nil, err
	}
	dash := engine.BuildDashboard(snap, ref, domain.Today())
	s.metrics.RecordRequestDuration("dashboard", time.Since(start))
	s.metrics.IncrRequest("success")
	return &dash, nil
}

// GetMonthlyResult builds the P&L with break-even for one calendar month.
func (s *BusinessService) GetMonthlyResult(ctx context.Context, userID string, year int, month time.Month) (*domain.MonthlyResult, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.GetMonthlyResult")
	defer span.End()

	start := time.Now()
	snap, err := s.LoadSnapshot(ctx, userID)
	if err != nil {
		s.metrics.IncrRequest("error")
		return nil, err
	}
	result := engine.BuildMonthlyResult(snap, year, month)
	s.metrics.RecordRequestDuration("monthly_report", time.Since(start))
	s.metrics.IncrRequest("success")
	return &result, nil
}

// GetDaySummary aggregates one calendar day of the cash ledger.
func (s *BusinessService) GetDaySummary(ctx context.Context, userID string, day domain.Date) (*domain.DaySummary, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.GetDaySummary")
	defer span.End()

	start := time.Now()
	snap, err := s.LoadSnapshot(ctx, userID)
	if err != nil {
		s.metrics.IncrRequest("error")
		return nil, err
	}
	summary := engine.SummarizeDay(snap.Transactions, day)
	s.metrics.RecordRequestDuration("day_summary", time.Since(start))
	s.metrics.IncrRequest("success")
	return &summary, nil
}

// GetPurchaseList builds the restock purchase list from current stock levels.
func (s *BusinessService) GetPurchaseList(ctx context.Context, userID string) ([]domain.PurchaseItem, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.GetPurchaseList")
	defer span.End()

	start := time.Now()
	snap, err := s.LoadSnapshot(ctx, userID)
	if err != nil {
		s.metrics.IncrRequest("error")
		return nil, err
	}
	list := engine.BuildPurchaseList(snap.Ingredients)
	s.metrics.RecordRequestDuration("restock_list", time.Since(start))
	s.metrics.IncrRequest("success")
	return list, nil
}
