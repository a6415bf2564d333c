package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"domus-api/internal/models"
	"domus-api/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidMonth = errors.New("month must be in YYYY-MM format")

// DashboardService assembles derived dashboard views by fetching a user's
// records concurrently and running them through the aggregation engine.
// Each call recomputes from a fresh snapshot; nothing is cached.
type DashboardService struct {
	costRepo       repositories.CostRepositoryInterface
	incomeRepo     repositories.IncomeRepositoryInterface
	investmentRepo repositories.InvestmentRepositoryInterface
	aggregation    AggregationServiceInterface
	metrics        MetricsRecorderInterface
	logger         *slog.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	costRepo repositories.CostRepositoryInterface,
	incomeRepo repositories.IncomeRepositoryInterface,
	investmentRepo repositories.InvestmentRepositoryInterface,
	aggregation AggregationServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		costRepo:       costRepo,
		incomeRepo:     incomeRepo,
		investmentRepo: investmentRepo,
		aggregation:    aggregation,
		metrics:        metrics,
		logger:         logger,
	}
}

// snapshot holds one consistent fetch of all three record kinds
type snapshot struct {
	costs       []models.Cost
	incomes     []models.Income
	investments []models.Investment
}

// fetchSnapshot loads the user's records with a fan-out/fan-in: all three
// fetches run concurrently and any failure aborts the whole cycle, so the
// aggregation never runs over a partial snapshot.
func (s *DashboardService) fetchSnapshot(ctx context.Context, userID uuid.UUID) (*snapshot, error) {
	var snap snapshot

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		costs, err := s.costRepo.GetByUserID(userID)
		if err != nil {
			return fmt.Errorf("fetch costs: %w", err)
		}
		snap.costs = costs
		return nil
	})

	g.Go(func() error {
		incomes, err := s.incomeRepo.GetByUserID(userID)
		if err != nil {
			return fmt.Errorf("fetch incomes: %w", err)
		}
		snap.incomes = incomes
		return nil
	})

	g.Go(func() error {
		investments, err := s.investmentRepo.GetByUserID(userID)
		if err != nil {
			return fmt.Errorf("fetch investments: %w", err)
		}
		snap.investments = investments
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("dashboard snapshot fetch failed",
			"user_id", userID,
			"error", err)
		return nil, err
	}

	return &snap, nil
}

// GetSummary computes the full dashboard view-model for a user
func (s *DashboardService) GetSummary(ctx context.Context, userID uuid.UUID) (*models.DashboardSummary, error) {
	snap, err := s.fetchSnapshot(ctx, userID)
	if err != nil {
		s.metrics.IncrementCounter("dashboard.request", map[string]string{"view": "summary", "status": "failed"})
		return nil, err
	}

	start := time.Now()
	summary := &models.DashboardSummary{
		UserID:            userID,
		KPISet:            s.aggregation.KPIs(snap.incomes, snap.costs, snap.investments),
		ExpenseCategories: s.aggregation.CostCategoryTotals(snap.costs),
		Allocation:        s.aggregation.InvestmentAllocation(snap.investments),
		GeneratedAt:       time.Now(),
	}
	s.metrics.RecordProcessingTime("dashboard.aggregation", time.Since(start))
	s.metrics.IncrementCounter("dashboard.request", map[string]string{"view": "summary", "status": "success"})

	s.logger.Info("dashboard summary computed",
		"user_id", userID,
		"costs", len(snap.costs),
		"incomes", len(snap.incomes),
		"investments", len(snap.investments))

	return summary, nil
}

// GetMonthlySummary computes KPIs over only the records whose start date
// falls within the given YYYY-MM month
func (s *DashboardService) GetMonthlySummary(ctx context.Context, userID uuid.UUID, month string) (*models.MonthlySummary, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, ErrInvalidMonth
	}

	snap, err := s.fetchSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	filtered := filterSnapshotByMonth(snap, month)

	return &models.MonthlySummary{
		Month:       month,
		KPISet:      s.aggregation.KPIs(filtered.incomes, filtered.costs, filtered.investments),
		GeneratedAt: time.Now(),
	}, nil
}

// GetMonthlyProjection computes the month-bucketed series over all records
func (s *DashboardService) GetMonthlyProjection(ctx context.Context, userID uuid.UUID) ([]models.ProjectionPoint, error) {
	snap, err := s.fetchSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	points := s.aggregation.MonthlyProjection(snap.incomes, snap.costs, snap.investments)
	s.metrics.RecordProcessingTime("dashboard.projection", time.Since(start))

	return points, nil
}

// GetYearlyProjection computes the year-bucketed series over all records
func (s *DashboardService) GetYearlyProjection(ctx context.Context, userID uuid.UUID) ([]models.ProjectionPoint, error) {
	snap, err := s.fetchSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	points := s.aggregation.YearlyProjection(snap.incomes, snap.costs, snap.investments)
	s.metrics.RecordProcessingTime("dashboard.projection", time.Since(start))

	return points, nil
}

func filterSnapshotByMonth(snap *snapshot, month string) *snapshot {
	filtered := &snapshot{}

	for _, cost := range snap.costs {
		if cost.StartDate.Format("2006-01") == month {
			filtered.costs = append(filtered.costs, cost)
		}
	}
	for _, income := range snap.incomes {
		if income.StartDate.Format("2006-01") == month {
			filtered.incomes = append(filtered.incomes, income)
		}
	}
	for _, inv := range snap.investments {
		if inv.StartDate.Format("2006-01") == month {
			filtered.investments = append(filtered.investments, inv)
		}
	}

	return filtered
}
