package handlers

import (
	"net/http"
	"time"

	"domus-api/internal/repositories"
	"domus-api/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	costRepo       repositories.CostRepositoryInterface
	incomeRepo     repositories.IncomeRepositoryInterface
	investmentRepo repositories.InvestmentRepositoryInterface
	generator      services.SampleDataGeneratorInterface
	metrics        services.MetricsRecorderInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	costRepo repositories.CostRepositoryInterface,
	incomeRepo repositories.IncomeRepositoryInterface,
	investmentRepo repositories.InvestmentRepositoryInterface,
	metrics services.MetricsRecorderInterface,
) *DevHandler {
	return &DevHandler{
		costRepo:       costRepo,
		incomeRepo:     incomeRepo,
		investmentRepo: investmentRepo,
		generator:      services.NewSampleDataGenerator(),
		metrics:        metrics,
	}
}

// SeedSampleData generates realistic financial records for the authenticated user
//
// Method: POST /api/v1/dev/seed-sample-data
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - costs: Number of one-time expenses to generate (default: 50, max: 500)
//   - investments: Number of investment holdings to generate (default: 10, max: 100)
//   - months: Months of history to cover (default: 6, max: 36)
//
// Success Response: 200 OK
//   - message: Success message
//   - costs_created, incomes_created, investments_created: Record counts
func (h *DevHandler) SeedSampleData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	costCount := clampIntParam(c, "costs", 50, 1, 500)
	investmentCount := clampIntParam(c, "investments", 10, 0, 100)
	months := clampIntParam(c, "months", 6, 1, 36)

	endDate := time.Now()
	startDate := endDate.AddDate(0, -months, 0)

	costsCreated := 0
	for _, cost := range h.generator.GenerateCosts(userID, startDate, endDate, costCount) {
		if err := h.costRepo.Create(cost); err != nil {
			continue
		}
		h.metrics.IncrementCounter("sample_data.seeded", map[string]string{"resource": "cost"})
		costsCreated++
	}

	incomesCreated := 0
	for _, income := range h.generator.GenerateIncomes(userID, startDate, endDate, months) {
		if err := h.incomeRepo.Create(income); err != nil {
			continue
		}
		h.metrics.IncrementCounter("sample_data.seeded", map[string]string{"resource": "income"})
		incomesCreated++
	}

	investmentsCreated := 0
	for _, investment := range h.generator.GenerateInvestments(userID, startDate, investmentCount) {
		if err := h.investmentRepo.Create(investment); err != nil {
			continue
		}
		h.metrics.IncrementCounter("sample_data.seeded", map[string]string{"resource": "investment"})
		investmentsCreated++
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":             "sample data generated successfully",
		"costs_created":       costsCreated,
		"incomes_created":     incomesCreated,
		"investments_created": investmentsCreated,
		"date_range": map[string]string{
			"start": startDate.Format(time.RFC3339),
			"end":   endDate.Format(time.RFC3339),
		},
	})
}

func clampIntParam(c echo.Context, key string, defaultValue, min, max int) int {
	value := getIntParam(c, key, defaultValue)
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
