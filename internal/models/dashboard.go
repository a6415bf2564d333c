package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryTotal is one slice of the per-category expense breakdown
type CategoryTotal struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
	Color string          `json:"color"`
}

// AllocationSlice is the percentage share of one investment type
type AllocationSlice struct {
	Name    string          `json:"name"`
	Value   decimal.Decimal `json:"value"`
	Percent int64           `json:"percent"`
	Color   string          `json:"color"`
}

// ProjectionPoint is one bucket of a time-bucketed series. Period is
// "YYYY-MM" for monthly projections and "YYYY" for yearly ones.
type ProjectionPoint struct {
	Period      string          `json:"period"`
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
	Investments decimal.Decimal `json:"investments"`
}

// KPISet holds the derived scalar figures shown on the dashboard.
// Rates are percentages; everything is guaranteed finite.
type KPISet struct {
	TotalIncome           decimal.Decimal `json:"income"`
	TotalExpenses         decimal.Decimal `json:"expenses"`
	TotalInvestments      decimal.Decimal `json:"investments"`
	NetIncome             decimal.Decimal `json:"netIncome"`
	NetWorth              decimal.Decimal `json:"netWorth"`
	SavingsRate           decimal.Decimal `json:"savingsRate"`
	WeightedReturn        decimal.Decimal `json:"weightedReturn"`
	ExpectedReturnAverage decimal.Decimal `json:"expectedReturnAverage"`
}

// DashboardSummary is the full derived view-model for one user,
// recomputed from scratch on every refresh. KPISet is embedded so the
// figures serialize at the top level of the payload.
type DashboardSummary struct {
	UserID uuid.UUID `json:"user_id"`
	KPISet
	ExpenseCategories []CategoryTotal   `json:"expenseCategories"`
	Allocation        []AllocationSlice `json:"investmentPortfolio"`
	GeneratedAt       time.Time         `json:"generated_at"`
}

// MonthlySummary is the KPI drill-down for a single YYYY-MM period.
// The embedded KPISet flattens into the payload alongside the month.
type MonthlySummary struct {
	Month string `json:"month"`
	KPISet
	GeneratedAt time.Time `json:"generated_at"`
}
