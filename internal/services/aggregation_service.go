package services

import (
	"sort"

	"domus-api/internal/models"

	"github.com/shopspring/decimal"
)

// chartPalette is the fixed color cycle for category and allocation slices.
// Colors are assigned by first-seen insertion order, so the same input order
// always produces the same coloring.
var chartPalette = []string{"#3b82f6", "#8b5cf6", "#06b6d4", "#f59e0b", "#10b981"}

var oneHundred = decimal.NewFromInt(100)

type aggregationService struct{}

// NewAggregationService creates a new AggregationServiceInterface instance
func NewAggregationService() AggregationServiceInterface {
	return &aggregationService{}
}

// CostCategoryTotals groups costs by category and sums their values.
// Uncategorized records are excluded, not errors.
func (s *aggregationService) CostCategoryTotals(costs []models.Cost) []models.CategoryTotal {
	totals := newGroupedTotals()

	for _, cost := range costs {
		if cost.Category == "" {
			continue
		}
		totals.add(cost.Category, cost.Value)
	}

	return totals.slices()
}

// InvestmentTypeTotals groups investments by type and sums their values.
// Untyped records are excluded.
func (s *aggregationService) InvestmentTypeTotals(investments []models.Investment) []models.CategoryTotal {
	totals := newGroupedTotals()

	for _, inv := range investments {
		if inv.TypeInvestments == "" {
			continue
		}
		totals.add(inv.TypeInvestments, inv.Value)
	}

	return totals.slices()
}

// InvestmentAllocation converts per-type totals into integer percentage
// slices. Percentages are rounded independently, so they may not sum to
// exactly 100; a zero grand total yields 0 percent for every slice.
func (s *aggregationService) InvestmentAllocation(investments []models.Investment) []models.AllocationSlice {
	typeTotals := s.InvestmentTypeTotals(investments)

	grandTotal := decimal.Zero
	for _, t := range typeTotals {
		grandTotal = grandTotal.Add(t.Value)
	}

	slices := make([]models.AllocationSlice, 0, len(typeTotals))
	for _, t := range typeTotals {
		var percent int64
		if grandTotal.IsPositive() {
			percent = t.Value.Div(grandTotal).Mul(oneHundred).Round(0).IntPart()
		}

		slices = append(slices, models.AllocationSlice{
			Name:    t.Name,
			Value:   t.Value,
			Percent: percent,
			Color:   t.Color,
		})
	}

	return slices
}

// MonthlyProjection buckets each record by the YYYY-MM of its start date and
// sums income, expenses, and investments per bucket independently. Every
// record lands in exactly one bucket, so per-kind bucket sums always equal
// the per-kind input sums.
func (s *aggregationService) MonthlyProjection(incomes []models.Income, costs []models.Cost, investments []models.Investment) []models.ProjectionPoint {
	return s.project(incomes, costs, investments, "2006-01")
}

// YearlyProjection buckets each record by the YYYY of its start date
func (s *aggregationService) YearlyProjection(incomes []models.Income, costs []models.Cost, investments []models.Investment) []models.ProjectionPoint {
	return s.project(incomes, costs, investments, "2006")
}

func (s *aggregationService) project(incomes []models.Income, costs []models.Cost, investments []models.Investment, layout string) []models.ProjectionPoint {
	buckets := make(map[string]*models.ProjectionPoint)

	bucket := func(period string) *models.ProjectionPoint {
		if point, exists := buckets[period]; exists {
			return point
		}
		point := &models.ProjectionPoint{
			Period:      period,
			Income:      decimal.Zero,
			Expenses:    decimal.Zero,
			Investments: decimal.Zero,
		}
		buckets[period] = point
		return point
	}

	for _, income := range incomes {
		point := bucket(income.StartDate.Format(layout))
		point.Income = point.Income.Add(income.Value)
	}

	for _, cost := range costs {
		point := bucket(cost.StartDate.Format(layout))
		point.Expenses = point.Expenses.Add(cost.Value)
	}

	for _, inv := range investments {
		point := bucket(inv.StartDate.Format(layout))
		point.Investments = point.Investments.Add(inv.Value)
	}

	points := make([]models.ProjectionPoint, 0, len(buckets))
	for _, point := range buckets {
		points = append(points, models.ProjectionPoint{
			Period:      point.Period,
			Income:      point.Income.Round(2),
			Expenses:    point.Expenses.Round(2),
			Investments: point.Investments.Round(2),
		})
	}

	// Lexicographic order of zero-padded periods is chronological order
	sort.Slice(points, func(i, j int) bool {
		return points[i].Period < points[j].Period
	})

	return points
}

// KPIs derives the scalar dashboard figures. Zero-total guards keep every
// rate finite; decimal arithmetic has no NaN to coerce.
func (s *aggregationService) KPIs(incomes []models.Income, costs []models.Cost, investments []models.Investment) models.KPISet {
	totalIncome := decimal.Zero
	for _, income := range incomes {
		totalIncome = totalIncome.Add(income.Value)
	}

	totalExpenses := decimal.Zero
	for _, cost := range costs {
		totalExpenses = totalExpenses.Add(cost.Value)
	}

	totalInvestments := decimal.Zero
	weightedReturn := decimal.Zero
	for _, inv := range investments {
		totalInvestments = totalInvestments.Add(inv.Value)
		weightedReturn = weightedReturn.Add(inv.ExpectedGain())
	}

	netIncome := totalIncome.Sub(totalExpenses)

	savingsRate := decimal.Zero
	if totalIncome.IsPositive() {
		savingsRate = netIncome.Div(totalIncome).Mul(oneHundred)
	}

	expectedReturnAverage := decimal.Zero
	if totalInvestments.IsPositive() {
		expectedReturnAverage = weightedReturn.Div(totalInvestments).Mul(oneHundred)
	}

	netWorth := totalIncome.Sub(totalExpenses).Add(totalInvestments).Add(weightedReturn)

	return models.KPISet{
		TotalIncome:           totalIncome.Round(2),
		TotalExpenses:         totalExpenses.Round(2),
		TotalInvestments:      totalInvestments.Round(2),
		NetIncome:             netIncome.Round(2),
		NetWorth:              netWorth.Round(2),
		SavingsRate:           savingsRate.Round(2),
		WeightedReturn:        weightedReturn.Round(2),
		ExpectedReturnAverage: expectedReturnAverage.Round(2),
	}
}

// groupedTotals accumulates sums by key while remembering first-seen order,
// which drives both output ordering and palette assignment.
type groupedTotals struct {
	order  []string
	values map[string]decimal.Decimal
}

func newGroupedTotals() *groupedTotals {
	return &groupedTotals{
		values: make(map[string]decimal.Decimal),
	}
}

func (g *groupedTotals) add(key string, value decimal.Decimal) {
	if _, exists := g.values[key]; !exists {
		g.order = append(g.order, key)
	}
	g.values[key] = g.values[key].Add(value)
}

func (g *groupedTotals) slices() []models.CategoryTotal {
	totals := make([]models.CategoryTotal, 0, len(g.order))
	for i, key := range g.order {
		totals = append(totals, models.CategoryTotal{
			Name:  key,
			Value: g.values[key].Round(2),
			Color: chartPalette[i%len(chartPalette)],
		})
	}
	return totals
}
