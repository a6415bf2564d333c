package services

import (
	"testing"
	"time"

	"domus-api/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AggregationServiceTestSuite struct {
	suite.Suite
	service AggregationServiceInterface
	userID  uuid.UUID
}

func TestAggregationServiceSuite(t *testing.T) {
	suite.Run(t, new(AggregationServiceTestSuite))
}

func (s *AggregationServiceTestSuite) SetupTest() {
	s.service = NewAggregationService()
	s.userID = uuid.New()
}

func (s *AggregationServiceTestSuite) date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (s *AggregationServiceTestSuite) cost(value, category string, startDate time.Time) models.Cost {
	return models.Cost{
		ID:        uuid.New(),
		UserID:    s.userID,
		Value:     decimal.RequireFromString(value),
		Category:  category,
		Frequency: models.FrequencyOneTime,
		StartDate: startDate,
	}
}

func (s *AggregationServiceTestSuite) income(value string, startDate time.Time) models.Income {
	return models.Income{
		ID:        uuid.New(),
		UserID:    s.userID,
		Value:     decimal.RequireFromString(value),
		Source:    models.IncomeSourceSalary,
		Frequency: models.FrequencyOneTime,
		StartDate: startDate,
	}
}

func (s *AggregationServiceTestSuite) investment(value, invType, expectedReturn string, startDate time.Time) models.Investment {
	return models.Investment{
		ID:              uuid.New(),
		UserID:          s.userID,
		Value:           decimal.RequireFromString(value),
		TypeInvestments: invType,
		ExpectedReturn:  decimal.RequireFromString(expectedReturn),
		StartDate:       startDate,
	}
}

// Category Aggregator

func (s *AggregationServiceTestSuite) TestCostCategoryTotals_GroupsAndSums() {
	costs := []models.Cost{
		s.cost("100.00", models.CostCategoryFoodDining, s.date(2024, 1, 5)),
		s.cost("50.00", models.CostCategoryTransportation, s.date(2024, 1, 10)),
		s.cost("25.50", models.CostCategoryFoodDining, s.date(2024, 2, 1)),
	}

	totals := s.service.CostCategoryTotals(costs)

	s.Len(totals, 2)
	s.Equal(models.CostCategoryFoodDining, totals[0].Name)
	s.True(totals[0].Value.Equal(decimal.RequireFromString("125.50")))
	s.Equal(models.CostCategoryTransportation, totals[1].Name)
	s.True(totals[1].Value.Equal(decimal.RequireFromString("50.00")))
}

func (s *AggregationServiceTestSuite) TestCostCategoryTotals_SkipsUncategorized() {
	costs := []models.Cost{
		s.cost("100.00", models.CostCategoryFoodDining, s.date(2024, 1, 5)),
		s.cost("999.00", "", s.date(2024, 1, 6)),
	}

	totals := s.service.CostCategoryTotals(costs)

	s.Len(totals, 1)
	s.Equal(models.CostCategoryFoodDining, totals[0].Name)
	s.True(totals[0].Value.Equal(decimal.RequireFromString("100.00")))
}

func (s *AggregationServiceTestSuite) TestCostCategoryTotals_EmptyInput() {
	s.Empty(s.service.CostCategoryTotals(nil))
	s.Empty(s.service.CostCategoryTotals([]models.Cost{}))
}

func (s *AggregationServiceTestSuite) TestCostCategoryTotals_SumMatchesCategorizedInput() {
	// Conservation: per-category totals must sum to the total over all
	// records that carry a category.
	var costs []models.Cost
	expectedSum := decimal.Zero

	categories := append(models.AllCostCategories(), "")
	for i := 0; i < 50; i++ {
		category := categories[gofakeit.Number(0, len(categories)-1)]
		value := decimal.NewFromFloat(gofakeit.Price(1, 500)).Round(2)
		costs = append(costs, s.cost(value.String(), category, s.date(2024, time.Month(gofakeit.Number(1, 12)), 1)))
		if category != "" {
			expectedSum = expectedSum.Add(value)
		}
	}

	totals := s.service.CostCategoryTotals(costs)

	actualSum := decimal.Zero
	for _, t := range totals {
		actualSum = actualSum.Add(t.Value)
	}
	s.True(actualSum.Equal(expectedSum), "expected %s, got %s", expectedSum, actualSum)
}

func (s *AggregationServiceTestSuite) TestCostCategoryTotals_PaletteAssignment() {
	costs := []models.Cost{
		s.cost("1.00", models.CostCategoryFoodDining, s.date(2024, 1, 1)),
		s.cost("1.00", models.CostCategoryTransportation, s.date(2024, 1, 1)),
		s.cost("1.00", models.CostCategoryShopping, s.date(2024, 1, 1)),
		s.cost("1.00", models.CostCategoryEntertainment, s.date(2024, 1, 1)),
		s.cost("1.00", models.CostCategoryBillsUtilities, s.date(2024, 1, 1)),
		s.cost("1.00", models.CostCategoryHealthcare, s.date(2024, 1, 1)),
	}

	totals := s.service.CostCategoryTotals(costs)

	s.Require().Len(totals, 6)
	s.Equal("#3b82f6", totals[0].Color)
	s.Equal("#8b5cf6", totals[1].Color)
	s.Equal("#06b6d4", totals[2].Color)
	s.Equal("#f59e0b", totals[3].Color)
	s.Equal("#10b981", totals[4].Color)
	// Palette wraps around
	s.Equal("#3b82f6", totals[5].Color)
}

func (s *AggregationServiceTestSuite) TestInvestmentTypeTotals_SkipsUntyped() {
	investments := []models.Investment{
		s.investment("600.00", models.InvestmentTypeETF, "8", s.date(2024, 1, 10)),
		s.investment("400.00", "", "5", s.date(2024, 1, 11)),
		s.investment("150.00", models.InvestmentTypeETF, "6", s.date(2024, 3, 1)),
	}

	totals := s.service.InvestmentTypeTotals(investments)

	s.Len(totals, 1)
	s.Equal(models.InvestmentTypeETF, totals[0].Name)
	s.True(totals[0].Value.Equal(decimal.RequireFromString("750.00")))
}

// Allocation Normalizer

func (s *AggregationServiceTestSuite) TestInvestmentAllocation_SingleType() {
	investments := []models.Investment{
		s.investment("600.00", models.InvestmentTypeETF, "8", s.date(2024, 1, 10)),
	}

	allocation := s.service.InvestmentAllocation(investments)

	s.Require().Len(allocation, 1)
	s.Equal(models.InvestmentTypeETF, allocation[0].Name)
	s.Equal(int64(100), allocation[0].Percent)
}

func (s *AggregationServiceTestSuite) TestInvestmentAllocation_RoundsPercentages() {
	investments := []models.Investment{
		s.investment("100.00", models.InvestmentTypeStocks, "0", s.date(2024, 1, 1)),
		s.investment("100.00", models.InvestmentTypeBonds, "0", s.date(2024, 1, 1)),
		s.investment("100.00", models.InvestmentTypeCrypto, "0", s.date(2024, 1, 1)),
	}

	allocation := s.service.InvestmentAllocation(investments)

	s.Require().Len(allocation, 3)
	// 100/300 rounds to 33; drift away from 100 is accepted
	for _, slice := range allocation {
		s.Equal(int64(33), slice.Percent)
	}
}

func (s *AggregationServiceTestSuite) TestInvestmentAllocation_EmptyInput() {
	s.Empty(s.service.InvestmentAllocation(nil))
}

func (s *AggregationServiceTestSuite) TestInvestmentAllocation_ZeroTotal() {
	investments := []models.Investment{
		s.investment("0.00", models.InvestmentTypeStocks, "0", s.date(2024, 1, 1)),
		s.investment("0.00", models.InvestmentTypeBonds, "0", s.date(2024, 1, 1)),
	}

	allocation := s.service.InvestmentAllocation(investments)

	s.Require().Len(allocation, 2)
	for _, slice := range allocation {
		s.Equal(int64(0), slice.Percent)
	}
}

// Time-Bucketed Projector

func (s *AggregationServiceTestSuite) TestMonthlyProjection_BucketsByStartMonth() {
	incomes := []models.Income{
		s.income("1000.00", s.date(2024, 1, 15)),
		s.income("1000.00", s.date(2024, 2, 15)),
	}
	costs := []models.Cost{
		s.cost("400.00", models.CostCategoryFoodDining, s.date(2024, 1, 20)),
	}
	investments := []models.Investment{
		s.investment("600.00", models.InvestmentTypeETF, "8", s.date(2024, 2, 10)),
	}

	points := s.service.MonthlyProjection(incomes, costs, investments)

	s.Require().Len(points, 2)

	s.Equal("2024-01", points[0].Period)
	s.True(points[0].Income.Equal(decimal.RequireFromString("1000.00")))
	s.True(points[0].Expenses.Equal(decimal.RequireFromString("400.00")))
	s.True(points[0].Investments.IsZero())

	s.Equal("2024-02", points[1].Period)
	s.True(points[1].Income.Equal(decimal.RequireFromString("1000.00")))
	s.True(points[1].Expenses.IsZero())
	s.True(points[1].Investments.Equal(decimal.RequireFromString("600.00")))
}

func (s *AggregationServiceTestSuite) TestMonthlyProjection_SortedChronologically() {
	incomes := []models.Income{
		s.income("10.00", s.date(2024, 11, 1)),
		s.income("10.00", s.date(2023, 2, 1)),
		s.income("10.00", s.date(2024, 3, 1)),
	}

	points := s.service.MonthlyProjection(incomes, nil, nil)

	s.Require().Len(points, 3)
	s.Equal("2023-02", points[0].Period)
	s.Equal("2024-03", points[1].Period)
	s.Equal("2024-11", points[2].Period)
}

func (s *AggregationServiceTestSuite) TestMonthlyProjection_ConservesTotals() {
	// Every record lands in exactly one bucket: summing across buckets
	// must reproduce the input sums for each kind.
	var incomes []models.Income
	var costs []models.Cost
	var investments []models.Investment

	incomeSum, costSum, investmentSum := decimal.Zero, decimal.Zero, decimal.Zero

	for i := 0; i < 30; i++ {
		date := s.date(2020+gofakeit.Number(0, 4), time.Month(gofakeit.Number(1, 12)), gofakeit.Number(1, 28))

		iv := decimal.NewFromFloat(gofakeit.Price(0, 5000)).Round(2)
		incomes = append(incomes, s.income(iv.String(), date))
		incomeSum = incomeSum.Add(iv)

		cv := decimal.NewFromFloat(gofakeit.Price(0, 900)).Round(2)
		costs = append(costs, s.cost(cv.String(), models.CostCategoryOther, date))
		costSum = costSum.Add(cv)

		xv := decimal.NewFromFloat(gofakeit.Price(0, 2000)).Round(2)
		investments = append(investments, s.investment(xv.String(), models.InvestmentTypeStocks, "5", date))
		investmentSum = investmentSum.Add(xv)
	}

	points := s.service.MonthlyProjection(incomes, costs, investments)

	gotIncome, gotCost, gotInvestment := decimal.Zero, decimal.Zero, decimal.Zero
	for _, p := range points {
		gotIncome = gotIncome.Add(p.Income)
		gotCost = gotCost.Add(p.Expenses)
		gotInvestment = gotInvestment.Add(p.Investments)
	}

	s.True(gotIncome.Equal(incomeSum), "income: expected %s, got %s", incomeSum, gotIncome)
	s.True(gotCost.Equal(costSum), "expenses: expected %s, got %s", costSum, gotCost)
	s.True(gotInvestment.Equal(investmentSum), "investments: expected %s, got %s", investmentSum, gotInvestment)
}

func (s *AggregationServiceTestSuite) TestYearlyProjection_BucketsByYear() {
	incomes := []models.Income{
		s.income("1000.00", s.date(2023, 6, 1)),
		s.income("2000.00", s.date(2024, 1, 1)),
		s.income("500.00", s.date(2024, 12, 31)),
	}

	points := s.service.YearlyProjection(incomes, nil, nil)

	s.Require().Len(points, 2)
	s.Equal("2023", points[0].Period)
	s.True(points[0].Income.Equal(decimal.RequireFromString("1000.00")))
	s.Equal("2024", points[1].Period)
	s.True(points[1].Income.Equal(decimal.RequireFromString("2500.00")))
}

func (s *AggregationServiceTestSuite) TestProjection_EmptyInput() {
	s.Empty(s.service.MonthlyProjection(nil, nil, nil))
	s.Empty(s.service.YearlyProjection(nil, nil, nil))
}

// KPI Calculator

func (s *AggregationServiceTestSuite) TestKPIs_ZeroIncome() {
	costs := []models.Cost{
		s.cost("400.00", models.CostCategoryFoodDining, s.date(2024, 1, 1)),
	}

	kpis := s.service.KPIs(nil, costs, nil)

	s.True(kpis.SavingsRate.IsZero())
	s.True(kpis.NetIncome.Equal(decimal.RequireFromString("-400.00")))
}

func (s *AggregationServiceTestSuite) TestKPIs_ZeroInvestments() {
	kpis := s.service.KPIs(nil, nil, nil)

	s.True(kpis.ExpectedReturnAverage.IsZero())
	s.True(kpis.WeightedReturn.IsZero())
	s.True(kpis.NetWorth.IsZero())
}

func (s *AggregationServiceTestSuite) TestKPIs_WeightedReturn() {
	investments := []models.Investment{
		s.investment("1000.00", models.InvestmentTypeStocks, "10", s.date(2024, 1, 1)),
		s.investment("3000.00", models.InvestmentTypeBonds, "2", s.date(2024, 1, 1)),
	}

	kpis := s.service.KPIs(nil, nil, investments)

	// 1000*0.10 + 3000*0.02 = 160
	s.True(kpis.WeightedReturn.Equal(decimal.RequireFromString("160.00")))
	// 160/4000*100 = 4
	s.True(kpis.ExpectedReturnAverage.Equal(decimal.RequireFromString("4.00")))
}

func (s *AggregationServiceTestSuite) TestFullScenario() {
	incomes := []models.Income{
		s.income("1000.00", s.date(2024, 1, 15)),
	}
	costs := []models.Cost{
		s.cost("400.00", models.CostCategoryFoodDining, s.date(2024, 1, 20)),
	}
	investments := []models.Investment{
		s.investment("600.00", models.InvestmentTypeETF, "8", s.date(2024, 1, 10)),
	}

	categoryTotals := s.service.CostCategoryTotals(costs)
	s.Require().Len(categoryTotals, 1)
	s.Equal(models.CostCategoryFoodDining, categoryTotals[0].Name)
	s.True(categoryTotals[0].Value.Equal(decimal.RequireFromString("400.00")))

	typeTotals := s.service.InvestmentTypeTotals(investments)
	s.Require().Len(typeTotals, 1)
	s.Equal(models.InvestmentTypeETF, typeTotals[0].Name)
	s.True(typeTotals[0].Value.Equal(decimal.RequireFromString("600.00")))

	allocation := s.service.InvestmentAllocation(investments)
	s.Require().Len(allocation, 1)
	s.Equal(int64(100), allocation[0].Percent)

	points := s.service.MonthlyProjection(incomes, costs, investments)
	s.Require().Len(points, 1)
	s.Equal("2024-01", points[0].Period)
	s.True(points[0].Income.Equal(decimal.RequireFromString("1000.00")))
	s.True(points[0].Expenses.Equal(decimal.RequireFromString("400.00")))
	s.True(points[0].Investments.Equal(decimal.RequireFromString("600.00")))

	kpis := s.service.KPIs(incomes, costs, investments)
	s.True(kpis.NetIncome.Equal(decimal.RequireFromString("600.00")))
	s.True(kpis.SavingsRate.Equal(decimal.RequireFromString("60.00")))
	// 600 * 8% = 48 expected gain
	s.True(kpis.WeightedReturn.Equal(decimal.RequireFromString("48.00")))
	s.True(kpis.ExpectedReturnAverage.Equal(decimal.RequireFromString("8.00")))
	// 1000 - 400 + 600 + 48
	s.True(kpis.NetWorth.Equal(decimal.RequireFromString("1248.00")))
}
