package services

import (
	"testing"
	"time"

	"domus-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SampleDataGeneratorTestSuite struct {
	suite.Suite
	generator *sampleDataGenerator
	userID    uuid.UUID
}

func TestSampleDataGeneratorSuite(t *testing.T) {
	suite.Run(t, new(SampleDataGeneratorTestSuite))
}

func (s *SampleDataGeneratorTestSuite) SetupTest() {
	s.generator = NewSampleDataGenerator().(*sampleDataGenerator)
	s.userID = uuid.New()
}

// Amount Tests

func (s *SampleDataGeneratorTestSuite) TestGenerateCostAmount_ValidRange() {
	for i := 0; i < 100; i++ {
		amount := s.generator.GenerateCostAmount(models.CostCategoryFoodDining)
		s.True(amount.GreaterThanOrEqual(decimal.NewFromFloat(8.00)))
		s.True(amount.LessThanOrEqual(decimal.NewFromFloat(250.00)))
	}
}

func (s *SampleDataGeneratorTestSuite) TestGenerateCostAmount_CategoryBasedRanges() {
	for i := 0; i < 50; i++ {
		shopping := s.generator.GenerateCostAmount(models.CostCategoryShopping)
		s.True(shopping.GreaterThanOrEqual(decimal.NewFromFloat(25.00)))
		s.True(shopping.LessThanOrEqual(decimal.NewFromFloat(450.00)))

		bills := s.generator.GenerateCostAmount(models.CostCategoryBillsUtilities)
		s.True(bills.GreaterThanOrEqual(decimal.NewFromFloat(50.00)))
		s.True(bills.LessThanOrEqual(decimal.NewFromFloat(250.00)))
	}
}

func (s *SampleDataGeneratorTestSuite) TestGenerateCostAmount_UnknownCategoryFallback() {
	amount := s.generator.GenerateCostAmount("unknown")
	s.True(amount.GreaterThanOrEqual(decimal.NewFromFloat(10.00)))
	s.True(amount.LessThanOrEqual(decimal.NewFromFloat(100.00)))
}

func (s *SampleDataGeneratorTestSuite) TestGenerateCostAmount_TwoDecimalPlaces() {
	for i := 0; i < 50; i++ {
		amount := s.generator.GenerateCostAmount(models.CostCategoryHealthcare)
		s.Equal(amount.Round(2).String(), amount.String())
	}
}

// Timestamp Tests

func (s *SampleDataGeneratorTestSuite) TestGenerateTimestamp_WithinDateRange() {
	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		timestamp := s.generator.GenerateTimestamp(startDate, endDate)
		s.False(timestamp.Before(startDate))
		s.False(timestamp.After(endDate.Add(24 * time.Hour)))
		s.GreaterOrEqual(timestamp.Hour(), businessHoursStart)
	}
}

// Cost Generation Tests

func (s *SampleDataGeneratorTestSuite) TestGenerateCosts_CountAndOwnership() {
	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	costs := s.generator.GenerateCosts(s.userID, startDate, endDate, 20)
	s.GreaterOrEqual(len(costs), 20)

	for _, cost := range costs {
		s.Equal(s.userID, cost.UserID)
		s.NotEqual(uuid.Nil, cost.ID)
		s.NoError(cost.Validate())
	}
}

func (s *SampleDataGeneratorTestSuite) TestGenerateCosts_ValidCategories() {
	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	costs := s.generator.GenerateCosts(s.userID, startDate, endDate, 50)
	for _, cost := range costs {
		s.True(models.IsValidCostCategory(cost.Category), "invalid category: %s", cost.Category)
		s.NotEmpty(cost.Description)
	}
}

func (s *SampleDataGeneratorTestSuite) TestGenerateCosts_IncludesRecurringBills() {
	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	costs := s.generator.GenerateCosts(s.userID, startDate, endDate, 10)

	recurring := 0
	for _, cost := range costs {
		if cost.IsRecurring() {
			recurring++
			s.Equal(models.CostCategoryBillsUtilities, cost.Category)
		}
	}
	s.Greater(recurring, 0, "expected at least one recurring bill across three months")
}

func (s *SampleDataGeneratorTestSuite) TestGenerateCosts_ZeroCount() {
	startDate := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)

	costs := s.generator.GenerateCosts(s.userID, startDate, endDate, 0)
	for _, cost := range costs {
		s.True(cost.IsRecurring())
	}
}

// Income Generation Tests

func (s *SampleDataGeneratorTestSuite) TestGenerateIncomes_MonthlySalaryPattern() {
	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	incomes := s.generator.GenerateIncomes(s.userID, startDate, endDate, 6)

	salaries := make([]*models.Income, 0)
	for _, income := range incomes {
		s.Equal(s.userID, income.UserID)
		s.NoError(income.Validate())
		if income.Source == models.IncomeSourceSalary {
			salaries = append(salaries, income)
		}
	}

	s.Len(salaries, 6, "expected one salary per month")
	for _, salary := range salaries {
		s.Equal(salaryDayOfMonth, salary.StartDate.Day())
		s.Equal(models.FrequencyMonthly, salary.Frequency)
	}
}

func (s *SampleDataGeneratorTestSuite) TestGenerateIncomes_ConsistentSalaryAmount() {
	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	incomes := s.generator.GenerateIncomes(s.userID, startDate, endDate, 4)

	var salaryAmount decimal.Decimal
	for _, income := range incomes {
		if income.Source != models.IncomeSourceSalary {
			continue
		}
		if salaryAmount.IsZero() {
			salaryAmount = income.Value
			continue
		}
		s.True(salaryAmount.Equal(income.Value), "salary amount should not vary month to month")
	}
}

// Investment Generation Tests

func (s *SampleDataGeneratorTestSuite) TestGenerateInvestments_ValidHoldings() {
	startDate := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	investments := s.generator.GenerateInvestments(s.userID, startDate, 15)
	s.Len(investments, 15)

	for _, inv := range investments {
		s.Equal(s.userID, inv.UserID)
		s.True(models.IsValidInvestmentType(inv.TypeInvestments))
		s.True(inv.Value.IsPositive())
		s.False(inv.ExpectedReturn.IsNegative())
		s.NoError(inv.Validate())
	}
}

func (s *SampleDataGeneratorTestSuite) TestGenerateInvestments_ZeroCount() {
	investments := s.generator.GenerateInvestments(s.userID, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 0)
	s.Empty(investments)
}
