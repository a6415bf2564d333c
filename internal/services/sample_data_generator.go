package services

import (
	"math/rand"
	"time"

	"domus-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type sampleDataGenerator struct {
	rng *rand.Rand
}

const (
	hoursInDay         = 24
	salaryDayOfMonth   = 25
	businessHoursStart = 6
	businessHoursEnd   = 24
)

// NewSampleDataGenerator creates a new sample data generator
func NewSampleDataGenerator() SampleDataGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &sampleDataGenerator{
		rng: rand.New(source),
	}
}

// costDescriptions maps each cost category to realistic descriptions
var costDescriptions = map[string][]string{
	models.CostCategoryFoodDining: {
		"Grocery run", "Dinner out", "Coffee and pastries", "Weekly meal prep", "Takeout order",
	},
	models.CostCategoryTransportation: {
		"Fuel", "Monthly transit pass", "Ride share", "Car maintenance", "Parking",
	},
	models.CostCategoryShopping: {
		"Clothing", "Electronics", "Home goods", "Online order", "Gift",
	},
	models.CostCategoryEntertainment: {
		"Streaming subscription", "Cinema tickets", "Concert", "Video games", "Books",
	},
	models.CostCategoryBillsUtilities: {
		"Electricity bill", "Internet bill", "Water bill", "Phone plan", "Heating",
	},
	models.CostCategoryHealthcare: {
		"Pharmacy", "Doctor visit", "Dental checkup", "Gym membership", "Glasses",
	},
	models.CostCategoryEducation: {
		"Online course", "Textbooks", "Workshop fee", "Language classes", "Certification exam",
	},
	models.CostCategoryOther: {
		"Miscellaneous", "Pet supplies", "Charity donation", "Repairs", "Postage",
	},
}

// GenerateCostAmount generates a realistic amount for a cost category
func (g *sampleDataGenerator) GenerateCostAmount(category string) decimal.Decimal {
	minValue, maxValue := g.getAmountRange(category)
	amount := minValue + g.rng.Float64()*(maxValue-minValue)
	return decimal.NewFromFloat(amount).Round(2)
}

func (g *sampleDataGenerator) getAmountRange(category string) (float64, float64) {
	ranges := map[string][2]float64{
		models.CostCategoryFoodDining:     {8.00, 250.00},
		models.CostCategoryTransportation: {10.00, 120.00},
		models.CostCategoryShopping:       {25.00, 450.00},
		models.CostCategoryEntertainment:  {10.00, 80.00},
		models.CostCategoryBillsUtilities: {50.00, 250.00},
		models.CostCategoryHealthcare:     {20.00, 300.00},
		models.CostCategoryEducation:      {30.00, 200.00},
		models.CostCategoryOther:          {10.00, 150.00},
	}

	if r, exists := ranges[category]; exists {
		return r[0], r[1]
	}
	return 10.00, 100.00
}

// GenerateTimestamp generates a random timestamp within the date range,
// clamped to waking hours
func (g *sampleDataGenerator) GenerateTimestamp(startDate, endDate time.Time) time.Time {
	diff := endDate.Sub(startDate)
	randomDuration := time.Duration(g.rng.Int63n(int64(diff)))
	timestamp := startDate.Add(randomDuration)

	hour := businessHoursStart + g.rng.Intn(businessHoursEnd-businessHoursStart)
	minute := g.rng.Intn(60)
	second := g.rng.Intn(60)

	return time.Date(
		timestamp.Year(),
		timestamp.Month(),
		timestamp.Day(),
		hour,
		minute,
		second,
		0,
		time.UTC,
	)
}

// GenerateCosts generates count one-time expense records spread across the
// date range, plus a monthly recurring bill per covered month
func (g *sampleDataGenerator) GenerateCosts(userID uuid.UUID, startDate, endDate time.Time, count int) []*models.Cost {
	categories := models.AllCostCategories()
	costs := make([]*models.Cost, 0, count)

	for i := 0; i < count; i++ {
		category := categories[g.rng.Intn(len(categories))]
		timestamp := g.GenerateTimestamp(startDate, endDate)

		costs = append(costs, &models.Cost{
			ID:               uuid.New(),
			UserID:           userID,
			Value:            g.GenerateCostAmount(category),
			Category:         category,
			Frequency:        models.FrequencyOneTime,
			DurationInMonths: 1,
			StartDate:        timestamp,
			Description:      g.pickDescription(category),
			CreatedAt:        timestamp,
			UpdatedAt:        timestamp,
		})
	}

	costs = append(costs, g.generateRecurringBills(userID, startDate, endDate)...)
	return costs
}

func (g *sampleDataGenerator) pickDescription(category string) string {
	pool, exists := costDescriptions[category]
	if !exists {
		pool = costDescriptions[models.CostCategoryOther]
	}
	return pool[g.rng.Intn(len(pool))]
}

// generateRecurringBills creates one monthly utilities cost per covered month
func (g *sampleDataGenerator) generateRecurringBills(userID uuid.UUID, startDate, endDate time.Time) []*models.Cost {
	bills := make([]*models.Cost, 0)
	currentDate := time.Date(startDate.Year(), startDate.Month(), 1, 0, 0, 0, 0, time.UTC)

	for currentDate.Before(endDate) {
		billDay := 1 + g.rng.Intn(28)
		billDate := time.Date(currentDate.Year(), currentDate.Month(), billDay, 14, 0, 0, 0, time.UTC)

		if !billDate.Before(startDate) && billDate.Before(endDate) {
			bills = append(bills, &models.Cost{
				ID:               uuid.New(),
				UserID:           userID,
				Value:            g.GenerateCostAmount(models.CostCategoryBillsUtilities),
				Category:         models.CostCategoryBillsUtilities,
				Frequency:        models.FrequencyMonthly,
				DurationInMonths: 12,
				StartDate:        billDate,
				Description:      "Monthly utilities",
				CreatedAt:        billDate,
				UpdatedAt:        billDate,
			})
		}

		currentDate = currentDate.AddDate(0, 1, 0)
	}

	return bills
}

// GenerateIncomes generates a monthly salary record per month plus
// occasional freelance income
func (g *sampleDataGenerator) GenerateIncomes(userID uuid.UUID, startDate, endDate time.Time, months int) []*models.Income {
	salaryAmounts := []float64{2500.00, 3000.00, 3500.00, 4000.00, 4500.00}
	baseSalary := decimal.NewFromFloat(salaryAmounts[g.rng.Intn(len(salaryAmounts))])

	incomes := make([]*models.Income, 0, months)
	currentDate := time.Date(startDate.Year(), startDate.Month(), 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < months && currentDate.Before(endDate); i++ {
		payDate := time.Date(currentDate.Year(), currentDate.Month(), salaryDayOfMonth, 9, 0, 0, 0, time.UTC)

		incomes = append(incomes, &models.Income{
			ID:          uuid.New(),
			UserID:      userID,
			Value:       baseSalary,
			Source:      models.IncomeSourceSalary,
			Frequency:   models.FrequencyMonthly,
			StartDate:   payDate,
			Description: "Monthly salary",
			CreatedAt:   payDate,
			UpdatedAt:   payDate,
		})

		// roughly one freelance gig every three months
		if g.rng.Intn(3) == 0 {
			gigDate := g.GenerateTimestamp(currentDate, currentDate.AddDate(0, 1, 0))
			gigAmount := 200.00 + g.rng.Float64()*1300.00

			incomes = append(incomes, &models.Income{
				ID:          uuid.New(),
				UserID:      userID,
				Value:       decimal.NewFromFloat(gigAmount).Round(2),
				Source:      models.IncomeSourceFreelance,
				Frequency:   models.FrequencyOneTime,
				StartDate:   gigDate,
				Description: "Freelance project",
				CreatedAt:   gigDate,
				UpdatedAt:   gigDate,
			})
		}

		currentDate = currentDate.AddDate(0, 1, 0)
	}

	return incomes
}

// GenerateInvestments generates count investment holdings started at or
// after startDate
func (g *sampleDataGenerator) GenerateInvestments(userID uuid.UUID, startDate time.Time, count int) []*models.Investment {
	types := models.AllInvestmentTypes()
	returnRates := []float64{1.5, 2.0, 3.5, 5.0, 7.0, 8.5, 10.0}

	investments := make([]*models.Investment, 0, count)
	for i := 0; i < count; i++ {
		investmentType := types[g.rng.Intn(len(types))]
		timestamp := g.GenerateTimestamp(startDate, time.Now())
		value := 500.00 + g.rng.Float64()*9500.00

		investments = append(investments, &models.Investment{
			ID:              uuid.New(),
			UserID:          userID,
			Value:           decimal.NewFromFloat(value).Round(2),
			TypeInvestments: investmentType,
			ExpectedReturn:  decimal.NewFromFloat(returnRates[g.rng.Intn(len(returnRates))]),
			StartDate:       timestamp,
			Description:     investmentType + " position",
			CreatedAt:       timestamp,
			UpdatedAt:       timestamp,
		})
	}

	return investments
}
