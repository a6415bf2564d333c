package models

// Cost categories matching the fixed set offered by the expense form
const (
	CostCategoryFoodDining     = "Food & Dining"
	CostCategoryTransportation = "Transportation"
	CostCategoryShopping       = "Shopping"
	CostCategoryEntertainment  = "Entertainment"
	CostCategoryBillsUtilities = "Bills & Utilities"
	CostCategoryHealthcare     = "Healthcare"
	CostCategoryEducation      = "Education"
	CostCategoryOther          = "Other"
)

// Income sources
const (
	IncomeSourceSalary     = "Salary"
	IncomeSourceFreelance  = "Freelance"
	IncomeSourceBonus      = "Bonus"
	IncomeSourceInvestment = "Investment"
	IncomeSourceGift       = "Gift"
	IncomeSourceOther      = "Other"
)

// Investment types
const (
	InvestmentTypeStocks      = "Stocks"
	InvestmentTypeBonds       = "Bonds"
	InvestmentTypeRealEstate  = "Real Estate"
	InvestmentTypeCrypto      = "Crypto"
	InvestmentTypeMutualFunds = "Mutual Funds"
	InvestmentTypeETF         = "ETF"
	InvestmentTypeSavings     = "Savings"
	InvestmentTypeOther       = "Other"
)

// Recurrence frequencies
const (
	FrequencyOneTime = "One-time"
	FrequencyMonthly = "Monthly"
)

// AllCostCategories returns all valid cost categories
func AllCostCategories() []string {
	return []string{
		CostCategoryFoodDining,
		CostCategoryTransportation,
		CostCategoryShopping,
		CostCategoryEntertainment,
		CostCategoryBillsUtilities,
		CostCategoryHealthcare,
		CostCategoryEducation,
		CostCategoryOther,
	}
}

// AllIncomeSources returns all valid income sources
func AllIncomeSources() []string {
	return []string{
		IncomeSourceSalary,
		IncomeSourceFreelance,
		IncomeSourceBonus,
		IncomeSourceInvestment,
		IncomeSourceGift,
		IncomeSourceOther,
	}
}

// AllInvestmentTypes returns all valid investment types
func AllInvestmentTypes() []string {
	return []string{
		InvestmentTypeStocks,
		InvestmentTypeBonds,
		InvestmentTypeRealEstate,
		InvestmentTypeCrypto,
		InvestmentTypeMutualFunds,
		InvestmentTypeETF,
		InvestmentTypeSavings,
		InvestmentTypeOther,
	}
}

// IsValidCostCategory checks if a category string is valid
func IsValidCostCategory(category string) bool {
	for _, valid := range AllCostCategories() {
		if category == valid {
			return true
		}
	}
	return false
}

// IsValidIncomeSource checks if a source string is valid
func IsValidIncomeSource(source string) bool {
	for _, valid := range AllIncomeSources() {
		if source == valid {
			return true
		}
	}
	return false
}

// IsValidInvestmentType checks if an investment type string is valid
func IsValidInvestmentType(investmentType string) bool {
	for _, valid := range AllInvestmentTypes() {
		if investmentType == valid {
			return true
		}
	}
	return false
}

// IsValidFrequency checks if a frequency string is valid
func IsValidFrequency(frequency string) bool {
	switch frequency {
	case FrequencyOneTime, FrequencyMonthly:
		return true
	default:
		return false
	}
}
