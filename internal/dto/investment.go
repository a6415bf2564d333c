package dto

import (
	"time"

	"domus-api/internal/models"
)

// Investment Request DTOs

// CreateInvestmentRequest represents the request payload for recording an investment
type CreateInvestmentRequest struct {
	Value           string `json:"value" validate:"required"`
	TypeInvestments string `json:"typeInvestments" validate:"omitempty,max=100"`
	ExpectedReturn  string `json:"expectedReturn" validate:"omitempty"`
	StartDate       string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate         string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Description     string `json:"description" validate:"omitempty,max=255"`
}

// UpdateInvestmentRequest represents the request payload for updating an investment
type UpdateInvestmentRequest struct {
	Value           string `json:"value" validate:"required"`
	TypeInvestments string `json:"typeInvestments" validate:"omitempty,max=100"`
	ExpectedReturn  string `json:"expectedReturn" validate:"omitempty"`
	StartDate       string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate         string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Description     string `json:"description" validate:"omitempty,max=255"`
}

// Investment Response DTOs

// InvestmentResponse represents a single investment in API responses
type InvestmentResponse struct {
	ID              string    `json:"id"`
	Value           string    `json:"value"`
	TypeInvestments string    `json:"typeInvestments,omitempty"`
	ExpectedReturn  string    `json:"expectedReturn"`
	ExpectedGain    string    `json:"expectedGain"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate,omitempty"`
	Description     string    `json:"description,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// InvestmentListResponse represents the list of a user's investments
type InvestmentListResponse struct {
	Investments []InvestmentResponse `json:"investments"`
	Total       int                  `json:"total"`
}

// NewInvestmentResponse converts an investment model into its API representation
func NewInvestmentResponse(investment *models.Investment) InvestmentResponse {
	resp := InvestmentResponse{
		ID:              investment.ID.String(),
		Value:           investment.Value.StringFixed(2),
		TypeInvestments: investment.TypeInvestments,
		ExpectedReturn:  investment.ExpectedReturn.String(),
		ExpectedGain:    investment.ExpectedGain().StringFixed(2),
		StartDate:       investment.StartDate.Format("2006-01-02"),
		Description:     investment.Description,
		CreatedAt:       investment.CreatedAt,
		UpdatedAt:       investment.UpdatedAt,
	}

	if investment.EndDate != nil {
		resp.EndDate = investment.EndDate.Format("2006-01-02")
	}

	return resp
}
