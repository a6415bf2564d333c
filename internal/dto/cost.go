package dto

import (
	"time"

	"domus-api/internal/models"

	"github.com/shopspring/decimal"
)

// Cost Request DTOs

// CreateCostRequest represents the request payload for recording an expense
type CreateCostRequest struct {
	Value            string `json:"value" validate:"required"`
	Category         string `json:"category" validate:"omitempty,max=100"`
	Frequency        string `json:"frequency" validate:"omitempty,oneof=One-time Monthly"`
	DurationInMonths int    `json:"durationInMonths" validate:"omitempty,min=1,max=600"`
	StartDate        string `json:"startDate" validate:"required,datetime=2006-01-02"`
	Description      string `json:"description" validate:"omitempty,max=255"`
}

// UpdateCostRequest represents the request payload for updating an expense
type UpdateCostRequest struct {
	Value            string `json:"value" validate:"required"`
	Category         string `json:"category" validate:"omitempty,max=100"`
	Frequency        string `json:"frequency" validate:"omitempty,oneof=One-time Monthly"`
	DurationInMonths int    `json:"durationInMonths" validate:"omitempty,min=1,max=600"`
	StartDate        string `json:"startDate" validate:"required,datetime=2006-01-02"`
	Description      string `json:"description" validate:"omitempty,max=255"`
}

// Cost Response DTOs

// CostResponse represents a single expense in API responses
type CostResponse struct {
	ID               string    `json:"id"`
	Value            string    `json:"value"`
	Category         string    `json:"category,omitempty"`
	Frequency        string    `json:"frequency"`
	DurationInMonths int       `json:"durationInMonths"`
	StartDate        string    `json:"startDate"`
	Description      string    `json:"description,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// CostListResponse represents the list of a user's expenses
type CostListResponse struct {
	Costs []CostResponse `json:"costs"`
	Total int            `json:"total"`
}

// TotalResponse represents an aggregate sum over a collection
type TotalResponse struct {
	Total decimal.Decimal `json:"total"`
}

// NewCostResponse converts a cost model into its API representation
func NewCostResponse(cost *models.Cost) CostResponse {
	return CostResponse{
		ID:               cost.ID.String(),
		Value:            cost.Value.StringFixed(2),
		Category:         cost.Category,
		Frequency:        cost.Frequency,
		DurationInMonths: cost.DurationInMonths,
		StartDate:        cost.StartDate.Format("2006-01-02"),
		Description:      cost.Description,
		CreatedAt:        cost.CreatedAt,
		UpdatedAt:        cost.UpdatedAt,
	}
}
