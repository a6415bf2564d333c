package dto

import (
	"time"

	"domus-api/internal/models"
)

// Income Request DTOs

// CreateIncomeRequest represents the request payload for recording an income
type CreateIncomeRequest struct {
	Value       string `json:"value" validate:"required"`
	Source      string `json:"source" validate:"omitempty,max=100"`
	Frequency   string `json:"frequency" validate:"omitempty,oneof=One-time Monthly"`
	StartDate   string `json:"startDate" validate:"required,datetime=2006-01-02"`
	Description string `json:"description" validate:"omitempty,max=255"`
}

// UpdateIncomeRequest represents the request payload for updating an income
type UpdateIncomeRequest struct {
	Value       string `json:"value" validate:"required"`
	Source      string `json:"source" validate:"omitempty,max=100"`
	Frequency   string `json:"frequency" validate:"omitempty,oneof=One-time Monthly"`
	StartDate   string `json:"startDate" validate:"required,datetime=2006-01-02"`
	Description string `json:"description" validate:"omitempty,max=255"`
}

// Income Response DTOs

// IncomeResponse represents a single income in API responses
type IncomeResponse struct {
	ID          string    `json:"id"`
	Value       string    `json:"value"`
	Source      string    `json:"source,omitempty"`
	Frequency   string    `json:"frequency"`
	StartDate   string    `json:"startDate"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IncomeListResponse represents the list of a user's incomes
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
	Total   int              `json:"total"`
}

// NewIncomeResponse converts an income model into its API representation
func NewIncomeResponse(income *models.Income) IncomeResponse {
	return IncomeResponse{
		ID:          income.ID.String(),
		Value:       income.Value.StringFixed(2),
		Source:      income.Source,
		Frequency:   income.Frequency,
		StartDate:   income.StartDate.Format("2006-01-02"),
		Description: income.Description,
		CreatedAt:   income.CreatedAt,
		UpdatedAt:   income.UpdatedAt,
	}
}
