package dto

import "domus-api/internal/models"

// Dashboard Request DTOs

// MonthlySummaryQuery selects the month for the KPI drill-down
type MonthlySummaryQuery struct {
	Month string `query:"month" validate:"required,datetime=2006-01"`
}

// YearlyProjectionQuery optionally narrows the yearly series to one year
type YearlyProjectionQuery struct {
	Year int `query:"year" validate:"omitempty,min=1970,max=2100"`
}

// Dashboard Response DTOs

// DashboardSummaryResponse wraps the derived dashboard view-model
type DashboardSummaryResponse struct {
	*models.DashboardSummary
}

// MonthlySummaryResponse wraps the single-month KPI drill-down
type MonthlySummaryResponse struct {
	*models.MonthlySummary
}

// ProjectionResponse represents a time-bucketed projection series
type ProjectionResponse struct {
	Projection []models.ProjectionPoint `json:"projection"`
}
