package handlers

import (
	"net/http"
	"strconv"

	"domus-api/internal/dto"
	"domus-api/internal/errors"
	"domus-api/internal/models"
	"domus-api/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler handles aggregated dashboard endpoints
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetSummary returns the full dashboard view-model
// @Summary Dashboard summary
// @Description Compute KPIs, expense category totals, and the investment allocation for the authenticated user
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.DashboardSummaryResponse "Dashboard summary"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "DASHBOARD_002 - Aggregation failed"
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	summary, err := h.dashboardService.GetSummary(c.Request().Context(), userID)
	if err != nil {
		return SendError(c, errors.DashboardAggregationError)
	}

	return c.JSON(http.StatusOK, dto.DashboardSummaryResponse{DashboardSummary: summary})
}

// GetMonthlySummary returns KPIs restricted to a single month
// @Summary Monthly summary
// @Description Compute KPIs over only the records dated within the given month
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param month query string true "Month in YYYY-MM format"
// @Success 200 {object} dto.MonthlySummaryResponse "Monthly summary"
// @Failure 400 {object} errors.ErrorResponse "DASHBOARD_001 - Invalid month"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "DASHBOARD_002 - Aggregation failed"
// @Router /dashboard/summary/monthly [get]
func (h *DashboardHandler) GetMonthlySummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.MonthlySummaryQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.DashboardInvalidPeriod)
	}
	if err := c.Validate(query); err != nil {
		return SendError(c, errors.DashboardInvalidPeriod)
	}

	summary, err := h.dashboardService.GetMonthlySummary(c.Request().Context(), userID, query.Month)
	if err != nil {
		if err == services.ErrInvalidMonth {
			return SendError(c, errors.DashboardInvalidPeriod)
		}
		return SendError(c, errors.DashboardAggregationError)
	}

	return c.JSON(http.StatusOK, dto.MonthlySummaryResponse{MonthlySummary: summary})
}

// GetMonthlyProjection returns the month-bucketed projection series
// @Summary Monthly projection
// @Description Bucket the user's records into YYYY-MM periods and return the chronological series
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ProjectionResponse "Month-bucketed projection"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "DASHBOARD_002 - Aggregation failed"
// @Router /dashboard/projection/monthly [get]
func (h *DashboardHandler) GetMonthlyProjection(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	points, err := h.dashboardService.GetMonthlyProjection(c.Request().Context(), userID)
	if err != nil {
		return SendError(c, errors.DashboardAggregationError)
	}

	return c.JSON(http.StatusOK, dto.ProjectionResponse{Projection: points})
}

// GetYearlyProjection returns the year-bucketed projection series
// @Summary Yearly projection
// @Description Bucket the user's records into YYYY periods and return the chronological series
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param year query int false "Restrict the series to a single year"
// @Success 200 {object} dto.ProjectionResponse "Year-bucketed projection"
// @Failure 400 {object} errors.ErrorResponse "DASHBOARD_001 - Invalid year"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "DASHBOARD_002 - Aggregation failed"
// @Router /dashboard/projection/yearly [get]
func (h *DashboardHandler) GetYearlyProjection(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.YearlyProjectionQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.DashboardInvalidPeriod)
	}
	if err := c.Validate(query); err != nil {
		return SendError(c, errors.DashboardInvalidPeriod)
	}

	points, err := h.dashboardService.GetYearlyProjection(c.Request().Context(), userID)
	if err != nil {
		return SendError(c, errors.DashboardAggregationError)
	}

	if query.Year != 0 {
		period := strconv.Itoa(query.Year)
		filtered := make([]models.ProjectionPoint, 0, 1)
		for _, p := range points {
			if p.Period == period {
				filtered = append(filtered, p)
			}
		}
		points = filtered
	}

	return c.JSON(http.StatusOK, dto.ProjectionResponse{Projection: points})
}
