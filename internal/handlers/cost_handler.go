package handlers

import (
	"fmt"
	"net/http"
	"time"

	"domus-api/internal/dto"
	"domus-api/internal/errors"
	"domus-api/internal/models"
	"domus-api/internal/repositories"
	"domus-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CostHandler handles expense record endpoints
type CostHandler struct {
	costRepo     repositories.CostRepositoryInterface
	auditService services.AuditServiceInterface
	metrics      services.MetricsRecorderInterface
}

// NewCostHandler creates a new cost handler
func NewCostHandler(
	costRepo repositories.CostRepositoryInterface,
	auditService services.AuditServiceInterface,
	metrics services.MetricsRecorderInterface,
) *CostHandler {
	return &CostHandler{
		costRepo:     costRepo,
		auditService: auditService,
		metrics:      metrics,
	}
}

// ListCosts retrieves all expenses for the authenticated user
// @Summary List costs
// @Description Retrieve all expense records for the authenticated user, newest first. An optional date range filters by start date.
// @Tags Costs
// @Security BearerAuth
// @Produce json
// @Param start_date query string false "Filter range start (YYYY-MM-DD)"
// @Param end_date query string false "Filter range end (YYYY-MM-DD)"
// @Success 200 {object} dto.CostListResponse "Expense records"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid date range"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /costs [get]
func (h *CostHandler) ListCosts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	startDate, endDate, hasRange, err := parseDateRangeParams(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	var costs []models.Cost
	if hasRange {
		costs, err = h.costRepo.GetByUserIDAndDateRange(userID, startDate, endDate)
	} else {
		costs, err = h.costRepo.GetByUserID(userID)
	}
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.CostResponse, 0, len(costs))
	for i := range costs {
		responses = append(responses, dto.NewCostResponse(&costs[i]))
	}

	return c.JSON(http.StatusOK, dto.CostListResponse{
		Costs: responses,
		Total: len(responses),
	})
}

// GetCost retrieves a single expense by ID
// @Summary Get cost
// @Description Retrieve a single expense record owned by the authenticated user
// @Tags Costs
// @Security BearerAuth
// @Produce json
// @Param id path string true "Cost ID (UUID)"
// @Success 200 {object} dto.CostResponse "Expense record"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid cost ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "COST_001 - Cost not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /costs/{id} [get]
func (h *CostHandler) GetCost(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	costID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid cost ID"))
	}

	cost, err := h.costRepo.GetByID(costID)
	if err != nil {
		if err == repositories.ErrCostNotFound {
			return SendError(c, errors.CostNotFound)
		}
		return SendSystemError(c, err)
	}

	// Hide other users' records behind a 404
	if cost.UserID != userID {
		return SendError(c, errors.CostNotFound)
	}

	return c.JSON(http.StatusOK, dto.NewCostResponse(cost))
}

// CreateCost records a new expense
// @Summary Create cost
// @Description Record a new expense for the authenticated user
// @Tags Costs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCostRequest true "Expense details"
// @Success 201 {object} dto.CostResponse "Expense created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or COST_002/COST_003 - Invalid payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /costs [post]
func (h *CostHandler) CreateCost(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateCostRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	cost, errCode := buildCostFromRequest(userID, req.Value, req.Category, req.Frequency, req.DurationInMonths, req.StartDate, req.Description)
	if errCode != "" {
		return SendError(c, errCode)
	}

	if err := h.costRepo.Create(cost); err != nil {
		if code, ok := costValidationCode(err); ok {
			return SendError(c, code)
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("record.created", map[string]string{"resource": "cost"})
	_ = h.auditService.LogRecordCreated(userID, "cost", cost.ID.String(), getClientIP(c), c.Request().UserAgent())

	return c.JSON(http.StatusCreated, dto.NewCostResponse(cost))
}

// UpdateCost updates an existing expense
// @Summary Update cost
// @Description Update an expense record owned by the authenticated user
// @Tags Costs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Cost ID (UUID)"
// @Param request body dto.UpdateCostRequest true "Updated expense details"
// @Success 200 {object} dto.CostResponse "Expense updated"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or COST_002/COST_003 - Invalid payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "COST_001 - Cost not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /costs/{id} [put]
func (h *CostHandler) UpdateCost(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	costID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid cost ID"))
	}

	var req dto.UpdateCostRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	cost, err := h.costRepo.GetByID(costID)
	if err != nil {
		if err == repositories.ErrCostNotFound {
			return SendError(c, errors.CostNotFound)
		}
		return SendSystemError(c, err)
	}
	if cost.UserID != userID {
		return SendError(c, errors.CostNotFound)
	}

	updated, errCode := buildCostFromRequest(userID, req.Value, req.Category, req.Frequency, req.DurationInMonths, req.StartDate, req.Description)
	if errCode != "" {
		return SendError(c, errCode)
	}

	cost.Value = updated.Value
	cost.Category = updated.Category
	cost.Frequency = updated.Frequency
	cost.DurationInMonths = updated.DurationInMonths
	cost.StartDate = updated.StartDate
	cost.Description = updated.Description

	if err := h.costRepo.Update(cost); err != nil {
		if code, ok := costValidationCode(err); ok {
			return SendError(c, code)
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("record.updated", map[string]string{"resource": "cost"})
	_ = h.auditService.LogRecordUpdated(userID, "cost", cost.ID.String(), getClientIP(c), c.Request().UserAgent())

	return c.JSON(http.StatusOK, dto.NewCostResponse(cost))
}

// DeleteCost deletes an expense
// @Summary Delete cost
// @Description Delete an expense record owned by the authenticated user
// @Tags Costs
// @Security BearerAuth
// @Produce json
// @Param id path string true "Cost ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Expense deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid cost ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "COST_001 - Cost not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /costs/{id} [delete]
func (h *CostHandler) DeleteCost(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	costID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid cost ID"))
	}

	cost, err := h.costRepo.GetByID(costID)
	if err != nil {
		if err == repositories.ErrCostNotFound {
			return SendError(c, errors.CostNotFound)
		}
		return SendSystemError(c, err)
	}
	if cost.UserID != userID {
		return SendError(c, errors.CostNotFound)
	}

	if err := h.costRepo.Delete(costID); err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("record.deleted", map[string]string{"resource": "cost"})
	_ = h.auditService.LogRecordDeleted(userID, "cost", costID.String(), getClientIP(c), c.Request().UserAgent())

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Cost deleted successfully"})
}

// GetCostTotal returns the sum of all the user's expenses
// @Summary Total costs
// @Description Return the lifetime sum of the authenticated user's expenses
// @Tags Costs
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.TotalResponse "Expense total"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /costs/total [get]
func (h *CostHandler) GetCostTotal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	total, err := h.costRepo.TotalByUserID(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TotalResponse{Total: total})
}

// buildCostFromRequest parses and validates the request fields into a model.
// Returns an empty error code on success.
func buildCostFromRequest(userID uuid.UUID, value, category, frequency string, duration int, startDate, description string) (*models.Cost, errors.ErrorCode) {
	parsedValue, err := decimal.NewFromString(value)
	if err != nil || parsedValue.IsNegative() {
		return nil, errors.CostInvalidValue
	}

	if category != "" && !models.IsValidCostCategory(category) {
		return nil, errors.CostInvalidCategory
	}

	parsedDate, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, errors.ValidationInvalidDate
	}

	if frequency == "" {
		frequency = models.FrequencyOneTime
	}
	if duration == 0 {
		duration = 1
	}

	return &models.Cost{
		UserID:           userID,
		Value:            parsedValue,
		Category:         category,
		Frequency:        frequency,
		DurationInMonths: duration,
		StartDate:        parsedDate,
		Description:      description,
	}, ""
}

// costValidationCode maps model validation errors onto API error codes
func costValidationCode(err error) (errors.ErrorCode, bool) {
	switch err {
	case models.ErrInvalidValue:
		return errors.CostInvalidValue, true
	case models.ErrInvalidCategory:
		return errors.CostInvalidCategory, true
	case models.ErrInvalidFrequency, models.ErrInvalidDuration:
		return errors.ValidationGeneral, true
	default:
		return "", false
	}
}

// parseDateRangeParams reads the optional start_date/end_date query pair.
// Both must be present for a range to apply.
func parseDateRangeParams(c echo.Context) (time.Time, time.Time, bool, error) {
	startRaw := c.QueryParam("start_date")
	endRaw := c.QueryParam("end_date")

	if startRaw == "" && endRaw == "" {
		return time.Time{}, time.Time{}, false, nil
	}

	start, err := time.Parse("2006-01-02", startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("start_date: must be YYYY-MM-DD")
	}

	end, err := time.Parse("2006-01-02", endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("end_date: must be YYYY-MM-DD")
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, false, fmt.Errorf("end_date: must not be before start_date")
	}

	// Include the whole end day
	return start, end.Add(24*time.Hour - time.Nanosecond), true, nil
}
