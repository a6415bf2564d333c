package handlers

import (
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

// IncomeHandler handles income record endpoints
type IncomeHandler struct {
	incomeRepo   repositories.IncomeRepositoryInterface
	auditService services.AuditServiceInterface
	metrics      services.MetricsRecorderInterface
}

// NewIncomeHandler creates a new income handler
func NewIncomeHandler(
	incomeRepo repositories.IncomeRepositoryInterface,
	auditService services.AuditServiceInterface,
	metrics services.MetricsRecorderInterface,
) *IncomeHandler {
	return &IncomeHandler{
		incomeRepo:   incomeRepo,
		auditService: auditService,
		metrics:      metrics,
	}
}

// ListIncomes retrieves all incomes for the authenticated user
// @Summary List incomes
// @Description Retrieve all income records for the authenticated user, newest first. An optional date range filters by start date.
// @Tags Income
// @Security BearerAuth
// @Produce json
// @Param start_date query string false "Filter range start (YYYY-MM-DD)"
// @Param end_date query string false "Filter range end (YYYY-MM-DD)"
// @Success 200 {object} dto.IncomeListResponse "Income records"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid date range"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /income [get]
func (h *IncomeHandler) ListIncomes(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	startDate, endDate, hasRange, err := parseDateRangeParams(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	var incomes []models.Income
	if hasRange {
		incomes, err = h.incomeRepo.GetByUserIDAndDateRange(userID, startDate, endDate)
	} else {
		incomes, err = h.incomeRepo.GetByUserID(userID)
	}
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.IncomeResponse, 0, len(incomes))
	for i := range incomes {
		responses = append(responses, dto.NewIncomeResponse(&incomes[i]))
	}

	return c.JSON(http.StatusOK, dto.IncomeListResponse{
		Incomes: responses,
		Total:   len(responses),
	})
}

// GetIncome retrieves a single income by ID
// @Summary Get income
// @Description Retrieve a single income record owned by the authenticated user
// @Tags Income
// @Security BearerAuth
// @Produce json
// @Param id path string true "Income ID (UUID)"
// @Success 200 {object} dto.IncomeResponse "Income record"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid income ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "INCOME_001 - Income not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /income/{id} [get]
func (h *IncomeHandler) GetIncome(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	incomeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid income ID"))
	}

	income, err := h.incomeRepo.GetByID(incomeID)
	if err != nil {
		if err == repositories.ErrIncomeNotFound {
			return SendError(c, errors.IncomeNotFound)
		}
		return SendSystemError(c, err)
	}

	if income.UserID != userID {
		return SendError(c, errors.IncomeNotFound)
	}

	return c.JSON(http.StatusOK, dto.NewIncomeResponse(income))
}

// CreateIncome records a new income
// @Summary Create income
// @Description Record a new income for the authenticated user
// @Tags Income
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateIncomeRequest true "Income details"
// @Success 201 {object} dto.IncomeResponse "Income created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or INCOME_002/INCOME_003 - Invalid payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /income [post]
func (h *IncomeHandler) CreateIncome(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateIncomeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	income, errCode := buildIncomeFromRequest(userID, req.Value, req.Source, req.Frequency, req.StartDate, req.Description)
	if errCode != "" {
		return SendError(c, errCode)
	}

	if err := h.incomeRepo.Create(income); err != nil {
		if code, ok := incomeValidationCode(err); ok {
			return SendError(c, code)
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("record.created", map[string]string{"resource": "income"})
	_ = h.auditService.LogRecordCreated(userID, "income", income.ID.String(), getClientIP(c), c.Request().UserAgent())

	return c.JSON(http.StatusCreated, dto.NewIncomeResponse(income))
}

// UpdateIncome updates an existing income
// @Summary Update income
// @Description Update an income record owned by the authenticated user
// @Tags Income
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Income ID (UUID)"
// @Param request body dto.UpdateIncomeRequest true "Updated income details"
// @Success 200 {object} dto.IncomeResponse "Income updated"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or INCOME_002/INCOME_003 - Invalid payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "INCOME_001 - Income not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /income/{id} [put]
func (h *IncomeHandler) UpdateIncome(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	incomeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid income ID"))
	}

	var req dto.UpdateIncomeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	income, err := h.incomeRepo.GetByID(incomeID)
	if err != nil {
		if err == repositories.ErrIncomeNotFound {
			return SendError(c, errors.IncomeNotFound)
		}
		return SendSystemError(c, err)
	}
	if income.UserID != userID {
		return SendError(c, errors.IncomeNotFound)
	}

	updated, errCode := buildIncomeFromRequest(userID, req.Value, req.Source, req.Frequency, req.StartDate, req.Description)
	if errCode != "" {
		return SendError(c, errCode)
	}

	income.Value = updated.Value
	income.Source = updated.Source
	income.Frequency = updated.Frequency
	income.StartDate = updated.StartDate
	income.Description = updated.Description

	if err := h.incomeRepo.Update(income); err != nil {
		if code, ok := incomeValidationCode(err); ok {
			return SendError(c, code)
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("record.updated", map[string]string{"resource": "income"})
	_ = h.auditService.LogRecordUpdated(userID, "income", income.ID.String(), getClientIP(c), c.Request().UserAgent())

	return c.JSON(http.StatusOK, dto.NewIncomeResponse(income))
}

// DeleteIncome deletes an income
// @Summary Delete income
// @Description Delete an income record owned by the authenticated user
// @Tags Income
// @Security BearerAuth
// @Produce json
// @Param id path string true "Income ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Income deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid income ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "INCOME_001 - Income not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /income/{id} [delete]
func (h *IncomeHandler) DeleteIncome(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	incomeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid income ID"))
	}

	income, err := h.incomeRepo.GetByID(incomeID)
	if err != nil {
		if err == repositories.ErrIncomeNotFound {
			return SendError(c, errors.IncomeNotFound)
		}
		return SendSystemError(c, err)
	}
	if income.UserID != userID {
		return SendError(c, errors.IncomeNotFound)
	}

	if err := h.incomeRepo.Delete(incomeID); err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("record.deleted", map[string]string{"resource": "income"})
	_ = h.auditService.LogRecordDeleted(userID, "income", incomeID.String(), getClientIP(c), c.Request().UserAgent())

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Income deleted successfully"})
}

// GetIncomeTotal returns the sum of all the user's incomes
// @Summary Total income
// @Description Return the lifetime sum of the authenticated user's income records
// @Tags Income
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.TotalResponse "Income total"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /income/total [get]
func (h *IncomeHandler) GetIncomeTotal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	total, err := h.incomeRepo.TotalByUserID(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TotalResponse{Total: total})
}

func buildIncomeFromRequest(userID uuid.UUID, value, source, frequency, startDate, description string) (*models.Income, errors.ErrorCode) {
	parsedValue, err := decimal.NewFromString(value)
	if err != nil || parsedValue.IsNegative() {
		return nil, errors.IncomeInvalidValue
	}

	if source != "" && !models.IsValidIncomeSource(source) {
		return nil, errors.IncomeInvalidSource
	}

	parsedDate, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, errors.ValidationInvalidDate
	}

	if frequency == "" {
		frequency = models.FrequencyOneTime
	}

	return &models.Income{
		UserID:      userID,
		Value:       parsedValue,
		Source:      source,
		Frequency:   frequency,
		StartDate:   parsedDate,
		Description: description,
	}, ""
}

func incomeValidationCode(err error) (errors.ErrorCode, bool) {
	switch err {
	case models.ErrInvalidValue:
		return errors.IncomeInvalidValue, true
	case models.ErrInvalidSource:
		return errors.IncomeInvalidSource, true
	case models.ErrInvalidFrequency:
		return errors.ValidationGeneral, true
	default:
		return "", false
	}
}
