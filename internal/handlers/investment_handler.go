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

// InvestmentHandler handles investment record endpoints
type InvestmentHandler struct {
	investmentRepo repositories.InvestmentRepositoryInterface
	auditService   services.AuditServiceInterface
	metrics        services.MetricsRecorderInterface
}

// NewInvestmentHandler creates a new investment handler
func NewInvestmentHandler(
	investmentRepo repositories.InvestmentRepositoryInterface,
	auditService services.AuditServiceInterface,
	metrics services.MetricsRecorderInterface,
) *InvestmentHandler {
	return &InvestmentHandler{
		investmentRepo: investmentRepo,
		auditService:   auditService,
		metrics:        metrics,
	}
}

// ListInvestments retrieves all investments for the authenticated user
// @Summary List investments
// @Description Retrieve all investment records for the authenticated user, newest first. An optional date range filters by start date.
// @Tags Investments
// @Security BearerAuth
// @Produce json
// @Param start_date query string false "Filter range start (YYYY-MM-DD)"
// @Param end_date query string false "Filter range end (YYYY-MM-DD)"
// @Success 200 {object} dto.InvestmentListResponse "Investment records"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid date range"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /investments [get]
func (h *InvestmentHandler) ListInvestments(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	startDate, endDate, hasRange, err := parseDateRangeParams(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	var investments []models.Investment
	if hasRange {
		investments, err = h.investmentRepo.GetByUserIDAndDateRange(userID, startDate, endDate)
	} else {
		investments, err = h.investmentRepo.GetByUserID(userID)
	}
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.InvestmentResponse, 0, len(investments))
	for i := range investments {
		responses = append(responses, dto.NewInvestmentResponse(&investments[i]))
	}

	return c.JSON(http.StatusOK, dto.InvestmentListResponse{
		Investments: responses,
		Total:       len(responses),
	})
}

// GetInvestment retrieves a single investment by ID
// @Summary Get investment
// @Description Retrieve a single investment record owned by the authenticated user
// @Tags Investments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Investment ID (UUID)"
// @Success 200 {object} dto.InvestmentResponse "Investment record"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid investment ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "INVESTMENT_001 - Investment not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /investments/{id} [get]
func (h *InvestmentHandler) GetInvestment(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	investmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid investment ID"))
	}

	investment, err := h.investmentRepo.GetByID(investmentID)
	if err != nil {
		if err == repositories.ErrInvestmentNotFound {
			return SendError(c, errors.InvestmentNotFound)
		}
		return SendSystemError(c, err)
	}

	if investment.UserID != userID {
		return SendError(c, errors.InvestmentNotFound)
	}

	return c.JSON(http.StatusOK, dto.NewInvestmentResponse(investment))
}

// CreateInvestment records a new investment
// @Summary Create investment
// @Description Record a new investment holding for the authenticated user
// @Tags Investments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateInvestmentRequest true "Investment details"
// @Success 201 {object} dto.InvestmentResponse "Investment created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or INVESTMENT_002/003/004 - Invalid payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /investments [post]
func (h *InvestmentHandler) CreateInvestment(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateInvestmentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	investment, errCode := buildInvestmentFromRequest(userID, req.Value, req.TypeInvestments, req.ExpectedReturn, req.StartDate, req.EndDate, req.Description)
	if errCode != "" {
		return SendError(c, errCode)
	}

	if err := h.investmentRepo.Create(investment); err != nil {
		if code, ok := investmentValidationCode(err); ok {
			return SendError(c, code)
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("record.created", map[string]string{"resource": "investment"})
	_ = h.auditService.LogRecordCreated(userID, "investment", investment.ID.String(), getClientIP(c), c.Request().UserAgent())

	return c.JSON(http.StatusCreated, dto.NewInvestmentResponse(investment))
}

// UpdateInvestment updates an existing investment
// @Summary Update investment
// @Description Update an investment record owned by the authenticated user
// @Tags Investments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Investment ID (UUID)"
// @Param request body dto.UpdateInvestmentRequest true "Updated investment details"
// @Success 200 {object} dto.InvestmentResponse "Investment updated"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or INVESTMENT_002/003/004 - Invalid payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "INVESTMENT_001 - Investment not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /investments/{id} [put]
func (h *InvestmentHandler) UpdateInvestment(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	investmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid investment ID"))
	}

	var req dto.UpdateInvestmentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	investment, err := h.investmentRepo.GetByID(investmentID)
	if err != nil {
		if err == repositories.ErrInvestmentNotFound {
			return SendError(c, errors.InvestmentNotFound)
		}
		return SendSystemError(c, err)
	}
	if investment.UserID != userID {
		return SendError(c, errors.InvestmentNotFound)
	}

	updated, errCode := buildInvestmentFromRequest(userID, req.Value, req.TypeInvestments, req.ExpectedReturn, req.StartDate, req.EndDate, req.Description)
	if errCode != "" {
		return SendError(c, errCode)
	}

	investment.Value = updated.Value
	investment.TypeInvestments = updated.TypeInvestments
	investment.ExpectedReturn = updated.ExpectedReturn
	investment.StartDate = updated.StartDate
	investment.EndDate = updated.EndDate
	investment.Description = updated.Description

	if err := h.investmentRepo.Update(investment); err != nil {
		if code, ok := investmentValidationCode(err); ok {
			return SendError(c, code)
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("record.updated", map[string]string{"resource": "investment"})
	_ = h.auditService.LogRecordUpdated(userID, "investment", investment.ID.String(), getClientIP(c), c.Request().UserAgent())

	return c.JSON(http.StatusOK, dto.NewInvestmentResponse(investment))
}

// DeleteInvestment deletes an investment
// @Summary Delete investment
// @Description Delete an investment record owned by the authenticated user
// @Tags Investments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Investment ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Investment deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid investment ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "INVESTMENT_001 - Investment not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /investments/{id} [delete]
func (h *InvestmentHandler) DeleteInvestment(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	investmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid investment ID"))
	}

	investment, err := h.investmentRepo.GetByID(investmentID)
	if err != nil {
		if err == repositories.ErrInvestmentNotFound {
			return SendError(c, errors.InvestmentNotFound)
		}
		return SendSystemError(c, err)
	}
	if investment.UserID != userID {
		return SendError(c, errors.InvestmentNotFound)
	}

	if err := h.investmentRepo.Delete(investmentID); err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("record.deleted", map[string]string{"resource": "investment"})
	_ = h.auditService.LogRecordDeleted(userID, "investment", investmentID.String(), getClientIP(c), c.Request().UserAgent())

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Investment deleted successfully"})
}

// GetInvestmentTotal returns the sum of all the user's investments
// @Summary Total investments
// @Description Return the lifetime sum of the authenticated user's investment values
// @Tags Investments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.TotalResponse "Investment total"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /investments/total [get]
func (h *InvestmentHandler) GetInvestmentTotal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	total, err := h.investmentRepo.TotalByUserID(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TotalResponse{Total: total})
}

func buildInvestmentFromRequest(userID uuid.UUID, value, investmentType, expectedReturn, startDate, endDate, description string) (*models.Investment, errors.ErrorCode) {
	parsedValue, err := decimal.NewFromString(value)
	if err != nil || parsedValue.IsNegative() {
		return nil, errors.InvestmentInvalidValue
	}

	if investmentType != "" && !models.IsValidInvestmentType(investmentType) {
		return nil, errors.InvestmentInvalidType
	}

	parsedReturn := decimal.Zero
	if expectedReturn != "" {
		parsedReturn, err = decimal.NewFromString(expectedReturn)
		if err != nil || parsedReturn.IsNegative() {
			return nil, errors.InvestmentInvalidReturn
		}
	}

	parsedStart, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, errors.ValidationInvalidDate
	}

	var parsedEnd *time.Time
	if endDate != "" {
		end, err := time.Parse("2006-01-02", endDate)
		if err != nil || !end.After(parsedStart) {
			return nil, errors.ValidationInvalidDate
		}
		parsedEnd = &end
	}

	return &models.Investment{
		UserID:          userID,
		Value:           parsedValue,
		TypeInvestments: investmentType,
		ExpectedReturn:  parsedReturn,
		StartDate:       parsedStart,
		EndDate:         parsedEnd,
		Description:     description,
	}, ""
}

func investmentValidationCode(err error) (errors.ErrorCode, bool) {
	switch err {
	case models.ErrInvalidValue:
		return errors.InvestmentInvalidValue, true
	case models.ErrInvalidInvestmentType:
		return errors.InvestmentInvalidType, true
	case models.ErrInvalidReturnRate:
		return errors.InvestmentInvalidReturn, true
	case models.ErrEndBeforeStart:
		return errors.ValidationInvalidDate, true
	default:
		return "", false
	}
}
