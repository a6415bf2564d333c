package handlers

import (
	"net/http"

	"domus-api/internal/dto"
	"domus-api/internal/errors"
	"domus-api/internal/repositories"
	"domus-api/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ProfileHandler handles the authenticated user's profile endpoints
type ProfileHandler struct {
	userRepo        repositories.UserRepositoryInterface
	passwordService services.PasswordServiceInterface
	auditService    services.AuditServiceInterface
	userLogger      services.UserLoggerInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(
	userRepo repositories.UserRepositoryInterface,
	passwordService services.PasswordServiceInterface,
	auditService services.AuditServiceInterface,
	userLogger services.UserLoggerInterface,
) *ProfileHandler {
	return &ProfileHandler{
		userRepo:        userRepo,
		passwordService: passwordService,
		auditService:    auditService,
		userLogger:      userLogger,
	}
}

// GetProfile returns the authenticated user's profile
// @Summary Get profile
// @Description Retrieve the authenticated user's profile including the monthly spending goal
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UserProfileResponse "User profile"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	user, err := h.userRepo.GetByIDActive(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.UserProfileResponse{
		ID:           user.ID.String(),
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Role:         user.Role,
		SpendingGoal: user.SpendingGoal.StringFixed(2),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	})
}

// UpdatePassword changes the authenticated user's password
// @Summary Update password
// @Description Change the authenticated user's password after verifying the current one
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{currentPassword=string,newPassword=string} true "Password change"
// @Success 200 {object} dto.MessageResponse "Password updated"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Weak password or same as current"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Current password is incorrect"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /profile/password [put]
func (h *ProfileHandler) UpdatePassword(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req struct {
		CurrentPassword string `json:"currentPassword" validate:"required"`
		NewPassword     string `json:"newPassword" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.passwordService.UserUpdatePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		switch err {
		case services.ErrCurrentPasswordWrong:
			return SendError(c, errors.AuthInvalidCredentials)
		case services.ErrUserNotFound:
			return SendError(c, errors.UserNotFound)
		case services.ErrSamePassword:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		default:
			if validationErr := h.passwordService.ValidatePassword(req.NewPassword); validationErr != nil {
				return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationErr.Error()))
			}
			return SendSystemError(c, err)
		}
	}

	h.userLogger.LogPasswordChanged(c.Request().Context(), userID)
	_ = h.auditService.LogPasswordUpdate(userID, getClientIP(c), c.Request().UserAgent())

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated successfully"})
}

// GetSpendingGoal returns the user's monthly spending goal
// @Summary Get spending goal
// @Description Retrieve the authenticated user's monthly spending goal
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.SpendingGoalResponse "Spending goal"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /profile/spending-goal [get]
func (h *ProfileHandler) GetSpendingGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	user, err := h.userRepo.GetByIDActive(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SpendingGoalResponse{
		SpendingGoal: user.SpendingGoal.StringFixed(2),
	})
}

// UpdateSpendingGoal sets the user's monthly spending goal
// @Summary Update spending goal
// @Description Set the authenticated user's monthly spending goal to a non-negative amount
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateSpendingGoalRequest true "New spending goal"
// @Success 200 {object} dto.SpendingGoalResponse "Updated spending goal"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid goal amount"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /profile/spending-goal [put]
func (h *ProfileHandler) UpdateSpendingGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.UpdateSpendingGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	newGoal, err := decimal.NewFromString(req.SpendingGoal)
	if err != nil || newGoal.IsNegative() {
		return SendError(c, errors.ValidationGeneral,
			errors.WithDetails("spendingGoal: must be a non-negative amount"))
	}

	user, err := h.userRepo.GetByIDActive(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	oldGoal := user.SpendingGoal
	if err := h.userRepo.UpdateFields(userID, map[string]interface{}{"spending_goal": newGoal}); err != nil {
		return SendSystemError(c, err)
	}

	h.userLogger.LogSpendingGoalUpdated(c.Request().Context(), userID, oldGoal.String(), newGoal.String())
	_ = h.auditService.LogSpendingGoalUpdated(userID, oldGoal, newGoal, getClientIP(c), c.Request().UserAgent())

	return c.JSON(http.StatusOK, dto.SpendingGoalResponse{
		SpendingGoal: newGoal.StringFixed(2),
	})
}
