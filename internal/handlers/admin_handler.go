package handlers

import (
	"net/http"
	"time"

	"domus-api/internal/errors"
	"domus-api/internal/models"
	"domus-api/internal/repositories"
	"domus-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AdminHandler handles admin-related endpoints
type AdminHandler struct {
	userRepo      repositories.UserRepositoryInterface
	auditRepo     repositories.AuditLogRepositoryInterface
	searchService services.UserSearchServiceInterface
	auditService  services.AuditServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	userRepo repositories.UserRepositoryInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
	searchService services.UserSearchServiceInterface,
	auditService services.AuditServiceInterface,
) *AdminHandler {
	return &AdminHandler{
		userRepo:      userRepo,
		auditRepo:     auditRepo,
		searchService: searchService,
		auditService:  auditService,
	}
}

// UnlockUser unlocks a user account
// @Summary Unlock user account (admin)
// @Description Admin endpoint to unlock a locked user account
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} SuccessResponse "User unlocked successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid user ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin role"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/users/{userId}/unlock [post]
func (h *AdminHandler) UnlockUser(c echo.Context) error {
	userIDParam := c.Param("userId")

	userID, err := uuid.Parse(userIDParam)
	if err != nil {
		return SendError(c, errors.UserInvalidID, errors.WithDetails("User ID must be a valid UUID"))
	}

	user, err := h.userRepo.GetByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	if err := h.userRepo.UnlockAccount(userID); err != nil {
		return SendSystemError(c, err)
	}

	adminID := c.Get("user_id").(uuid.UUID)
	h.createAuditLog(adminID, "admin_unlock_user", user.ID.String(), c)

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "User account unlocked successfully",
		Data: map[string]interface{}{
			"user_id": user.ID,
			"email":   user.Email,
		},
	})
}

// ListUsers lists all users with pagination
// @Summary List all users (admin)
// @Description Admin endpoint to list all users with pagination
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Success 200 {object} SuccessResponse "Users retrieved successfully with pagination metadata"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid pagination parameters"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin role"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page := getIntParam(c, "page", 1)
	limit := getIntParam(c, "limit", 20)

	if page < 1 {
		return SendError(c, errors.ValidationGeneral,
			errors.WithDetails("page: must be greater than 0"))
	}
	if limit < 1 || limit > 100 {
		return SendError(c, errors.ValidationGeneral,
			errors.WithDetails("limit: must be between 1 and 100"))
	}

	offset := (page - 1) * limit

	users, total, err := h.userRepo.ListUsers(offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	sanitizedUsers := make([]map[string]interface{}, len(users))
	for i, user := range users {
		sanitizedUsers[i] = map[string]interface{}{
			"id":         user.ID,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"role":       user.Role,
			"is_locked":  user.IsLocked(),
			"created_at": user.CreatedAt,
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: sanitizedUsers,
		Meta: map[string]interface{}{
			"total":       total,
			"page":        page,
			"limit":       limit,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// GetUserByID retrieves a specific user by ID
// @Summary Get user by ID (admin)
// @Description Admin endpoint to retrieve detailed user information
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} SuccessResponse "User retrieved successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid user ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin role"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/users/{userId} [get]
func (h *AdminHandler) GetUserByID(c echo.Context) error {
	userIDParam := c.Param("userId")

	userID, err := uuid.Parse(userIDParam)
	if err != nil {
		return SendError(c, errors.UserInvalidID, errors.WithDetails("User ID must be a valid UUID"))
	}

	user, err := h.userRepo.GetByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: map[string]interface{}{
			"id":                    user.ID,
			"email":                 user.Email,
			"first_name":            user.FirstName,
			"last_name":             user.LastName,
			"role":                  user.Role,
			"is_locked":             user.IsLocked(),
			"failed_login_attempts": user.FailedLoginAttempts,
			"locked_at":             user.LockedAt,
			"created_at":            user.CreatedAt,
			"updated_at":            user.UpdatedAt,
		},
	})
}

// DeleteUser soft deletes a user
// @Summary Delete user (admin)
// @Description Admin endpoint to soft delete a user. Cannot delete own account.
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} SuccessResponse "User deleted successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid user ID or cannot delete own account"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin role"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/users/{userId} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	userIDParam := c.Param("userId")

	userID, err := uuid.Parse(userIDParam)
	if err != nil {
		return SendError(c, errors.UserInvalidID, errors.WithDetails("User ID must be a valid UUID"))
	}

	adminID := c.Get("user_id").(uuid.UUID)
	if adminID == userID {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Cannot delete your own account"))
	}

	user, err := h.userRepo.GetByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	if err := h.userRepo.Delete(userID); err != nil {
		return SendSystemError(c, err)
	}

	h.createAuditLog(adminID, "admin_delete_user", user.ID.String(), c)

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "User deleted successfully",
	})
}

// SearchUsers searches users by name or email
// @Summary Search users (admin)
// @Description Admin endpoint to search users by first name, last name, full name, or email
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param q query string true "Search query"
// @Param type query string true "Search type" Enums(first_name, last_name, name, email)
// @Param offset query int false "Result offset" default(0)
// @Param limit query int false "Result limit (max 1000)" default(10)
// @Success 200 {object} SuccessResponse "Matching users with pagination metadata"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid query or search type"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin role"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/users/search [get]
func (h *AdminHandler) SearchUsers(c echo.Context) error {
	adminID := c.Get("user_id").(uuid.UUID)

	query := c.QueryParam("q")
	searchType := models.SearchType(c.QueryParam("type"))
	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", services.DefaultSearchLimit)

	results, total, err := h.searchService.SearchUsers(c.Request().Context(), query, searchType, adminID, offset, limit)
	if err != nil {
		if err == services.ErrInvalidSearchQuery || err == services.ErrInvalidSearchType {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: results,
		Meta: map[string]interface{}{
			"total":  total,
			"offset": offset,
			"limit":  limit,
		},
	})
}

// GetUserActivity retrieves a user's audit trail
// @Summary Get user activity (admin)
// @Description Admin endpoint to retrieve a user's audit log entries, optionally bounded by a date range
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Param start query string false "Range start (RFC 3339)"
// @Param end query string false "Range end (RFC 3339)"
// @Param offset query int false "Result offset" default(0)
// @Param limit query int false "Result limit (max 100)" default(20)
// @Success 200 {object} SuccessResponse "Audit log entries with pagination metadata"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid user ID or date range"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin role"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/users/{userId}/activity [get]
func (h *AdminHandler) GetUserActivity(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return SendError(c, errors.UserInvalidID, errors.WithDetails("User ID must be a valid UUID"))
	}

	var startDate, endDate *time.Time
	if raw := c.QueryParam("start"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("start: must be RFC 3339"))
		}
		startDate = &parsed
	}
	if raw := c.QueryParam("end"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("end: must be RFC 3339"))
		}
		endDate = &parsed
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", 20)
	if limit < 1 || limit > 100 {
		return SendError(c, errors.ValidationGeneral,
			errors.WithDetails("limit: must be between 1 and 100"))
	}
	if offset < 0 {
		offset = 0
	}

	logs, total, err := h.auditService.GetUserActivity(userID, startDate, endDate, offset, limit)
	if err != nil {
		if err == services.ErrAuditDateRange {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("start date must be before end date"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: logs,
		Meta: map[string]interface{}{
			"total":  total,
			"offset": offset,
			"limit":  limit,
		},
	})
}
