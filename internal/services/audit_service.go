package services

import (
	"errors"
	"fmt"
	"time"

	"domus-api/internal/models"
	"domus-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuditService handles audit logging operations
type AuditService struct {
	repo repositories.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface) AuditServiceInterface {
	return &AuditService{
		repo: repo,
	}
}

var (
	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrInvalidAuditLog = errors.New("invalid audit log")
	ErrAuditDateRange  = errors.New("invalid date range: start date must be before end date")
)

// ValidateActivityType validates that the activity type is one of the allowed types
func ValidateActivityType(action string) error {
	validActions := map[string]bool{
		models.AuditActionLogin:           true,
		models.AuditActionLogout:          true,
		models.AuditActionRegister:        true,
		models.AuditActionFailedLogin:     true,
		models.AuditActionAccountLocked:   true,
		models.AuditActionAccountUnlock:   true,
		models.AuditActionTokenRefresh:    true,
		models.AuditActionPasswordReset:   true,
		models.AuditActionPasswordUpdated: true,
		models.AuditActionCreate:          true,
		models.AuditActionUpdate:          true,
		models.AuditActionDelete:          true,
		models.AuditActionGoalUpdated:     true,
	}

	if !validActions[action] {
		return fmt.Errorf("invalid activity type: %s", action)
	}
	return nil
}

// CreateAuditLog creates a new audit log entry with validation
func (s *AuditService) CreateAuditLog(log *models.AuditLog) error {
	if log == nil {
		return ErrInvalidAuditLog
	}

	if err := ValidateActivityType(log.Action); err != nil {
		return err
	}

	if err := s.repo.Create(log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// GetUserActivity retrieves activity logs for a specific user with optional date filtering and pagination
func (s *AuditService) GetUserActivity(userID uuid.UUID, startDate, endDate *time.Time, offset, limit int) ([]*models.AuditLog, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, ErrInvalidUserID
	}

	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		return nil, 0, ErrAuditDateRange
	}

	return s.repo.GetUserActivity(userID, startDate, endDate, offset, limit)
}

// LogLogin logs a successful login event
func (s *AuditService) LogLogin(userID uuid.UUID, ipAddress, userAgent string) error {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionLogin,
		Resource:   "auth",
		ResourceID: userID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	}
	return s.CreateAuditLog(log)
}

// LogLogout logs a logout event
func (s *AuditService) LogLogout(userID uuid.UUID, ipAddress, userAgent string) error {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionLogout,
		Resource:   "auth",
		ResourceID: userID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	}
	return s.CreateAuditLog(log)
}

// LogPasswordUpdate logs a self-service password update
func (s *AuditService) LogPasswordUpdate(userID uuid.UUID, ipAddress, userAgent string) error {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionPasswordUpdated,
		Resource:   "user",
		ResourceID: userID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	}
	return s.CreateAuditLog(log)
}

// LogSpendingGoalUpdated logs a spending goal change with old and new values
func (s *AuditService) LogSpendingGoalUpdated(userID uuid.UUID, oldGoal, newGoal decimal.Decimal, ipAddress, userAgent string) error {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionGoalUpdated,
		Resource:   "user",
		ResourceID: userID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata: models.JSONBMap{
			"old_goal": oldGoal.String(),
			"new_goal": newGoal.String(),
		},
	}
	return s.CreateAuditLog(log)
}

// LogRecordCreated logs the creation of a financial record
func (s *AuditService) LogRecordCreated(userID uuid.UUID, resource, resourceID, ipAddress, userAgent string) error {
	return s.logRecordEvent(userID, models.AuditActionCreate, resource, resourceID, ipAddress, userAgent)
}

// LogRecordUpdated logs the update of a financial record
func (s *AuditService) LogRecordUpdated(userID uuid.UUID, resource, resourceID, ipAddress, userAgent string) error {
	return s.logRecordEvent(userID, models.AuditActionUpdate, resource, resourceID, ipAddress, userAgent)
}

// LogRecordDeleted logs the deletion of a financial record
func (s *AuditService) LogRecordDeleted(userID uuid.UUID, resource, resourceID, ipAddress, userAgent string) error {
	return s.logRecordEvent(userID, models.AuditActionDelete, resource, resourceID, ipAddress, userAgent)
}

func (s *AuditService) logRecordEvent(userID uuid.UUID, action, resource, resourceID, ipAddress, userAgent string) error {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	}
	return s.CreateAuditLog(log)
}
