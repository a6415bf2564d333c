package repositories

import (
	"time"

	"domus-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserSearchCriteria defines search criteria for users
type UserSearchCriteria struct {
	Query      string
	SearchType string // "first_name", "last_name", "name", "email"
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByIDActive(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByEmailExcluding(email string, excludeUserID uuid.UUID) (*models.User, error)
	SearchUsers(criteria UserSearchCriteria, offset, limit int) ([]*models.User, int64, error)
	Update(user *models.User) error
	UpdateFields(userID uuid.UUID, fields map[string]interface{}) error
	UpdateEmail(userID uuid.UUID, newEmail string) error
	UpdatePasswordHash(userID uuid.UUID, passwordHash string) error
	UpdateFailedLoginAttempts(user *models.User) error
	ResetFailedLoginAttempts(userID uuid.UUID) error
	UnlockAccount(userID uuid.UUID) error
	Delete(userID uuid.UUID) error
	ListUsers(offset, limit int) ([]*models.User, int64, error)
}

// CostRepositoryInterface defines the contract for cost repository operations
type CostRepositoryInterface interface {
	Create(cost *models.Cost) error
	GetByID(id uuid.UUID) (*models.Cost, error)
	GetByUserID(userID uuid.UUID) ([]models.Cost, error)
	GetByUserIDAndDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Cost, error)
	Update(cost *models.Cost) error
	Delete(id uuid.UUID) error
	TotalByUserID(userID uuid.UUID) (decimal.Decimal, error)
}

// IncomeRepositoryInterface defines the contract for income repository operations
type IncomeRepositoryInterface interface {
	Create(income *models.Income) error
	GetByID(id uuid.UUID) (*models.Income, error)
	GetByUserID(userID uuid.UUID) ([]models.Income, error)
	GetByUserIDAndDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Income, error)
	Update(income *models.Income) error
	Delete(id uuid.UUID) error
	TotalByUserID(userID uuid.UUID) (decimal.Decimal, error)
}

// InvestmentRepositoryInterface defines the contract for investment repository operations
type InvestmentRepositoryInterface interface {
	Create(investment *models.Investment) error
	GetByID(id uuid.UUID) (*models.Investment, error)
	GetByUserID(userID uuid.UUID) ([]models.Investment, error)
	GetByUserIDAndDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Investment, error)
	Update(investment *models.Investment) error
	Delete(id uuid.UUID) error
	TotalByUserID(userID uuid.UUID) (decimal.Decimal, error)
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByID(id uuid.UUID) (*models.AuditLog, error)
	GetByUserID(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByAction(action string, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByResource(resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByIPAddress(ipAddress string, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByTimeRange(startTime, endTime time.Time, offset, limit int) ([]*models.AuditLog, int64, error)
	GetUserActivity(userID uuid.UUID, startDate, endDate *time.Time, offset, limit int) ([]*models.AuditLog, int64, error)
	GetFailedLoginAttempts(email string, since time.Time) (int64, error)
	DeleteOlderThan(duration time.Duration) (int64, error)
}

type RefreshTokenRepositoryInterface interface {
	Create(token *models.RefreshToken) error
	GetByID(id uuid.UUID) (*models.RefreshToken, error)
	GetByTokenHash(tokenHash string) (*models.RefreshToken, error)
	GetActiveByUserID(userID uuid.UUID) ([]*models.RefreshToken, error)
	Update(token *models.RefreshToken) error
	Revoke(tokenID uuid.UUID) error
	RevokeAllForUser(userID uuid.UUID) error
	DeleteExpired() (int64, error)
	DeleteRevokedOlderThan(duration time.Duration) (int64, error)
}

// BlacklistedTokenRepositoryInterface defines the contract for blacklisted token repository operations
type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	GetByJTI(jti string) (*models.BlacklistedToken, error)
	DeleteExpired() (int64, error)
}
