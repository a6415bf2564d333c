package services

import (
	"context"
	"time"

	"domus-api/internal/dto"
	"domus-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AggregationServiceInterface defines the pure computation engine that
// derives dashboard figures from a user's financial records. All methods
// are deterministic and operate only on their inputs.
type AggregationServiceInterface interface {
	// CostCategoryTotals groups costs by category and sums their values.
	// Records without a category are skipped.
	CostCategoryTotals(costs []models.Cost) []models.CategoryTotal

	// InvestmentTypeTotals groups investments by type and sums their values.
	// Records without a type are skipped.
	InvestmentTypeTotals(investments []models.Investment) []models.CategoryTotal

	// InvestmentAllocation converts per-type totals into percentage slices.
	// Percentages are integers rounded half away from zero; a zero total
	// yields zero percent for every slice.
	InvestmentAllocation(investments []models.Investment) []models.AllocationSlice

	// MonthlyProjection buckets records into YYYY-MM periods by start date.
	// Each record lands in exactly one bucket.
	MonthlyProjection(incomes []models.Income, costs []models.Cost, investments []models.Investment) []models.ProjectionPoint

	// YearlyProjection buckets records into YYYY periods.
	YearlyProjection(incomes []models.Income, costs []models.Cost, investments []models.Investment) []models.ProjectionPoint

	// KPIs derives the scalar dashboard figures from the full record sets.
	KPIs(incomes []models.Income, costs []models.Cost, investments []models.Investment) models.KPISet
}

// DashboardServiceInterface assembles the derived dashboard views for a user
type DashboardServiceInterface interface {
	GetSummary(ctx context.Context, userID uuid.UUID) (*models.DashboardSummary, error)
	GetMonthlySummary(ctx context.Context, userID uuid.UUID, month string) (*models.MonthlySummary, error)
	GetMonthlyProjection(ctx context.Context, userID uuid.UUID) ([]models.ProjectionPoint, error)
	GetYearlyProjection(ctx context.Context, userID uuid.UUID) ([]models.ProjectionPoint, error)
}

// AuditServiceInterface defines the contract for audit logging operations
type AuditServiceInterface interface {
	CreateAuditLog(log *models.AuditLog) error
	GetUserActivity(userID uuid.UUID, startDate, endDate *time.Time, offset, limit int) ([]*models.AuditLog, int64, error)
	LogLogin(userID uuid.UUID, ipAddress, userAgent string) error
	LogLogout(userID uuid.UUID, ipAddress, userAgent string) error
	LogPasswordUpdate(userID uuid.UUID, ipAddress, userAgent string) error
	LogSpendingGoalUpdated(userID uuid.UUID, oldGoal, newGoal decimal.Decimal, ipAddress, userAgent string) error
	LogRecordCreated(userID uuid.UUID, resource, resourceID, ipAddress, userAgent string) error
	LogRecordUpdated(userID uuid.UUID, resource, resourceID, ipAddress, userAgent string) error
	LogRecordDeleted(userID uuid.UUID, resource, resourceID, ipAddress, userAgent string) error
}

// UserSearchServiceInterface defines the contract for admin user search
type UserSearchServiceInterface interface {
	SearchUsers(ctx context.Context, query string, searchType models.SearchType, adminID uuid.UUID, offset, limit int) ([]*models.UserSearchResult, int64, error)
}

// UserLoggerInterface provides structured logging for user-related operations
type UserLoggerInterface interface {
	LogUserSearchStarted(ctx context.Context, query string, searchType string, adminUserID uuid.UUID)
	LogUserSearchCompleted(ctx context.Context, resultsCount int, durationMs int64)
	LogUserSearchFailed(ctx context.Context, errorMsg string, durationMs int64)
	LogPasswordReset(ctx context.Context, userID uuid.UUID, adminUserID uuid.UUID)
	LogPasswordChanged(ctx context.Context, userID uuid.UUID)
	LogSpendingGoalUpdated(ctx context.Context, userID uuid.UUID, oldGoal, newGoal string)
	LogValidationFailure(ctx context.Context, operation string, errorMsg string)
	LogAuthorizationFailure(ctx context.Context, operation string, userID uuid.UUID, requiredRole string)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// SampleDataGeneratorInterface generates realistic financial records for
// development and demo environments
type SampleDataGeneratorInterface interface {
	GenerateCosts(userID uuid.UUID, startDate, endDate time.Time, count int) []*models.Cost
	GenerateIncomes(userID uuid.UUID, startDate, endDate time.Time, months int) []*models.Income
	GenerateInvestments(userID uuid.UUID, startDate time.Time, count int) []*models.Investment
	GenerateCostAmount(category string) decimal.Decimal
	GenerateTimestamp(startDate, endDate time.Time) time.Time
}

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error)
	Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error)
	RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error)
	Logout(accessToken, ipAddress, userAgent string) error
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetJTI(tokenString string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
	HashPasswordWithoutValidation(password string) (string, error)
	GenerateSecurePassword() (string, error)
	GenerateSecurePasswordWithLength(length int) (string, error)
	PasswordStrength(password string) int
	AdminResetPassword(userID, adminID uuid.UUID) (string, error)
	UserUpdatePassword(userID uuid.UUID, currentPassword, newPassword string) error
}
