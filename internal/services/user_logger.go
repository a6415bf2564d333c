package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	// RedactedValue is used to mask sensitive information in logs to avoid logging PII
	RedactedValue = "***REDACTED***"
)

// UserLogger provides structured logging for user-related operations
type UserLogger struct {
	logger *slog.Logger
}

// NewUserLogger creates a new user logger
func NewUserLogger(logger *slog.Logger) UserLoggerInterface {
	return &UserLogger{
		logger: logger,
	}
}

// LogUserSearchStarted logs the start of an admin user search operation
func (ul *UserLogger) LogUserSearchStarted(ctx context.Context, query string, searchType string, adminUserID uuid.UUID) {
	ul.logger.InfoContext(ctx, "user search started",
		slog.String("event_type", "user_search_started"),
		slog.String("query", RedactedValue), // Mask query to avoid logging PII
		slog.String("search_type", searchType),
		slog.String("admin_user_id", adminUserID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogUserSearchCompleted logs the completion of a user search
func (ul *UserLogger) LogUserSearchCompleted(ctx context.Context, resultsCount int, durationMs int64) {
	ul.logger.InfoContext(ctx, "user search completed",
		slog.String("event_type", "user_search_completed"),
		slog.Int("results_count", resultsCount),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogUserSearchFailed logs a failed user search
func (ul *UserLogger) LogUserSearchFailed(ctx context.Context, errorMsg string, durationMs int64) {
	ul.logger.WarnContext(ctx, "user search failed",
		slog.String("event_type", "user_search_failed"),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogPasswordReset logs admin password reset
func (ul *UserLogger) LogPasswordReset(ctx context.Context, userID uuid.UUID, adminUserID uuid.UUID) {
	ul.logger.InfoContext(ctx, "password reset",
		slog.String("event_type", "password_reset"),
		slog.String("user_id", userID.String()),
		slog.String("admin_user_id", adminUserID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogPasswordChanged logs self-service password change
func (ul *UserLogger) LogPasswordChanged(ctx context.Context, userID uuid.UUID) {
	ul.logger.InfoContext(ctx, "password changed",
		slog.String("event_type", "password_changed"),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogSpendingGoalUpdated logs a spending goal change
func (ul *UserLogger) LogSpendingGoalUpdated(ctx context.Context, userID uuid.UUID, oldGoal, newGoal string) {
	ul.logger.InfoContext(ctx, "spending goal updated",
		slog.String("event_type", "spending_goal_updated"),
		slog.String("user_id", userID.String()),
		slog.String("old_goal", oldGoal),
		slog.String("new_goal", newGoal),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogValidationFailure logs validation failures
func (ul *UserLogger) LogValidationFailure(ctx context.Context, operation string, errorMsg string) {
	ul.logger.WarnContext(ctx, "validation failure",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogAuthorizationFailure logs authorization failures
func (ul *UserLogger) LogAuthorizationFailure(ctx context.Context, operation string, userID uuid.UUID, requiredRole string) {
	ul.logger.WarnContext(ctx, "authorization failure",
		slog.String("event_type", "authorization_failure"),
		slog.String("operation", operation),
		slog.String("user_id", userID.String()),
		slog.String("required_role", requiredRole),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value("request_id").(string); ok {
		return requestID
	}
	return ""
}
