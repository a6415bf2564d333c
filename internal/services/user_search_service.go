package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"domus-api/internal/models"

	"domus-api/internal/repositories"

	"github.com/google/uuid"
)

const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 1000
)

var (
	ErrInvalidSearchQuery = errors.New("search query cannot be empty")
	ErrInvalidSearchType  = errors.New("invalid search type")
)

// UserSearchService handles admin user search operations
type UserSearchService struct {
	userRepo repositories.UserRepositoryInterface
	metrics  MetricsRecorderInterface
	logger   UserLoggerInterface
}

// NewUserSearchService creates a new user search service
func NewUserSearchService(
	userRepo repositories.UserRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger UserLoggerInterface,
) UserSearchServiceInterface {
	return &UserSearchService{
		userRepo: userRepo,
		metrics:  metrics,
		logger:   logger,
	}
}

// ValidateSearchType validates the search type
func ValidateSearchType(searchType models.SearchType) error {
	validTypes := map[models.SearchType]bool{
		models.SearchTypeFirstName: true,
		models.SearchTypeLastName:  true,
		models.SearchTypeName:      true,
		models.SearchTypeEmail:     true,
	}

	if !validTypes[searchType] {
		return ErrInvalidSearchType
	}
	return nil
}

// SearchUsers searches for users based on the query and search type
// Performs case-insensitive exact match searches
func (s *UserSearchService) SearchUsers(ctx context.Context, query string, searchType models.SearchType, adminID uuid.UUID, offset, limit int) ([]*models.UserSearchResult, int64, error) {
	start := time.Now()
	s.logger.LogUserSearchStarted(ctx, query, string(searchType), adminID)

	if strings.TrimSpace(query) == "" {
		s.failSearch(ctx, ErrInvalidSearchQuery, start)
		return nil, 0, ErrInvalidSearchQuery
	}

	if err := ValidateSearchType(searchType); err != nil {
		s.failSearch(ctx, err, start)
		return nil, 0, err
	}

	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	if offset < 0 {
		offset = 0
	}

	criteria := repositories.UserSearchCriteria{
		Query:      query,
		SearchType: string(searchType),
	}

	users, total, err := s.userRepo.SearchUsers(criteria, offset, limit)
	if err != nil {
		s.failSearch(ctx, err, start)
		return nil, 0, fmt.Errorf("failed to search users: %w", err)
	}

	results := make([]*models.UserSearchResult, 0, len(users))
	for _, user := range users {
		result := &models.UserSearchResult{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Role:      user.Role,
			CreatedAt: user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}

		if user.LastLoginAt != nil {
			lastLoginStr := user.LastLoginAt.Format("2006-01-02T15:04:05Z07:00")
			result.LastLoginAt = &lastLoginStr
		}

		results = append(results, result)
	}

	duration := time.Since(start)
	s.logger.LogUserSearchCompleted(ctx, len(results), duration.Milliseconds())
	s.metrics.IncrementCounter("user_search_request", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("user_search", duration)

	return results, total, nil
}

func (s *UserSearchService) failSearch(ctx context.Context, err error, start time.Time) {
	s.logger.LogUserSearchFailed(ctx, err.Error(), time.Since(start).Milliseconds())
	s.metrics.IncrementCounter("user_search_request", map[string]string{"status": "failed"})
}
