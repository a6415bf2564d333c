package repositories

import (
	"errors"
	"fmt"
	"time"

	"domus-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvestmentNotFound = errors.New("investment not found")
)

// InvestmentRepository handles database operations for investments
type InvestmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository
func NewInvestmentRepository(db *gorm.DB) InvestmentRepositoryInterface {
	return &InvestmentRepository{
		db: db,
	}
}

// Create creates a new investment in the database
func (r *InvestmentRepository) Create(investment *models.Investment) error {
	if investment == nil {
		return errors.New("investment cannot be nil")
	}

	if err := r.db.Create(investment).Error; err != nil {
		return fmt.Errorf("failed to create investment: %w", err)
	}

	return nil
}

// GetByID retrieves an investment by its ID
func (r *InvestmentRepository) GetByID(id uuid.UUID) (*models.Investment, error) {
	var investment models.Investment

	if err := r.db.Where("id = ?", id).First(&investment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvestmentNotFound
		}
		return nil, fmt.Errorf("failed to get investment by ID: %w", err)
	}

	return &investment, nil
}

// GetByUserID retrieves all investments for a user, newest start date first
func (r *InvestmentRepository) GetByUserID(userID uuid.UUID) ([]models.Investment, error) {
	var investments []models.Investment

	err := r.db.Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&investments).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get investments for user: %w", err)
	}

	return investments, nil
}

// GetByUserIDAndDateRange retrieves investments for a user whose start date falls within the range
func (r *InvestmentRepository) GetByUserIDAndDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Investment, error) {
	var investments []models.Investment

	err := r.db.Where("user_id = ? AND start_date >= ? AND start_date <= ?", userID, startDate, endDate).
		Order("start_date DESC").
		Find(&investments).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get investments for user in date range: %w", err)
	}

	return investments, nil
}

// Update updates an investment in the database
func (r *InvestmentRepository) Update(investment *models.Investment) error {
	if investment == nil {
		return errors.New("investment cannot be nil")
	}

	if err := r.db.Save(investment).Error; err != nil {
		return fmt.Errorf("failed to update investment: %w", err)
	}

	return nil
}

// Delete removes an investment from the database
func (r *InvestmentRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Investment{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete investment: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrInvestmentNotFound
	}

	return nil
}

// TotalByUserID returns the sum of all investment values for a user
func (r *InvestmentRepository) TotalByUserID(userID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal

	err := r.db.Model(&models.Investment{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(value), 0)").
		Scan(&total).Error

	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to total investments for user: %w", err)
	}

	if !total.Valid {
		return decimal.Zero, nil
	}

	return total.Decimal, nil
}
