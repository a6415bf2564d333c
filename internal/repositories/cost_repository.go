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
	ErrCostNotFound = errors.New("cost not found")
)

// CostRepository handles database operations for costs
type CostRepository struct {
	db *gorm.DB
}

// NewCostRepository creates a new cost repository
func NewCostRepository(db *gorm.DB) CostRepositoryInterface {
	return &CostRepository{
		db: db,
	}
}

// Create creates a new cost in the database
func (r *CostRepository) Create(cost *models.Cost) error {
	if cost == nil {
		return errors.New("cost cannot be nil")
	}

	if err := r.db.Create(cost).Error; err != nil {
		return fmt.Errorf("failed to create cost: %w", err)
	}

	return nil
}

// GetByID retrieves a cost by its ID
func (r *CostRepository) GetByID(id uuid.UUID) (*models.Cost, error) {
	var cost models.Cost

	if err := r.db.Where("id = ?", id).First(&cost).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCostNotFound
		}
		return nil, fmt.Errorf("failed to get cost by ID: %w", err)
	}

	return &cost, nil
}

// GetByUserID retrieves all costs for a user, newest start date first
func (r *CostRepository) GetByUserID(userID uuid.UUID) ([]models.Cost, error) {
	var costs []models.Cost

	err := r.db.Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&costs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get costs for user: %w", err)
	}

	return costs, nil
}

// GetByUserIDAndDateRange retrieves costs for a user whose start date falls within the range
func (r *CostRepository) GetByUserIDAndDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Cost, error) {
	var costs []models.Cost

	err := r.db.Where("user_id = ? AND start_date >= ? AND start_date <= ?", userID, startDate, endDate).
		Order("start_date DESC").
		Find(&costs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get costs for user in date range: %w", err)
	}

	return costs, nil
}

// Update updates a cost in the database
func (r *CostRepository) Update(cost *models.Cost) error {
	if cost == nil {
		return errors.New("cost cannot be nil")
	}

	if err := r.db.Save(cost).Error; err != nil {
		return fmt.Errorf("failed to update cost: %w", err)
	}

	return nil
}

// Delete removes a cost from the database
func (r *CostRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Cost{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete cost: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrCostNotFound
	}

	return nil
}

// TotalByUserID returns the sum of all cost values for a user
func (r *CostRepository) TotalByUserID(userID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal

	err := r.db.Model(&models.Cost{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(value), 0)").
		Scan(&total).Error

	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to total costs for user: %w", err)
	}

	if !total.Valid {
		return decimal.Zero, nil
	}

	return total.Decimal, nil
}
