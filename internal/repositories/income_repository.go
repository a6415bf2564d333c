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
	ErrIncomeNotFound = errors.New("income not found")
)

// IncomeRepository handles database operations for incomes
type IncomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository
func NewIncomeRepository(db *gorm.DB) IncomeRepositoryInterface {
	return &IncomeRepository{
		db: db,
	}
}

// Create creates a new income in the database
func (r *IncomeRepository) Create(income *models.Income) error {
	if income == nil {
		return errors.New("income cannot be nil")
	}

	if err := r.db.Create(income).Error; err != nil {
		return fmt.Errorf("failed to create income: %w", err)
	}

	return nil
}

// GetByID retrieves an income by its ID
func (r *IncomeRepository) GetByID(id uuid.UUID) (*models.Income, error) {
	var income models.Income

	if err := r.db.Where("id = ?", id).First(&income).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncomeNotFound
		}
		return nil, fmt.Errorf("failed to get income by ID: %w", err)
	}

	return &income, nil
}

// GetByUserID retrieves all incomes for a user, newest start date first
func (r *IncomeRepository) GetByUserID(userID uuid.UUID) ([]models.Income, error) {
	var incomes []models.Income

	err := r.db.Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&incomes).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get incomes for user: %w", err)
	}

	return incomes, nil
}

// GetByUserIDAndDateRange retrieves incomes for a user whose start date falls within the range
func (r *IncomeRepository) GetByUserIDAndDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Income, error) {
	var incomes []models.Income

	err := r.db.Where("user_id = ? AND start_date >= ? AND start_date <= ?", userID, startDate, endDate).
		Order("start_date DESC").
		Find(&incomes).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get incomes for user in date range: %w", err)
	}

	return incomes, nil
}

// Update updates an income in the database
func (r *IncomeRepository) Update(income *models.Income) error {
	if income == nil {
		return errors.New("income cannot be nil")
	}

	if err := r.db.Save(income).Error; err != nil {
		return fmt.Errorf("failed to update income: %w", err)
	}

	return nil
}

// Delete removes an income from the database
func (r *IncomeRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Income{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete income: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrIncomeNotFound
	}

	return nil
}

// TotalByUserID returns the sum of all income values for a user
func (r *IncomeRepository) TotalByUserID(userID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal

	err := r.db.Model(&models.Income{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(value), 0)").
		Scan(&total).Error

	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to total incomes for user: %w", err)
	}

	if !total.Valid {
		return decimal.Zero, nil
	}

	return total.Decimal, nil
}
