package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInvalidSource = errors.New("invalid income source")

// Income represents a single income record
type Income struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Value       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"value"`
	Source      string          `gorm:"type:varchar(50)" json:"source,omitempty"`
	Frequency   string          `gorm:"type:varchar(20);not null;default:'One-time'" json:"frequency"`
	StartDate   time.Time       `gorm:"not null;index" json:"startDate"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (i *Income) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}

	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	if i.UpdatedAt.IsZero() {
		i.UpdatedAt = now
	}

	if i.Frequency == "" {
		i.Frequency = FrequencyOneTime
	}

	return i.Validate()
}

func (i *Income) BeforeUpdate(tx *gorm.DB) error {
	i.UpdatedAt = time.Now()
	return i.Validate()
}

// Validate validates the income fields
func (i *Income) Validate() error {
	if i.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if i.Value.IsNegative() {
		return ErrInvalidValue
	}

	if i.Source != "" && !IsValidIncomeSource(i.Source) {
		return ErrInvalidSource
	}

	if !IsValidFrequency(i.Frequency) {
		return ErrInvalidFrequency
	}

	if i.StartDate.IsZero() {
		return errors.New("start date is required")
	}

	return nil
}

func (i *Income) TableName() string {
	return "incomes"
}
