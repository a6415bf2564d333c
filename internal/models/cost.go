package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidValue     = errors.New("value must be a non-negative amount")
	ErrInvalidCategory  = errors.New("invalid cost category")
	ErrInvalidFrequency = errors.New("invalid frequency")
	ErrInvalidDuration  = errors.New("duration must be at least one month")
)

// Cost represents a single expense record
type Cost struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Value            decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"value"`
	Category         string          `gorm:"type:varchar(50)" json:"category,omitempty"`
	Frequency        string          `gorm:"type:varchar(20);not null;default:'One-time'" json:"frequency"`
	DurationInMonths int             `gorm:"default:1" json:"durationInMonths"`
	StartDate        time.Time       `gorm:"not null;index" json:"startDate"`
	Description      string          `gorm:"type:text" json:"description,omitempty"`
	CreatedAt        time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (c *Cost) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	if c.Frequency == "" {
		c.Frequency = FrequencyOneTime
	}
	if c.DurationInMonths == 0 {
		c.DurationInMonths = 1
	}

	return c.Validate()
}

func (c *Cost) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = time.Now()
	return c.Validate()
}

// Validate validates the cost fields
func (c *Cost) Validate() error {
	if c.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if c.Value.IsNegative() {
		return ErrInvalidValue
	}

	// Empty category is allowed; the aggregation layer skips uncategorized records
	if c.Category != "" && !IsValidCostCategory(c.Category) {
		return ErrInvalidCategory
	}

	if !IsValidFrequency(c.Frequency) {
		return ErrInvalidFrequency
	}

	if c.Frequency != FrequencyOneTime && c.DurationInMonths < 1 {
		return ErrInvalidDuration
	}

	if c.StartDate.IsZero() {
		return errors.New("start date is required")
	}

	return nil
}

// IsRecurring returns true if the cost repeats monthly
func (c *Cost) IsRecurring() bool {
	return c.Frequency == FrequencyMonthly
}

func (c *Cost) TableName() string {
	return "costs"
}
