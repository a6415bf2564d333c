package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidInvestmentType = errors.New("invalid investment type")
	ErrInvalidReturnRate     = errors.New("expected return must be non-negative")
	ErrEndBeforeStart        = errors.New("end date must be after start date")
)

// Investment represents a single investment holding
type Investment struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Value           decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"value"`
	TypeInvestments string          `gorm:"type:varchar(50)" json:"typeInvestments,omitempty"`
	ExpectedReturn  decimal.Decimal `gorm:"type:decimal(8,4);default:0" json:"expectedReturn"`
	StartDate       time.Time       `gorm:"not null;index" json:"startDate"`
	EndDate         *time.Time      `json:"endDate,omitempty"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (inv *Investment) BeforeCreate(tx *gorm.DB) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}

	now := time.Now()
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = now
	}
	if inv.UpdatedAt.IsZero() {
		inv.UpdatedAt = now
	}

	return inv.Validate()
}

func (inv *Investment) BeforeUpdate(tx *gorm.DB) error {
	inv.UpdatedAt = time.Now()
	return inv.Validate()
}

// Validate validates the investment fields
func (inv *Investment) Validate() error {
	if inv.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if inv.Value.IsNegative() {
		return ErrInvalidValue
	}

	if inv.TypeInvestments != "" && !IsValidInvestmentType(inv.TypeInvestments) {
		return ErrInvalidInvestmentType
	}

	if inv.ExpectedReturn.IsNegative() {
		return ErrInvalidReturnRate
	}

	if inv.StartDate.IsZero() {
		return errors.New("start date is required")
	}

	if inv.EndDate != nil && !inv.EndDate.After(inv.StartDate) {
		return ErrEndBeforeStart
	}

	return nil
}

// ExpectedGain returns the absolute gain implied by the expected return
// percentage applied to the invested value.
func (inv *Investment) ExpectedGain() decimal.Decimal {
	return inv.Value.Mul(inv.ExpectedReturn.Div(decimal.NewFromInt(100)))
}

func (inv *Investment) TableName() string {
	return "investments"
}
