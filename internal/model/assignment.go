package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Assignment is an immutable record of stock handed out to a recipient.
// TotalAmount is always computed server-side from Quantity and SellPrice.
type Assignment struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BookID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	AssignedTo   string          `gorm:"not null"`
	Quantity     int             `gorm:"not null"`
	SellPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	AssignedByID *uuid.UUID      `gorm:"type:uuid"`
	AssignedBy   *User           `gorm:"constraint:OnDelete:SET NULL"`
	AssignedAt   time.Time       `gorm:"autoCreateTime"`
}

func (a *Assignment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
