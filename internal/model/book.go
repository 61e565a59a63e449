package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Book struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title       string          `gorm:"not null"`
	Author      string          `gorm:"not null"`
	ISBN        string          `gorm:"size:13;uniqueIndex;not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity    int             `gorm:"not null;default:0"`
	Description string
	Summary     string
	CreatedByID *uuid.UUID   `gorm:"type:uuid"`
	CreatedBy   *User        `gorm:"constraint:OnDelete:SET NULL"`
	Assignments []Assignment `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
