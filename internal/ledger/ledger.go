// Package ledger owns the mutable stock quantity of a book and the
// immutable assignment records that account for every disbursement.
//
// All quantity mutations happen inside a single transaction holding an
// exclusive row lock on the book, so concurrent assignments against the
// same book serialize and can never oversell.
package ledger

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/snnyvrz/bookdesk/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Ledger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

type AssignInput struct {
	Recipient string
	Quantity  int
	SellPrice decimal.Decimal
	// ActorID is the authenticated user performing the assignment,
	// nil when the actor is unknown.
	ActorID *uuid.UUID
}

type AssignResult struct {
	Assignment        model.Assignment
	RemainingQuantity int
}

// Assign decrements the book's stock by in.Quantity and records an
// assignment for the recipient, atomically. Validation failures are
// reported before any lock is taken; insufficient stock is reported
// after the row lock is held, before any mutation.
func (l *Ledger) Assign(ctx context.Context, bookID uuid.UUID, in AssignInput) (*AssignResult, error) {
	recipient := strings.TrimSpace(in.Recipient)
	if recipient == "" {
		return nil, ErrRecipientRequired
	}
	if in.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if in.SellPrice.IsNegative() {
		return nil, ErrInvalidSellPrice
	}

	var res AssignResult

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book model.Book
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&book, "id = ?", bookID).Error; err != nil {

			return err
		}

		if book.Quantity < in.Quantity {
			return &InsufficientStockError{Available: book.Quantity}
		}

		// Decrement via SQL expression rather than writing back the
		// loaded value, so the update stays correct even if quantity
		// changed outside this call path.
		if err := tx.Model(&model.Book{}).
			Where("id = ?", bookID).
			UpdateColumn("quantity", gorm.Expr("quantity - ?", in.Quantity)).Error; err != nil {

			return err
		}

		assignment := model.Assignment{
			BookID:       bookID,
			AssignedTo:   recipient,
			Quantity:     in.Quantity,
			SellPrice:    in.SellPrice,
			TotalAmount:  in.SellPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
			AssignedByID: in.ActorID,
		}
		if err := tx.Create(&assignment).Error; err != nil {
			return err
		}

		res.Assignment = assignment
		res.RemainingQuantity = book.Quantity - in.Quantity
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &res, nil
}

// History returns the assignment trail for a book, newest first.
func (l *Ledger) History(ctx context.Context, bookID uuid.UUID) ([]model.Assignment, error) {
	var assignments []model.Assignment
	if err := l.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("assigned_at DESC").
		Find(&assignments).Error; err != nil {

		return nil, err
	}
	return assignments, nil
}
