package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrRecipientRequired = errors.New("recipient name is required")
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrInvalidSellPrice  = errors.New("sell price must be non-negative")
)

// InsufficientStockError reports the quantity that was actually available
// at the moment the stock row was locked.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("only %d books available in stock", e.Available)
}

// IsValidation reports whether err is a client-input validation error,
// as opposed to a business-rule or storage failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrRecipientRequired) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidSellPrice)
}
