// Package transfer defines the transfer record and the business-rule
// errors raised while moving a balance between users.
package transfer

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrFieldsRequired is returned when sender, recipient, or amount is missing.
	ErrFieldsRequired = errors.New("sender, recipient, and amount are required")
	// ErrAmountNotPositive is returned for zero or negative amounts.
	ErrAmountNotPositive = errors.New("amount must be greater than zero")
	// ErrSenderNotFound is returned when the sender id resolves to no user.
	ErrSenderNotFound = errors.New("sender not found")
	// ErrRecipientNotFound is returned when the recipient id resolves to no user.
	ErrRecipientNotFound = errors.New("recipient not found")
	// ErrSelfTransfer is returned when sender and recipient are the same user.
	ErrSelfTransfer = errors.New("cannot transfer to self")
	// ErrNotFound is returned when a transfer cannot be found.
	ErrNotFound = errors.New("transfer not found")
)

// CapExceededError is returned when the amount sent to a non-favored
// recipient exceeds the configured cap.
type CapExceededError struct {
	Cap float64
}

func (e *CapExceededError) Error() string {
	return fmt.Sprintf("transfers to non-favored users are capped at %g", e.Cap)
}

// Transfer is the audit record of a completed balance move. Records are
// append-only: once written they are never mutated or deleted.
type Transfer struct {
	ID          int64
	FromUserID  int64
	ToUserID    int64
	Amount      float64
	Description string
	CreatedAt   time.Time
}
