package dto

import "time"

// MakeTransfer is the request body for POST /api/transfers. validator's
// required tag fails on zero values, so a zero id or amount is rejected at
// the boundary while a negative amount falls through to the service check.
type MakeTransfer struct {
	FromUserID  int64   `json:"fromUserId" validate:"required"`
	ToUserID    int64   `json:"toUserId" validate:"required"`
	Amount      float64 `json:"amount" validate:"required"`
	Description string  `json:"description"`
}

// TransferCreate is the record handed to the store when persisting a transfer.
type TransferCreate struct {
	FromUserID  int64
	ToUserID    int64
	Amount      float64
	Description string
}

// TransferRead is the flat transfer view returned right after a transfer
// is made.
type TransferRead struct {
	ID          int64     `json:"id"`
	FromUserID  int64     `json:"fromUserId"`
	ToUserID    int64     `json:"toUserId"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TransferDetail is the enriched transfer view used by the listing and
// lookup endpoints: endpoint ids are replaced by user summaries.
type TransferDetail struct {
	ID          int64       `json:"id"`
	FromUser    UserSummary `json:"fromUser"`
	ToUser      UserSummary `json:"toUser"`
	Amount      float64     `json:"amount"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"createdAt"`
}
