// Package transfer defines the data-access interface for transfer records.
package transfer

import (
	"context"

	"github.com/pixlab/transferapi/pkg/domain/transfer"
	"github.com/pixlab/transferapi/pkg/dto"
)

// Repository is the store boundary for transfers. Get returns (nil, nil)
// when no record matches.
type Repository interface {
	// Create persists a new transfer, assigning the next sequential id
	// and the creation timestamp.
	Create(ctx context.Context, create *dto.TransferCreate) (*transfer.Transfer, error)

	// Get retrieves a transfer by id.
	Get(ctx context.Context, id int64) (*transfer.Transfer, error)

	// List returns all transfers in insertion order.
	List(ctx context.Context) ([]*transfer.Transfer, error)

	// ListByUser returns, in insertion order, every transfer in which the
	// user is sender or recipient.
	ListByUser(ctx context.Context, userID int64) ([]*transfer.Transfer, error)
}
