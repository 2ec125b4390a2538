// Package user defines the data-access interface for user records.
package user

import (
	"context"

	"github.com/pixlab/transferapi/pkg/domain/user"
	"github.com/pixlab/transferapi/pkg/dto"
)

// Repository is the store boundary for users. Lookups return (nil, nil)
// when no record matches; the services translate that into not-found errors.
type Repository interface {
	// Create persists a new user, assigns the next sequential id, and
	// returns the public view of the stored record.
	Create(ctx context.Context, create *dto.UserCreate) (*dto.UserRead, error)

	// Get retrieves the full user record by id.
	Get(ctx context.Context, id int64) (*user.User, error)

	// GetByEmail retrieves the full user record by email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// List returns the public views of all users in insertion order.
	List(ctx context.Context) ([]*dto.UserRead, error)

	// SetBalance overwrites a user's balance. It reports false when the
	// id is unknown.
	SetBalance(ctx context.Context, id int64, balance float64) (bool, error)

	// SetFavored flags a user as favored and returns the updated record,
	// or nil when the id is unknown. The flag never transitions back.
	SetFavored(ctx context.Context, id int64) (*user.User, error)
}
