// Package memory implements the user and transfer repositories on top of
// process-local state. Nothing survives a restart; Reset exists for test
// isolation, though tests normally just build a fresh Store.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/pixlab/transferapi/pkg/domain/transfer"
	"github.com/pixlab/transferapi/pkg/domain/user"
	"github.com/pixlab/transferapi/pkg/dto"
	"github.com/pixlab/transferapi/pkg/mapper"
	transferrepo "github.com/pixlab/transferapi/pkg/repository/transfer"
	userrepo "github.com/pixlab/transferapi/pkg/repository/user"
)

// Store is the single source of truth for users and transfers. One RWMutex
// guards both collections and the id counters; reads hand out copies so
// callers never share memory with the store. The repository interfaces are
// exposed through the Users and Transfers views.
type Store struct {
	mu             sync.RWMutex
	users          []*user.User
	transfers      []*transfer.Transfer
	nextUserID     int64
	nextTransferID int64
}

// New returns an empty store with both id counters at 1.
func New() *Store {
	return &Store{nextUserID: 1, nextTransferID: 1}
}

// Users returns the user repository view of the store.
func (s *Store) Users() userrepo.Repository { return (*userStore)(s) }

// Transfers returns the transfer repository view of the store.
func (s *Store) Transfers() transferrepo.Repository { return (*transferStore)(s) }

// Reset clears both collections and rewinds both id counters to 1.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = nil
	s.transfers = nil
	s.nextUserID = 1
	s.nextTransferID = 1
}

func (s *Store) findUser(id int64) *user.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

type userStore Store

var _ userrepo.Repository = (*userStore)(nil)

// Create persists a new user and returns its public view.
func (s *userStore) Create(ctx context.Context, create *dto.UserCreate) (*dto.UserRead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &user.User{
		ID:        s.nextUserID,
		Name:      create.Name,
		Email:     create.Email,
		Password:  create.Password,
		IsFavored: create.IsFavored,
		Balance:   create.Balance,
		CreatedAt: time.Now().UTC(),
	}
	s.nextUserID++
	s.users = append(s.users, u)
	return mapper.UserToRead(u), nil
}

// Get retrieves a user by id, or (nil, nil) when absent.
func (s *userStore) Get(ctx context.Context, id int64) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u := (*Store)(s).findUser(id); u != nil {
		clone := *u
		return &clone, nil
	}
	return nil, nil
}

// GetByEmail retrieves a user by email, or (nil, nil) when absent.
func (s *userStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

// List returns public views of all users in insertion order.
func (s *userStore) List(ctx context.Context) ([]*dto.UserRead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	views := make([]*dto.UserRead, 0, len(s.users))
	for _, u := range s.users {
		views = append(views, mapper.UserToRead(u))
	}
	return views, nil
}

// SetBalance overwrites a user's balance, reporting false for unknown ids.
func (s *userStore) SetBalance(ctx context.Context, id int64, balance float64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := (*Store)(s).findUser(id)
	if u == nil {
		return false, nil
	}
	u.Balance = balance
	return true, nil
}

// SetFavored flags a user as favored. The transition is one-way and
// idempotent.
func (s *userStore) SetFavored(ctx context.Context, id int64) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := (*Store)(s).findUser(id)
	if u == nil {
		return nil, nil
	}
	u.IsFavored = true
	clone := *u
	return &clone, nil
}

type transferStore Store

var _ transferrepo.Repository = (*transferStore)(nil)

// Create persists a new transfer, stamping id and creation time.
func (s *transferStore) Create(ctx context.Context, create *dto.TransferCreate) (*transfer.Transfer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &transfer.Transfer{
		ID:          s.nextTransferID,
		FromUserID:  create.FromUserID,
		ToUserID:    create.ToUserID,
		Amount:      create.Amount,
		Description: create.Description,
		CreatedAt:   time.Now().UTC(),
	}
	s.nextTransferID++
	s.transfers = append(s.transfers, t)
	clone := *t
	return &clone, nil
}

// Get retrieves a transfer by id, or (nil, nil) when absent.
func (s *transferStore) Get(ctx context.Context, id int64) (*transfer.Transfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.transfers {
		if t.ID == id {
			clone := *t
			return &clone, nil
		}
	}
	return nil, nil
}

// List returns all transfers in insertion order.
func (s *transferStore) List(ctx context.Context) ([]*transfer.Transfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*transfer.Transfer, 0, len(s.transfers))
	for _, t := range s.transfers {
		clone := *t
		out = append(out, &clone)
	}
	return out, nil
}

// ListByUser returns every transfer in which the user is sender or
// recipient, in insertion order.
func (s *transferStore) ListByUser(ctx context.Context, userID int64) ([]*transfer.Transfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*transfer.Transfer
	for _, t := range s.transfers {
		if t.FromUserID == userID || t.ToUserID == userID {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}
