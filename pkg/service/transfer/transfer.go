// Package transfer implements the transfer engine: a fixed validation
// pipeline followed by two balance writes and an audit record, plus the
// enriched read queries.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pixlab/transferapi/pkg/domain/transfer"
	"github.com/pixlab/transferapi/pkg/domain/user"
	"github.com/pixlab/transferapi/pkg/dto"
	"github.com/pixlab/transferapi/pkg/mapper"
	transferrepo "github.com/pixlab/transferapi/pkg/repository/transfer"
	usersvc "github.com/pixlab/transferapi/pkg/service/user"
)

// Service moves balances between users under the business rules.
type Service struct {
	users         *usersvc.Service
	repo          transferrepo.Repository
	nonFavoredCap float64
	logger        *slog.Logger

	// mu serializes the check-debit-credit-record sequence; the store's
	// own lock only covers single operations.
	mu sync.Mutex
}

// New creates a transfer Service. nonFavoredCap is the maximum single
// amount that may be sent to a non-favored recipient.
func New(users *usersvc.Service, repo transferrepo.Repository, nonFavoredCap float64, logger *slog.Logger) *Service {
	return &Service{users: users, repo: repo, nonFavoredCap: nonFavoredCap, logger: logger}
}

// MakeTransfer validates and executes a balance move. Each check
// short-circuits: required fields, positive amount, sender exists,
// recipient exists, not a self-transfer, cap for non-favored recipients,
// sufficient sender balance. The debit and credit are two independent
// store writes with no rollback in between.
func (s *Service) MakeTransfer(ctx context.Context, input *dto.MakeTransfer) (*dto.TransferRead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.FromUserID == 0 || input.ToUserID == 0 || input.Amount == 0 {
		return nil, transfer.ErrFieldsRequired
	}
	if input.Amount < 0 {
		return nil, transfer.ErrAmountNotPositive
	}
	from, err := s.users.Get(ctx, input.FromUserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, transfer.ErrSenderNotFound
		}
		return nil, err
	}
	to, err := s.users.Get(ctx, input.ToUserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, transfer.ErrRecipientNotFound
		}
		return nil, err
	}
	if input.FromUserID == input.ToUserID {
		return nil, transfer.ErrSelfTransfer
	}
	if !to.IsFavored && input.Amount > s.nonFavoredCap {
		return nil, &transfer.CapExceededError{Cap: s.nonFavoredCap}
	}
	if err := s.users.CheckSufficientBalance(ctx, from.ID, input.Amount); err != nil {
		return nil, err
	}

	if err := s.users.ApplyBalance(ctx, from.ID, from.Balance-input.Amount); err != nil {
		return nil, err
	}
	if err := s.users.ApplyBalance(ctx, to.ID, to.Balance+input.Amount); err != nil {
		return nil, err
	}

	t, err := s.repo.Create(ctx, &dto.TransferCreate{
		FromUserID:  input.FromUserID,
		ToUserID:    input.ToUserID,
		Amount:      input.Amount,
		Description: input.Description,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("transfer completed",
		"id", t.ID, "from", t.FromUserID, "to", t.ToUserID, "amount", t.Amount)
	return mapper.TransferToRead(t), nil
}

// GetTransfersByUser returns, oldest first, the enriched views of every
// transfer in which the user is sender or recipient.
func (s *Service) GetTransfersByUser(ctx context.Context, userID int64) ([]*dto.TransferDetail, error) {
	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, err
	}
	ts, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, ts)
}

// GetAllTransfers returns enriched views of all transfers, oldest first.
func (s *Service) GetAllTransfers(ctx context.Context) ([]*dto.TransferDetail, error) {
	ts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, ts)
}

// GetTransferByID returns the enriched view of a single transfer.
func (s *Service) GetTransferByID(ctx context.Context, id int64) (*dto.TransferDetail, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, transfer.ErrNotFound
	}
	return s.enrich(ctx, t)
}

func (s *Service) enrichAll(ctx context.Context, ts []*transfer.Transfer) ([]*dto.TransferDetail, error) {
	details := make([]*dto.TransferDetail, 0, len(ts))
	for _, t := range ts {
		d, err := s.enrich(ctx, t)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

// enrich resolves both endpoints of a transfer. A dangling reference means
// the store lost a user that a transfer still points at, which cannot
// happen without a deletion operation; it is reported as an internal error.
func (s *Service) enrich(ctx context.Context, t *transfer.Transfer) (*dto.TransferDetail, error) {
	from, err := s.users.Get(ctx, t.FromUserID)
	if err != nil {
		return nil, fmt.Errorf("enrich transfer %d: sender %d: %w", t.ID, t.FromUserID, err)
	}
	to, err := s.users.Get(ctx, t.ToUserID)
	if err != nil {
		return nil, fmt.Errorf("enrich transfer %d: recipient %d: %w", t.ID, t.ToUserID, err)
	}
	return mapper.TransferToDetail(t, from, to), nil
}
