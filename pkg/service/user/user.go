// Package user provides the business logic for registration, login,
// lookup, favored promotion, and balance bookkeeping.
package user

import (
	"context"
	"log/slog"

	"github.com/pixlab/transferapi/pkg/domain/user"
	"github.com/pixlab/transferapi/pkg/dto"
	"github.com/pixlab/transferapi/pkg/mapper"
	userrepo "github.com/pixlab/transferapi/pkg/repository/user"
)

// Service implements user management on top of a user repository.
type Service struct {
	repo   userrepo.Repository
	logger *slog.Logger
}

// New creates a user Service.
func New(repo userrepo.Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Register validates the input and stores a new user. The checks run in a
// fixed order: required fields, duplicate email, email format, password
// length, initial balance. The duplicate check deliberately precedes the
// format check, so re-registering an existing email always reports the
// conflict no matter how broken the rest of the payload is.
func (s *Service) Register(ctx context.Context, input *dto.RegisterUser) (*dto.UserRead, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, user.ErrFieldsRequired
	}
	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, user.ErrEmailTaken
	}
	if !user.ValidEmail(input.Email) {
		return nil, user.ErrInvalidEmail
	}
	if len(input.Password) < user.MinPasswordLen {
		return nil, user.ErrPasswordTooShort
	}
	if input.InitialBalance < 0 {
		return nil, user.ErrNegativeBalance
	}
	created, err := s.repo.Create(ctx, &dto.UserCreate{
		Name:      input.Name,
		Email:     input.Email,
		Password:  input.Password,
		IsFavored: input.IsFavored,
		Balance:   input.InitialBalance,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("user registered", "id", created.ID, "email", created.Email, "favored", created.IsFavored)
	return created, nil
}

// Login checks the credentials and returns the public view of the user.
// The comparison is an exact string match against the stored password.
func (s *Service) Login(ctx context.Context, email, password string) (*dto.UserRead, error) {
	if email == "" || password == "" {
		return nil, user.ErrCredentialsRequired
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrNotFound
	}
	if u.Password != password {
		return nil, user.ErrIncorrectPassword
	}
	return mapper.UserToRead(u), nil
}

// Get returns the public view of a user by id.
func (s *Service) Get(ctx context.Context, id int64) (*dto.UserRead, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrNotFound
	}
	return mapper.UserToRead(u), nil
}

// List returns the public views of all users in insertion order.
func (s *Service) List(ctx context.Context) ([]*dto.UserRead, error) {
	return s.repo.List(ctx)
}

// PromoteToFavored flags a user as favored. Promoting an already-favored
// user succeeds and returns the unchanged state.
func (s *Service) PromoteToFavored(ctx context.Context, id int64) (*dto.UserRead, error) {
	u, err := s.repo.SetFavored(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrNotFound
	}
	s.logger.Info("user promoted to favored", "id", u.ID)
	return mapper.UserToRead(u), nil
}

// CheckSufficientBalance fails when the user is unknown or the balance is
// below amount.
func (s *Service) CheckSufficientBalance(ctx context.Context, id int64, amount float64) error {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return user.ErrNotFound
	}
	if u.Balance < amount {
		return user.ErrInsufficientFunds
	}
	return nil
}

// ApplyBalance overwrites a user's balance. An unknown id is an invariant
// violation here: callers are expected to have checked existence already.
func (s *Service) ApplyBalance(ctx context.Context, id int64, newBalance float64) error {
	ok, err := s.repo.SetBalance(ctx, id, newBalance)
	if err != nil {
		return err
	}
	if !ok {
		return user.ErrBalanceUpdate
	}
	return nil
}
