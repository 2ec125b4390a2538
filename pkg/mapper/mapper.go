// Package mapper converts store records into the views exposed by the API.
// All functions are pure; none of them ever emits a password.
package mapper

import (
	"github.com/pixlab/transferapi/pkg/domain/transfer"
	"github.com/pixlab/transferapi/pkg/domain/user"
	"github.com/pixlab/transferapi/pkg/dto"
)

// UserToRead maps a user record to its public view.
func UserToRead(u *user.User) *dto.UserRead {
	return &dto.UserRead{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		IsFavored: u.IsFavored,
		Balance:   u.Balance,
	}
}

// UserToSummary maps a user record to the short form embedded in enriched
// transfer views.
func UserToSummary(u *dto.UserRead) dto.UserSummary {
	return dto.UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// TransferToRead maps a transfer record to its flat view.
func TransferToRead(t *transfer.Transfer) *dto.TransferRead {
	return &dto.TransferRead{
		ID:          t.ID,
		FromUserID:  t.FromUserID,
		ToUserID:    t.ToUserID,
		Amount:      t.Amount,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

// TransferToDetail maps a transfer record plus both endpoint users to the
// enriched view.
func TransferToDetail(t *transfer.Transfer, from, to *dto.UserRead) *dto.TransferDetail {
	return &dto.TransferDetail{
		ID:          t.ID,
		FromUser:    UserToSummary(from),
		ToUser:      UserToSummary(to),
		Amount:      t.Amount,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}
