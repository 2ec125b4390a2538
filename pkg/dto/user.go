// Package dto holds the request and view structs exchanged between the
// HTTP layer, the services, and the store.
package dto

// RegisterUser is the request body for POST /api/users/register. Only
// presence is checked here; field rules with an ordering contract (duplicate
// email before format, etc.) live in the user service.
type RegisterUser struct {
	Name           string  `json:"name" validate:"required"`
	Email          string  `json:"email" validate:"required"`
	Password       string  `json:"password" validate:"required"`
	IsFavored      bool    `json:"isFavored"`
	InitialBalance float64 `json:"initialBalance"`
}

// LoginUser is the request body for POST /api/users/login. Deliberately
// untagged: every login failure, including missing fields, maps to 401.
type LoginUser struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserCreate is the record handed to the store when persisting a new user.
type UserCreate struct {
	Name      string
	Email     string
	Password  string
	IsFavored bool
	Balance   float64
}

// UserRead is the public projection of a user. It has no password field,
// so a password can never be serialized by accident.
type UserRead struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	IsFavored bool    `json:"isFavored"`
	Balance   float64 `json:"balance"`
}

// UserSummary is the short form embedded in enriched transfer views.
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
