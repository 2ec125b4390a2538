package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pixlab/transferapi/pkg/domain/user"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"alice@example.com", true},
		{"a@b.co", true},
		{"first.last@sub.example.org", true},
		{"", false},
		{"no-at-sign", false},
		{"missing@tld", false},
		{"spaces in@example.com", false},
		{"two@@example.com", false},
		{"trailing@example.com ", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, user.ValidEmail(tt.email))
		})
	}
}
