package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterValidation(t *testing.T) {
	// every case fails before the user store is touched
	svc := NewAuthService(nil, NewLocalValidator(), nil)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "longenough1"},
		{"malformed email", "not-an-email", "longenough1"},
		{"short password", "asha@example.com", "tiny5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := svc.Register(context.Background(), tt.email, "Asha", tt.password, nil)
			require.Nil(t, u)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCartUpdateRejectsNonPositiveQuantity(t *testing.T) {
	svc := NewCartService(nil, nil)

	for _, qty := range []int{0, -3} {
		err := svc.Update(context.Background(), "asha@example.com", 1, qty)
		require.ErrorIs(t, err, ErrValidation)
	}
}
