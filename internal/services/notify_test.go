package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	welcomes      []string
	confirmations []string
	fail          bool
}

func (f *fakeMailer) SendWelcomeEmail(_ context.Context, to, _ string) error {
	if f.fail {
		return errors.New("smtp down")
	}
	f.welcomes = append(f.welcomes, to)
	return nil
}

func (f *fakeMailer) SendOrderConfirmation(_ context.Context, to, _, orderNumber string, _ float64) error {
	if f.fail {
		return errors.New("smtp down")
	}
	f.confirmations = append(f.confirmations, to+":"+orderNumber)
	return nil
}

type fakeChat struct {
	sent []string
	fail bool
}

func (f *fakeChat) SendOrderMessage(_ context.Context, phone, _ string) error {
	if f.fail {
		return errors.New("session expired")
	}
	f.sent = append(f.sent, phone)
	return nil
}

func TestNotifierOrderConfirmed(t *testing.T) {
	m := &fakeMailer{}
	ch := &fakeChat{}
	n := NewNotifier(m, ch, zerolog.Nop())

	n.OrderConfirmed(context.Background(), "asha@example.com", "Asha", "+919900112233", "USN1", 338)

	require.Equal(t, []string{"asha@example.com:USN1"}, m.confirmations)
	require.Equal(t, []string{"+919900112233"}, ch.sent)
}

func TestNotifierSwallowsFailures(t *testing.T) {
	m := &fakeMailer{fail: true}
	ch := &fakeChat{fail: true}
	n := NewNotifier(m, ch, zerolog.Nop())

	// must not panic or propagate
	n.OrderConfirmed(context.Background(), "asha@example.com", "Asha", "+919900112233", "USN1", 338)
	n.Welcome(context.Background(), "asha@example.com", "Asha")
}

func TestNotifierSkipsChatWithoutPhone(t *testing.T) {
	m := &fakeMailer{}
	ch := &fakeChat{}
	n := NewNotifier(m, ch, zerolog.Nop())

	n.OrderConfirmed(context.Background(), "asha@example.com", "Asha", "", "USN1", 338)
	require.Empty(t, ch.sent)
	require.Len(t, m.confirmations, 1)
}
