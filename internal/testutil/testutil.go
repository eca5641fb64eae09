// Package testutil provides fakes and helpers for tests.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/adriagold/billnotice/internal/mail"
	"github.com/adriagold/billnotice/internal/model"
	"github.com/adriagold/billnotice/internal/repository"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

// FakeStore is an in-memory service.Store. Orders holds at most one active
// order per user ID, mirroring the single-active-order read contract.
type FakeStore struct {
	Users    map[string]*model.User
	Orders   map[string]*model.Order
	Products []model.Product

	UserErr    error
	OrderErr   error
	ProductErr error

	UserCalls    int
	OrderCalls   int
	ProductCalls int
}

// NewFakeStore returns an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{
		Users:  make(map[string]*model.User),
		Orders: make(map[string]*model.Order),
	}
}

// GetUserByID implements service.Store.
func (f *FakeStore) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	f.UserCalls++
	if f.UserErr != nil {
		return nil, f.UserErr
	}
	user, ok := f.Users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

// GetActiveOrder implements service.Store.
func (f *FakeStore) GetActiveOrder(ctx context.Context, userID string) (*model.Order, error) {
	f.OrderCalls++
	if f.OrderErr != nil {
		return nil, f.OrderErr
	}
	order, ok := f.Orders[userID]
	if !ok {
		return nil, repository.ErrNoActiveOrder
	}
	return order, nil
}

// ListProducts implements service.Store.
func (f *FakeStore) ListProducts(ctx context.Context) ([]model.Product, error) {
	f.ProductCalls++
	if f.ProductErr != nil {
		return nil, f.ProductErr
	}
	return f.Products, nil
}

// FakeSender records sent messages in memory.
type FakeSender struct {
	Sent []mail.Message
	Err  error
}

// Send implements mail.Sender.
func (f *FakeSender) Send(ctx context.Context, msg mail.Message) error {
	if f.Err != nil {
		return f.Err
	}
	f.Sent = append(f.Sent, msg)
	return nil
}

// StaticKeyProvider returns a KeyProvider that always resolves the given key.
// An empty key simulates a missing credential.
func StaticKeyProvider(key string) *mail.KeyProvider {
	return mail.NewKeyProviderFunc(func() string { return key })
}
