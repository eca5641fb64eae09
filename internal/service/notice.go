// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/adriagold/billnotice/internal/billing"
	"github.com/adriagold/billnotice/internal/mail"
	"github.com/adriagold/billnotice/internal/metrics"
	"github.com/adriagold/billnotice/internal/model"
	"github.com/adriagold/billnotice/internal/repository"
)

// Service errors.
var (
	ErrMissingUserID = errors.New("user id is required")
	ErrUserNotFound  = errors.New("user not found")
	ErrNotConfigured = errors.New("mail delivery is not configured")
)

// Store provides the record reads the billing pipeline needs.
type Store interface {
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetActiveOrder(ctx context.Context, userID string) (*model.Order, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
}

// NoticeService orchestrates the billing notice pipeline: fetch records,
// aggregate the order, compose the notice, dispatch it. Each request is one
// sequential traversal; any step failure aborts the rest, so no partial sends
// can occur.
type NoticeService struct {
	store    Store
	sender   mail.Sender
	keys     *mail.KeyProvider
	composer *billing.Composer
	metrics  metrics.Recorder
	logger   *slog.Logger
}

// NewNoticeService creates a new NoticeService.
func NewNoticeService(
	store Store,
	sender mail.Sender,
	keys *mail.KeyProvider,
	composer *billing.Composer,
	recorder metrics.Recorder,
	logger *slog.Logger,
) *NoticeService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &NoticeService{
		store:    store,
		sender:   sender,
		keys:     keys,
		composer: composer,
		metrics:  recorder,
		logger:   logger,
	}
}

// Result is the non-error outcome of a billing request. Sent is false when the
// user has no active order; no email transport call happens in that case.
type Result struct {
	Sent    bool
	Message string
}

// SendNotice loads the user's active order, builds the billing summary and
// dispatches the notice to the user's email address.
func (s *NoticeService) SendNotice(ctx context.Context, userID string) (*Result, error) {
	start := time.Now()

	// The mail credential is a hard precondition. Check it before touching
	// the store so a misconfigured deployment fails fast.
	if _, err := s.keys.Get(); err != nil {
		return nil, ErrNotConfigured
	}

	if userID == "" {
		return nil, ErrMissingUserID
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}

	order, err := s.store.GetActiveOrder(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoActiveOrder) {
			s.metrics.IncNoticeSuppressed()
			return &Result{
				Sent:    false,
				Message: fmt.Sprintf("No active orders for %s (%s).", user.Name, user.Email),
			}, nil
		}
		return nil, fmt.Errorf("failed to load active order for %s: %w", userID, err)
	}

	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load product catalog: %w", err)
	}

	summary := billing.BuildSummary(order, billing.NewCatalog(products))
	if n := summary.UnresolvedCount(); n > 0 {
		s.metrics.AddUnresolvedLines(n)
		s.logger.Warn("order references unknown products",
			"order_id", order.ID,
			"user_id", userID,
			"unresolved", n,
		)
	}

	msg, err := s.composer.Compose(summary, user)
	if err != nil {
		return nil, fmt.Errorf("failed to compose billing notice: %w", err)
	}
	msg.NoticeID = ulid.Make().String()

	if err := s.sender.Send(ctx, msg); err != nil {
		s.metrics.IncNoticeFailed()
		return nil, fmt.Errorf("failed to dispatch billing notice: %w", err)
	}

	s.metrics.IncNoticeSent()
	s.metrics.ObserveNoticeDuration(time.Since(start))

	s.logger.Info("billing notice sent",
		"notice_id", msg.NoticeID,
		"user_id", userID,
		"order_id", order.ID,
		"lines", len(summary.Lines),
		"grand_total", summary.GrandTotal,
	)

	return &Result{
		Sent:    true,
		Message: fmt.Sprintf("Billing notice sent to %s (%s).", user.Name, user.Email),
	}, nil
}
