package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/adriagold/billnotice/internal/billing"
	"github.com/adriagold/billnotice/internal/metrics"
	"github.com/adriagold/billnotice/internal/model"
	"github.com/adriagold/billnotice/internal/testutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testComposer() *billing.Composer {
	return billing.NewComposer(billing.ComposerConfig{
		SenderEmail:       "billing@adriagold.cz",
		BankAccountNumber: "219731465/0300",
		BankIBAN:          "CZ9203000000000219731465",
	})
}

func newTestService(store *testutil.FakeStore, sender *testutil.FakeSender, apiKey string) *NoticeService {
	return NewNoticeService(store, sender, testutil.StaticKeyProvider(apiKey), testComposer(), metrics.NewInMemory(), testLogger())
}

func annaStore() *testutil.FakeStore {
	store := testutil.NewFakeStore()
	store.Users["u1"] = &model.User{ID: "u1", Name: "Anna", Email: "a@x.test"}
	store.Orders["u1"] = &model.Order{
		ID:     "o1",
		UserID: "u1",
		Status: model.OrderStatusActive,
		Items:  map[string]int64{"P1": 2, "P2": 1},
	}
	store.Products = []model.Product{
		{ID: "P1", Name: "Vanilla ice cream 1l", UnitPrice: 100},
		{ID: "P2", Name: "Pistachio ice cream 1l", UnitPrice: 250},
	}
	return store
}

func TestSendNotice_MissingAPIKey(t *testing.T) {
	store := annaStore()
	sender := &testutil.FakeSender{}
	svc := newTestService(store, sender, "")

	_, err := svc.SendNotice(context.Background(), "u1")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}

	if store.UserCalls != 0 || store.OrderCalls != 0 || store.ProductCalls != 0 {
		t.Error("expected no store access when the credential is missing")
	}
	if len(sender.Sent) != 0 {
		t.Error("expected no send attempt")
	}
}

func TestSendNotice_MissingUserID(t *testing.T) {
	store := annaStore()
	sender := &testutil.FakeSender{}
	svc := newTestService(store, sender, "SG.test")

	_, err := svc.SendNotice(context.Background(), "")
	if !errors.Is(err, ErrMissingUserID) {
		t.Fatalf("expected ErrMissingUserID, got %v", err)
	}

	if store.UserCalls != 0 {
		t.Error("expected no store access for an empty user ID")
	}
}

func TestSendNotice_UserNotFound(t *testing.T) {
	store := annaStore()
	sender := &testutil.FakeSender{}
	svc := newTestService(store, sender, "SG.test")

	_, err := svc.SendNotice(context.Background(), "nobody")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	if store.OrderCalls != 0 || store.ProductCalls != 0 {
		t.Error("expected no order or catalog access for an unknown user")
	}
	if len(sender.Sent) != 0 {
		t.Error("expected no send attempt")
	}
}

func TestSendNotice_NoActiveOrder(t *testing.T) {
	store := annaStore()
	delete(store.Orders, "u1")
	sender := &testutil.FakeSender{}
	svc := newTestService(store, sender, "SG.test")

	result, err := svc.SendNotice(context.Background(), "u1")
	if err != nil {
		t.Fatalf("expected non-error outcome, got %v", err)
	}

	if result.Sent {
		t.Error("expected Sent to be false")
	}
	if !strings.Contains(result.Message, "Anna") || !strings.Contains(result.Message, "a@x.test") {
		t.Errorf("expected message to name the user, got %q", result.Message)
	}
	if len(sender.Sent) != 0 {
		t.Error("expected no email transport call")
	}
	if store.ProductCalls != 0 {
		t.Error("expected no catalog read without an active order")
	}
}

func TestSendNotice_Success(t *testing.T) {
	store := annaStore()
	sender := &testutil.FakeSender{}
	svc := newTestService(store, sender, "SG.test")

	result, err := svc.SendNotice(context.Background(), "u1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !result.Sent {
		t.Error("expected Sent to be true")
	}
	if len(sender.Sent) != 1 {
		t.Fatalf("expected exactly one send, got %d", len(sender.Sent))
	}

	msg := sender.Sent[0]
	if msg.To != "a@x.test" {
		t.Errorf("expected recipient a@x.test, got %s", msg.To)
	}
	if !strings.Contains(msg.HTML, "450") {
		t.Error("expected body to contain the grand total 450")
	}
	if msg.NoticeID == "" {
		t.Error("expected a notice ID to be assigned")
	}
}

func TestSendNotice_UnknownProductStillSends(t *testing.T) {
	store := annaStore()
	store.Orders["u1"].Items = map[string]int64{"PX": 3}
	sender := &testutil.FakeSender{}
	svc := newTestService(store, sender, "SG.test")

	result, err := svc.SendNotice(context.Background(), "u1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !result.Sent {
		t.Error("expected Sent to be true")
	}
	if len(sender.Sent) != 1 {
		t.Fatalf("expected exactly one send, got %d", len(sender.Sent))
	}
	if !strings.Contains(sender.Sent[0].HTML, "PX") {
		t.Error("expected placeholder line referencing PX in the body")
	}
	if !strings.Contains(sender.Sent[0].HTML, "0 CZK") {
		t.Error("expected zero grand total in the body")
	}
}

func TestSendNotice_TransportFailure(t *testing.T) {
	store := annaStore()
	sender := &testutil.FakeSender{Err: errors.New("connection reset")}
	svc := newTestService(store, sender, "SG.test")

	_, err := svc.SendNotice(context.Background(), "u1")
	if err == nil {
		t.Fatal("expected error on transport failure")
	}
	if errors.Is(err, ErrMissingUserID) || errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrNotConfigured) {
		t.Errorf("transport failure must not map to a domain error, got %v", err)
	}
	if !strings.Contains(err.Error(), "connection reset") {
		t.Errorf("expected cause to be preserved, got %v", err)
	}
}

func TestSendNotice_StoreFailurePropagates(t *testing.T) {
	store := annaStore()
	store.ProductErr = errors.New("store unavailable")
	sender := &testutil.FakeSender{}
	svc := newTestService(store, sender, "SG.test")

	_, err := svc.SendNotice(context.Background(), "u1")
	if err == nil {
		t.Fatal("expected error when the catalog read fails")
	}
	if len(sender.Sent) != 0 {
		t.Error("expected no partial send after a store failure")
	}
}

func TestSendNotice_RecordsMetrics(t *testing.T) {
	store := annaStore()
	sender := &testutil.FakeSender{}
	recorder := metrics.NewInMemory()
	svc := NewNoticeService(store, sender, testutil.StaticKeyProvider("SG.test"), testComposer(), recorder, testLogger())

	if _, err := svc.SendNotice(context.Background(), "u1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	snap := recorder.Snapshot()
	if snap.NoticesSent != 1 {
		t.Errorf("expected 1 sent notice, got %d", snap.NoticesSent)
	}
	if snap.NoticeDurationCount != 1 {
		t.Errorf("expected 1 duration observation, got %d", snap.NoticeDurationCount)
	}
}
