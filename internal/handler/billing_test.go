package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adriagold/billnotice/internal/billing"
	"github.com/adriagold/billnotice/internal/handler/dto"
	"github.com/adriagold/billnotice/internal/model"
	"github.com/adriagold/billnotice/internal/service"
	"github.com/adriagold/billnotice/internal/testutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newBillingHandler(store *testutil.FakeStore, sender *testutil.FakeSender, apiKey string) *BillingHandler {
	composer := billing.NewComposer(billing.ComposerConfig{
		SenderEmail:       "billing@adriagold.cz",
		BankAccountNumber: "219731465/0300",
		BankIBAN:          "CZ9203000000000219731465",
	})
	svc := service.NewNoticeService(store, sender, testutil.StaticKeyProvider(apiKey), composer, nil, testLogger())
	return NewBillingHandler(svc, testLogger())
}

func configuredStore() *testutil.FakeStore {
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

func postNotice(t *testing.T, h *BillingHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/notices", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.SendNotice(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return resp
}

func TestSendNotice_Success(t *testing.T) {
	sender := &testutil.FakeSender{}
	h := newBillingHandler(configuredStore(), sender, "SG.test")

	rec := postNotice(t, h, `{"user_id": "u1"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp dto.SendNoticeResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !resp.Success {
		t.Error("expected success true")
	}
	if !strings.Contains(resp.Message, "a@x.test") {
		t.Errorf("expected message to name the recipient, got %q", resp.Message)
	}
	if len(sender.Sent) != 1 {
		t.Errorf("expected one send, got %d", len(sender.Sent))
	}
}

func TestSendNotice_NoActiveOrder(t *testing.T) {
	store := configuredStore()
	delete(store.Orders, "u1")
	sender := &testutil.FakeSender{}
	h := newBillingHandler(store, sender, "SG.test")

	rec := postNotice(t, h, `{"user_id": "u1"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp dto.SendNoticeResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Success {
		t.Error("expected success false for no active order")
	}
	if len(sender.Sent) != 0 {
		t.Error("expected no send")
	}
}

func TestSendNotice_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		apiKey     string
		dropUser   bool
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid_json",
			body:       `{`,
			apiKey:     "SG.test",
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeInvalidArgument,
		},
		{
			name:       "missing_user_id",
			body:       `{}`,
			apiKey:     "SG.test",
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeInvalidArgument,
		},
		{
			name:       "unknown_user",
			body:       `{"user_id": "nobody"}`,
			apiKey:     "SG.test",
			wantStatus: http.StatusNotFound,
			wantCode:   CodeNotFound,
		},
		{
			name:       "missing_api_key",
			body:       `{"user_id": "u1"}`,
			apiKey:     "",
			wantStatus: http.StatusPreconditionFailed,
			wantCode:   CodeFailedPrecondition,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sender := &testutil.FakeSender{}
			h := newBillingHandler(configuredStore(), sender, test.apiKey)

			rec := postNotice(t, h, test.body)

			if rec.Code != test.wantStatus {
				t.Fatalf("expected status %d, got %d", test.wantStatus, rec.Code)
			}

			resp := decodeError(t, rec)
			if resp.Error.Code != test.wantCode {
				t.Errorf("expected code %q, got %q", test.wantCode, resp.Error.Code)
			}
			if resp.Error.Message == "" {
				t.Error("expected a human-readable message")
			}
			if len(sender.Sent) != 0 {
				t.Error("expected no send on error")
			}
		})
	}
}

func TestSendNotice_TransportFailure(t *testing.T) {
	sender := &testutil.FakeSender{Err: io.ErrUnexpectedEOF}
	h := newBillingHandler(configuredStore(), sender, "SG.test")

	rec := postNotice(t, h, `{"user_id": "u1"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}

	resp := decodeError(t, rec)
	if resp.Error.Code != CodeInternal {
		t.Errorf("expected code %q, got %q", CodeInternal, resp.Error.Code)
	}
}
