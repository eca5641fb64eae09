package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultBaseURL is the SendGrid API endpoint.
const DefaultBaseURL = "https://api.sendgrid.com"

// SendGridClient sends mail through the SendGrid v3 REST API.
type SendGridClient struct {
	httpClient *http.Client
	keys       *KeyProvider
	baseURL    string
}

// NewSendGridClient creates a SendGrid client. The API key is resolved from
// the provider on every send, so a key configured after startup is picked up
// without a restart.
func NewSendGridClient(keys *KeyProvider) *SendGridClient {
	return &SendGridClient{
		httpClient: newHTTPClient(),
		keys:       keys,
		baseURL:    DefaultBaseURL,
	}
}

// NewSendGridClientWithBaseURL creates a client against a custom endpoint.
// Used by tests to point at a stub server.
func NewSendGridClientWithBaseURL(keys *KeyProvider, baseURL string) *SendGridClient {
	c := NewSendGridClient(keys)
	c.baseURL = baseURL
	return c
}

type sendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             emailAddress      `json:"from"`
	Subject          string            `json:"subject"`
	Content          []messageContent  `json:"content"`
}

type personalization struct {
	To []emailAddress `json:"to"`
}

type emailAddress struct {
	Email string `json:"email"`
}

type messageContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Send dispatches the message via POST /v3/mail/send.
func (c *SendGridClient) Send(ctx context.Context, msg Message) error {
	key, err := c.keys.Get()
	if err != nil {
		return err
	}

	body := sendRequest{
		Personalizations: []personalization{
			{To: []emailAddress{{Email: msg.To}}},
		},
		From:    emailAddress{Email: msg.From},
		Subject: msg.Subject,
		Content: []messageContent{
			{Type: "text/html", Value: msg.HTML},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v3/mail/send", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build send request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Content-Type", "application/json")
	if msg.NoticeID != "" {
		req.Header.Set("X-Notice-Id", msg.NoticeID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}

	return nil
}
