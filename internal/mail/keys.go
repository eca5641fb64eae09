package mail

import (
	"errors"
	"os"
	"sync/atomic"
)

// EnvAPIKey is the environment variable holding the SendGrid API key.
const EnvAPIKey = "SENDGRID_API_KEY"

// ErrAPIKeyMissing is returned when the SendGrid API key is not configured.
var ErrAPIKeyMissing = errors.New("sendgrid api key is not configured")

// KeyProvider memoizes the SendGrid API key after the first successful lookup.
// A missing key is never cached as a negative result: every call re-runs the
// lookup until one succeeds. Concurrent first calls may run the lookup more
// than once; the value is stable, so the redundant assignment is harmless and
// no lock is needed.
type KeyProvider struct {
	cached atomic.Value // string
	lookup func() string
}

// NewKeyProvider returns a KeyProvider backed by the process environment.
func NewKeyProvider() *KeyProvider {
	return NewKeyProviderFunc(func() string {
		return os.Getenv(EnvAPIKey)
	})
}

// NewKeyProviderFunc returns a KeyProvider with a custom lookup function.
func NewKeyProviderFunc(lookup func() string) *KeyProvider {
	return &KeyProvider{lookup: lookup}
}

// Get returns the API key, resolving it on first use.
func (p *KeyProvider) Get() (string, error) {
	if key, ok := p.cached.Load().(string); ok && key != "" {
		return key, nil
	}

	key := p.lookup()
	if key == "" {
		return "", ErrAPIKeyMissing
	}

	p.cached.Store(key)
	return key, nil
}
