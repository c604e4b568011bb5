package auth

import (
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// ExpiryMargin is subtracted from a credential's expiry time. A credential that
// expires within this window is already treated as expired.
const ExpiryMargin = 60 * time.Second

const bearerScheme = "Bearer"

type Credential struct {
	Token     string
	ExpiresAt time.Time
}

// Check returns ErrAuthExpired when the credential can no longer be used at now.
func (c Credential) Check(now time.Time) error {
	if now.After(c.ExpiresAt.Add(-ExpiryMargin)) {
		return ErrAuthExpired
	}

	return nil
}

// CredentialSource exposes the process-wide credential. The second return value
// is false when no credential has been configured.
type CredentialSource interface {
	Credential() (Credential, bool)
}

type TokenProvider interface {
	// CurrentToken returns an Authorization header value, or an empty string when
	// the process is unauthenticated.
	CurrentToken() string
}

type tokenProvider struct {
	source CredentialSource
	now    func() time.Time
}

var _ TokenProvider = (*tokenProvider)(nil)

func NewTokenProvider(source CredentialSource) TokenProvider {
	return &tokenProvider{source, time.Now}
}

func (p *tokenProvider) CurrentToken() string {
	credential, ok := p.source.Credential()
	if !ok || credential.Token == "" {
		return ""
	}

	if err := credential.Check(p.now()); err != nil {
		slog.Debug("credential rejected, continuing unauthenticated", "error", err, "expires_at", credential.ExpiresAt)
		return ""
	}

	return FormatBearer(credential.Token)
}

// FormatBearer prefixes token with the bearer scheme unless it already carries it.
func FormatBearer(token string) string {
	if strings.HasPrefix(token, bearerScheme) {
		return token
	}

	return bearerScheme + " " + token
}

// Store is a CredentialSource owned by the host process. The host replaces the
// credential whenever its own refresh logic obtains a new one.
type Store struct {
	lock       sync.RWMutex
	credential *Credential
}

var _ CredentialSource = (*Store)(nil)

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Set(credential Credential) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.credential = &credential
}

func (s *Store) Clear() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.credential = nil
}

func (s *Store) Credential() (Credential, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if s.credential == nil {
		return Credential{}, false
	}

	return *s.credential, true
}

var (
	ErrAuthExpired = errors.New("credential expired")
)
