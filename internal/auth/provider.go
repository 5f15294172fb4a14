package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the minimal view of a signed-in user as reported by the
// identity provider, before backend enrichment.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
}

// Provider abstracts the identity backend. OnStateChange reports a nil
// identity when the provider signs the user out.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (Identity, error)
	SignOut(ctx context.Context) error
	IDToken(ctx context.Context, forceRefresh bool) (string, error)
	OnStateChange(fn func(*Identity)) func()
}

type devClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// DevProvider mints HS256 tokens locally. For development against the
// mock API only.
type DevProvider struct {
	Secret string
	TTL    time.Duration
	Now    func() time.Time

	mu        sync.Mutex
	identity  *Identity
	listeners map[int]func(*Identity)
	nextSub   int
}

// NewDevProvider creates a dev provider signing with secret.
func NewDevProvider(secret string) *DevProvider {
	return &DevProvider{
		Secret:    secret,
		TTL:       time.Hour,
		Now:       time.Now,
		listeners: map[int]func(*Identity){},
	}
}

// SignIn accepts any non-empty credential pair and derives a stable uid
// from the email local part.
func (p *DevProvider) SignIn(ctx context.Context, email, password string) (Identity, error) {
	if email == "" || password == "" {
		return Identity{}, &Error{Code: "auth/invalid-credential"}
	}
	local := email
	if i := strings.IndexByte(email, '@'); i > 0 {
		local = email[:i]
	}
	id := Identity{UID: "dev-" + local, Email: email}
	p.mu.Lock()
	p.identity = &id
	fns := p.snapshotListeners()
	p.mu.Unlock()
	for _, fn := range fns {
		fn(&id)
	}
	return id, nil
}

// SignOut clears the current identity and notifies listeners.
func (p *DevProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	p.identity = nil
	fns := p.snapshotListeners()
	p.mu.Unlock()
	for _, fn := range fns {
		fn(nil)
	}
	return nil
}

// IDToken mints a fresh HS256 token for the signed-in identity.
func (p *DevProvider) IDToken(ctx context.Context, forceRefresh bool) (string, error) {
	p.mu.Lock()
	id := p.identity
	p.mu.Unlock()
	if id == nil {
		return "", &Error{Code: "auth/user-not-found"}
	}
	now := p.Now()
	claims := devClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.TTL)),
		},
		Email: id.Email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(p.Secret))
}

// OnStateChange registers fn and calls it immediately with the current
// identity. The returned unsubscribe is idempotent.
func (p *DevProvider) OnStateChange(fn func(*Identity)) func() {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.listeners[id] = fn
	cur := p.identity
	p.mu.Unlock()
	fn(cur)
	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.listeners, id)
			p.mu.Unlock()
		})
	}
}

func (p *DevProvider) snapshotListeners() []func(*Identity) {
	fns := make([]func(*Identity), 0, len(p.listeners))
	for _, fn := range p.listeners {
		fns = append(fns, fn)
	}
	return fns
}
