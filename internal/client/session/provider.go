package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/fittrack/internal/client/api"
	"github.com/dmitrijs2005/fittrack/internal/logging"
	"github.com/dmitrijs2005/fittrack/internal/sanitize"
)

// MePath is the "who am I" endpoint used to validate a stored token.
const MePath = "/api/me"

// Client is the part of api.Client the provider depends on.
type Client interface {
	Get(ctx context.Context, path string, opts ...api.RequestOption) (*api.Response, error)
	SetAuthorization(token string)
	ClearAuthorization()
}

// Provider holds the current Session and notifies subscribers on change.
type Provider struct {
	store  *Store
	client Client
	logger logging.Logger

	mu          sync.RWMutex
	current     Session
	subscribers map[int]func(Session)
	nextID      int
}

func NewProvider(store *Store, client Client, logger logging.Logger) *Provider {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Provider{
		store:       store,
		client:      client,
		logger:      logger,
		subscribers: make(map[int]func(Session)),
	}
}

// Current returns a copy of the session.
func (p *Provider) Current() Session {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Session{User: p.current.User.clone(), Token: p.current.Token}
}

// Subscribe registers fn to be called after every state change. The returned
// function removes the subscription.
func (p *Provider) Subscribe(fn func(Session)) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subscribers[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.subscribers, id)
		p.mu.Unlock()
	}
}

// Rehydrate restores the session from a stored token by asking the backend
// who the token belongs to. Every failure leaves the provider
// unauthenticated with the stored token removed; the returned error only
// explains why.
func (p *Provider) Rehydrate(ctx context.Context) error {
	token, err := p.store.Load(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to load stored token", "error", err)
		p.drop(ctx)
		return err
	}
	if token == "" {
		return nil
	}

	p.client.SetAuthorization(token)

	user, err := p.whoami(ctx)
	if err != nil {
		p.logger.Warn(ctx, "stored token rejected", "error", err)
		p.drop(ctx)
		return err
	}

	p.set(Session{User: user, Token: token})
	p.logger.Info(ctx, "session restored", "email", user.Email())
	return nil
}

func (p *Provider) whoami(ctx context.Context) (UserRecord, error) {
	resp, err := p.client.Get(ctx, MePath)
	if err != nil {
		return nil, err
	}

	var body struct {
		User any `json:"user"`
	}
	if err := resp.Decode(&body); err != nil {
		return nil, err
	}
	user, ok := body.User.(map[string]any)
	if !ok || len(user) == 0 {
		return nil, fmt.Errorf("%w: missing user in %s response", ErrInvalidUser, MePath)
	}
	return UserRecord(sanitize.Value(user).(map[string]any)), nil
}

// drop forgets the token in storage, in the client and in memory.
func (p *Provider) drop(ctx context.Context) {
	if err := p.store.Clear(ctx); err != nil {
		p.logger.Error(ctx, "failed to clear stored token", "error", err)
	}
	p.client.ClearAuthorization()
	p.set(Session{})
}

// Login stores token and marks the session as authenticated. When the token
// cannot be persisted the session is left unauthenticated and the
// *StorageError is returned.
func (p *Provider) Login(ctx context.Context, user UserRecord, token string) error {
	if err := p.store.Save(ctx, token); err != nil {
		p.logger.Error(ctx, "failed to persist token", "error", err)
		p.client.ClearAuthorization()
		p.set(Session{})
		return err
	}

	p.client.SetAuthorization(token)
	p.set(Session{User: user.clone(), Token: token})
	return nil
}

// Logout clears the session. It never fails; storage errors are logged.
func (p *Provider) Logout(ctx context.Context) {
	p.drop(ctx)
}

// SetUser replaces the user of the current session. Only object-shaped
// values and nil are accepted.
func (p *Provider) SetUser(ctx context.Context, v any) error {
	var user UserRecord
	switch u := v.(type) {
	case nil:
	case UserRecord:
		user = u.clone()
	case map[string]any:
		user = UserRecord(u).clone()
	default:
		p.logger.Warn(ctx, "ignoring non-object user", "type", fmt.Sprintf("%T", v))
		return ErrInvalidUser
	}

	p.mu.RLock()
	token := p.current.Token
	p.mu.RUnlock()

	p.set(Session{User: user, Token: token})
	return nil
}

// Reset forgets the in-memory session without touching storage. It is what
// a page reload does to memory-resident state.
func (p *Provider) Reset() {
	p.set(Session{})
}

func (p *Provider) set(s Session) {
	p.mu.Lock()
	p.current = s
	subs := make([]func(Session), 0, len(p.subscribers))
	for _, fn := range p.subscribers {
		subs = append(subs, fn)
	}
	p.mu.Unlock()

	snapshot := Session{User: s.User.clone(), Token: s.Token}
	for _, fn := range subs {
		fn(snapshot)
	}
}
