package labelsession

import (
	"log/slog"
	"sync"
	"time"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/ports"
	"shippinglabel/internal/pkg/errs"
	"shippinglabel/internal/pkg/logging"
)

// Registry keeps the running sessions of this process.
type Registry struct {
	loader    ports.OrderDataLoader
	validator ports.AddressValidator
	logger    *slog.Logger
	now       func() time.Time

	mu       sync.RWMutex
	sessions map[kernel.UUID]*Session
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger handed to every session.
func WithRegistryLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithRegistryClock replaces time.Now for sessions and reaping.
func WithRegistryClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRegistry creates an empty registry whose sessions use loader and validator.
func NewRegistry(loader ports.OrderDataLoader, validator ports.AddressValidator, opts ...RegistryOption) *Registry {
	r := &Registry{
		loader:    loader,
		validator: validator,
		logger:    logging.Discard(),
		now:       time.Now,
		sessions:  make(map[kernel.UUID]*Session),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open creates a session for orderID, starts its flow and registers it.
func (r *Registry) Open(orderID string) (*Session, error) {
	s, err := NewSession(kernel.NewUUID(), orderID, r.loader, r.validator,
		WithLogger(r.logger), WithClock(r.now))
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()

	if err = s.Start(); err != nil {
		r.remove(s.ID())
		s.Close()
		return nil, err
	}
	return s, nil
}

// Get returns the session with id or an errs.ObjectNotFoundError.
func (r *Registry) Get(id kernel.UUID) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("session", id.String())
	}
	return s, nil
}

// Close removes and closes the session with id.
func (r *Registry) Close(id kernel.UUID) error {
	s := r.remove(id)
	if s == nil {
		return errs.NewObjectNotFoundError("session", id.String())
	}
	s.Close()
	return nil
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Reap closes every session that has been inactive for longer than idle
// and returns how many were closed.
func (r *Registry) Reap(idle time.Duration) int {
	cutoff := r.now().Add(-idle)

	r.mu.Lock()
	var expired []*Session
	for id, s := range r.sessions {
		if s.LastActivity().Before(cutoff) {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.Close()
	}
	return len(expired)
}

// CloseAll closes every session. Used on shutdown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[kernel.UUID]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}

func (r *Registry) remove(id kernel.UUID) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil
	}
	delete(r.sessions, id)
	return s
}
