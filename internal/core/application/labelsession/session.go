package labelsession

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/labelflow"
	"shippinglabel/internal/core/ports"
	"shippinglabel/internal/pkg/errs"
	"shippinglabel/internal/pkg/logging"
)

// ErrSessionClosed is returned by operations on a closed session.
var ErrSessionClosed = errors.New("label session is closed")

// View is a consistent snapshot of a session.
type View struct {
	ID             kernel.UUID
	OrderID        string
	State          labelflow.State
	Effect         labelflow.SideEffect
	AcceptedEvents []labelflow.EventKind
	LastActivity   time.Time
}

// Completed reports whether the flow has reached StepDone.
func (v View) Completed() bool {
	d, ok := labelflow.DataOf(v.State)
	return ok && d.StepsDone().Has(labelflow.StepDone)
}

// Session drives one label flow run.
type Session struct {
	id      kernel.UUID
	orderID string

	loader    ports.OrderDataLoader
	validator ports.AddressValidator
	logger    *slog.Logger
	now       func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu           sync.Mutex
	machine      *labelflow.Machine
	generation   uint64
	lastActivity time.Time
	closed       bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger used for the session and its machine.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock replaces time.Now for activity tracking.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSession creates an idle session for orderID. Call Start to begin.
func NewSession(
	id kernel.UUID,
	orderID string,
	loader ports.OrderDataLoader,
	validator ports.AddressValidator,
	opts ...SessionOption,
) (*Session, error) {
	if err := errors.Join(
		id.Validate(),
		requireCollaborator("loader", loader == nil),
		requireCollaborator("validator", validator == nil),
	); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		id:        id,
		orderID:   orderID,
		loader:    loader,
		validator: validator,
		logger:    logging.Discard(),
		now:       time.Now,
		ctx:       ctx,
		cancel:    cancel,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "labelsession", "session_id", id.String(), "order_id", orderID)
	s.machine = labelflow.NewMachine(labelflow.WithObserver(labelflow.NewLogObserver(s.logger)))
	s.lastActivity = s.now()

	return s, nil
}

func requireCollaborator(name string, missing bool) error {
	if missing {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func (s *Session) ID() kernel.UUID {
	return s.id
}

func (s *Session) OrderID() string {
	return s.orderID
}

// Start begins the flow. It is valid once, while the machine is Idle.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	return s.apply(func() error { return s.machine.Start(s.orderID) })
}

// Dispatch hands event to the machine. Protocol violations are returned
// unchanged and leave the session as it was.
func (s *Session) Dispatch(event labelflow.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	return s.apply(func() error { return s.machine.HandleEvent(event) })
}

// Restart drops all progress and starts the flow again for the same order.
// Results of collaborator calls started before the restart are discarded.
func (s *Session) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	s.machine.Reset()
	s.generation++
	return s.apply(func() error { return s.machine.Start(s.orderID) })
}

// View returns a snapshot of the session.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	return View{
		ID:             s.id,
		OrderID:        s.orderID,
		State:          s.machine.State(),
		Effect:         s.machine.Effect(),
		AcceptedEvents: s.machine.AcceptedEvents(),
		LastActivity:   s.lastActivity,
	}
}

// Subscribe follows the session's effect cell.
func (s *Session) Subscribe() (<-chan labelflow.SideEffect, func()) {
	return s.machine.Subscribe()
}

// LastActivity returns when the session last accepted an event.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// Close cancels in-flight collaborator calls and waits for them to return.
// It is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}

// apply runs a machine mutation and performs the resulting effect.
// The caller must hold s.mu.
func (s *Session) apply(mutate func() error) error {
	if err := mutate(); err != nil {
		return err
	}
	s.generation++
	s.lastActivity = s.now()
	s.perform(s.machine.Effect())
	return nil
}

// perform starts the collaborator call an effect asks for, if any.
// The caller must hold s.mu.
func (s *Session) perform(effect labelflow.SideEffect) {
	switch e := effect.(type) {
	case labelflow.LoadData:
		s.spawn(func(ctx context.Context) labelflow.Event {
			return s.loadData(ctx, e.OrderID)
		})
	case labelflow.ValidateAddress:
		s.spawn(func(ctx context.Context) labelflow.Event {
			return s.validateAddress(ctx, e.Address)
		})
	}
}

// spawn runs call in a goroutine and feeds its event back into the machine,
// unless the session moved on or was closed in the meantime.
// The caller must hold s.mu.
func (s *Session) spawn(call func(ctx context.Context) labelflow.Event) {
	generation := s.generation
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		event := call(s.ctx)
		if s.ctx.Err() != nil {
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		if s.closed || generation != s.generation {
			s.logger.Debug("Discarding stale collaborator result", slog.String("event", string(event.Kind())))
			return
		}
		if err := s.apply(func() error { return s.machine.HandleEvent(event) }); err != nil {
			s.logger.Error("Collaborator result rejected", slog.Any("error", err))
		}
	}()
}

func (s *Session) loadData(ctx context.Context, orderID string) labelflow.Event {
	origin, shipping, err := s.loader.Load(ctx, orderID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to load order data", slog.Any("error", err))
		return labelflow.DataLoadingFailed{}
	}
	return labelflow.DataLoaded{Origin: origin, Shipping: shipping}
}

func (s *Session) validateAddress(ctx context.Context, address kernel.Address) labelflow.Event {
	res, err := s.validator.Validate(ctx, address)
	if err == nil {
		err = res.Validate()
	}
	if err != nil {
		s.logger.WarnContext(ctx, "Address validation failed", slog.Any("error", err))
		return labelflow.AddressNotRecognized{}
	}

	switch res.Outcome {
	case ports.OutcomeValid:
		return labelflow.AddressValidated{Address: res.Address}
	case ports.OutcomeInvalid:
		return labelflow.AddressInvalid{Suggested: res.Address}
	default:
		return labelflow.AddressNotRecognized{}
	}
}
