package labelflow

import "log/slog"

// Observer is notified about every event the machine processes. It is
// optional and never changes the outcome of a transition.
type Observer interface {
	EventReceived(state State, event Event)
	Transitioned(from State, event Event, to State, effect SideEffect)
	Rejected(err *ProtocolViolationError)
}

// NopObserver discards all notifications.
type NopObserver struct{}

func (NopObserver) EventReceived(State, Event)                   {}
func (NopObserver) Transitioned(State, Event, State, SideEffect) {}
func (NopObserver) Rejected(*ProtocolViolationError)             {}

// LogObserver writes notifications to a slog.Logger: received events at
// debug, transitions at info and protocol violations at error.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates a LogObserver tagged with component=labelflow.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger.With("component", "labelflow")}
}

func (o *LogObserver) EventReceived(state State, event Event) {
	o.logger.Debug("Event received",
		slog.String("state", string(state.Kind())),
		slog.String("event", string(event.Kind())))
}

func (o *LogObserver) Transitioned(from State, event Event, to State, effect SideEffect) {
	o.logger.Info("Transition",
		slog.String("from", string(from.Kind())),
		slog.String("event", string(event.Kind())),
		slog.String("to", string(to.Kind())),
		slog.String("effect", string(effect.Kind())))
}

func (o *LogObserver) Rejected(err *ProtocolViolationError) {
	o.logger.Error("Protocol violation",
		slog.String("state", string(err.State.Kind())),
		slog.String("event", string(err.Event.Kind())),
		slog.Any("error", err))
}
