package eventbus

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
)

// DefaultPublishedLimit is how many recent events a bus keeps for Published.
const DefaultPublishedLimit = 256

// MemoryEventBus is a synchronous in-memory implementation of eventbus.Bus.
type MemoryEventBus struct {
	handlers       map[string][]eventbus.HandlerFunc
	mu             sync.RWMutex
	logger         *slog.Logger
	published      []events.Event
	publishedLimit int
}

// Option configures a MemoryEventBus.
type Option func(*MemoryEventBus)

// WithPublishedLimit keeps at most n recent events for Published. Zero turns
// recording off.
func WithPublishedLimit(n int) Option {
	return func(b *MemoryEventBus) {
		if n >= 0 {
			b.publishedLimit = n
		}
	}
}

// NewWithMemory creates a new in-memory event bus.
func NewWithMemory(logger *slog.Logger, opts ...Option) *MemoryEventBus {
	b := &MemoryEventBus{
		handlers:       make(map[string][]eventbus.HandlerFunc),
		logger:         logger.With("bus", "memory"),
		published:      make([]events.Event, 0),
		publishedLimit: DefaultPublishedLimit,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Register registers a handler for a specific event type.
func (b *MemoryEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType.String()] = append(b.handlers[eventType.String()], handler)
}

// Emit dispatches the event to all handlers registered for its type, in registration order.
// Handler errors are logged and joined; every handler runs regardless.
func (b *MemoryEventBus) Emit(ctx context.Context, event events.Event) error {
	eventType := event.Type()

	b.mu.Lock()
	handlers := append([]eventbus.HandlerFunc(nil), b.handlers[eventType]...)
	b.record(event)
	b.mu.Unlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			b.logger.Error("event handler failed", "event_type", eventType, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// record appends event to the published log, dropping the oldest beyond the limit.
// Callers hold b.mu.
func (b *MemoryEventBus) record(event events.Event) {
	if b.publishedLimit == 0 {
		return
	}
	if len(b.published) >= b.publishedLimit {
		n := copy(b.published, b.published[len(b.published)-b.publishedLimit+1:])
		clear(b.published[n:])
		b.published = b.published[:n]
	}
	b.published = append(b.published, event)
}

// ClearPublished clears the list of published events. This is useful for testing.
func (b *MemoryEventBus) ClearPublished() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = make([]events.Event, 0)
}

// Published returns a copy of the events emitted so far.
func (b *MemoryEventBus) Published() []events.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]events.Event, len(b.published))
	copy(out, b.published)
	return out
}

// Ensure MemoryEventBus implements the Bus interface.
var _ eventbus.Bus = (*MemoryEventBus)(nil)
