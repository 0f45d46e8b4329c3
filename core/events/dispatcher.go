package events

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Handler reacts to an event.
type Handler func(ctx context.Context, evt *Event) error

// HandlerInfo describes a registered handler.
type HandlerInfo struct {
	Name      string
	EventType Type
	Handler   Handler
}

// Dispatcher routes events to named handlers synchronously, in
// registration order.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[Type][]HandlerInfo
	logger   *zap.Logger
}

// NewDispatcher creates an empty dispatcher. A nil logger is replaced with a no-op one.
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		handlers: make(map[Type][]HandlerInfo),
		logger:   logger,
	}
}

// Subscribe registers handler under name for eventType.
func (d *Dispatcher) Subscribe(eventType Type, name string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.handlers[eventType] = append(d.handlers[eventType], HandlerInfo{
		Name:      name,
		EventType: eventType,
		Handler:   handler,
	})

	d.logger.Debug("Handler registered",
		zap.String("event_type", string(eventType)),
		zap.String("handler_name", name),
	)
}

// Unsubscribe removes the handler registered under name.
func (d *Dispatcher) Unsubscribe(eventType Type, name string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	handlers := d.handlers[eventType]
	filtered := make([]HandlerInfo, 0, len(handlers))
	for _, h := range handlers {
		if h.Name != name {
			filtered = append(filtered, h)
		}
	}
	d.handlers[eventType] = filtered
}

// ListHandlers returns the handlers registered for eventType without their funcs.
func (d *Dispatcher) ListHandlers(eventType Type) []HandlerInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()

	handlers := d.handlers[eventType]
	result := make([]HandlerInfo, len(handlers))
	for i, h := range handlers {
		result[i] = HandlerInfo{Name: h.Name, EventType: h.EventType}
	}
	return result
}

// Dispatch runs every handler for evt. A failing or panicking handler does
// not stop the others; all failures are joined in the returned error.
func (d *Dispatcher) Dispatch(ctx context.Context, evt *Event) error {
	d.mu.RLock()
	handlers := append([]HandlerInfo(nil), d.handlers[evt.Type]...)
	d.mu.RUnlock()

	d.logger.Debug("Dispatching event",
		zap.String("event_type", string(evt.Type)),
		zap.String("event_id", evt.ID),
		zap.Int("handler_count", len(handlers)),
	)

	var errs []error
	for _, info := range handlers {
		if err := d.safeExecute(ctx, evt, info); err != nil {
			d.logger.Error("Handler error",
				zap.String("event_type", string(evt.Type)),
				zap.String("event_id", evt.ID),
				zap.String("handler_name", info.Name),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("handler %s failed: %w", info.Name, err))
		}
	}
	return errors.Join(errs...)
}

func (d *Dispatcher) safeExecute(ctx context.Context, evt *Event, info HandlerInfo) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return info.Handler(ctx, evt)
}
