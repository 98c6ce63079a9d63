package events

import (
	"context"
	"log/slog"
	"sync"
)

// Publisher is the interface for publishing call events.
// Implementations may be no-op, logging, or in-memory (for testing and
// local processing).
type Publisher interface {
	// Publish sends an event. Returns error only for transport failures,
	// not for invalid events (those should be caught at construction).
	Publish(ctx context.Context, event Event) error

	// Close releases resources.
	Close() error
}

// NoopPublisher discards all events.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that silently discards events.
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) Publish(ctx context.Context, event Event) error {
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}

// LoggingPublisher logs events at debug level. Useful for development.
type LoggingPublisher struct {
	logger *slog.Logger
}

// NewLoggingPublisher creates a publisher that logs events.
func NewLoggingPublisher(logger *slog.Logger) *LoggingPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingPublisher{logger: logger}
}

func (p *LoggingPublisher) Publish(ctx context.Context, event Event) error {
	p.logger.Debug("event published",
		"subject", event.Subject(),
		"type", string(event.Type()),
		"room", event.Room(),
	)
	return nil
}

func (p *LoggingPublisher) Close() error {
	return nil
}

// ChannelPublisher publishes to an in-memory channel. Used for testing
// and for local event processing.
type ChannelPublisher struct {
	mu     sync.RWMutex
	ch     chan Event
	closed bool
}

// NewChannelPublisher creates a publisher backed by a buffered channel.
// Events are dropped if the buffer is full.
func NewChannelPublisher(bufferSize int) *ChannelPublisher {
	if bufferSize <= 0 {
		bufferSize = 100
	}
	return &ChannelPublisher{
		ch: make(chan Event, bufferSize),
	}
}

func (p *ChannelPublisher) Publish(ctx context.Context, event Event) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return nil
	}

	select {
	case p.ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		// Buffer full, drop event
		return nil
	}
}

// Events returns the channel consumers read from.
func (p *ChannelPublisher) Events() <-chan Event {
	return p.ch
}

func (p *ChannelPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.ch)
	}
	return nil
}
