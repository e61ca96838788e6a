package events

import (
	evbus "github.com/asaskevich/EventBus"
)

// Topic identifiers published by the console stores.
const (
	// Catalog mutation events.
	EventProductCreated = "catalog:created"
	EventProductUpdated = "catalog:updated"
	EventProductDeleted = "catalog:deleted"

	// Account lifecycle events.
	EventSignedIn  = "account:signed-in"
	EventSignedOut = "account:signed-out"
)

// ProductEventData describes a single visible catalog mutation. The
// dashboard consumes these to build its activity feed without the
// catalog knowing the dashboard exists.
type ProductEventData struct {
	ProductID    string `json:"product_id"`
	ProductTitle string `json:"product_title"`
	ActorName    string `json:"actor_name"`
}

// AccountEventData carries session transitions.
type AccountEventData struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
}

// Bus is a thin wrapper over the underlying event bus. It is created
// once at bootstrap and handed to every store that publishes or
// subscribes, so nothing reaches for package-level state.
type Bus struct {
	inner evbus.Bus
}

// New creates an isolated synchronous event bus.
func New() *Bus {
	return &Bus{inner: evbus.New()}
}

// Publish delivers the event to all current subscribers before returning.
func (b *Bus) Publish(topic string, args ...interface{}) {
	if b == nil {
		return
	}
	b.inner.Publish(topic, args...)
}

// Subscribe registers fn for topic. fn must be a function whose
// signature matches the published arguments.
func (b *Bus) Subscribe(topic string, fn interface{}) error {
	return b.inner.Subscribe(topic, fn)
}

// Unsubscribe removes a previously registered handler.
func (b *Bus) Unsubscribe(topic string, fn interface{}) error {
	return b.inner.Unsubscribe(topic, fn)
}
