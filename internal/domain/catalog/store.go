package catalog

import (
	"sync"

	"adminconsole-go/internal/domain/events"
)

// ActorFunc names the user responsible for a mutation at the moment it
// happens. Wired to the account store by the composition root.
type ActorFunc func() string

// Store holds the in-memory catalog in insertion order. Every visible
// mutation publishes exactly one typed event; bulk replace is the sole
// exception since loading is not a change.
type Store struct {
	mutex     sync.RWMutex
	products  []Product
	isLoading bool
	lastError string

	bus   *events.Bus
	actor ActorFunc
}

// NewStore builds an empty catalog store.
func NewStore(bus *events.Bus, actor ActorFunc) *Store {
	if actor == nil {
		actor = func() string { return "unknown user" }
	}
	return &Store{
		bus:   bus,
		actor: actor,
	}
}

// ReplaceAll sets the full collection verbatim and clears the last
// error. No event is published.
func (s *Store) ReplaceAll(list []Product) {
	replacement := make([]Product, len(list))
	copy(replacement, list)

	s.mutex.Lock()
	s.products = replacement
	s.lastError = ""
	s.mutex.Unlock()
}

// Insert appends the product and publishes a create event.
func (s *Store) Insert(product Product) {
	s.mutex.Lock()
	s.products = append(s.products, product)
	s.mutex.Unlock()

	s.bus.Publish(events.EventProductCreated, events.ProductEventData{
		ProductID:    product.ID,
		ProductTitle: product.Title,
		ActorName:    s.actor(),
	})
}

// ApplyUpdate merges the patch into the matching record. An unmatched
// id is a silent no-op: the in-memory merge is best-effort and
// independent of whatever the persistence layer decided. A matched
// merge publishes an update event naming the post-merge title.
func (s *Store) ApplyUpdate(id string, patch Patch) {
	s.mutex.Lock()
	var updated *Product
	for i := range s.products {
		if s.products[i].ID == id {
			patch.Apply(&s.products[i])
			updated = &s.products[i]
			break
		}
	}
	var title string
	if updated != nil {
		title = updated.Title
	}
	s.mutex.Unlock()

	if updated == nil {
		return
	}
	s.bus.Publish(events.EventProductUpdated, events.ProductEventData{
		ProductID:    id,
		ProductTitle: title,
		ActorName:    s.actor(),
	})
}

// Remove deletes the matching record. Only an actual removal publishes
// a delete event, named after the pre-removal title.
func (s *Store) Remove(id string) {
	s.mutex.Lock()
	var removed *Product
	for i := range s.products {
		if s.products[i].ID == id {
			product := s.products[i]
			s.products = append(s.products[:i], s.products[i+1:]...)
			removed = &product
			break
		}
	}
	s.mutex.Unlock()

	if removed == nil {
		return
	}
	s.bus.Publish(events.EventProductDeleted, events.ProductEventData{
		ProductID:    id,
		ProductTitle: removed.Title,
		ActorName:    s.actor(),
	})
}

// Products returns a copy of the collection in insertion order.
func (s *Store) Products() []Product {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Product returns the matching record, if any.
func (s *Store) Product(id string) (Product, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// SetLoading flags an in-flight load.
func (s *Store) SetLoading(loading bool) {
	s.mutex.Lock()
	s.isLoading = loading
	s.mutex.Unlock()
}

// IsLoading reports whether a load is in flight.
func (s *Store) IsLoading() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.isLoading
}

// SetError records the last operation failure for display.
func (s *Store) SetError(message string) {
	s.mutex.Lock()
	s.lastError = message
	s.mutex.Unlock()
}

// LastError returns the recorded failure message, empty when none.
func (s *Store) LastError() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.lastError
}
