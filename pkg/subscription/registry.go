package subscription

import (
	"slices"
	"sync"
)

// DefaultCapacity is the number of subscriptions a registry accepts unless
// configured otherwise. It is a prototype limit kept for compatibility.
const DefaultCapacity = 11

// Config holds registry settings read from the environment.
type Config struct {
	Capacity int `env:"PUSH_REGISTRY_CAPACITY" envDefault:"11"`
}

// Option configures a Registry.
type Option func(*Registry)

// WithCapacity sets the maximum number of stored subscriptions.
// Non-positive values are ignored.
func WithCapacity(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.capacity = n
		}
	}
}

// Registry is a bounded, insertion-ordered set of subscriptions safe for
// concurrent use. The zero value is not usable; use NewRegistry.
type Registry struct {
	mu       sync.Mutex
	subs     []Subscription
	capacity int
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(r)
	}
	r.subs = make([]Subscription, 0, r.capacity)
	return r
}

// NewRegistryFromConfig creates an empty registry using cfg.
func NewRegistryFromConfig(cfg Config, opts ...Option) *Registry {
	return NewRegistry(append([]Option{WithCapacity(cfg.Capacity)}, opts...)...)
}

// Add validates c and appends it. Validation happens before the lock is
// taken; the capacity check and append are one critical section.
func (r *Registry) Add(c Candidate) error {
	sub, err := New(c)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.subs) >= r.capacity {
		return ErrCapacityExceeded
	}
	r.subs = append(r.subs, sub)

	return nil
}

// Snapshot returns a copy of the current contents in insertion order.
func (r *Registry) Snapshot() []Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.subs)
}

// Len returns the number of stored subscriptions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.subs)
}

// Capacity returns the configured upper bound.
func (r *Registry) Capacity() int {
	return r.capacity
}
