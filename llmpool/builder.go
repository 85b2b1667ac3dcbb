package llmpool

import (
	"errors"

	"github.com/docweave/docweave/llmclient"
)

var (
	// ErrMissingBehavior is returned by Build when no behavior was set.
	ErrMissingBehavior = errors.New("llmpool: no behavior configured")

	// ErrNoClients is returned by Build when no clients were added.
	ErrNoClients = errors.New("llmpool: no clients configured")
)

// Builder assembles a Pool. The zero value is usable.
type Builder struct {
	behavior    Behavior
	behaviorSet bool
	entries     []builderEntry
}

type builderEntry struct {
	client   *llmclient.Client
	priority int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// WithBehavior sets the pool's selection behavior.
func (b *Builder) WithBehavior(behavior Behavior) *Builder {
	b.behavior = behavior
	b.behaviorSet = true
	return b
}

// AddClient adds a client with its selection priority. Lower priority
// values are preferred by failover and combination selection.
func (b *Builder) AddClient(client *llmclient.Client, priority int) *Builder {
	b.entries = append(b.entries, builderEntry{client: client, priority: priority})
	return b
}

// Build validates the configuration and returns the pool.
func (b *Builder) Build() (*Pool, error) {
	if !b.behaviorSet {
		return nil, ErrMissingBehavior
	}
	if len(b.entries) == 0 {
		return nil, ErrNoClients
	}

	p := New(b.behavior)
	for _, e := range b.entries {
		p.Add(e.client, e.priority)
	}
	return p, nil
}

// BuildWithDefaultBehavior builds the pool, falling back to failover when
// no behavior was set.
func (b *Builder) BuildWithDefaultBehavior() (*Pool, error) {
	if !b.behaviorSet {
		b.WithBehavior(BehaviorFailover)
	}
	return b.Build()
}
