package llmpool

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/docweave/docweave/llmclient"
)

// Pool routes requests across a set of clients according to a Behavior.
// Failure state lives on the members themselves, so every selection sees
// the outcome of every other caller's requests immediately.
type Pool struct {
	behavior Behavior

	mu      sync.RWMutex
	members map[uint64]*Member
	order   []uint64

	// Shared round-robin cursor. One counter serves both distribute and
	// combination selection so alternating calls keep rotating.
	counter atomic.Uint64
}

// New returns an empty pool with the given behavior. Most callers go
// through Builder instead.
func New(behavior Behavior) *Pool {
	return &Pool{
		behavior: behavior,
		members:  map[uint64]*Member{},
	}
}

// Behavior returns the pool's selection behavior.
func (p *Pool) Behavior() Behavior { return p.behavior }

// Add registers a client with a selection priority. Adding a client whose
// identity is already pooled replaces the existing member.
func (p *Pool) Add(client *llmclient.Client, priority int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := client.ID()
	if _, ok := p.members[id]; !ok {
		p.order = append(p.order, id)
	}
	p.members[id] = newMember(client, priority)
}

// Remove drops a client from the pool. Removing an unknown ID is a no-op.
func (p *Pool) Remove(id uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.members[id]; !ok {
		return
	}
	delete(p.members, id)
	for i, oid := range p.order {
		if oid == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of pooled clients.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.members)
}

// Members returns a snapshot of the pool in insertion order.
func (p *Pool) Members() []*Member {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]*Member, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.members[id])
	}
	return out
}

// Member returns the member for a client ID, or nil.
func (p *Pool) Member(id uint64) *Member {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.members[id]
}

// MarkFailure records a failure against the member with the given ID.
func (p *Pool) MarkFailure(id uint64) {
	if m := p.Member(id); m != nil {
		m.MarkFailure()
	}
}

// ClearFailure resets the member with the given ID to healthy.
func (p *Pool) ClearFailure(id uint64) {
	if m := p.Member(id); m != nil {
		m.ClearFailure()
	}
}

// Select picks the member the next request should use. Selection never
// returns nil; an empty pool is a programming error and panics.
func (p *Pool) Select() *Member {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if len(p.order) == 0 {
		panic("llmpool: no configured clients")
	}

	switch p.behavior {
	case BehaviorDistribute:
		return p.selectDistribute()
	case BehaviorCombination:
		return p.selectCombination()
	default:
		return p.selectFailover()
	}
}

func (p *Pool) selectDistribute() *Member {
	n := p.counter.Add(1) - 1
	return p.members[p.order[n%uint64(len(p.order))]]
}

// sortedByPriority returns members ordered by ascending priority, with
// insertion order breaking ties. Callers hold at least a read lock.
func (p *Pool) sortedByPriority() []*Member {
	out := make([]*Member, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.members[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].priority < out[j].priority
	})
	return out
}

func (p *Pool) selectFailover() *Member {
	sorted := p.sortedByPriority()
	now := time.Now()
	for _, m := range sorted {
		if m.Available(now) {
			return m
		}
	}
	// Every member is cooling down; the best-priority one is still the
	// least bad choice.
	return sorted[0]
}

func (p *Pool) selectCombination() *Member {
	sorted := p.sortedByPriority()
	now := time.Now()

	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j].priority == sorted[i].priority {
			j++
		}
		var eligible []*Member
		for _, m := range sorted[i:j] {
			if m.Available(now) {
				eligible = append(eligible, m)
			}
		}
		if len(eligible) > 0 {
			n := p.counter.Add(1) - 1
			idx := (n % uint64(len(p.order))) % uint64(len(eligible))
			return eligible[idx]
		}
		i = j
	}
	return sorted[0]
}
