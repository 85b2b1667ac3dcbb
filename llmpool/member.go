package llmpool

import (
	"sync/atomic"
	"time"

	"github.com/docweave/docweave/llmclient"
)

// failureCooldown is how long a member sits out after a failed request
// before failover and combination selection consider it again.
const failureCooldown = 60 * time.Second

// Member is one pooled client with its selection priority and failure
// state. Failure state is a single atomic timestamp, so marking and
// reading never block selection.
type Member struct {
	client   *llmclient.Client
	priority int

	// Unix nanoseconds of the most recent failure, zero when healthy.
	lastFailure atomic.Int64
}

func newMember(client *llmclient.Client, priority int) *Member {
	return &Member{client: client, priority: priority}
}

// Client returns the underlying client.
func (m *Member) Client() *llmclient.Client { return m.client }

// ID returns the identity of the underlying client.
func (m *Member) ID() uint64 { return m.client.ID() }

// Priority returns the selection priority; lower values are preferred.
func (m *Member) Priority() int { return m.priority }

// MarkFailure records a failed request against this member.
func (m *Member) MarkFailure() {
	m.lastFailure.Store(time.Now().UnixNano())
}

// ClearFailure resets the member to healthy.
func (m *Member) ClearFailure() {
	m.lastFailure.Store(0)
}

// Available reports whether the member is healthy or its most recent
// failure has aged past the cooldown.
func (m *Member) Available(now time.Time) bool {
	last := m.lastFailure.Load()
	if last == 0 {
		return true
	}
	return now.Sub(time.Unix(0, last)) >= failureCooldown
}

// LastFailure returns the time of the most recent failure and whether one
// is recorded.
func (m *Member) LastFailure() (time.Time, bool) {
	last := m.lastFailure.Load()
	if last == 0 {
		return time.Time{}, false
	}
	return time.Unix(0, last), true
}
