// Package llmpool routes requests across multiple LLM clients.
//
// A Pool holds clients with selection priorities and picks one per
// request according to its Behavior: distribute spreads load round-robin,
// failover sticks to the best healthy client, and combination distributes
// within the best healthy priority group. A client that fails a request
// is benched for a cooldown period before failover-style selection
// considers it again.
//
//	pool, err := llmpool.NewBuilder().
//		WithBehavior(llmpool.BehaviorFailover).
//		AddClient(primary, 1).
//		AddClient(backup, 2).
//		Build()
//
// The pool satisfies analysis.Analyzer, so it is a drop-in replacement
// anywhere a single client is used.
package llmpool
