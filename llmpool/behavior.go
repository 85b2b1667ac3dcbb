package llmpool

import "fmt"

// Behavior selects how the pool picks a client for each request.
type Behavior string

const (
	// BehaviorDistribute spreads requests across every member round-robin,
	// ignoring priority and failure state.
	BehaviorDistribute Behavior = "distribute"

	// BehaviorFailover always prefers the highest-priority healthy member.
	BehaviorFailover Behavior = "failover"

	// BehaviorCombination distributes within the best healthy priority
	// group and fails over across groups.
	BehaviorCombination Behavior = "combination"
)

// ParseBehavior converts a configuration string to a Behavior.
func ParseBehavior(s string) (Behavior, error) {
	switch Behavior(s) {
	case BehaviorDistribute, BehaviorFailover, BehaviorCombination:
		return Behavior(s), nil
	}
	return "", fmt.Errorf("unknown pool behavior %q", s)
}

func (b Behavior) String() string { return string(b) }

// UnmarshalText lets Behavior be decoded directly from YAML and JSON
// configuration values.
func (b *Behavior) UnmarshalText(text []byte) error {
	parsed, err := ParseBehavior(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

func (b Behavior) MarshalText() ([]byte, error) {
	return []byte(b), nil
}
