package llmpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseBehavior(t *testing.T) {
	for _, s := range []string{"distribute", "failover", "combination"} {
		b, err := ParseBehavior(s)
		require.NoError(t, err)
		assert.Equal(t, s, b.String())
	}

	_, err := ParseBehavior("round-robin")
	assert.Error(t, err)
}

func TestBehaviorYAMLRoundTrip(t *testing.T) {
	type cfg struct {
		Behavior Behavior `yaml:"behavior"`
	}

	var c cfg
	require.NoError(t, yaml.Unmarshal([]byte("behavior: combination\n"), &c))
	assert.Equal(t, BehaviorCombination, c.Behavior)

	out, err := yaml.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, "behavior: combination\n", string(out))

	err = yaml.Unmarshal([]byte("behavior: sticky\n"), &c)
	assert.Error(t, err)
}
