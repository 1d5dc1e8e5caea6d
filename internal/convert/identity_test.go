package convert

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventUIDDeterministic(t *testing.T) {
	a := EventUID("resort-1")
	b := EventUID("resort-1")
	assert.Equal(t, a, b)

	// Known-answer check: the derivation is fixed for all time, or every
	// previously synced event re-keys.
	expected := uuid.NewSHA1(eventNamespace, []byte("resort-1")).String()
	assert.Equal(t, expected, a)
}

func TestEventUIDDistinctInputs(t *testing.T) {
	seen := map[string]string{}
	for _, id := range []string{"a", "b", "ab", "parkpass-2024-03-01", "parkpass-2024-03-02", ""} {
		u := EventUID(id)
		for prev, prevUID := range seen {
			assert.NotEqual(t, prevUID, u, "ids %q and %q collided", prev, id)
		}
		seen[id] = u
	}
}

func TestEventUIDIsCanonicalForm(t *testing.T) {
	u, err := uuid.Parse(EventUID("resort-1"))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), u.Version())
}
