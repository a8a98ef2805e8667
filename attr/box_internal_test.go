package attr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Reset must drop references held by the old value, not just flip the flag.
func TestReset_ZeroesSlot(t *testing.T) {
	t.Parallel()

	payload := new(int)
	b := Of(payload)

	b.Reset()
	assert.Nil(t, b.val)
	assert.False(t, b.engaged)
}

// Take must leave the slot zeroed the same way Reset does.
func TestTake_ZeroesSlot(t *testing.T) {
	t.Parallel()

	payload := new(int)
	b := Of(payload)

	got, err := b.Take()
	assert.NoError(t, err)
	assert.Same(t, payload, got)
	assert.Nil(t, b.val)
}
