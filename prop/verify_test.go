package prop_test

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propkit-dev/propkit/prop"
)

// crooked declares one property bound to the wrong offset on purpose and
// one bound correctly.
type crooked struct {
	v int64

	Bad  prop.RW[crooked, int64, crookedBadAccess]
	Good prop.RW[crooked, int64, crookedGoodAccess]
}

func (c *crooked) getV() int64        { return c.v }
func (c *crooked) setV(x int64) error { c.v = x; return nil }

type crookedBadAccess struct{}

// Offset deliberately points at the start of the struct, not at Bad.
func (crookedBadAccess) Offset() uintptr              { return 0 }
func (crookedBadAccess) Get(c *crooked) int64         { return c.getV() }
func (crookedBadAccess) Set(c *crooked, v int64) error { return c.setV(v) }

type crookedGoodAccess struct{}

func (crookedGoodAccess) Offset() uintptr               { return unsafe.Offsetof(crooked{}.Good) }
func (crookedGoodAccess) Get(c *crooked) int64          { return c.getV() }
func (crookedGoodAccess) Set(c *crooked, v int64) error { return c.setV(v) }

// stray embeds a proxy whose descriptor is bound to a different owner type.
type stray struct {
	n int

	Borrowed prop.Bits[Counter, int, counterNAccess]
}

func TestVerify_CleanOwners(t *testing.T) {
	t.Parallel()

	require.NoError(t, prop.Verify[Rectangle]())
	require.NoError(t, prop.Verify[Counter]())
	require.NoError(t, prop.Verify[Vault]())
	require.NoError(t, prop.Verify[Basket]())
}

func TestVerify_OffsetMismatch(t *testing.T) {
	t.Parallel()

	err := prop.Verify[crooked]()
	require.Error(t, err)

	var oe prop.OffsetError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, "crooked", oe.Owner)
	assert.Equal(t, "Bad", oe.Field)
	assert.EqualValues(t, 0, oe.Declared)
	assert.NotEqual(t, oe.Declared, oe.Actual)

	// The correctly bound property contributes no error.
	assert.NotContains(t, err.Error(), `"Good"`)
}

func TestVerify_HostMismatch(t *testing.T) {
	t.Parallel()

	err := prop.Verify[stray]()
	require.Error(t, err)

	var he prop.HostError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, "stray", he.Owner)
	assert.Equal(t, "Borrowed", he.Field)
	assert.Contains(t, he.Host, "Counter")
}

func TestVerify_NonStructOwner(t *testing.T) {
	t.Parallel()

	err := prop.Verify[int]()
	require.Error(t, err)

	var nse prop.NotStructError
	require.True(t, errors.As(err, &nse))
}

func TestMustVerify(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { prop.MustVerify[Rectangle]() })
	require.Panics(t, func() { prop.MustVerify[crooked]() })
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	infos := prop.Describe[Rectangle]()
	require.Len(t, infos, 4)

	assert.Equal(t, "Width", infos[0].Name)
	assert.Equal(t, prop.ReadWrite, infos[0].Kind)
	assert.Equal(t, "float64", infos[0].Value.String())

	assert.Equal(t, "Area", infos[2].Name)
	assert.Equal(t, prop.ReadOnly, infos[2].Kind)

	vaultInfos := prop.Describe[Vault]()
	require.Len(t, vaultInfos, 1)
	assert.Equal(t, prop.WriteOnly, vaultInfos[0].Kind)

	assert.Nil(t, prop.Describe[string]())
}
