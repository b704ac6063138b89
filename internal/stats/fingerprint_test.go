package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_Stable(t *testing.T) {
	t.Parallel()

	first := Fingerprint()
	assert.Equal(t, first, Fingerprint())
	assert.NotEqual(t, [32]byte{}, first)

	hex := FingerprintHex()
	assert.Len(t, hex, 64)
	assert.Equal(t, hex, FingerprintHex())
}

func TestEncodeCatalog_Deterministic(t *testing.T) {
	t.Parallel()

	a := encodeCatalog()
	b := encodeCatalog()
	require.NotEmpty(t, a)
	assert.Equal(t, a, b)
}

func TestSheet(t *testing.T) {
	t.Parallel()

	rogue := LookupMob(Rogue).Sheet()
	assert.Equal(t, "mob", rogue.Kind)
	assert.Equal(t, "Rogue", rogue.Type)
	assert.Equal(t, "Melee", rogue.DamageType)
	assert.True(t, rogue.Rogue.CanSpringAttack)

	archer := LookupMob(Archer).Sheet()
	assert.Zero(t, archer.Rogue)
	assert.Equal(t, "Ranged", archer.DamageType)
	assert.Equal(t, LookupMob(Archer).ElixirCost(), archer.ElixirCost)

	king := LookupBuilding(King).Sheet()
	assert.Equal(t, "building", king.Kind)
	assert.Equal(t, "King", king.Type)
	assert.Equal(t, "Ranged", king.DamageType)
	assert.Zero(t, king.ElixirCost)
	assert.Zero(t, king.Speed)
	assert.Zero(t, king.Mass)
	assert.Zero(t, king.Rogue)
}
