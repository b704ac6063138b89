package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMob_BuildingTypeViolates(t *testing.T) {
	t.Parallel()

	for _, m := range Mobs() {
		t.Run(m.Name(), func(t *testing.T) {
			t.Parallel()

			err := Guard(func() { m.BuildingType() })
			require.ErrorIs(t, err, ErrContractViolation)

			var cv *ContractViolation
			require.ErrorAs(t, err, &cv)
			assert.Equal(t, "BuildingType", cv.Op)
			assert.Equal(t, m.Name(), cv.Record)
		})
	}
}

func TestBuilding_MobOnlyAccessorsViolate(t *testing.T) {
	t.Parallel()

	for _, b := range Buildings() {
		accessors := map[string]func(){
			"MobType":    func() { b.MobType() },
			"ElixirCost": func() { b.ElixirCost() },
			"Speed":      func() { b.Speed() },
			"Mass":       func() { b.Mass() },
		}
		for op, fn := range accessors {
			t.Run(b.Name()+"/"+op, func(t *testing.T) {
				t.Parallel()

				err := Guard(fn)
				require.ErrorIs(t, err, ErrContractViolation)

				var cv *ContractViolation
				require.ErrorAs(t, err, &cv)
				assert.Equal(t, op, cv.Op)
			})
		}
	}
}

func TestRogueOnlyAccessors_ViolateOnOtherRecords(t *testing.T) {
	t.Parallel()

	var targets []Stats
	for _, mt := range []MobType{Swordsman, Archer, Giant} {
		targets = append(targets, LookupMob(mt))
	}
	for _, b := range Buildings() {
		targets = append(targets, b)
	}

	for _, s := range targets {
		accessors := map[string]func(){
			"SpringRange":        func() { s.SpringRange() },
			"SpringSpeed":        func() { s.SpringSpeed() },
			"SpringAttackDamage": func() { s.SpringAttackDamage() },
			"PreferGiantRange":   func() { s.PreferGiantRange() },
			"HideDistance":       func() { s.HideDistance() },
		}
		for op, fn := range accessors {
			t.Run(s.Name()+"/"+op, func(t *testing.T) {
				t.Parallel()

				assert.NotPanics(t, func() { s.CanSpringAttack() })
				assert.ErrorIs(t, Guard(fn), ErrContractViolation)
			})
		}
	}
}

func TestGuard(t *testing.T) {
	t.Parallel()

	t.Run("no panic", func(t *testing.T) {
		t.Parallel()

		called := false
		err := Guard(func() { called = true })
		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("violation", func(t *testing.T) {
		t.Parallel()

		err := Guard(func() { violate("Op", "Rec", "why") })
		assert.EqualError(t, err, "stats: contract violation: Op on Rec: why")
	})

	t.Run("foreign panic propagates", func(t *testing.T) {
		t.Parallel()

		foreign := errors.New("boom")
		assert.PanicsWithValue(t, foreign, func() {
			_ = Guard(func() { panic(foreign) })
		})
	})
}
