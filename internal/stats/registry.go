package stats

import (
	"fmt"
	"iter"
	"log/slog"
	"sync"
)

// registry is built once on first use and never mutated afterwards.
type registry struct {
	mobs      [NumMobTypes]*Mob
	buildings [NumBuildingTypes]*Building
}

var loadRegistry = sync.OnceValue(buildRegistry)

// buildRegistry indexes the definition tables by enum and checks that the
// mapping is total and bijective. A broken table is a programming error.
func buildRegistry() *registry {
	r := &registry{}

	for i := range mobDefs {
		def := &mobDefs[i]
		if !def.mobType.Valid() || r.mobs[def.mobType] != nil {
			panic(fmt.Sprintf("stats: mob table entry %d (%s) has invalid or duplicate type %d", i, def.name, def.mobType))
		}
		r.mobs[def.mobType] = def
	}
	for t, m := range r.mobs {
		if m == nil {
			panic(fmt.Sprintf("stats: no record for mob type %s", MobType(t)))
		}
	}

	for i := range buildingDefs {
		def := &buildingDefs[i]
		if !def.buildingType.Valid() || r.buildings[def.buildingType] != nil {
			panic(fmt.Sprintf("stats: building table entry %d (%s) has invalid or duplicate type %d", i, def.name, def.buildingType))
		}
		r.buildings[def.buildingType] = def
	}
	for t, b := range r.buildings {
		if b == nil {
			panic(fmt.Sprintf("stats: no record for building type %s", BuildingType(t)))
		}
	}

	slog.Info("loaded entity stats", "mobs", len(r.mobs), "buildings", len(r.buildings))
	return r
}

// LookupMob returns the shared record for t.
// A sentinel or out-of-range t panics with a *ContractViolation.
func LookupMob(t MobType) *Mob {
	if !t.Valid() {
		violate("LookupMob", fmt.Sprintf("MobType(%d)", int(t)), "not a concrete mob type")
	}
	return loadRegistry().mobs[t]
}

// LookupBuilding returns the shared record for t.
// A sentinel or out-of-range t panics with a *ContractViolation.
func LookupBuilding(t BuildingType) *Building {
	if !t.Valid() {
		violate("LookupBuilding", fmt.Sprintf("BuildingType(%d)", int(t)), "not a concrete building type")
	}
	return loadRegistry().buildings[t]
}

// FindMob is LookupMob for callers holding an enumerant they did not produce.
// The error wraps ErrContractViolation.
func FindMob(t MobType) (*Mob, error) {
	var m *Mob
	if err := Guard(func() { m = LookupMob(t) }); err != nil {
		return nil, err
	}
	return m, nil
}

// FindBuilding is the non-panicking form of LookupBuilding.
func FindBuilding(t BuildingType) (*Building, error) {
	var b *Building
	if err := Guard(func() { b = LookupBuilding(t) }); err != nil {
		return nil, err
	}
	return b, nil
}

// Mobs returns every mob record in MobType order.
func Mobs() []*Mob {
	r := loadRegistry()
	out := make([]*Mob, len(r.mobs))
	copy(out, r.mobs[:])
	return out
}

// Buildings returns every building record in BuildingType order.
func Buildings() []*Building {
	r := loadRegistry()
	out := make([]*Building, len(r.buildings))
	copy(out, r.buildings[:])
	return out
}

// All yields every mob record followed by every building record.
func All() iter.Seq[Stats] {
	return func(yield func(Stats) bool) {
		r := loadRegistry()
		for _, m := range r.mobs {
			if !yield(m) {
				return
			}
		}
		for _, b := range r.buildings {
			if !yield(b) {
				return
			}
		}
	}
}
