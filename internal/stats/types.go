// Package stats is the static catalog of mob and building attributes.
//
// Every concrete MobType and BuildingType maps to exactly one immutable
// record, built once on first lookup and shared by all callers. Misuse of
// the lookup contract (sentinel enumerants, mob-only accessors on a
// building, Rogue-only accessors on another mob) panics with a
// *ContractViolation.
package stats

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType is returned by ParseMobType and ParseBuildingType.
var ErrUnknownType = errors.New("stats: unknown type name")

// MobType identifies a mobile combat unit.
type MobType int

const (
	Swordsman MobType = iota
	Archer
	Giant
	Rogue

	NumMobTypes

	InvalidMobType
)

// Valid reports whether t is one of the concrete mob types.
func (t MobType) Valid() bool {
	return t >= 0 && t < NumMobTypes
}

// String returns mob type name.
func (t MobType) String() string {
	switch t {
	case Swordsman:
		return "Swordsman"
	case Archer:
		return "Archer"
	case Giant:
		return "Giant"
	case Rogue:
		return "Rogue"
	default:
		return "InvalidMobType"
	}
}

// BuildingType identifies a stationary structure.
type BuildingType int

const (
	Princess BuildingType = iota
	King

	NumBuildingTypes

	InvalidBuildingType
)

// Valid reports whether t is one of the concrete building types.
func (t BuildingType) Valid() bool {
	return t >= 0 && t < NumBuildingTypes
}

// String returns building type name.
func (t BuildingType) String() string {
	switch t {
	case Princess:
		return "Princess"
	case King:
		return "King"
	default:
		return "InvalidBuildingType"
	}
}

// TargetType is the category of entity a unit's attacks may select.
type TargetType int

const (
	TargetAny TargetType = iota
	TargetBuilding
	TargetMob
)

func (t TargetType) String() string {
	switch t {
	case TargetAny:
		return "Any"
	case TargetBuilding:
		return "Building"
	case TargetMob:
		return "Mob"
	default:
		return "Unknown"
	}
}

// DamageType tells whether an attack is delivered in contact or as a projectile.
type DamageType int

const (
	Melee DamageType = iota
	Ranged
)

func (d DamageType) String() string {
	switch d {
	case Melee:
		return "Melee"
	case Ranged:
		return "Ranged"
	default:
		return "Unknown"
	}
}

// Kind is the category tag carried by every record.
type Kind int

const (
	KindMob Kind = iota
	KindBuilding
)

func (k Kind) String() string {
	switch k {
	case KindMob:
		return "mob"
	case KindBuilding:
		return "building"
	default:
		return "unknown"
	}
}

// MobTypes returns every concrete mob type in declaration order.
func MobTypes() []MobType {
	types := make([]MobType, 0, NumMobTypes)
	for t := range NumMobTypes {
		types = append(types, t)
	}
	return types
}

// BuildingTypes returns every concrete building type in declaration order.
func BuildingTypes() []BuildingType {
	types := make([]BuildingType, 0, NumBuildingTypes)
	for t := range NumBuildingTypes {
		types = append(types, t)
	}
	return types
}

// ParseMobType resolves a case-insensitive mob name.
func ParseMobType(name string) (MobType, error) {
	for t := range NumMobTypes {
		if strings.EqualFold(name, t.String()) {
			return t, nil
		}
	}
	return InvalidMobType, fmt.Errorf("parsing mob type %q: %w", name, ErrUnknownType)
}

// ParseBuildingType resolves a case-insensitive building name.
func ParseBuildingType(name string) (BuildingType, error) {
	for t := range NumBuildingTypes {
		if strings.EqualFold(name, t.String()) {
			return t, nil
		}
	}
	return InvalidBuildingType, fmt.Errorf("parsing building type %q: %w", name, ErrUnknownType)
}
