package stats

// Building is the record of a stationary structure.
// Buildings never melee: DamageType is always Ranged.
type Building struct {
	record

	buildingType BuildingType
}

func (b *Building) Kind() Kind                 { return KindBuilding }
func (b *Building) BuildingType() BuildingType { return b.buildingType }
func (b *Building) DamageType() DamageType     { return Ranged }

// MobType always panics: a building has no mob identity.
func (b *Building) MobType() MobType {
	violate("MobType", b.name, "record is a building")
	return InvalidMobType
}

func (b *Building) ElixirCost() float64 {
	violate("ElixirCost", b.name, "buildings are not deployed with elixir")
	return 0
}

func (b *Building) Speed() float64 {
	violate("Speed", b.name, "buildings do not move")
	return 0
}

func (b *Building) Mass() float64 {
	violate("Mass", b.name, "buildings have no mass")
	return 0
}
