package stats

// Mob is the record of a mobile combat unit.
type Mob struct {
	record

	mobType    MobType
	elixirCost float64
	speed      float64
	mass       float64
	damageType DamageType
}

// RogueStats holds the spring-attack values only the Rogue carries.
type RogueStats struct {
	CanSpringAttack    bool    `yaml:"can_spring_attack"`
	SpringRange        float64 `yaml:"spring_range"`
	SpringSpeed        float64 `yaml:"spring_speed"`
	SpringAttackDamage float64 `yaml:"spring_attack_damage"`
	PreferGiantRange   float64 `yaml:"prefer_giant_range"`
	HideDistance       float64 `yaml:"hide_distance"`
}

func (m *Mob) Kind() Kind             { return KindMob }
func (m *Mob) MobType() MobType       { return m.mobType }
func (m *Mob) ElixirCost() float64    { return m.elixirCost }
func (m *Mob) Speed() float64         { return m.speed }
func (m *Mob) Mass() float64          { return m.mass }
func (m *Mob) DamageType() DamageType { return m.damageType }

// BuildingType always panics: a mob has no building identity.
func (m *Mob) BuildingType() BuildingType {
	violate("BuildingType", m.name, "record is a mob")
	return InvalidBuildingType
}

// Rogue returns a copy of the spring-attack values, ok is false for every mob but the Rogue.
func (m *Mob) Rogue() (RogueStats, bool) {
	if m.rogue == nil {
		return RogueStats{}, false
	}
	return *m.rogue, true
}
