package stats

// Sheet is a flat, exported view of a record for printing and export.
// Attributes that do not apply to the record's category are left zero.
type Sheet struct {
	Name          string     `yaml:"name"`
	DisplayLetter string     `yaml:"display_letter"`
	Kind          string     `yaml:"kind"`
	Type          string     `yaml:"type"`
	ElixirCost    float64    `yaml:"elixir_cost,omitempty"`
	MaxHealth     int        `yaml:"max_health"`
	Speed         float64    `yaml:"speed,omitempty"`
	Size          float64    `yaml:"size"`
	Mass          float64    `yaml:"mass,omitempty"`
	TargetType    string     `yaml:"target_type"`
	AttackRange   float64    `yaml:"attack_range"`
	DamageType    string     `yaml:"damage_type"`
	Damage        int        `yaml:"damage"`
	AttackTime    float64    `yaml:"attack_time"`
	SightRadius   float64    `yaml:"sight_radius"`
	Rogue         RogueStats `yaml:"rogue,omitempty"`
}

// Sheet returns the printable view of m.
func (m *Mob) Sheet() Sheet {
	s := m.commonSheet()
	s.Kind = KindMob.String()
	s.Type = m.mobType.String()
	s.ElixirCost = m.elixirCost
	s.Speed = m.speed
	s.Mass = m.mass
	s.DamageType = m.damageType.String()
	s.Rogue, _ = m.Rogue()
	return s
}

// Sheet returns the printable view of b.
func (b *Building) Sheet() Sheet {
	s := b.commonSheet()
	s.Kind = KindBuilding.String()
	s.Type = b.buildingType.String()
	s.DamageType = b.DamageType().String()
	return s
}

func (r *record) commonSheet() Sheet {
	return Sheet{
		Name:          r.name,
		DisplayLetter: r.displayLetter,
		MaxHealth:     r.maxHealth,
		Size:          r.size,
		TargetType:    r.targetType.String(),
		AttackRange:   r.attackRange,
		Damage:        r.damage,
		AttackTime:    r.attackTime,
		SightRadius:   r.sightRadius,
	}
}
