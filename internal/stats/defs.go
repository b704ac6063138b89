package stats

// Catalog values. Distances are in tiles, speeds in tiles per second,
// attack times in seconds. Order of each table must follow its enum.

var mobDefs = [...]Mob{
	{
		record: record{
			name:          "Swordsman",
			displayLetter: "S",
			maxHealth:     1452,
			size:          1.0,
			targetType:    TargetAny,
			attackRange:   0.5,
			damage:        167,
			attackTime:    1.2,
			sightRadius:   5.5,
		},
		mobType:    Swordsman,
		elixirCost: 3,
		speed:      1.0,
		mass:       6,
		damageType: Melee,
	},
	{
		record: record{
			name:          "Archer",
			displayLetter: "A",
			maxHealth:     254,
			size:          0.5,
			targetType:    TargetAny,
			attackRange:   5.0,
			damage:        89,
			attackTime:    1.2,
			sightRadius:   5.5,
		},
		mobType:    Archer,
		elixirCost: 3,
		speed:      1.0,
		mass:       3,
		damageType: Ranged,
	},
	{
		record: record{
			name:          "Giant",
			displayLetter: "G",
			maxHealth:     3275,
			size:          1.5,
			targetType:    TargetBuilding,
			attackRange:   1.0,
			damage:        211,
			attackTime:    1.5,
			sightRadius:   7.5,
		},
		mobType:    Giant,
		elixirCost: 5,
		speed:      0.75,
		mass:       18,
		damageType: Melee,
	},
	{
		record: record{
			name:          "Rogue",
			displayLetter: "R",
			maxHealth:     800,
			size:          0.75,
			targetType:    TargetAny,
			attackRange:   1.0,
			damage:        120,
			attackTime:    1.0,
			sightRadius:   6.0,
			rogue: &RogueStats{
				CanSpringAttack:    true,
				SpringRange:        3.0,
				SpringSpeed:        5.0,
				SpringAttackDamage: 240,
				PreferGiantRange:   4.0,
				HideDistance:       2.0,
			},
		},
		mobType:    Rogue,
		elixirCost: 3,
		speed:      1.25,
		mass:       4,
		damageType: Melee,
	},
}

var buildingDefs = [...]Building{
	{
		record: record{
			name:          "Princess",
			displayLetter: "P",
			maxHealth:     1400,
			size:          3.0,
			targetType:    TargetAny,
			attackRange:   7.5,
			damage:        50,
			attackTime:    0.8,
			sightRadius:   7.5,
		},
		buildingType: Princess,
	},
	{
		record: record{
			name:          "King",
			displayLetter: "K",
			maxHealth:     2400,
			size:          4.0,
			targetType:    TargetAny,
			attackRange:   7.0,
			damage:        50,
			attackTime:    1.0,
			sightRadius:   7.0,
		},
		buildingType: King,
	},
}
