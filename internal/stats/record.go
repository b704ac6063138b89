package stats

// Stats is the accessor contract shared by every record.
//
// Accessors that do not apply to the record's category (MobType on a
// building, BuildingType on a mob, ElixirCost/Speed/Mass on a building)
// and the spring accessors on anything but the Rogue panic with a
// *ContractViolation. CanSpringAttack is always safe to call.
type Stats interface {
	Kind() Kind
	MobType() MobType
	BuildingType() BuildingType

	ElixirCost() float64
	MaxHealth() int
	Speed() float64
	Size() float64
	Mass() float64
	TargetType() TargetType
	AttackRange() float64
	DamageType() DamageType
	Damage() int
	AttackTime() float64
	SightRadius() float64
	Name() string
	DisplayLetter() string

	CanSpringAttack() bool
	SpringRange() float64
	SpringSpeed() float64
	SpringAttackDamage() float64
	PreferGiantRange() float64
	HideDistance() float64
}

var (
	_ Stats = (*Mob)(nil)
	_ Stats = (*Building)(nil)
)

// record holds the attributes every category carries.
type record struct {
	name          string
	displayLetter string
	maxHealth     int
	size          float64
	targetType    TargetType
	attackRange   float64
	damage        int
	attackTime    float64 // seconds between attacks
	sightRadius   float64

	rogue *RogueStats // nil for everything but the Rogue
}

func (r *record) MaxHealth() int         { return r.maxHealth }
func (r *record) Size() float64          { return r.size }
func (r *record) TargetType() TargetType { return r.targetType }
func (r *record) AttackRange() float64   { return r.attackRange }
func (r *record) Damage() int            { return r.damage }
func (r *record) AttackTime() float64    { return r.attackTime }
func (r *record) SightRadius() float64   { return r.sightRadius }
func (r *record) Name() string           { return r.name }
func (r *record) DisplayLetter() string  { return r.displayLetter }

// CanSpringAttack reports whether the spring accessors may be called.
func (r *record) CanSpringAttack() bool {
	return r.rogue != nil && r.rogue.CanSpringAttack
}

func (r *record) SpringRange() float64 {
	return r.mustRogue("SpringRange").SpringRange
}

func (r *record) SpringSpeed() float64 {
	return r.mustRogue("SpringSpeed").SpringSpeed
}

func (r *record) SpringAttackDamage() float64 {
	return r.mustRogue("SpringAttackDamage").SpringAttackDamage
}

func (r *record) PreferGiantRange() float64 {
	return r.mustRogue("PreferGiantRange").PreferGiantRange
}

func (r *record) HideDistance() float64 {
	return r.mustRogue("HideDistance").HideDistance
}

func (r *record) mustRogue(op string) *RogueStats {
	if r.rogue == nil {
		violate(op, r.name, "record is not a Rogue")
	}
	return r.rogue
}
