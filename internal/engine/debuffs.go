package engine

// DebuffKind identifies a timed negative effect. Debuffs are stored as
// plain {kind, duration} records; the effect itself is interpreted here
// so hero state stays serializable.
type DebuffKind string

const (
	DebuffPoison  DebuffKind = "poison"
	DebuffCurse   DebuffKind = "curse"
	DebuffBurnout DebuffKind = "burnout"
)

// Debuff is an active negative effect on the hero. Duration counts down
// by one at each daily rollover; the effect applies on every rollover it
// is active for, including the one that expires it.
type Debuff struct {
	Kind     DebuffKind `json:"kind"`
	Duration int        `json:"duration"`
}

// ApplyDebuff returns the health damage a debuff deals at rollover.
func ApplyDebuff(kind DebuffKind) int {
	switch kind {
	case DebuffPoison:
		return 5
	case DebuffCurse:
		return 10
	case DebuffBurnout:
		return 15
	default:
		return 0
	}
}
