package types

// DamageLevel is the severity of bike damage reported at return time.
// It drives the deposit retention lookup.
type DamageLevel string

const (
	DamageLevelNone      DamageLevel = "NONE"
	DamageLevelMinor     DamageLevel = "MINOR"
	DamageLevelMajor     DamageLevel = "MAJOR"
	DamageLevelTotalLoss DamageLevel = "TOTAL_LOSS"
)

func (d DamageLevel) Validate() bool {
	switch d {
	case DamageLevelNone, DamageLevelMinor, DamageLevelMajor, DamageLevelTotalLoss:
		return true
	}
	return false
}
