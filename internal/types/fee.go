package types

// EarlyReturnFeeType is the policy used to charge for returning a rental
// before its scheduled end.
type EarlyReturnFeeType string

const (
	EarlyReturnFeeTypeNone       EarlyReturnFeeType = "NONE"
	EarlyReturnFeeTypePercentage EarlyReturnFeeType = "PERCENTAGE"
	EarlyReturnFeeTypeFixed      EarlyReturnFeeType = "FIXED"
)

func (t EarlyReturnFeeType) Validate() bool {
	switch t {
	case EarlyReturnFeeTypeNone, EarlyReturnFeeTypePercentage, EarlyReturnFeeTypeFixed:
		return true
	}
	return false
}
