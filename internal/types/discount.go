package types

// DiscountType represents the kind of reduction a discount rule applies
type DiscountType string

const (
	// DiscountTypeFixed subtracts a fixed amount from the base price
	DiscountTypeFixed DiscountType = "fixed"
	// DiscountTypePercentage subtracts a percentage of the base price
	DiscountTypePercentage DiscountType = "percentage"
)

func (t DiscountType) Validate() bool {
	return t == DiscountTypeFixed || t == DiscountTypePercentage
}
