package types

// RentalStatus represents the lifecycle state of a rental.
// RESERVED → PENDING → ACTIVE → {COMPLETED | CANCELLED};
// COMPLETED and CANCELLED are terminal.
type RentalStatus string

const (
	RentalStatusReserved  RentalStatus = "RESERVED"
	RentalStatusPending   RentalStatus = "PENDING"
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusCompleted RentalStatus = "COMPLETED"
	RentalStatusCancelled RentalStatus = "CANCELLED"
)

func (s RentalStatus) Validate() bool {
	switch s {
	case RentalStatusReserved, RentalStatusPending, RentalStatusActive,
		RentalStatusCompleted, RentalStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from s.
func (s RentalStatus) IsTerminal() bool {
	return s == RentalStatusCompleted || s == RentalStatusCancelled
}

// CanTransitionTo encodes the legal transitions of the rental state machine.
// Cancellation is only allowed before check-in; an in-progress rental must
// go through the early-return path instead.
func (s RentalStatus) CanTransitionTo(target RentalStatus) bool {
	switch target {
	case RentalStatusPending:
		return s == RentalStatusReserved
	case RentalStatusActive:
		return s == RentalStatusPending
	case RentalStatusCompleted:
		return s == RentalStatusActive
	case RentalStatusCancelled:
		return s == RentalStatusReserved || s == RentalStatusPending
	}
	return false
}

// BlocksCalendar reports whether a rental in this status blocks its date
// range in the booking calendar.
func (s RentalStatus) BlocksCalendar() bool {
	return s == RentalStatusReserved || s == RentalStatusPending || s == RentalStatusActive
}

// BlocksBike reports whether a rental in this status physically blocks the
// bike's availability flag. Only a checked-in rental does.
func (s RentalStatus) BlocksBike() bool {
	return s == RentalStatusActive
}

// DepositStatus tracks what happened to the security deposit of a rental.
type DepositStatus string

const (
	DepositStatusHeld     DepositStatus = "HELD"
	DepositStatusReleased DepositStatus = "RELEASED"
	DepositStatusPartial  DepositStatus = "PARTIAL"
	DepositStatusRetained DepositStatus = "RETAINED"
)
