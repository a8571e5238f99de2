package rental

// DeriveState computes the lifecycle state from the rental's accumulated
// facts. It is pure: same snapshot, same answer. Rules are evaluated top to
// bottom and the first match wins, so a closed rental stays CLOSED no matter
// how many ratings or handovers it also carries.
//
// The second return value reports whether any rule matched. When none does,
// the caller keeps the current state: OFFER, ACCEPTED and DECLINED are
// reached only by explicit action and cannot be re-derived from facts.
func DeriveState(r *Rental) (State, bool) {
	switch {
	case r.payment.PaidToLender():
		return StateClosed, true
	case r.itemRatingID != nil && r.renterRatingID != nil && r.lenderRatingID != nil:
		return StateRated, true
	case r.returnHandover != nil && r.returnHandover.FullyAgreed():
		return StateReturnConfirmed, true
	case r.returnHandover != nil && r.returnHandover.AgreedCount() == 1:
		return StateReturned, true
	case r.pickup != nil && r.pickup.FullyAgreed():
		return StatePickUpConfirmed, true
	case r.pickup != nil && r.pickup.AgreedCount() == 1:
		return StatePickedUp, true
	case r.payment.PaidByRenter():
		return StatePaid, true
	default:
		return "", false
	}
}
