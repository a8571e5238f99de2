package rental

import "errors"

var (
	ErrInvalidState     = errors.New("invalid rental state")
	ErrInvalidRole      = errors.New("invalid rental role")
	ErrInvalidInsurance = errors.New("unsupported insurance type")
	ErrInvalidHandover  = errors.New("invalid handover type")
)

// State is the coarse lifecycle state of a rental. OFFER and DECLINED are
// reached only by explicit lender action; everything from PAID onward is
// derived from accumulated facts (see DeriveState).
type State string

const (
	StateOffer           State = "offer"
	StateAccepted        State = "accepted"
	StateDeclined        State = "declined"
	StatePaid            State = "paid"
	StatePickedUp        State = "picked_up"
	StatePickUpConfirmed State = "pick_up_confirmed"
	StateReturned        State = "returned"
	StateReturnConfirmed State = "return_confirmed"
	StateRated           State = "rated"
	StateClosed          State = "closed"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateOffer, StateAccepted, StateDeclined, StatePaid,
		StatePickedUp, StatePickUpConfirmed, StateReturned,
		StateReturnConfirmed, StateRated, StateClosed:
		return true
	default:
		return false
	}
}

func NewState(s string) (State, error) {
	state := State(s)
	if !state.IsValid() {
		return "", ErrInvalidState
	}
	return state, nil
}

// Role is derived per rental by matching the caller against the stored
// participant ids. A user is never both for the same rental.
type Role string

const (
	RoleRenter Role = "renter"
	RoleLender Role = "lender"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleRenter, RoleLender:
		return true
	default:
		return false
	}
}

func (r Role) Other() Role {
	if r == RoleRenter {
		return RoleLender
	}
	return RoleRenter
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

type HandoverType string

const (
	HandoverPickup HandoverType = "pickup"
	HandoverReturn HandoverType = "return"
)

func (t HandoverType) String() string {
	return string(t)
}

func (t HandoverType) IsValid() bool {
	switch t {
	case HandoverPickup, HandoverReturn:
		return true
	default:
		return false
	}
}

func NewHandoverType(s string) (HandoverType, error) {
	t := HandoverType(s)
	if !t.IsValid() {
		return "", ErrInvalidHandover
	}
	return t, nil
}

type InsuranceType string

const (
	InsuranceNone    InsuranceType = "none"
	InsuranceBasic   InsuranceType = "basic"
	InsurancePremium InsuranceType = "premium"
)

// Insurance premium in percent of the rental amount, floored to whole cents.
var insuranceRatePercent = map[InsuranceType]int64{
	InsuranceNone:    0,
	InsuranceBasic:   10,
	InsurancePremium: 20,
}

func (i InsuranceType) String() string {
	return string(i)
}

func (i InsuranceType) IsValid() bool {
	switch i {
	case InsuranceNone, InsuranceBasic, InsurancePremium:
		return true
	default:
		return false
	}
}

func (i InsuranceType) RatePercent() int64 {
	return insuranceRatePercent[i]
}

func NewInsuranceType(s string) (InsuranceType, error) {
	t := InsuranceType(s)
	if !t.IsValid() {
		return "", ErrInvalidInsurance
	}
	return t, nil
}
