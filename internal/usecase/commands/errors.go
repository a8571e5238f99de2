package commands

import "rentloop/internal/pkg/errs"

// Sentinels for the boundary layer. Handlers translate these to HTTP
// statuses; causes stay attached via errs.Mark.
var (
	// not found
	ErrRentalNotFound        = errs.New("rental not found")
	ErrItemNotFound          = errs.New("item not found")
	ErrUserNotFound          = errs.New("user not found")
	ErrPaymentMethodNotFound = errs.New("payment method not found")

	// forbidden
	ErrNotParticipant = errs.New("user is not a participant of this rental")
	ErrLenderOnly     = errs.New("action is restricted to the lender")
	ErrRenterOnly     = errs.New("action is restricted to the renter")
	ErrNotMethodOwner = errs.New("payment method belongs to another user")
	ErrOwnItem        = errs.New("cannot rent own item")
	ErrWrongRaterRole = errs.New("rating kind not allowed for this role")

	// conflict
	ErrAvailabilityConflict  = errs.New("rental range conflicts with existing booking")
	ErrAlreadyPaid           = errs.New("rental already paid")
	ErrAlreadyPaidOut        = errs.New("rental already paid out")
	ErrPayoutBeforePayment   = errs.New("payout requires renter payment first")
	ErrRatingSlotTaken       = errs.New("rating already submitted")
	ErrHandoverExists        = errs.New("handover already exists")
	ErrHandoverNotReady      = errs.New("rental not ready for this handover")
	ErrHandoverAlreadyAgreed = errs.New("handover already agreed by this party")
	ErrNotOpenOffer          = errs.New("rental is not an open offer")
	ErrEmailTaken            = errs.New("email already registered")

	// unauthorized
	ErrInvalidCredentials = errs.New("invalid email or password")

	// bad request
	ErrDomainValidation = errs.New("domain validation error")

	// payment boundary
	ErrChargeDeclined = errs.New("charge was declined")

	// internal
	ErrHandoverMissing         = errs.New("handover record missing despite passing precondition")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
