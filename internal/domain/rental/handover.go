package rental

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrHandoverExists   = errors.New("handover of this type already exists")
	ErrHandoverMissing  = errors.New("no handover of this type exists")
	ErrHandoverNotReady = errors.New("rental is not ready for this handover")
	ErrAlreadyAgreed    = errors.New("party has already agreed to this handover")
)

// Handover is one physical exchange (pickup or return). Each party agrees
// independently and exactly once per handover instance; the slot can be
// declined back to absent, discarding partial agreement.
type Handover struct {
	handoverType HandoverType
	pictures     []string
	comment      string
	agreedRenter *time.Time
	agreedLender *time.Time
}

func NewHandover(t HandoverType, pictures []string, comment string) (*Handover, error) {
	if !t.IsValid() {
		return nil, ErrInvalidHandover
	}
	comment = strings.TrimSpace(comment)
	if len(comment) > MaxHandoverCommentLength {
		return nil, ErrCommentTooLong
	}
	return &Handover{
		handoverType: t,
		pictures:     append([]string(nil), pictures...),
		comment:      comment,
	}, nil
}

func ReconstructHandover(t HandoverType, pictures []string, comment string, agreedRenter, agreedLender *time.Time) *Handover {
	return &Handover{
		handoverType: t,
		pictures:     pictures,
		comment:      comment,
		agreedRenter: agreedRenter,
		agreedLender: agreedLender,
	}
}

func (h *Handover) Type() HandoverType {
	return h.handoverType
}

func (h *Handover) Pictures() []string {
	return append([]string(nil), h.pictures...)
}

func (h *Handover) Comment() string {
	return h.comment
}

func (h *Handover) AgreedRenter() *time.Time {
	return h.agreedRenter
}

func (h *Handover) AgreedLender() *time.Time {
	return h.agreedLender
}

func (h *Handover) FullyAgreed() bool {
	return h.agreedRenter != nil && h.agreedLender != nil
}

func (h *Handover) AgreedCount() int {
	n := 0
	if h.agreedRenter != nil {
		n++
	}
	if h.agreedLender != nil {
		n++
	}
	return n
}

func (h *Handover) HasAgreed(role Role) bool {
	if role == RoleRenter {
		return h.agreedRenter != nil
	}
	return h.agreedLender != nil
}

func (h *Handover) agree(role Role, now time.Time) error {
	if h.HasAgreed(role) {
		return ErrAlreadyAgreed
	}
	t := now.UTC()
	if role == RoleRenter {
		h.agreedRenter = &t
	} else {
		h.agreedLender = &t
	}
	return nil
}

// HandoverPolicy decides when a handover slot may be created or modified.
// The default policy rejects ambiguous transitions; callers needing laxer
// rules plug their own.
type HandoverPolicy interface {
	CanCreate(r *Rental, t HandoverType) error
	CanModify(r *Rental, t HandoverType) error
}

type DefaultHandoverPolicy struct{}

func NewDefaultHandoverPolicy() HandoverPolicy {
	return DefaultHandoverPolicy{}
}

func (DefaultHandoverPolicy) CanCreate(r *Rental, t HandoverType) error {
	switch t {
	case HandoverPickup:
		if r.pickup != nil {
			return ErrHandoverExists
		}
		if !r.payment.PaidByRenter() {
			return ErrHandoverNotReady
		}
	case HandoverReturn:
		if r.returnHandover != nil {
			return ErrHandoverExists
		}
		if r.pickup == nil || !r.pickup.FullyAgreed() {
			return ErrHandoverNotReady
		}
	default:
		return ErrInvalidHandover
	}
	return nil
}

func (DefaultHandoverPolicy) CanModify(r *Rental, t HandoverType) error {
	if r.handoverOfType(t) == nil {
		return ErrHandoverMissing
	}
	return nil
}
