package rental

import (
	"errors"
	"time"
)

const (
	MinRentalDays = 1
	MaxRentalDays = 90

	MaxHandoverCommentLength = 1000
	MaxMessageLength         = 2000
)

var (
	ErrInvalidPeriod       = errors.New("start must be before end")
	ErrUnsupportedDuration = errors.New("unsupported rental duration")
	ErrNegativeAmount      = errors.New("amount cannot be negative")
	ErrCommentTooLong      = errors.New("comment exceeds maximum length")
	ErrEmptyMessage        = errors.New("message text cannot be empty")
	ErrMessageTooLong      = errors.New("message text exceeds maximum length")
)

// Period is the rented date range, half-open [start, end). Durations are
// counted in whole days.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if !start.Before(end) {
		return Period{}, ErrInvalidPeriod
	}

	p := Period{start: start.UTC(), end: end.UTC()}
	days := p.Days()
	if days < MinRentalDays || days > MaxRentalDays {
		return Period{}, ErrUnsupportedDuration
	}
	return p, nil
}

func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

// Days rounds partial days up: a range covering any part of a day books the
// whole day.
func (p Period) Days() int {
	d := p.end.Sub(p.start)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}
