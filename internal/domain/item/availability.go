package item

import (
	"errors"
	"time"
)

var ErrInvalidSpan = errors.New("span start must not be after end")

// Span is an inclusive date range on an item's calendar.
type Span struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func NewSpan(from, to time.Time) (Span, error) {
	if from.After(to) {
		return Span{}, ErrInvalidSpan
	}
	return Span{From: from.UTC(), To: to.UTC()}, nil
}

// containsInstant is the boundary-inclusive membership test used for
// conflict checks.
func (s Span) containsInstant(t time.Time) bool {
	return !t.Before(s.From) && !t.After(s.To)
}

// blocksDay treats the end of a span as still blocked through the following
// day, so back-to-back bookings keep one buffer day between them.
func (s Span) blocksDay(day time.Time) bool {
	return !day.Before(s.From) && !day.After(s.To.Add(24*time.Hour))
}

// ConflictPolicy controls how a new range is tested against the blacklist.
// The historical check only tests the two endpoints of the new range: a range
// that entirely encloses an existing span, with neither endpoint inside it,
// slips through. DetectEnclosing closes that hole where a deployment opts in.
type ConflictPolicy struct {
	DetectEnclosing bool
}

// Availability is an item's bookable calendar: weekday defaults, whitelist
// spans overriding those defaults to available, and a blacklist of spans
// already committed to a rental.
type Availability struct {
	whitelist []Span
	blacklist []Span
	weekdays  map[time.Weekday]bool
}

func NewAvailability(weekdays []time.Weekday, whitelist, blacklist []Span) Availability {
	wd := make(map[time.Weekday]bool, len(weekdays))
	for _, d := range weekdays {
		wd[d] = true
	}
	return Availability{
		whitelist: append([]Span(nil), whitelist...),
		blacklist: append([]Span(nil), blacklist...),
		weekdays:  wd,
	}
}

func (a *Availability) Whitelist() []Span {
	return append([]Span(nil), a.whitelist...)
}

func (a *Availability) Blacklist() []Span {
	return append([]Span(nil), a.blacklist...)
}

func (a *Availability) Weekdays() []time.Weekday {
	days := make([]time.Weekday, 0, len(a.weekdays))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if a.weekdays[d] {
			days = append(days, d)
		}
	}
	return days
}

// IsDayAvailable answers for a single day: blacklisted days are never
// available, whitelisted days always are, everything else falls back to the
// weekday defaults.
func (a *Availability) IsDayAvailable(day time.Time) bool {
	for _, s := range a.blacklist {
		if s.blocksDay(day) {
			return false
		}
	}
	for _, s := range a.whitelist {
		if s.containsInstant(day) {
			return true
		}
	}
	return a.weekdays[day.Weekday()]
}

// RangeConflicts tests a candidate rental range against the committed
// blacklist under the given policy.
func (a *Availability) RangeConflicts(start, end time.Time, policy ConflictPolicy) bool {
	for _, s := range a.blacklist {
		if s.containsInstant(start) || s.containsInstant(end) {
			return true
		}
		if policy.DetectEnclosing && !start.After(s.From) && !end.Before(s.To) {
			return true
		}
	}
	return false
}

// Commit appends an accepted rental's range to the blacklist. Callers must
// have run RangeConflicts first; blacklist spans of one item never overlap.
func (a *Availability) Commit(start, end time.Time) {
	a.blacklist = append(a.blacklist, Span{From: start.UTC(), To: end.UTC()})
}
