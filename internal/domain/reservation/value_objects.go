package reservation

import (
	"errors"
	"time"
)

var (
	ErrInvalidStayPeriod = errors.New("departure date must be after arrival date")
	ErrInvalidPartySize  = errors.New("party must include at least one adult")
)

// StayPeriod is a date range at day granularity. Times are normalized to
// midnight UTC so that night counting is not affected by wall-clock components.
type StayPeriod struct {
	arrival   time.Time
	departure time.Time
}

func NewStayPeriod(arrival, departure time.Time) (StayPeriod, error) {
	a := truncateToDay(arrival)
	d := truncateToDay(departure)
	if !d.After(a) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{arrival: a, departure: d}, nil
}

func (p StayPeriod) Arrival() time.Time {
	return p.arrival
}

func (p StayPeriod) Departure() time.Time {
	return p.departure
}

func (p StayPeriod) Nights() int {
	nights := int(p.departure.Sub(p.arrival).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return nights
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type PartySize struct {
	adults   int
	children int
}

func NewPartySize(adults, children int) (PartySize, error) {
	if adults < 1 || children < 0 {
		return PartySize{}, ErrInvalidPartySize
	}
	return PartySize{adults: adults, children: children}, nil
}

func (p PartySize) Adults() int {
	return p.adults
}

func (p PartySize) Children() int {
	return p.children
}

func (p PartySize) Total() int {
	return p.adults + p.children
}
