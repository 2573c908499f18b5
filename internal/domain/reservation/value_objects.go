package reservation

import (
	"time"
)

const nightHours = 24

// StayRange is a check-in/check-out date pair. Dates are calendar
// days; the time-of-day portion is ignored.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) StayRange {
	return StayRange{
		checkIn:  truncateToDay(checkIn),
		checkOut: truncateToDay(checkOut),
	}
}

func (s StayRange) CheckIn() time.Time {
	return s.checkIn
}

func (s StayRange) CheckOut() time.Time {
	return s.checkOut
}

// Nights returns the number of billable nights. A same-day or
// inverted range clamps to one night rather than failing; the policy
// is intentional and covered by tests.
func (s StayRange) Nights() int64 {
	nights := int64(s.checkOut.Sub(s.checkIn).Hours() / nightHours)
	if nights <= 0 {
		return 1
	}
	return nights
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
