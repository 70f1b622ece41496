package calendar

// Stay is the projection-facing view of a booking: the room it reserves
// and the inclusive date interval it occupies. Conversion from richer
// booking models happens in the callers.
type Stay struct {
	ID          string
	Room        int
	Checkin     Date
	Checkout    Date
	CheckinTime string
}

// DateWithinStay reports whether day falls inside the stay interval.
// Both the check-in day and the check-out day count as occupied.
func DateWithinStay(checkin, checkout, day Date) bool {
	return !checkin.After(day) && !checkout.Before(day)
}

// RangeOverlaps reports whether the stay interval [checkin, checkout]
// intersects the query interval [start, end]. All bounds are inclusive.
func RangeOverlaps(checkin, checkout, start, end Date) bool {
	return !checkin.After(end) && !checkout.Before(start)
}

// StaysOverlappingDate filters stays down to those occupying the given
// day, preserving input order.
func StaysOverlappingDate(stays []Stay, day Date) []Stay {
	result := make([]Stay, 0, len(stays))
	for _, stay := range stays {
		if DateWithinStay(stay.Checkin, stay.Checkout, day) {
			result = append(result, stay)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// StaysOverlappingRange filters stays down to those intersecting the
// inclusive interval [start, end], preserving input order.
func StaysOverlappingRange(stays []Stay, start, end Date) []Stay {
	result := make([]Stay, 0, len(stays))
	for _, stay := range stays {
		if RangeOverlaps(stay.Checkin, stay.Checkout, start, end) {
			result = append(result, stay)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
