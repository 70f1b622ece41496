package calendar

import "fmt"

// DefaultRooms is the room set of the reference two-room hotel.
var DefaultRooms = []int{1, 2}

// UnknownRoomError reports a stay whose room is outside the configured
// room set. Such data is a store-integrity problem and is surfaced to
// the caller rather than silently dropped.
type UnknownRoomError struct {
	StayID string
	Room   int
}

// Error implements the error interface.
func (e *UnknownRoomError) Error() string {
	return fmt.Sprintf("calendar: stay %s references unknown room %d", e.StayID, e.Room)
}

// RoomOccupancy is the derived state of a single room on a single day.
type RoomOccupancy struct {
	Room int
	// Count is the number of stays occupying the room that day.
	// Zero means vacant; two or more is a collision.
	Count int
	// CheckinTime is the display hint for the cell: the check-in time
	// of the first occupying stay in input order. Empty when vacant.
	CheckinTime string
}

// Occupied reports whether at least one stay occupies the room.
func (o RoomOccupancy) Occupied() bool {
	return o.Count > 0
}

// Collision reports whether more than one stay occupies the room. The
// threshold is strictly greater than one and is not configurable.
func (o RoomOccupancy) Collision() bool {
	return o.Count > 1
}

// DayVariant identifies the rendering treatment for a calendar day in
// the two-room layout. Room1/Room2 refer to the first and second rooms
// of the configured set.
type DayVariant int

const (
	VariantEmpty DayVariant = iota
	VariantRoom1Only
	VariantRoom2Only
	VariantBothOccupied
)

// String returns a stable label for logging.
func (v DayVariant) String() string {
	switch v {
	case VariantRoom1Only:
		return "room1_only"
	case VariantRoom2Only:
		return "room2_only"
	case VariantBothOccupied:
		return "both_occupied"
	default:
		return "empty"
	}
}

// DayOccupancy is the per-day projection consumed by calendar rendering
// and interaction decisions.
type DayOccupancy struct {
	Day Date
	// Rooms holds one entry per configured room, in configuration order.
	Rooms []RoomOccupancy
	// Stays is the complete flat list of the day's stays, unfiltered by
	// room and in input order. Click handlers receive this list as-is;
	// downstream deletion UI re-splits by room if needed.
	Stays []Stay
}

// Interactive reports whether the day reacts to clicks: any occupied
// room makes the day clickable, an empty day is a no-op.
func (d DayOccupancy) Interactive() bool {
	return len(d.Stays) > 0
}

// Variant folds the first two configured rooms into one of the four
// rendering variants.
func (d DayOccupancy) Variant() DayVariant {
	first := len(d.Rooms) > 0 && d.Rooms[0].Occupied()
	second := len(d.Rooms) > 1 && d.Rooms[1].Occupied()
	switch {
	case first && second:
		return VariantBothOccupied
	case first:
		return VariantRoom1Only
	case second:
		return VariantRoom2Only
	default:
		return VariantEmpty
	}
}

// ProjectDay derives the occupancy state of a calendar day from the
// stays overlapping it. The stays argument may be any superset of the
// day's stays; entries not overlapping the day are ignored. The result
// is deterministic for a given input order, keeping rendering stable
// across re-renders.
func ProjectDay(stays []Stay, day Date, rooms []int) (DayOccupancy, error) {
	if len(rooms) == 0 {
		rooms = DefaultRooms
	}

	known := make(map[int]bool, len(rooms))
	for _, room := range rooms {
		known[room] = true
	}

	dayStays := StaysOverlappingDate(stays, day)
	for _, stay := range dayStays {
		if !known[stay.Room] {
			return DayOccupancy{}, &UnknownRoomError{StayID: stay.ID, Room: stay.Room}
		}
	}

	states := make([]RoomOccupancy, 0, len(rooms))
	for _, room := range rooms {
		state := RoomOccupancy{Room: room}
		for _, stay := range dayStays {
			if stay.Room != room {
				continue
			}
			if state.Count == 0 {
				state.CheckinTime = stay.CheckinTime
			}
			state.Count++
		}
		states = append(states, state)
	}

	return DayOccupancy{Day: day, Rooms: states, Stays: dayStays}, nil
}
