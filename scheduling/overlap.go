package scheduling

import "github.com/clientedev/salasv2/models"

// Slot is the date-range part of a schedule proposal or existing row.
// Empty StartDate or EndDate means the slot is permanent.
type Slot struct {
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}

func (s Slot) permanent() bool {
	return s.StartDate == "" || s.EndDate == ""
}

// SlotOf extracts the date range of an existing schedule row.
func SlotOf(s models.Schedule) Slot {
	return Slot{StartDate: s.StartDate, EndDate: s.EndDate}
}

// Overlaps decides whether two slots on the same room, weekday and shift
// conflict. Two dated slots conflict when their ranges intersect
// (a.start <= b.end AND a.end >= b.start, lexical on ISO dates). A
// permanent slot conflicts with everything.
func Overlaps(a, b Slot) bool {
	if a.permanent() || b.permanent() {
		return true
	}
	return a.StartDate <= b.EndDate && a.EndDate >= b.StartDate
}

// Conflicts reports whether the proposed slot collides with any existing
// slot. Same inputs always give the same answer; callers skip the
// proposal on conflict instead of failing the whole batch.
func Conflicts(proposed Slot, existing []Slot) bool {
	for _, e := range existing {
		if Overlaps(proposed, e) {
			return true
		}
	}
	return false
}
