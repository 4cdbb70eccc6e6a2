package scheduling

import "github.com/clientedev/salasv2/models"

// Shift windows in minutes since midnight, bounds inclusive.
// Morning 7:30-12:00, afternoon 13:00-18:00, night 18:30-22:30,
// fullday 8:00-17:00 (overlaps morning and afternoon by definition).
var shiftWindows = []struct {
	shift      string
	start, end int
}{
	{models.ShiftMorning, 450, 720},
	{models.ShiftAfternoon, 780, 1080},
	{models.ShiftNight, 1110, 1350},
	{models.ShiftFullday, 480, 1020},
}

// ActiveShifts returns every shift whose window contains the given clock
// time. The result may be empty (outside operating hours) or hold more
// than one label, since fullday overlaps morning and afternoon.
func ActiveShifts(hour, minute int) []string {
	m := hour*60 + minute
	var active []string
	for _, w := range shiftWindows {
		if w.start <= m && m <= w.end {
			active = append(active, w.shift)
		}
	}
	return active
}

// PrimaryShift picks the single shift that represents "now" when several
// windows overlap. Specific shifts win over fullday:
// morning > afternoon > night > fullday.
func PrimaryShift(shifts []string) string {
	for _, want := range models.AllShifts {
		for _, s := range shifts {
			if s == want {
				return want
			}
		}
	}
	return ""
}
