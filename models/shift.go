package models

// Shift labels stored in schedule rows.
const (
	ShiftMorning   = "morning"
	ShiftAfternoon = "afternoon"
	ShiftNight     = "night"
	ShiftFullday   = "fullday"
)

// AllShifts in priority order: specific shifts first, fullday last.
var AllShifts = []string{ShiftMorning, ShiftAfternoon, ShiftNight, ShiftFullday}

var shiftNames = map[string]string{
	ShiftMorning:   "Manhã",
	ShiftAfternoon: "Tarde",
	ShiftNight:     "Noite",
	ShiftFullday:   "Integral",
}

// ShiftName returns the display name for a shift label, or the label
// itself when it is not one of the four known shifts.
func ShiftName(shift string) string {
	if n, ok := shiftNames[shift]; ok {
		return n
	}
	return shift
}

// ValidShift reports whether s is one of the four known shift labels.
func ValidShift(s string) bool {
	_, ok := shiftNames[s]
	return ok
}

// WeekdayNames indexed by day-of-week, 0=segunda .. 6=domingo.
var WeekdayNames = []string{"Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado", "Domingo"}

// WeekdayName returns the display name for a 0=Monday..6=Sunday index.
func WeekdayName(day int) string {
	if day < 0 || day >= len(WeekdayNames) {
		return ""
	}
	return WeekdayNames[day]
}
