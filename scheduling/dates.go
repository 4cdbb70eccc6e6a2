package scheduling

import "time"

// GenerateDates expands a weekday pattern over an inclusive date range
// into the concrete YYYY-MM-DD dates it covers, in order. Weekdays use
// the stored 0=segunda .. 6=domingo convention. An empty result means
// the pattern never matched inside the range.
func GenerateDates(start, end time.Time, weekdays []int) []string {
	wanted := make(map[int]struct{}, len(weekdays))
	for _, w := range weekdays {
		wanted[w] = struct{}{}
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if _, ok := wanted[DayOfWeek(d)]; ok {
			dates = append(dates, d.Format("2006-01-02"))
		}
	}
	return dates
}
