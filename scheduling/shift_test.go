package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clientedev/salasv2/models"
)

func TestActiveShifts(t *testing.T) {
	cases := []struct {
		name   string
		hour   int
		minute int
		want   []string
	}{
		{"before opening", 7, 0, nil},
		{"morning start", 7, 30, []string{models.ShiftMorning}},
		{"morning and fullday", 8, 0, []string{models.ShiftMorning, models.ShiftFullday}},
		{"mid morning", 10, 15, []string{models.ShiftMorning, models.ShiftFullday}},
		{"morning end", 12, 0, []string{models.ShiftMorning, models.ShiftFullday}},
		{"lunch gap", 12, 30, []string{models.ShiftFullday}},
		{"afternoon and fullday", 13, 0, []string{models.ShiftAfternoon, models.ShiftFullday}},
		{"fullday end", 17, 0, []string{models.ShiftAfternoon, models.ShiftFullday}},
		{"afternoon only", 17, 30, []string{models.ShiftAfternoon}},
		{"afternoon end", 18, 0, []string{models.ShiftAfternoon}},
		{"between afternoon and night", 18, 15, nil},
		{"night start", 18, 30, []string{models.ShiftNight}},
		{"night end", 22, 30, []string{models.ShiftNight}},
		{"after closing", 22, 31, nil},
		{"midnight", 0, 0, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ActiveShifts(tc.hour, tc.minute))
		})
	}
}

func TestNightNeverOverlaps(t *testing.T) {
	for m := 0; m < 24*60; m++ {
		active := ActiveShifts(m/60, m%60)
		hasNight := false
		for _, s := range active {
			if s == models.ShiftNight {
				hasNight = true
			}
		}
		if hasNight {
			assert.Len(t, active, 1, "minute %d: night must be alone", m)
		}
	}
}

func TestPrimaryShift(t *testing.T) {
	assert.Equal(t, models.ShiftMorning, PrimaryShift([]string{models.ShiftMorning, models.ShiftFullday}))
	assert.Equal(t, models.ShiftAfternoon, PrimaryShift([]string{models.ShiftFullday, models.ShiftAfternoon}))
	assert.Equal(t, models.ShiftNight, PrimaryShift([]string{models.ShiftNight}))
	assert.Equal(t, models.ShiftFullday, PrimaryShift([]string{models.ShiftFullday}))
	assert.Equal(t, "", PrimaryShift(nil))
}
