package scheduling

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/clientedev/salasv2/models"
)

// ErrResolutionFailed signals that availability could not be computed
// because a store read failed. Callers must surface this instead of
// answering with every room free.
var ErrResolutionFailed = errors.New("availability resolution failed")

// RoomStore lists the classrooms considered by a resolution.
type RoomStore interface {
	ListClassrooms() ([]models.Classroom, error)
}

// ScheduleStore lists active schedule rows for a weekday. An empty shift
// means "any shift".
type ScheduleStore interface {
	ListActive(dayOfWeek int, shift string) ([]models.Schedule, error)
}

// Availability is the resolver output consumed by the presentation layer.
type Availability struct {
	AvailableRooms    []models.Classroom `json:"available_rooms"`
	OccupiedRooms     []models.Classroom `json:"occupied_rooms"`
	OccupiedSchedules []models.Schedule  `json:"occupied_schedules"`
	PeriodDescription string             `json:"period_description"`
	TotalRooms        int                `json:"total_rooms"`
}

// Resolver answers "which rooms are free" for a date and optional shift.
type Resolver struct {
	Rooms     RoomStore
	Schedules ScheduleStore
	Clock     Clock
}

func NewResolver(rooms RoomStore, schedules ScheduleStore, clock Clock) *Resolver {
	return &Resolver{Rooms: rooms, Schedules: schedules, Clock: clock}
}

// DayOfWeek converts a time to the stored 0=segunda .. 6=domingo index.
func DayOfWeek(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// ForDate partitions all rooms into available and occupied on the target
// date. shiftFilter may be one of the four shift labels; anything else
// (including "all" and the empty string) means no filter: for today the
// current shift is inferred from the clock, for other dates every shift
// counts.
func (r *Resolver) ForDate(target time.Time, shiftFilter string) (*Availability, error) {
	if !models.ValidShift(shiftFilter) {
		shiftFilter = ""
	}
	day := DayOfWeek(target)
	dateStr := target.Format("2006-01-02")

	rooms, err := r.Rooms.ListClassrooms()
	if err != nil {
		return nil, fmt.Errorf("%w: list classrooms: %v", ErrResolutionFailed, err)
	}

	// Domingo: a escola não abre. Nenhuma consulta de horário é feita.
	if day == 6 {
		return &Availability{
			AvailableRooms:    rooms,
			OccupiedRooms:     []models.Classroom{},
			OccupiedSchedules: []models.Schedule{},
			PeriodDescription: "Domingo - Escola fechada",
			TotalRooms:        len(rooms),
		}, nil
	}

	now := r.Clock.Now()
	isToday := now.Format("2006-01-02") == dateStr
	dayName := models.WeekdayName(day)

	var occupied []models.Schedule
	var description string

	switch {
	case shiftFilter != "":
		// Precise filter: only rows with exactly this shift, plus fullday
		// rows that span it (unless fullday itself was asked for).
		occupied, err = r.validSchedules(day, shiftFilter, dateStr)
		if err != nil {
			return nil, err
		}
		if shiftFilter != models.ShiftFullday {
			fullday, ferr := r.validSchedules(day, models.ShiftFullday, dateStr)
			if ferr != nil {
				return nil, ferr
			}
			occupied = append(occupied, fullday...)
		}
		description = fmt.Sprintf("%s - %s (Filtro Específico)", dayName, models.ShiftName(shiftFilter))

	case isToday:
		active := ActiveShifts(now.Hour(), now.Minute())
		if len(active) == 0 {
			return &Availability{
				AvailableRooms:    rooms,
				OccupiedRooms:     []models.Classroom{},
				OccupiedSchedules: []models.Schedule{},
				PeriodDescription: "Fora do horário de funcionamento",
				TotalRooms:        len(rooms),
			}, nil
		}
		primary := PrimaryShift(active)
		occupied, err = r.validSchedules(day, primary, dateStr)
		if err != nil {
			return nil, err
		}
		// Fullday rows span morning and afternoon, so they occupy the room
		// during those shifts right now. They never spill into night.
		if primary == models.ShiftMorning || primary == models.ShiftAfternoon {
			fullday, ferr := r.validSchedules(day, models.ShiftFullday, dateStr)
			if ferr != nil {
				return nil, ferr
			}
			occupied = append(occupied, fullday...)
		}
		names := make([]string, 0, len(active))
		for _, s := range active {
			names = append(names, models.ShiftName(s))
		}
		description = fmt.Sprintf("%s - %s (Agora)", dayName, strings.Join(names, ", "))

	default:
		// Future or past date with no filter: every shift counts.
		occupied, err = r.validSchedules(day, "", dateStr)
		if err != nil {
			return nil, err
		}
		description = fmt.Sprintf("%s - Todos os turnos", dayName)
	}

	occupiedIDs := make(map[uint]struct{}, len(occupied))
	for _, s := range occupied {
		occupiedIDs[s.ClassroomID] = struct{}{}
	}

	available := make([]models.Classroom, 0, len(rooms))
	taken := make([]models.Classroom, 0)
	for _, room := range rooms {
		if _, ok := occupiedIDs[room.ID]; ok {
			taken = append(taken, room)
		} else {
			available = append(available, room)
		}
	}

	return &Availability{
		AvailableRooms:    available,
		OccupiedRooms:     taken,
		OccupiedSchedules: occupied,
		PeriodDescription: description,
		TotalRooms:        len(rooms),
	}, nil
}

// validSchedules fetches active rows for the weekday (and shift, when not
// empty) and keeps the ones valid on the target date. Expired and future
// rows are dropped, not an error.
func (r *Resolver) validSchedules(day int, shift, date string) ([]models.Schedule, error) {
	rows, err := r.Schedules.ListActive(day, shift)
	if err != nil {
		return nil, fmt.Errorf("%w: list schedules: %v", ErrResolutionFailed, err)
	}
	valid := rows[:0:0]
	skipped := 0
	for _, s := range rows {
		if s.ValidOn(date) {
			valid = append(valid, s)
		} else {
			skipped++
		}
	}
	if skipped > 0 {
		log.Printf("availability: %d schedule(s) outside validity window on %s (day=%d shift=%q)", skipped, date, day, shift)
	}
	return valid, nil
}
