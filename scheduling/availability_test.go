package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clientedev/salasv2/models"
)

type fakeRooms struct {
	rooms []models.Classroom
	err   error
}

func (f fakeRooms) ListClassrooms() ([]models.Classroom, error) { return f.rooms, f.err }

type fakeSchedules struct {
	rows  []models.Schedule
	err   error
	calls int
}

func (f *fakeSchedules) ListActive(day int, shift string) ([]models.Schedule, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Schedule
	for _, s := range f.rows {
		if !s.IsActive || s.DayOfWeek != day {
			continue
		}
		if shift != "" && s.Shift != shift {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// 2024-01-01 é uma segunda-feira.
func date(day int, hour, minute int) time.Time {
	return time.Date(2024, 1, day, hour, minute, 0, 0, time.UTC)
}

func testRooms() []models.Classroom {
	return []models.Classroom{
		{ID: 1, Name: "Sala DEV"},
		{ID: 2, Name: "Sala Jogos"},
	}
}

func roomIDs(rooms []models.Classroom) []uint {
	ids := make([]uint, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	return ids
}

func newTestResolver(rows []models.Schedule, now time.Time) *Resolver {
	return NewResolver(
		fakeRooms{rooms: testRooms()},
		&fakeSchedules{rows: rows},
		fixedClock{t: now},
	)
}

func TestDayOfWeek(t *testing.T) {
	assert.Equal(t, 0, DayOfWeek(date(1, 0, 0)))  // segunda
	assert.Equal(t, 5, DayOfWeek(date(6, 0, 0)))  // sábado
	assert.Equal(t, 6, DayOfWeek(date(7, 0, 0)))  // domingo
}

func TestSundayAlwaysFree(t *testing.T) {
	// Mesmo com um horário permanente no domingo, a escola está fechada.
	rows := []models.Schedule{
		{ID: 1, ClassroomID: 1, DayOfWeek: 6, Shift: models.ShiftMorning, IsActive: true},
	}
	r := newTestResolver(rows, date(7, 10, 0))

	got, err := r.ForDate(date(7, 10, 0), "")
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2}, roomIDs(got.AvailableRooms))
	assert.Empty(t, got.OccupiedRooms)
	assert.Empty(t, got.OccupiedSchedules)
	assert.Equal(t, "Domingo - Escola fechada", got.PeriodDescription)
	assert.Equal(t, 2, got.TotalRooms)
}

func TestFulldayConflictsWithMorningFilter(t *testing.T) {
	// Sala 1 tem turma integral válida de 01 a 31 de janeiro nas segundas.
	rows := []models.Schedule{
		{ID: 1, ClassroomID: 1, DayOfWeek: 0, Shift: models.ShiftFullday,
			StartDate: "2024-01-01", EndDate: "2024-01-31", IsActive: true},
	}
	// relógio em outro dia: o filtro explícito não depende de "hoje"
	r := newTestResolver(rows, date(2, 10, 0))

	got, err := r.ForDate(date(15, 0, 0), models.ShiftMorning)
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, roomIDs(got.OccupiedRooms))
	assert.Equal(t, []uint{2}, roomIDs(got.AvailableRooms))
	assert.Equal(t, "Segunda - Manhã (Filtro Específico)", got.PeriodDescription)
}

func TestNightNeverConflictsWithMorning(t *testing.T) {
	// Sala 1 só tem turma de noite (permanente) nas terças.
	rows := []models.Schedule{
		{ID: 1, ClassroomID: 1, DayOfWeek: 1, Shift: models.ShiftNight, IsActive: true},
	}
	r := newTestResolver(rows, date(2, 10, 0))

	got, err := r.ForDate(date(2, 0, 0), models.ShiftMorning)
	require.NoError(t, err)
	assert.Empty(t, got.OccupiedRooms)
	assert.Equal(t, []uint{1, 2}, roomIDs(got.AvailableRooms))
}

func TestFulldayFilterDoesNotDoubleCount(t *testing.T) {
	rows := []models.Schedule{
		{ID: 1, ClassroomID: 1, DayOfWeek: 0, Shift: models.ShiftFullday, IsActive: true},
	}
	r := newTestResolver(rows, date(2, 10, 0))

	got, err := r.ForDate(date(15, 0, 0), models.ShiftFullday)
	require.NoError(t, err)
	assert.Len(t, got.OccupiedSchedules, 1)
	assert.Equal(t, []uint{1}, roomIDs(got.OccupiedRooms))
}

func TestTodayOutsideOperatingHours(t *testing.T) {
	rows := []models.Schedule{
		{ID: 1, ClassroomID: 1, DayOfWeek: 0, Shift: models.ShiftMorning, IsActive: true},
	}
	now := date(1, 23, 0)
	r := newTestResolver(rows, now)

	got, err := r.ForDate(now, "")
	require.NoError(t, err)
	assert.Equal(t, "Fora do horário de funcionamento", got.PeriodDescription)
	assert.Equal(t, []uint{1, 2}, roomIDs(got.AvailableRooms))
}

func TestTodayInfersPrimaryShiftAndAddsFullday(t *testing.T) {
	rows := []models.Schedule{
		{ID: 1, ClassroomID: 1, DayOfWeek: 0, Shift: models.ShiftMorning, IsActive: true},
		{ID: 2, ClassroomID: 2, DayOfWeek: 0, Shift: models.ShiftFullday, IsActive: true},
		// turma da noite não entra na consulta da manhã
		{ID: 3, ClassroomID: 2, DayOfWeek: 0, Shift: models.ShiftNight, IsActive: true},
	}
	now := date(1, 10, 0) // segunda, 10:00 → manhã é o turno primário
	r := newTestResolver(rows, now)

	got, err := r.ForDate(now, "")
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2}, roomIDs(got.OccupiedRooms))
	assert.Empty(t, got.AvailableRooms)
	assert.Equal(t, "Segunda - Manhã, Integral (Agora)", got.PeriodDescription)
}

func TestTodayNightShiftSkipsFullday(t *testing.T) {
	rows := []models.Schedule{
		{ID: 1, ClassroomID: 1, DayOfWeek: 0, Shift: models.ShiftFullday, IsActive: true},
		{ID: 2, ClassroomID: 2, DayOfWeek: 0, Shift: models.ShiftNight, IsActive: true},
	}
	now := date(1, 20, 0) // 20:00 → só noite
	r := newTestResolver(rows, now)

	got, err := r.ForDate(now, "")
	require.NoError(t, err)
	// integral não ocupa a noite
	assert.Equal(t, []uint{2}, roomIDs(got.OccupiedRooms))
	assert.Equal(t, []uint{1}, roomIDs(got.AvailableRooms))
	assert.Equal(t, "Segunda - Noite (Agora)", got.PeriodDescription)
}

func TestNonCurrentDateConsidersAllShifts(t *testing.T) {
	rows := []models.Schedule{
		{ID: 1, ClassroomID: 1, DayOfWeek: 0, Shift: models.ShiftNight, IsActive: true},
	}
	r := newTestResolver(rows, date(2, 10, 0))

	got, err := r.ForDate(date(8, 0, 0), "")
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, roomIDs(got.OccupiedRooms))
	assert.Equal(t, "Segunda - Todos os turnos", got.PeriodDescription)
}

func TestExpiredSchedulesAreSkipped(t *testing.T) {
	rows := []models.Schedule{
		{ID: 1, ClassroomID: 1, DayOfWeek: 0, Shift: models.ShiftMorning,
			StartDate: "2023-01-01", EndDate: "2023-12-31", IsActive: true},
		{ID: 2, ClassroomID: 2, DayOfWeek: 0, Shift: models.ShiftMorning,
			StartDate: "2024-02-01", EndDate: "2024-02-29", IsActive: true},
	}
	r := newTestResolver(rows, date(2, 10, 0))

	got, err := r.ForDate(date(15, 0, 0), models.ShiftMorning)
	require.NoError(t, err)
	assert.Empty(t, got.OccupiedRooms)
	assert.Equal(t, []uint{1, 2}, roomIDs(got.AvailableRooms))
}

func TestUnknownShiftFilterIsIgnored(t *testing.T) {
	rows := []models.Schedule{
		{ID: 1, ClassroomID: 1, DayOfWeek: 0, Shift: models.ShiftNight, IsActive: true},
	}
	r := newTestResolver(rows, date(2, 10, 0))

	got, err := r.ForDate(date(8, 0, 0), "madrugada")
	require.NoError(t, err)
	// filtro desconhecido = sem filtro: data futura considera todos os turnos
	assert.Equal(t, "Segunda - Todos os turnos", got.PeriodDescription)
	assert.Equal(t, []uint{1}, roomIDs(got.OccupiedRooms))
}

func TestStoreErrorPropagates(t *testing.T) {
	boom := errors.New("connection refused")

	r := NewResolver(fakeRooms{err: boom}, &fakeSchedules{}, fixedClock{t: date(1, 10, 0)})
	_, err := r.ForDate(date(1, 10, 0), "")
	assert.ErrorIs(t, err, ErrResolutionFailed)

	r = NewResolver(fakeRooms{rooms: testRooms()}, &fakeSchedules{err: boom}, fixedClock{t: date(1, 10, 0)})
	_, err = r.ForDate(date(1, 10, 0), models.ShiftMorning)
	assert.ErrorIs(t, err, ErrResolutionFailed)
}

func TestResolutionIsIdempotent(t *testing.T) {
	rows := []models.Schedule{
		{ID: 1, ClassroomID: 1, DayOfWeek: 0, Shift: models.ShiftFullday,
			StartDate: "2024-01-01", EndDate: "2024-01-31", IsActive: true},
	}
	r := newTestResolver(rows, date(2, 10, 0))

	first, err := r.ForDate(date(15, 0, 0), models.ShiftMorning)
	require.NoError(t, err)
	second, err := r.ForDate(date(15, 0, 0), models.ShiftMorning)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
