package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clientedev/salasv2/models"
	"github.com/clientedev/salasv2/scheduling"
)

type stubRooms struct{ rooms []models.Classroom }

func (s stubRooms) ListClassrooms() ([]models.Classroom, error) { return s.rooms, nil }

type stubSchedules struct{ rows []models.Schedule }

func (s stubSchedules) ListActive(day int, shift string) ([]models.Schedule, error) {
	var out []models.Schedule
	for _, row := range s.rows {
		if row.IsActive && row.DayOfWeek == day && (shift == "" || row.Shift == shift) {
			out = append(out, row)
		}
	}
	return out, nil
}

type stubClock struct{ t time.Time }

func (s stubClock) Now() time.Time { return s.t }

func availabilityGET(t *testing.T, h *AvailabilityHandler, query string) (*httptest.ResponseRecorder, scheduling.Availability) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/availability"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Get(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body scheduling.Availability
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func newTestAvailabilityHandler() *AvailabilityHandler {
	clock := stubClock{t: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)} // segunda, 10:00
	rooms := stubRooms{rooms: []models.Classroom{
		{ID: 1, Name: "Sala DEV"},
		{ID: 2, Name: "Sala Jogos"},
	}}
	schedules := stubSchedules{rows: []models.Schedule{
		{ID: 1, ClassroomID: 1, DayOfWeek: 0, Shift: models.ShiftMorning, IsActive: true},
		{ID: 2, ClassroomID: 2, DayOfWeek: 1, Shift: models.ShiftNight, IsActive: true},
	}}
	resolver := scheduling.NewResolver(rooms, schedules, clock)
	return NewAvailabilityHandler(resolver, clock)
}

func TestAvailabilityDefaultsToNow(t *testing.T) {
	h := newTestAvailabilityHandler()

	_, body := availabilityGET(t, h, "")
	assert.Equal(t, "Segunda - Manhã, Integral (Agora)", body.PeriodDescription)
	assert.Equal(t, 2, body.TotalRooms)
	require.Len(t, body.OccupiedRooms, 1)
	assert.Equal(t, uint(1), body.OccupiedRooms[0].ID)
}

func TestAvailabilityExplicitDateAndShift(t *testing.T) {
	h := newTestAvailabilityHandler()

	// terça à noite: sala 2 ocupada
	_, body := availabilityGET(t, h, "?date=2024-01-02&shift=night")
	assert.Equal(t, "Terça - Noite (Filtro Específico)", body.PeriodDescription)
	require.Len(t, body.OccupiedRooms, 1)
	assert.Equal(t, uint(2), body.OccupiedRooms[0].ID)
}

func TestAvailabilityLenientParams(t *testing.T) {
	h := newTestAvailabilityHandler()

	// data ilegível cai em hoje; turno desconhecido vira "all"
	_, body := availabilityGET(t, h, "?date=32-13-2024&shift=banana")
	assert.Equal(t, "Segunda - Manhã, Integral (Agora)", body.PeriodDescription)
}

func TestAvailabilitySunday(t *testing.T) {
	h := newTestAvailabilityHandler()

	_, body := availabilityGET(t, h, "?date=2024-01-07")
	assert.Equal(t, "Domingo - Escola fechada", body.PeriodDescription)
	assert.Len(t, body.AvailableRooms, 2)
	assert.Empty(t, body.OccupiedRooms)
}
