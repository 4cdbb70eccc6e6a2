package assistant

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/clientedev/salasv2/models"
	"github.com/clientedev/salasv2/scheduling"
)

type stubRooms struct {
	rooms []models.Classroom
	err   error
}

func (s stubRooms) ListClassrooms() ([]models.Classroom, error) { return s.rooms, s.err }

type stubSchedules struct {
	rows []models.Schedule
	err  error
}

func (s stubSchedules) ListActive(day int, shift string) ([]models.Schedule, error) {
	if s.err != nil {
		return nil, s.err
	}
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

func testAssistant(rooms []models.Classroom, rows []models.Schedule, now time.Time) *Assistant {
	clock := stubClock{t: now}
	resolver := scheduling.NewResolver(stubRooms{rooms: rooms}, stubSchedules{rows: rows}, clock)
	return New(resolver, clock)
}

func monday10h() time.Time {
	return time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
}

func sampleRooms() []models.Classroom {
	return []models.Classroom{
		{ID: 1, Name: "Sala DEV", Capacity: 30, Block: "Bloco A", HasComputers: true, Software: "Visual Studio, Git, Docker"},
		{ID: 2, Name: "Sala Jogos", Capacity: 20, Block: "Bloco B", HasComputers: true, Software: "Unity, Blender"},
	}
}

func TestRespondAvailability(t *testing.T) {
	rows := []models.Schedule{
		{ID: 1, ClassroomID: 1, DayOfWeek: 0, Shift: models.ShiftMorning, IsActive: true},
	}
	a := testAssistant(sampleRooms(), rows, monday10h())

	reply := a.Respond("que salas estão livres agora?", sampleRooms(), rows)
	assert.Equal(t, IntentAvailability, reply.Intent)
	assert.Contains(t, reply.Response, "Sala Jogos")
	assert.NotEmpty(t, reply.Response)
}

func TestRespondAvailabilityDegradesOnStoreError(t *testing.T) {
	clock := stubClock{t: monday10h()}
	resolver := scheduling.NewResolver(stubRooms{err: errors.New("down")}, stubSchedules{}, clock)
	a := New(resolver, clock)

	reply := a.Respond("tem sala livre agora?", sampleRooms(), nil)
	assert.Equal(t, IntentAvailability, reply.Intent)
	// sem erro para o usuário, só um pedido de desculpas
	assert.Contains(t, reply.Response, "Não consegui")
}

func TestRespondSoftware(t *testing.T) {
	a := testAssistant(sampleRooms(), nil, monday10h())

	reply := a.Respond("onde tem unity para jogos?", sampleRooms(), nil)
	assert.Equal(t, IntentSoftware, reply.Intent)
	assert.Contains(t, reply.Response, "Sala Jogos")
	assert.NotContains(t, reply.Response, "Sala DEV")
}

func TestRespondEmptyMessageGivesHelp(t *testing.T) {
	a := testAssistant(sampleRooms(), nil, monday10h())

	reply := a.Respond("   ", sampleRooms(), nil)
	assert.Equal(t, IntentHelp, reply.Intent)
	assert.NotEmpty(t, reply.Response)
}

func TestRespondNoRoomsRegistered(t *testing.T) {
	a := testAssistant(nil, nil, monday10h())

	reply := a.Respond("que salas estão livres?", nil, nil)
	assert.Equal(t, IntentFallback, reply.Intent)
	assert.Contains(t, reply.Response, "secretaria")
}

func TestFallbackRoomMention(t *testing.T) {
	a := testAssistant(sampleRooms(), nil, monday10h())

	reply := a.Respond("me fale da sala dev", sampleRooms(), nil)
	// "sala dev" não pontua em nenhuma categoria, mas cita uma sala
	assert.Equal(t, IntentFallback, reply.Intent)
	assert.Contains(t, reply.Response, "Sala DEV")
	assert.Contains(t, reply.Response, "30 pessoas")
}

func TestFallbackGreeting(t *testing.T) {
	a := testAssistant(sampleRooms(), nil, monday10h())

	reply := a.Respond("bom dia!!", sampleRooms(), nil)
	assert.Equal(t, IntentFallback, reply.Intent)
	assert.Contains(t, reply.Response, "Bom dia")
}

func TestFallbackGenericNeverFails(t *testing.T) {
	a := testAssistant(sampleRooms(), nil, monday10h())

	reply := a.Respond("zzz qqq www", sampleRooms(), nil)
	assert.Equal(t, IntentFallback, reply.Intent)
	assert.Contains(t, reply.Response, "zzz qqq www")
	assert.Contains(t, reply.Response, "2 salas")
}

func TestTimeGreeting(t *testing.T) {
	assert.Equal(t, "Bom dia! ☀️", timeGreeting(8))
	assert.Equal(t, "Boa tarde! 🌤️", timeGreeting(14))
	assert.Equal(t, "Boa noite! 🌆", timeGreeting(20))
	assert.Equal(t, "Oi! 🌙", timeGreeting(3))
}
