package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clientedev/salasv2/assistant"
	"github.com/clientedev/salasv2/models"
	"github.com/clientedev/salasv2/scheduling"
)

type AssistantHandler struct {
	bot       *assistant.Assistant
	rooms     scheduling.RoomStore
	schedules scheduling.ScheduleStore
	clock     scheduling.Clock
}

func NewAssistantHandler(bot *assistant.Assistant, rooms scheduling.RoomStore, schedules scheduling.ScheduleStore, clock scheduling.Clock) *AssistantHandler {
	return &AssistantHandler{bot: bot, rooms: rooms, schedules: schedules, clock: clock}
}

type assistantReq struct {
	Message string `json:"message"`
}

// POST /assistant
// O assistente nunca responde erro para o usuário final: problema de
// leitura vira uma resposta genérica de desculpas.
func (h *AssistantHandler) Ask(c echo.Context) error {
	var req assistantReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	rooms, err := h.rooms.ListClassrooms()
	if err != nil {
		c.Logger().Errorf("assistant rooms: %v", err)
		rooms = nil
	}

	var schedules []models.Schedule
	day := scheduling.DayOfWeek(h.clock.Now())
	if rows, err := h.schedules.ListActive(day, ""); err == nil {
		schedules = rows
	} else {
		c.Logger().Errorf("assistant schedules: %v", err)
	}

	reply := h.bot.Respond(req.Message, rooms, schedules)
	return c.JSON(http.StatusOK, reply)
}
