package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/clientedev/salasv2/database"
	"github.com/clientedev/salasv2/models"
	"github.com/clientedev/salasv2/scheduling"
)

type ScheduleRequestHandler struct {
	clock scheduling.Clock
}

func NewScheduleRequestHandler(clock scheduling.Clock) *ScheduleRequestHandler {
	return &ScheduleRequestHandler{clock: clock}
}

type scheduleRequestReq struct {
	RequesterName  string `json:"requester_name"`
	RequesterEmail string `json:"requester_email"`
	EventName      string `json:"event_name"`
	Description    string `json:"description"`
	Shift          string `json:"shift"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`

	// Pedido de data única:
	RequestedDate string `json:"requested_date"`

	// Pedido em lote: período + dias da semana desejados.
	Bulk      bool   `json:"bulk"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Weekdays  []int  `json:"weekdays"`
}

// POST /classrooms/:id/schedule-requests
// Visitantes pedem um horário; nada é agendado até um admin aprovar.
func (h *ScheduleRequestHandler) Submit(c echo.Context) error {
	if _, err := mustID(c); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	var room models.Classroom
	if err := database.DB.First(&room, "id = ?", c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}

	var req scheduleRequestReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	fields := map[string]string{}
	if strings.TrimSpace(req.RequesterName) == "" {
		fields["requester_name"] = "Informe seu nome"
	}
	if strings.TrimSpace(req.RequesterEmail) == "" {
		fields["requester_email"] = "Informe seu email"
	}
	if strings.TrimSpace(req.EventName) == "" {
		fields["event_name"] = "Informe o nome do evento"
	}
	if strings.TrimSpace(req.Description) == "" {
		fields["description"] = "Descreva o uso da sala"
	}
	if !models.ValidShift(req.Shift) {
		fields["shift"] = "Turno inválido"
	}
	if !reHHMM.MatchString(req.StartTime) {
		fields["start_time"] = "Formato de hora HH:MM"
	}
	if !reHHMM.MatchString(req.EndTime) {
		fields["end_time"] = "Formato de hora HH:MM"
	}

	var dates []string
	if req.Bulk {
		if !isDateYYYYMMDD(req.StartDate) || !isDateYYYYMMDD(req.EndDate) {
			fields["start_date"] = "Informe o período (YYYY-MM-DD)"
		} else if req.EndDate < req.StartDate {
			fields["end_date"] = "Não pode ser antes da data inicial"
		} else if len(req.Weekdays) == 0 {
			fields["weekdays"] = "Selecione os dias da semana"
		} else {
			start, _ := time.Parse("2006-01-02", req.StartDate)
			end, _ := time.Parse("2006-01-02", req.EndDate)
			dates = scheduling.GenerateDates(start, end, req.Weekdays)
			if len(dates) == 0 {
				fields["weekdays"] = "Nenhuma data válida no período escolhido"
			}
		}
	} else {
		if !isDateYYYYMMDD(req.RequestedDate) {
			fields["requested_date"] = "Informe a data (YYYY-MM-DD)"
		} else {
			dates = []string{req.RequestedDate}
		}
	}

	if len(fields) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": fields})
	}

	primary, _ := time.Parse("2006-01-02", dates[0])
	additional := ""
	if len(dates) > 1 {
		raw, err := json.Marshal(dates[1:])
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "ENCODE_FAILED"})
		}
		additional = string(raw)
	}

	sr := models.ScheduleRequest{
		ClassroomID:     room.ID,
		RequesterName:   strings.TrimSpace(req.RequesterName),
		RequesterEmail:  strings.TrimSpace(req.RequesterEmail),
		EventName:       strings.TrimSpace(req.EventName),
		Description:     strings.TrimSpace(req.Description),
		RequestedDate:   dates[0],
		DayOfWeek:       scheduling.DayOfWeek(primary),
		Shift:           req.Shift,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		AdditionalDates: additional,
		Status:          models.RequestPending,
	}
	if err := database.DB.Create(&sr).Error; err != nil {
		c.Logger().Errorf("create schedule request: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_WRITE_FAILED"})
	}

	return c.JSON(http.StatusCreated, map[string]any{"id": sr.ID, "dates": len(dates)})
}

// GET /admin/schedule-requests?status=pending|approved|rejected|all
func (h *ScheduleRequestHandler) List(c echo.Context) error {
	status := strings.TrimSpace(c.QueryParam("status"))
	if status == "" {
		status = models.RequestPending
	}

	tx := database.DB.Model(&models.ScheduleRequest{})
	if status != "all" {
		tx = tx.Where("status = ?", status)
	}

	var rows []models.ScheduleRequest
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rows)
}

type requestActionReq struct {
	AdminNotes string `json:"admin_notes"`
}

// POST /admin/schedule-requests/:id/approve
// Materializa um horário por data gerada (start=end=data, dia da semana
// da própria data) e muda o status, tudo em uma transação: ou entra tudo
// ou não entra nada.
func (h *ScheduleRequestHandler) Approve(c echo.Context) error {
	sr, httpErr := h.loadPending(c)
	if httpErr != nil {
		return httpErr
	}
	var req requestActionReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	dates := []string{sr.RequestedDate}
	if sr.AdditionalDates != "" {
		var extra []string
		if err := json.Unmarshal([]byte(sr.AdditionalDates), &extra); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DECODE_FAILED"})
		}
		dates = append(dates, extra...)
	}

	now := h.clock.Now()
	reviewer, _ := c.Get("name").(string)
	if reviewer == "" {
		reviewer = "Admin"
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for _, dateStr := range dates {
			date, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				return err
			}
			row := models.Schedule{
				ClassroomID: sr.ClassroomID,
				DayOfWeek:   scheduling.DayOfWeek(date),
				Shift:       sr.Shift,
				CourseName:  sr.EventName,
				Instructor:  sr.RequesterName,
				StartTime:   sr.StartTime,
				EndTime:     sr.EndTime,
				StartDate:   dateStr,
				EndDate:     dateStr, // evento de um dia só
				IsActive:    true,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		sr.Status = models.RequestApproved
		sr.AdminNotes = strings.TrimSpace(req.AdminNotes)
		sr.ReviewedAt = &now
		sr.ReviewedBy = reviewer
		return tx.Save(sr).Error
	})
	if err != nil {
		c.Logger().Errorf("approve schedule request %d: %v", sr.ID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_WRITE_FAILED"})
	}

	return c.JSON(http.StatusOK, map[string]any{"status": sr.Status, "schedules_created": len(dates)})
}

// POST /admin/schedule-requests/:id/reject
// Só muda o status; nenhum horário é criado.
func (h *ScheduleRequestHandler) Reject(c echo.Context) error {
	sr, httpErr := h.loadPending(c)
	if httpErr != nil {
		return httpErr
	}
	var req requestActionReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	now := h.clock.Now()
	reviewer, _ := c.Get("name").(string)
	if reviewer == "" {
		reviewer = "Admin"
	}

	sr.Status = models.RequestRejected
	sr.AdminNotes = strings.TrimSpace(req.AdminNotes)
	sr.ReviewedAt = &now
	sr.ReviewedBy = reviewer
	if err := database.DB.Save(sr).Error; err != nil {
		c.Logger().Errorf("reject schedule request %d: %v", sr.ID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"status": sr.Status})
}

func (h *ScheduleRequestHandler) loadPending(c echo.Context) (*models.ScheduleRequest, error) {
	if _, err := mustID(c); err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	var sr models.ScheduleRequest
	if err := database.DB.First(&sr, "id = ?", c.Param("id")).Error; err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	if sr.Status != models.RequestPending {
		return nil, echo.NewHTTPError(http.StatusConflict, map[string]any{"error": "ALREADY_REVIEWED"})
	}
	return &sr, nil
}
