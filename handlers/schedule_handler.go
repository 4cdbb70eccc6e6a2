package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/clientedev/salasv2/database"
	"github.com/clientedev/salasv2/models"
	"github.com/clientedev/salasv2/scheduling"
)

type ScheduleHandler struct{}

func NewScheduleHandler() *ScheduleHandler { return &ScheduleHandler{} }

// GET /admin/schedules?classroomId=&day=&shift=
func (h *ScheduleHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.Schedule{}).Where("is_active = ?", true)

	if v := strings.TrimSpace(c.QueryParam("classroomId")); v != "" {
		tx = tx.Where("classroom_id = ?", v)
	}
	if v := strings.TrimSpace(c.QueryParam("day")); v != "" {
		tx = tx.Where("day_of_week = ?", atoiOr(v, 0))
	}
	if v := strings.TrimSpace(c.QueryParam("shift")); v != "" && models.ValidShift(v) {
		tx = tx.Where("shift = ?", v)
	}

	var rows []models.Schedule
	if err := tx.Order("classroom_id ASC, day_of_week ASC, shift ASC").Find(&rows).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rows)
}

type scheduleReq struct {
	ClassroomID uint   `json:"classroom_id"`
	Days        []int  `json:"days"`
	Shift       string `json:"shift"`
	CourseName  string `json:"course_name"`
	Instructor  string `json:"instructor"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

func (r *scheduleReq) validate() map[string]string {
	fields := map[string]string{}
	if r.ClassroomID == 0 {
		fields["classroom_id"] = "Informe a sala"
	}
	if len(r.Days) == 0 {
		fields["days"] = "Selecione ao menos um dia"
	}
	for _, d := range r.Days {
		if d < 0 || d > 6 {
			fields["days"] = "Dia da semana inválido"
			break
		}
	}
	if !models.ValidShift(r.Shift) {
		fields["shift"] = "Turno inválido"
	}
	if r.StartTime != "" && !reHHMM.MatchString(r.StartTime) {
		fields["start_time"] = "Formato de hora HH:MM"
	}
	if r.EndTime != "" && !reHHMM.MatchString(r.EndTime) {
		fields["end_time"] = "Formato de hora HH:MM"
	}
	if r.StartDate != "" && !isDateYYYYMMDD(r.StartDate) {
		fields["start_date"] = "Formato de data YYYY-MM-DD"
	}
	if r.EndDate != "" && !isDateYYYYMMDD(r.EndDate) {
		fields["end_date"] = "Formato de data YYYY-MM-DD"
	}
	if r.StartDate != "" && r.EndDate != "" && r.EndDate < r.StartDate {
		fields["end_date"] = "Não pode ser antes da data inicial"
	}
	return fields
}

// POST /admin/schedules
// Cria um horário por dia selecionado. Dias em conflito com horários já
// existentes são pulados, nunca derrubam o lote inteiro.
func (h *ScheduleHandler) Create(c echo.Context) error {
	var req scheduleReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if fields := req.validate(); len(fields) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": fields})
	}

	var room models.Classroom
	if err := database.DB.First(&room, "id = ?", req.ClassroomID).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "CLASSROOM_NOT_FOUND"})
	}

	created, skipped, err := createScheduleBatch(database.DB, scheduleBatch{
		ClassroomID: req.ClassroomID,
		Days:        req.Days,
		Shift:       req.Shift,
		CourseName:  strings.TrimSpace(req.CourseName),
		Instructor:  strings.TrimSpace(req.Instructor),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		StartDate:   strings.TrimSpace(req.StartDate),
		EndDate:     strings.TrimSpace(req.EndDate),
	})
	if err != nil {
		c.Logger().Errorf("create schedules: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_WRITE_FAILED"})
	}

	return c.JSON(http.StatusCreated, map[string]any{"created": created, "skipped": skipped})
}

// DELETE /admin/schedules/:id
func (h *ScheduleHandler) Delete(c echo.Context) error {
	if _, err := mustID(c); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	res := database.DB.Delete(&models.Schedule{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_WRITE_FAILED"})
	}
	if res.RowsAffected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"deleted": atoiOr(c.Param("id"), 0)})
}

type scheduleBatch struct {
	ClassroomID uint
	Days        []int
	Shift       string
	CourseName  string
	Instructor  string
	StartTime   string
	EndTime     string
	StartDate   string
	EndDate     string
}

// createScheduleBatch persists one schedule per weekday, consulting the
// overlap guard against the existing rows of the same room+day+shift.
// The whole batch commits or rolls back as one unit; skipped days count
// separately from created ones.
func createScheduleBatch(db *gorm.DB, b scheduleBatch) (created, skipped int, err error) {
	proposed := scheduling.Slot{StartDate: b.StartDate, EndDate: b.EndDate}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, day := range b.Days {
			var existing []models.Schedule
			if err := tx.Where(
				"classroom_id = ? AND day_of_week = ? AND shift = ? AND is_active = ?",
				b.ClassroomID, day, b.Shift, true,
			).Find(&existing).Error; err != nil {
				return err
			}

			slots := make([]scheduling.Slot, 0, len(existing))
			for _, e := range existing {
				slots = append(slots, scheduling.SlotOf(e))
			}
			if scheduling.Conflicts(proposed, slots) {
				skipped++
				continue
			}

			row := models.Schedule{
				ClassroomID: b.ClassroomID,
				DayOfWeek:   day,
				Shift:       b.Shift,
				CourseName:  b.CourseName,
				Instructor:  b.Instructor,
				StartTime:   b.StartTime,
				EndTime:     b.EndTime,
				StartDate:   b.StartDate,
				EndDate:     b.EndDate,
				IsActive:    true,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return created, skipped, nil
}
