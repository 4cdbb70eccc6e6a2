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

type ClassroomHandler struct {
	clock scheduling.Clock
}

func NewClassroomHandler(clock scheduling.Clock) *ClassroomHandler {
	return &ClassroomHandler{clock: clock}
}

// GET /classrooms
func (h *ClassroomHandler) List(c echo.Context) error {
	var rooms []models.Classroom
	if err := database.DB.Order("name ASC").Find(&rooms).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rooms)
}

// GET /classrooms/:id
// Devolve a sala com os horários ativos cujo curso ainda não terminou e
// as ocorrências visíveis na página pública.
func (h *ClassroomHandler) Get(c echo.Context) error {
	if _, err := mustID(c); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}

	var room models.Classroom
	if err := database.DB.First(&room, "id = ?", c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}

	today := h.clock.Now().Format("2006-01-02")

	var schedules []models.Schedule
	if err := database.DB.
		Where("classroom_id = ? AND is_active = ?", room.ID, true).
		Where("end_date = '' OR end_date >= ?", today).
		Order("day_of_week ASC, shift ASC").
		Find(&schedules).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}

	var incidents []models.Incident
	if err := database.DB.
		Where("classroom_id = ? AND is_active = ? AND hidden_from_classroom = ?", room.ID, true, false).
		Order("created_at DESC").
		Find(&incidents).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"classroom": room,
		"schedules": schedules,
		"incidents": incidents,
	})
}

type classroomReq struct {
	Name          string `json:"name"`
	Capacity      int    `json:"capacity"`
	Block         string `json:"block"`
	HasComputers  bool   `json:"has_computers"`
	Software      string `json:"software"`
	Description   string `json:"description"`
	ImageFilename string `json:"image_filename"`

	// Horários iniciais opcionais, criados junto com a sala.
	InitialShift      string `json:"initial_shift"`
	InitialDays       []int  `json:"initial_days"`
	InitialCourse     string `json:"initial_course"`
	InitialInstructor string `json:"initial_instructor"`
	InitialStartTime  string `json:"initial_start_time"`
	InitialEndTime    string `json:"initial_end_time"`
	InitialStartDate  string `json:"initial_start_date"`
	InitialEndDate    string `json:"initial_end_date"`
}

func (r *classroomReq) validate() map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = "Informe o nome da sala"
	}
	if r.Capacity < 0 {
		fields["capacity"] = "Capacidade não pode ser negativa"
	}
	if r.InitialShift != "" {
		if !models.ValidShift(r.InitialShift) {
			fields["initial_shift"] = "Turno inválido"
		}
		if len(r.InitialDays) == 0 {
			fields["initial_days"] = "Selecione ao menos um dia"
		}
		if strings.TrimSpace(r.InitialCourse) == "" {
			fields["initial_course"] = "Informe o curso"
		}
	}
	return fields
}

// POST /admin/classrooms
func (h *ClassroomHandler) Create(c echo.Context) error {
	var req classroomReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if fields := req.validate(); len(fields) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": fields})
	}

	room := models.Classroom{
		Name:          strings.TrimSpace(req.Name),
		Capacity:      req.Capacity,
		Block:         strings.TrimSpace(req.Block),
		HasComputers:  req.HasComputers,
		Software:      strings.TrimSpace(req.Software),
		Description:   strings.TrimSpace(req.Description),
		ImageFilename: strings.TrimSpace(req.ImageFilename),
	}
	if err := database.DB.Create(&room).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	created, skipped := 0, 0
	if req.InitialShift != "" {
		var err error
		created, skipped, err = createScheduleBatch(database.DB, scheduleBatch{
			ClassroomID: room.ID,
			Days:        req.InitialDays,
			Shift:       req.InitialShift,
			CourseName:  req.InitialCourse,
			Instructor:  req.InitialInstructor,
			StartTime:   req.InitialStartTime,
			EndTime:     req.InitialEndTime,
			StartDate:   strings.TrimSpace(req.InitialStartDate),
			EndDate:     strings.TrimSpace(req.InitialEndDate),
		})
		if err != nil {
			c.Logger().Errorf("initial schedules for classroom %d: %v", room.ID, err)
			return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_WRITE_FAILED"})
		}
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"id":                room.ID,
		"schedules_created": created,
		"schedules_skipped": skipped,
	})
}

// PUT /admin/classrooms/:id
func (h *ClassroomHandler) Update(c echo.Context) error {
	if _, err := mustID(c); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	var room models.Classroom
	if err := database.DB.First(&room, "id = ?", c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}

	var req classroomReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": map[string]string{"name": "Informe o nome da sala"}})
	}

	room.Name = strings.TrimSpace(req.Name)
	room.Capacity = req.Capacity
	room.Block = strings.TrimSpace(req.Block)
	room.HasComputers = req.HasComputers
	room.Software = strings.TrimSpace(req.Software)
	room.Description = strings.TrimSpace(req.Description)
	if req.ImageFilename != "" {
		room.ImageFilename = strings.TrimSpace(req.ImageFilename)
	}

	if err := database.DB.Save(&room).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, room)
}

// DELETE /admin/classrooms/:id
// Apaga a sala com seus horários e ocorrências em uma transação só.
func (h *ClassroomHandler) Delete(c echo.Context) error {
	if _, err := mustID(c); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	var room models.Classroom
	if err := database.DB.First(&room, "id = ?", c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("classroom_id = ?", room.ID).Delete(&models.Schedule{}).Error; err != nil {
			return err
		}
		if err := tx.Where("classroom_id = ?", room.ID).Delete(&models.Incident{}).Error; err != nil {
			return err
		}
		if err := tx.Where("classroom_id = ?", room.ID).Delete(&models.ScheduleRequest{}).Error; err != nil {
			return err
		}
		return tx.Delete(&room).Error
	})
	if err != nil {
		c.Logger().Errorf("delete classroom %d: %v", room.ID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"deleted": room.ID})
}
