package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/clientedev/salasv2/database"
	"github.com/clientedev/salasv2/models"
	"github.com/clientedev/salasv2/scheduling"
)

type IncidentHandler struct {
	clock scheduling.Clock
}

func NewIncidentHandler(clock scheduling.Clock) *IncidentHandler {
	return &IncidentHandler{clock: clock}
}

type incidentReq struct {
	ReporterName  string `json:"reporter_name"`
	ReporterEmail string `json:"reporter_email"`
	Description   string `json:"description"`
}

// POST /classrooms/:id/incidents
func (h *IncidentHandler) Create(c echo.Context) error {
	if _, err := mustID(c); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	var room models.Classroom
	if err := database.DB.First(&room, "id = ?", c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}

	var req incidentReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	fields := map[string]string{}
	if strings.TrimSpace(req.ReporterName) == "" {
		fields["reporter_name"] = "Informe seu nome"
	}
	if strings.TrimSpace(req.ReporterEmail) == "" {
		fields["reporter_email"] = "Informe seu email"
	}
	if strings.TrimSpace(req.Description) == "" {
		fields["description"] = "Descreva a ocorrência"
	}
	if len(fields) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": fields})
	}

	incident := models.Incident{
		ClassroomID:   room.ID,
		ReporterName:  strings.TrimSpace(req.ReporterName),
		ReporterEmail: strings.TrimSpace(req.ReporterEmail),
		Description:   strings.TrimSpace(req.Description),
		IsActive:      true,
	}
	if err := database.DB.Create(&incident).Error; err != nil {
		c.Logger().Errorf("create incident: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": incident.ID})
}

// GET /admin/incidents?status=open|resolved|all&classroomId=&q=
func (h *IncidentHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.Incident{}).Where("is_active = ?", true)

	switch strings.TrimSpace(c.QueryParam("status")) {
	case "resolved":
		tx = tx.Where("is_resolved = ?", true)
	case "all", "":
	default: // open
		tx = tx.Where("is_resolved = ?", false)
	}
	if v := strings.TrimSpace(c.QueryParam("classroomId")); v != "" {
		tx = tx.Where("classroom_id = ?", v)
	}
	if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
		tx = tx.Where("description ILIKE ?", "%"+q+"%")
	}

	var rows []models.Incident
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rows)
}

type incidentResponseReq struct {
	Response string `json:"response"`
}

// POST /admin/incidents/:id/respond
func (h *IncidentHandler) Respond(c echo.Context) error {
	incident, httpErr := h.load(c)
	if httpErr != nil {
		return httpErr
	}
	var req incidentResponseReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if strings.TrimSpace(req.Response) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": map[string]string{"response": "Escreva a resposta"}})
	}

	now := h.clock.Now()
	incident.AdminResponse = strings.TrimSpace(req.Response)
	incident.ResponseDate = &now
	if err := database.DB.Save(incident).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusOK, incident)
}

// POST /admin/incidents/:id/resolve
func (h *IncidentHandler) Resolve(c echo.Context) error {
	incident, httpErr := h.load(c)
	if httpErr != nil {
		return httpErr
	}
	incident.IsResolved = true
	if err := database.DB.Save(incident).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusOK, incident)
}

// POST /admin/incidents/:id/hide
// Some da página pública da sala sem apagar o histórico.
func (h *IncidentHandler) Hide(c echo.Context) error {
	incident, httpErr := h.load(c)
	if httpErr != nil {
		return httpErr
	}
	incident.HiddenFromClassroom = true
	if err := database.DB.Save(incident).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusOK, incident)
}

// DELETE /admin/incidents/:id
func (h *IncidentHandler) Delete(c echo.Context) error {
	incident, httpErr := h.load(c)
	if httpErr != nil {
		return httpErr
	}
	if err := database.DB.Delete(incident).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"deleted": incident.ID})
}

func (h *IncidentHandler) load(c echo.Context) (*models.Incident, error) {
	if _, err := mustID(c); err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	var incident models.Incident
	if err := database.DB.First(&incident, "id = ?", c.Param("id")).Error; err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return &incident, nil
}
