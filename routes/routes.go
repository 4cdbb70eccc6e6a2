package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/clientedev/salasv2/assistant"
	"github.com/clientedev/salasv2/config"
	"github.com/clientedev/salasv2/database"
	"github.com/clientedev/salasv2/handlers"
	"github.com/clientedev/salasv2/middlewares"
	"github.com/clientedev/salasv2/scheduling"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	// ===== Shared collaborators =====
	clock := scheduling.BrazilClock{}
	rooms := database.GormRoomStore{}
	schedules := database.GormScheduleStore{}
	resolver := scheduling.NewResolver(rooms, schedules, clock)
	bot := assistant.New(resolver, clock)

	// ===== Handlers =====
	auth := handlers.NewAuthHandler(cfg)
	room := handlers.NewClassroomHandler(clock)
	sched := handlers.NewScheduleHandler()
	avail := handlers.NewAvailabilityHandler(resolver, clock)
	reqs := handlers.NewScheduleRequestHandler(clock)
	inc := handlers.NewIncidentHandler(clock)
	ask := handlers.NewAssistantHandler(bot, rooms, schedules, clock)
	dash := handlers.NewDashboardHandler(resolver, clock)

	// ===== Public =====
	e.GET("/health", handlers.Health)
	e.POST("/admin/login", auth.AdminLogin)

	e.GET("/classrooms", room.List)
	e.GET("/classrooms/:id", room.Get)
	e.GET("/availability", avail.Get)

	e.POST("/classrooms/:id/incidents", inc.Create)
	e.POST("/classrooms/:id/schedule-requests", reqs.Submit)
	e.POST("/assistant", ask.Ask)

	// ===== Admin =====
	authMW := middlewares.RequireAuth(cfg.JWTSecret)
	admin := e.Group("/admin", authMW, middlewares.RequireRole("admin"))

	admin.GET("/dashboard", dash.Summary)

	admin.POST("/classrooms", room.Create)
	admin.PUT("/classrooms/:id", room.Update)
	admin.DELETE("/classrooms/:id", room.Delete)

	admin.GET("/schedules", sched.List)
	admin.POST("/schedules", sched.Create)
	admin.DELETE("/schedules/:id", sched.Delete)

	admin.GET("/schedule-requests", reqs.List)
	admin.POST("/schedule-requests/:id/approve", reqs.Approve)
	admin.POST("/schedule-requests/:id/reject", reqs.Reject)

	admin.GET("/incidents", inc.List)
	admin.POST("/incidents/:id/respond", inc.Respond)
	admin.POST("/incidents/:id/resolve", inc.Resolve)
	admin.POST("/incidents/:id/hide", inc.Hide)
	admin.DELETE("/incidents/:id", inc.Delete)
}
