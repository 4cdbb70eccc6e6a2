package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clientedev/salasv2/scheduling"
)

type AvailabilityHandler struct {
	resolver *scheduling.Resolver
	clock    scheduling.Clock
}

func NewAvailabilityHandler(resolver *scheduling.Resolver, clock scheduling.Clock) *AvailabilityHandler {
	return &AvailabilityHandler{resolver: resolver, clock: clock}
}

// GET /availability?date=YYYY-MM-DD&shift=morning|afternoon|night|fullday|all
// Parâmetros ilegíveis não derrubam a consulta: data inválida vira hoje,
// turno desconhecido vira "all". Falha de leitura no banco é a única
// resposta de erro - nunca respondemos "tudo livre" sem ter os dados.
func (h *AvailabilityHandler) Get(c echo.Context) error {
	target := h.clock.Now()
	if v := c.QueryParam("date"); v != "" {
		if parsed, err := time.Parse("2006-01-02", v); err == nil {
			target = parsed
		}
	}
	shift := c.QueryParam("shift")

	result, err := h.resolver.ForDate(target, shift)
	if err != nil {
		c.Logger().Errorf("availability for %s: %v", target.Format("2006-01-02"), err)
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "AVAILABILITY_UNAVAILABLE"})
	}
	return c.JSON(http.StatusOK, result)
}
