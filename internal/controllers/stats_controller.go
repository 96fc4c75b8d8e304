package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sanyaraj24/CrimeReporting/internal/services"
)

// StatsController exposes aggregate counts over the report table.
type StatsController struct {
	svc services.StatsService
}

func NewStatsController(svc services.StatsService) *StatsController {
	return &StatsController{svc: svc}
}

func (ctrl *StatsController) Register(g *echo.Group) {
	g.GET("/crime-stats", ctrl.CrimeStats)
}

func (ctrl *StatsController) CrimeStats(c echo.Context) error {
	stats, err := ctrl.svc.CrimeStats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Failed to compute crime stats",
			"details": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    stats,
	})
}
