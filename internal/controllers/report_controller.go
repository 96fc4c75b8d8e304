package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Sanyaraj24/CrimeReporting/internal/models"
	"github.com/Sanyaraj24/CrimeReporting/internal/services"
)

// ReportController handles HTTP requests related to crime reports.
type ReportController struct {
	svc services.ReportService
}

// NewReportController creates a new instance of ReportController
func NewReportController(svc services.ReportService) *ReportController {
	return &ReportController{svc: svc}
}

// Register registers the routes for the report controller
func (ctrl *ReportController) Register(g *echo.Group) {
	g.GET("/", ctrl.Welcome)
	g.POST("/submit-report", ctrl.SubmitReport)
	g.GET("/crime-feed", ctrl.CrimeFeed)
	g.GET("/get-crime/:id", ctrl.GetCrime)
}

func (ctrl *ReportController) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Welcome to Crime Reporting API",
	})
}

// SubmitReport validates and inserts a new crime report. The payload
// is rejected before any store access when required fields are missing
// or the incident date is malformed.
func (ctrl *ReportController) SubmitReport(c echo.Context) error {
	req := new(models.SubmitReportRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	report := req.ToReport()
	if err := ctrl.svc.CreateReport(c.Request().Context(), report); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Failed to insert report into database",
			"details": err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Crime report successfully submitted",
		"result": echo.Map{
			"reportId":  report.ID,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// CrimeFeed returns reports ordered by incident date descending. With
// no query parameters the full set is returned; district, search and
// days narrow it server-side.
func (ctrl *ReportController) CrimeFeed(c echo.Context) error {
	filter := services.ReportFilter{
		District: c.QueryParam("district"),
		Search:   c.QueryParam("search"),
	}
	if days := c.QueryParam("days"); days != "" {
		if parsed, err := strconv.Atoi(days); err == nil && parsed > 0 {
			filter.Days = parsed
		}
	}

	reports, err := ctrl.svc.ListReports(c.Request().Context(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Internal Server error",
			"details": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"count":   len(reports),
		"data":    reports,
	})
}

// GetCrime fetches a single report by its numeric id.
func (ctrl *ReportController) GetCrime(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Invalid crime report ID",
		})
	}

	report, err := ctrl.svc.GetReport(c.Request().Context(), id)
	if errors.Is(err, services.ErrReportNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{
			"success": false,
			"error":   "Crime report not found",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Internal Server error",
			"details": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    report,
	})
}
