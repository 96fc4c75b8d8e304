package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sanyaraj24/CrimeReporting/internal/models"
	"github.com/Sanyaraj24/CrimeReporting/internal/services"
)

// UserController handles HTTP requests related to user profiles.
type UserController struct {
	svc services.UserService
}

// NewUserController creates a new instance of UserController
func NewUserController(svc services.UserService) *UserController {
	return &UserController{svc: svc}
}

// Register registers the routes for the user controller
func (ctrl *UserController) Register(g *echo.Group) {
	g.POST("/add-user", ctrl.AddUser)
	g.GET("/get-user", ctrl.GetUser)
}

// AddUser upserts a user profile keyed by the supplied id, falling
// back to the email address when no id is given.
func (ctrl *UserController) AddUser(c echo.Context) error {
	req := new(models.UpsertUserRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}

	user := req.ToUser()
	if err := ctrl.svc.UpsertUser(c.Request().Context(), user); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Failed to save user",
			"details": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "User profile saved/updated",
		"userId":  user.ID,
	})
}

// GetUser fetches one user profile by the id query parameter.
func (ctrl *UserController) GetUser(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Missing user ID",
		})
	}

	user, err := ctrl.svc.GetUser(c.Request().Context(), id)
	if errors.Is(err, services.ErrUserNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{
			"success": false,
			"error":   "User not found",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Failed to fetch user details",
			"details": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    user,
	})
}
