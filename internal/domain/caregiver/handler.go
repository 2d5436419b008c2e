package caregiver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medassist/medassist/internal/platform/db"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/caregiver/dashboard", h.Dashboard)
}

// Dashboard serves GET /api/caregiver/dashboard. It accepts either
// patient_id (direct) or caregiver_id (resolved through the caregiver's
// linked patient).
func (h *Handler) Dashboard(c echo.Context) error {
	patientID := c.QueryParam("patient_id")
	caregiverID := c.QueryParam("caregiver_id")

	var (
		d   *Dashboard
		err error
	)
	switch {
	case patientID != "":
		d, err = h.svc.Dashboard(c.Request().Context(), patientID)
	case caregiverID != "":
		d, err = h.svc.DashboardForCaregiver(c.Request().Context(), caregiverID)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id or caregiver_id is required")
	}

	switch {
	case err == nil:
		return c.JSON(http.StatusOK, d)
	case errors.Is(err, ErrNoLinkedPatient):
		return echo.NewHTTPError(http.StatusNotFound, "No linked patient for caregiver")
	case errors.Is(err, db.ErrUnavailable):
		return echo.NewHTTPError(http.StatusInternalServerError, db.UnavailableMessage)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
