package dose

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
	senior := api.Group("/senior")
	senior.GET("/today", h.TodayStatus)
	senior.POST("/confirm", h.ConfirmDose)
}

// ConfirmDoseRequest is the body of POST /api/senior/confirm.
type ConfirmDoseRequest struct {
	UserID           string `json:"user_id"`
	MedicationID     string `json:"medication_id"`
	ScheduledTimeISO string `json:"scheduled_time_iso"`
}

func (h *Handler) TodayStatus(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	summary, err := h.svc.TodayStatus(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, db.ErrUnavailable) {
			return echo.NewHTTPError(http.StatusInternalServerError, db.UnavailableMessage)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *Handler) ConfirmDose(c echo.Context) error {
	var req ConfirmDoseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.UserID == "" || req.MedicationID == "" || req.ScheduledTimeISO == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id, medication_id and scheduled_time_iso are required")
	}

	err := h.svc.Confirm(c.Request().Context(), req.UserID, req.MedicationID, req.ScheduledTimeISO)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, ErrInvalidTime):
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid scheduled_time_iso")
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Scheduled dose not found")
	case errors.Is(err, db.ErrUnavailable):
		return echo.NewHTTPError(http.StatusInternalServerError, db.UnavailableMessage)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
