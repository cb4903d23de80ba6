package get_upcoming_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
)

const (
	msgInvalidBusinessID = "geçersiz işletme kimliği"
	msgInvalidLimit      = "geçersiz limit değeri"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/appointments/upcoming
// Query params: limit (optional, 1..200)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("GET /appointments/upcoming - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			h.logger.Warn("GET /appointments/upcoming - Invalid limit: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
	}

	upcoming, err := h.service.GetUpcoming(r.Context(), businessID, limit)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments/upcoming - Invalid input: business_id=%s, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidLimit)

		default:
			h.logger.Error("GET /appointments/upcoming - Failed to list appointments: business_id=%s, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/upcoming - Appointments retrieved successfully: business_id=%s, count=%d",
		businessID, upcoming.Total)
	handlers.RespondJSON(w, http.StatusOK, upcoming)
}
