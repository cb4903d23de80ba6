package get_day_agenda

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
)

const (
	msgInvalidBusinessID = "geçersiz işletme kimliği"
	msgMissingDate       = "tarih zorunludur"
	msgInvalidDate       = "geçersiz tarih biçimi, YYYY-AA-GG bekleniyor"
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

// Handle GET /api/v1/businesses/{businessId}/agenda
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("GET /agenda - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /agenda - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /agenda - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	agenda, err := h.service.GetDayAgenda(r.Context(), businessID, date)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /agenda - Invalid input: business_id=%s, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /agenda - Failed to get agenda: business_id=%s, date=%s, error=%v", businessID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /agenda - Agenda retrieved successfully: business_id=%s, date=%s, count=%d",
		businessID, dateStr, len(agenda.Appointments))
	handlers.RespondJSON(w, http.StatusOK, agenda)
}
