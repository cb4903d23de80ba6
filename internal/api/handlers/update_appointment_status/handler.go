package update_appointment_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
)

const (
	msgInvalidBusinessID    = "geçersiz işletme kimliği"
	msgInvalidAppointmentID = "geçersiz randevu kimliği"
	msgInvalidRequestBody   = "geçersiz istek gövdesi"
	msgInvalidStatus        = "geçersiz randevu durumu"
	msgNotFound             = "randevu bulunamadı"
	msgInvalidTransition    = "randevu bu duruma getirilemez"
	msgSlotTaken            = "bu saat başka bir randevu tarafından alınmış"
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

// Handle PATCH /api/v1/businesses/{businessId}/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	appointmentID, err := handlers.PathUUID(r, "appointmentId")
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	appointment, err := h.service.UpdateStatus(r.Context(), businessID, appointmentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid status: appointment_id=%s, status=%q", appointmentID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrInvalidTransition):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid transition: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, appointments.ErrConflictDetected):
			h.logger.Warn("PATCH /appointments/{id}/status - Slot taken: appointment_id=%s", appointmentID)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("PATCH /appointments/{id}/status - Failed to update status: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - Status updated successfully: appointment_id=%s, status=%s",
		appointmentID, appointment.Status)
	handlers.RespondJSON(w, http.StatusOK, appointment)
}
