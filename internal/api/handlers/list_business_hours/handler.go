package list_business_hours

import (
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
)

const msgInvalidBusinessID = "geçersiz işletme kimliği"

type Handler struct {
	service HoursService
	logger  Logger
}

func NewHandler(service HoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/hours/all
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("GET /hours/all - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	result, err := h.service.List(r.Context(), businessID)
	if err != nil {
		h.logger.Error("GET /hours/all - Failed to list hours: business_id=%s, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /hours/all - Hours listed successfully: business_id=%s, count=%d", businessID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
