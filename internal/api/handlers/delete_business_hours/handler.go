package delete_business_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/hours"
)

const (
	msgInvalidBusinessID = "geçersiz işletme kimliği"
	msgInvalidProfile    = "geçersiz takvim profili"
	msgNotFound          = "çalışma saatleri bulunamadı"
)

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

// Handle DELETE /api/v1/businesses/{businessId}/hours
// Query params: profile (без параметра удаляется настройка для всего бизнеса)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("DELETE /hours - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	var profile *string
	if query := r.URL.Query(); query.Has("profile") {
		p := query.Get("profile")
		profile = &p
	}

	if err := h.service.Delete(r.Context(), businessID, profile); err != nil {
		switch {
		case errors.Is(err, hours.ErrInvalidInput):
			h.logger.Warn("DELETE /hours - Invalid profile: business_id=%s", businessID)
			handlers.RespondBadRequest(w, msgInvalidProfile)

		case errors.Is(err, hours.ErrHoursNotFound):
			h.logger.Warn("DELETE /hours - Hours not found: business_id=%s", businessID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /hours - Failed to delete hours: business_id=%s, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /hours - Hours deleted successfully: business_id=%s", businessID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
