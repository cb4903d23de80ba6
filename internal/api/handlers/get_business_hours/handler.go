package get_business_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/hours"
)

const (
	msgInvalidBusinessID = "geçersiz işletme kimliği"
	msgInvalidProfile    = "geçersiz takvim profili"
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

// Handle GET /api/v1/businesses/{businessId}/hours
// Query params: profile (widget|quick_add, по умолчанию widget)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("GET /hours - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	profile := r.URL.Query().Get("profile")

	result, err := h.service.Get(r.Context(), businessID, profile)
	if err != nil {
		switch {
		case errors.Is(err, hours.ErrInvalidInput):
			h.logger.Warn("GET /hours - Invalid profile: business_id=%s, profile=%q", businessID, profile)
			handlers.RespondBadRequest(w, msgInvalidProfile)

		default:
			h.logger.Error("GET /hours - Failed to get hours: business_id=%s, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hours - Hours retrieved successfully: business_id=%s, source=%s", businessID, result.Source)
	handlers.RespondJSON(w, http.StatusOK, result)
}
