package list_staff

import (
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
)

const msgInvalidBusinessID = "geçersiz işletme kimliği"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/staff
// Сотрудники возвращаются в том порядке, в котором перебираются при записи к любому мастеру
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("GET /staff - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	result, err := h.service.ListStaff(r.Context(), businessID)
	if err != nil {
		h.logger.Error("GET /staff - Failed to list staff: business_id=%s, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /staff - Staff retrieved successfully: business_id=%s, count=%d", businessID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
