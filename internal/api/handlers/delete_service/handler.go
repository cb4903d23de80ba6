package delete_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog"
)

const (
	msgInvalidBusinessID = "geçersiz işletme kimliği"
	msgInvalidServiceID  = "geçersiz hizmet kimliği"
	msgNotFound          = "hizmet bulunamadı"
	msgInUse             = "randevusu olan hizmet silinemez"
)

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

// Handle DELETE /api/v1/businesses/{businessId}/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("DELETE /services - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	serviceID, err := handlers.PathUUID(r, "serviceId")
	if err != nil {
		h.logger.Warn("DELETE /services - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	if err := h.service.DeleteService(r.Context(), businessID, serviceID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("DELETE /services - Service not found: business_id=%s, service_id=%s", businessID, serviceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrInUse):
			h.logger.Warn("DELETE /services - Service has appointments: service_id=%s", serviceID)
			handlers.RespondConflict(w, msgInUse)

		default:
			h.logger.Error("DELETE /services - Failed to delete service: service_id=%s, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /services - Service deleted successfully: business_id=%s, service_id=%s", businessID, serviceID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
