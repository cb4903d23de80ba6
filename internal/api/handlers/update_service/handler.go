package update_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog"
	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog/models"
)

const (
	msgInvalidBusinessID  = "geçersiz işletme kimliği"
	msgInvalidServiceID   = "geçersiz hizmet kimliği"
	msgInvalidRequestBody = "geçersiz istek gövdesi"
	msgInvalidService     = "hizmet adı zorunludur, süre pozitif ve fiyat negatif olmamalıdır"
	msgNotFound           = "hizmet bulunamadı"
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

// Handle PUT /api/v1/businesses/{businessId}/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("PUT /services - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	serviceID, err := handlers.PathUUID(r, "serviceId")
	if err != nil {
		h.logger.Warn("PUT /services - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req models.ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateService(r.Context(), businessID, serviceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /services - Invalid data: service_id=%s, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidService)

		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("PUT /services - Service not found: business_id=%s, service_id=%s", businessID, serviceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /services - Failed to update service: service_id=%s, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /services - Service updated successfully: business_id=%s, service_id=%s", businessID, serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
