package create_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog"
	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog/models"
)

const (
	msgInvalidBusinessID  = "geçersiz işletme kimliği"
	msgInvalidRequestBody = "geçersiz istek gövdesi"
	msgInvalidService     = "hizmet adı zorunludur, süre pozitif ve fiyat negatif olmamalıdır"
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

// Handle POST /api/v1/businesses/{businessId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("POST /services - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	var req models.ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateService(r.Context(), businessID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /services - Invalid data: business_id=%s, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidService)

		default:
			h.logger.Error("POST /services - Failed to create service: business_id=%s, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services - Service created successfully: business_id=%s, service_id=%s", businessID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
