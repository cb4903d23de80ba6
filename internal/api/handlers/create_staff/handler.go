package create_staff

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
	msgInvalidStaff       = "personel adı zorunludur, komisyon oranı 0 ile 100 arasında olmalıdır"
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

// Handle POST /api/v1/businesses/{businessId}/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("POST /staff - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	var req models.StaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateStaff(r.Context(), businessID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /staff - Invalid data: business_id=%s, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidStaff)

		default:
			h.logger.Error("POST /staff - Failed to create staff member: business_id=%s, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff - Staff member created successfully: business_id=%s, staff_id=%s", businessID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
