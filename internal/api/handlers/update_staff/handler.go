package update_staff

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog"
	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog/models"
)

const (
	msgInvalidBusinessID  = "geçersiz işletme kimliği"
	msgInvalidStaffID     = "geçersiz personel kimliği"
	msgInvalidRequestBody = "geçersiz istek gövdesi"
	msgInvalidStaff       = "personel adı zorunludur, komisyon oranı 0 ile 100 arasında olmalıdır"
	msgNotFound           = "personel bulunamadı"
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

// Handle PUT /api/v1/businesses/{businessId}/staff/{staffId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("PUT /staff - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	staffID, err := handlers.PathUUID(r, "staffId")
	if err != nil {
		h.logger.Warn("PUT /staff - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	var req models.StaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStaff(r.Context(), businessID, staffID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /staff - Invalid data: staff_id=%s, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidStaff)

		case errors.Is(err, catalog.ErrStaffNotFound):
			h.logger.Warn("PUT /staff - Staff member not found: business_id=%s, staff_id=%s", businessID, staffID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /staff - Failed to update staff member: staff_id=%s, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /staff - Staff member updated successfully: business_id=%s, staff_id=%s", businessID, staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
