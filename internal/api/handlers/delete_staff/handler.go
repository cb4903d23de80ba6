package delete_staff

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog"
)

const (
	msgInvalidBusinessID = "geçersiz işletme kimliği"
	msgInvalidStaffID    = "geçersiz personel kimliği"
	msgNotFound          = "personel bulunamadı"
	msgInUse             = "randevusu olan personel silinemez"
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

// Handle DELETE /api/v1/businesses/{businessId}/staff/{staffId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("DELETE /staff - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	staffID, err := handlers.PathUUID(r, "staffId")
	if err != nil {
		h.logger.Warn("DELETE /staff - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	if err := h.service.DeleteStaff(r.Context(), businessID, staffID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrStaffNotFound):
			h.logger.Warn("DELETE /staff - Staff member not found: business_id=%s, staff_id=%s", businessID, staffID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrInUse):
			h.logger.Warn("DELETE /staff - Staff member has appointments: staff_id=%s", staffID)
			handlers.RespondConflict(w, msgInUse)

		default:
			h.logger.Error("DELETE /staff - Failed to delete staff member: staff_id=%s, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /staff - Staff member deleted successfully: business_id=%s, staff_id=%s", businessID, staffID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
