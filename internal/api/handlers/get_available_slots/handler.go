package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
)

const (
	msgInvalidBusinessID = "geçersiz işletme kimliği"
	msgInvalidServiceID  = "geçersiz hizmet kimliği"
	msgMissingServiceID  = "hizmet kimliği zorunludur"
	msgMissingDate       = "tarih zorunludur"
	msgInvalidDate       = "geçersiz tarih biçimi, YYYY-AA-GG bekleniyor"
	msgInvalidResource   = "geçersiz personel seçimi"
	msgInvalidProfile    = "geçersiz takvim profili"
	msgServiceNotFound   = "hizmet bulunamadı"
	msgStaffNotFound     = "personel bulunamadı"
	msgInvalidInput      = "geçersiz sorgu parametreleri"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/available-slots
// Query params: serviceId (required), date (required, YYYY-MM-DD), resource (owner|any|staff id), profile (widget|quick_add)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	query := r.URL.Query()

	serviceIDStr := query.Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(businessID, serviceIDStr, dateStr, query.Get("resource"), query.Get("profile"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid query: business_id=%s, error=%v", businessID, err)
		handlers.RespondBadRequest(w, parseErrorMessage(err))
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /available-slots - Service not found: business_id=%s, service_id=%s", businessID, serviceIDStr)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrResourceNotFound):
			h.logger.Warn("GET /available-slots - Staff not found: business_id=%s, resource=%s", businessID, useCaseReq.Resource)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: business_id=%s, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: business_id=%s, service_id=%s, error=%v",
				businessID, serviceIDStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - Slots retrieved successfully: business_id=%s, service_id=%s, profile=%s, slots_count=%d",
		businessID, serviceIDStr, result.Profile, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func parseErrorMessage(err error) string {
	switch {
	case errors.Is(err, errInvalidServiceID):
		return msgInvalidServiceID
	case errors.Is(err, errInvalidResource):
		return msgInvalidResource
	case errors.Is(err, errInvalidProfile):
		return msgInvalidProfile
	default:
		return msgInvalidDate
	}
}
