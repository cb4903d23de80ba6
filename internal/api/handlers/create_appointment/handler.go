package create_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody  = "geçersiz istek gövdesi"
	msgInvalidBusinessID   = "geçersiz işletme kimliği"
	msgInvalidServiceID    = "geçersiz hizmet kimliği"
	msgInvalidDate         = "geçersiz tarih biçimi, YYYY-AA-GG bekleniyor"
	msgInvalidTime         = "geçersiz saat biçimi, SS:DD bekleniyor"
	msgInvalidResource     = "geçersiz personel seçimi"
	msgInvalidInput        = "lütfen tüm alanları doldurun"
	msgServiceNotFound     = "hizmet bulunamadı"
	msgStaffNotFound       = "personel bulunamadı"
	msgInvalidPhone        = "geçersiz telefon numarası"
	msgPastTime            = "geçmiş bir saate randevu alınamaz"
	msgNoResourceAvailable = "seçilen saatte müsait personel yok"
	msgSlotTaken           = "seçilen saat dolu, lütfen başka bir saat seçin"
)

type Handler struct {
	useCase  CreateAppointmentUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateAppointmentUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/businesses/{businessId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(businessID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: business_id=%s, error=%v", businessID, err)
		handlers.RespondBadRequest(w, parseErrorMessage(err))
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondUseCaseError(w, err, &req, businessID.String())
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%s, business_id=%s, resource=%s",
		result.AppointmentID, businessID, result.Resource)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, h.location))
}

func (h *Handler) respondUseCaseError(w http.ResponseWriter, err error, req *CreateAppointmentRequest, businessID string) {
	switch {
	case errors.Is(err, createAppointment.ErrInvalidService):
		h.logger.Warn("POST /appointments - Service not found: business_id=%s, service_id=%s", businessID, req.ServiceID)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, createAppointment.ErrResourceNotFound):
		h.logger.Warn("POST /appointments - Staff not found: business_id=%s, resource=%s", businessID, req.Resource)
		handlers.RespondNotFound(w, msgStaffNotFound)

	case errors.Is(err, createAppointment.ErrInvalidPhone):
		h.logger.Warn("POST /appointments - Invalid phone: business_id=%s", businessID)
		handlers.RespondBadRequest(w, msgInvalidPhone)

	case errors.Is(err, createAppointment.ErrPastTime):
		h.logger.Warn("POST /appointments - Past time: business_id=%s, date=%s, time=%s", businessID, req.Date, req.StartTime)
		handlers.RespondBadRequest(w, msgPastTime)

	case errors.Is(err, createAppointment.ErrInvalidInput):
		h.logger.Warn("POST /appointments - Invalid input: business_id=%s, error=%v", businessID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, createAppointment.ErrNoResourceAvailable):
		h.logger.Warn("POST /appointments - No resource available: business_id=%s, date=%s, time=%s", businessID, req.Date, req.StartTime)
		handlers.RespondConflict(w, msgNoResourceAvailable)

	case errors.Is(err, createAppointment.ErrConflictDetected):
		h.logger.Warn("POST /appointments - Slot taken: business_id=%s, date=%s, time=%s", businessID, req.Date, req.StartTime)
		handlers.RespondConflict(w, msgSlotTaken)

	default:
		h.logger.Error("POST /appointments - Failed to create appointment: business_id=%s, error=%v", businessID, err)
		handlers.RespondInternalError(w)
	}
}

func parseErrorMessage(err error) string {
	switch {
	case errors.Is(err, errInvalidServiceID):
		return msgInvalidServiceID
	case errors.Is(err, errInvalidTime):
		return msgInvalidTime
	case errors.Is(err, errInvalidResource):
		return msgInvalidResource
	default:
		return msgInvalidDate
	}
}
