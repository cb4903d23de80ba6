package update_business_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/hours"
	"github.com/m04kA/SMC-BarberBooking/internal/service/hours/models"
)

const (
	msgInvalidBusinessID  = "geçersiz işletme kimliği"
	msgInvalidRequestBody = "geçersiz istek gövdesi"
	msgInvalidData        = "geçersiz çalışma saatleri"
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

// Handle PUT /api/v1/businesses/{businessId}/hours
// Создает настройку, если ее еще нет (201), иначе заменяет (200)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("PUT /hours - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	var req models.UpsertHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, created, err := h.service.Upsert(r.Context(), businessID, &req)
	if err != nil {
		switch {
		case errors.Is(err, hours.ErrInvalidInput):
			h.logger.Warn("PUT /hours - Invalid data: business_id=%s, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /hours - Failed to save hours: business_id=%s, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	h.logger.Info("PUT /hours - Hours saved successfully: business_id=%s, source=%s, created=%t",
		businessID, result.Source, created)
	handlers.RespondJSON(w, status, result)
}
