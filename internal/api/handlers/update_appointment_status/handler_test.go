package update_appointment_status

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type fakeService struct {
	got *models.UpdateStatusRequest
	err error
}

func (f *fakeService) UpdateStatus(_ context.Context, _, id uuid.UUID, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentResponse{ID: id.String(), Status: req.Status}, nil
}

func serve(svc *fakeService, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/businesses/{businessId}/appointments/{appointmentId}/status",
		NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPatch)

	target := fmt.Sprintf("/businesses/%s/appointments/%s/status", uuid.New(), uuid.New())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, target, strings.NewReader(body)))
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, `{"status":"completed"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "completed", svc.got.Status)
	assert.Contains(t, rec.Body.String(), `"status":"completed"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"bad body", `status=completed`, nil, http.StatusBadRequest},
		{"bad status", `{"status":"no_show"}`, fmt.Errorf("%w: invalid status", appointments.ErrInvalidInput), http.StatusBadRequest},
		{"not found", `{"status":"cancelled"}`, appointments.ErrAppointmentNotFound, http.StatusNotFound},
		{"transition", `{"status":"cancelled"}`, fmt.Errorf("%w: completed -> cancelled", appointments.ErrInvalidTransition), http.StatusConflict},
		{"slot taken", `{"status":"booked"}`, appointments.ErrConflictDetected, http.StatusConflict},
		{"internal", `{"status":"booked"}`, appointments.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, tt.body)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
