package get_appointment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type fakeService struct {
	resp *models.AppointmentResponse
	err  error
}

func (f *fakeService) GetByID(context.Context, uuid.UUID, uuid.UUID) (*models.AppointmentResponse, error) {
	return f.resp, f.err
}

func serve(svc *fakeService, businessID, appointmentID string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/businesses/{businessId}/appointments/{appointmentId}", NewHandler(svc, logger.Nop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/businesses/"+businessID+"/appointments/"+appointmentID, nil))
	return rec
}

func TestHandle(t *testing.T) {
	id := uuid.NewString()

	tests := []struct {
		name          string
		svc           *fakeService
		appointmentID string
		want          int
	}{
		{"found", &fakeService{resp: &models.AppointmentResponse{ID: id, Status: "booked"}}, id, http.StatusOK},
		{"not found", &fakeService{err: appointments.ErrAppointmentNotFound}, id, http.StatusNotFound},
		{"store failure", &fakeService{err: errors.New("boom")}, id, http.StatusInternalServerError},
		{"bad id", &fakeService{}, "42", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(tt.svc, uuid.NewString(), tt.appointmentID)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandle_Body(t *testing.T) {
	id := uuid.NewString()
	rec := serve(&fakeService{resp: &models.AppointmentResponse{ID: id, Resource: "owner", Status: "completed"}}, uuid.NewString(), id)

	assert.Contains(t, rec.Body.String(), `"id":"`+id+`"`)
	assert.Contains(t, rec.Body.String(), `"status":"completed"`)
}
