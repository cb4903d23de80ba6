package get_day_agenda

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type fakeService struct {
	date time.Time
	resp *models.AgendaResponse
	err  error
}

func (f *fakeService) GetDayAgenda(_ context.Context, _ uuid.UUID, date time.Time) (*models.AgendaResponse, error) {
	f.date = date
	return f.resp, f.err
}

func serve(svc *fakeService, query string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/businesses/{businessId}/agenda", NewHandler(svc, logger.Nop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/businesses/"+uuid.NewString()+"/agenda"+query, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{resp: &models.AgendaResponse{
		Date:         "2026-10-20",
		Appointments: []models.AppointmentResponse{{ID: "a", Status: "booked"}, {ID: "b", Status: "cancelled"}},
	}}

	rec := serve(svc, "?date=2026-10-20")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), svc.date)

	var resp models.AgendaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Appointments, 2)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "?date=20-10-2026").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: errors.New("boom")}, "?date=2026-10-20").Code)
}
