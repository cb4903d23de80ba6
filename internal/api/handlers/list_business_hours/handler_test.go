package list_business_hours

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberBooking/internal/service/hours/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) List(context.Context, uuid.UUID) (*models.HoursListResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.HoursListResponse{Hours: []models.HoursResponse{{Source: models.SourceBusiness}}, Total: 1}, nil
}

func serve(svc *fakeService) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/businesses/{businessId}/hours/all", NewHandler(svc, logger.Nop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/businesses/"+uuid.NewString()+"/hours/all", nil))
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(&fakeService{})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)

	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: errors.New("boom")}).Code)
}
