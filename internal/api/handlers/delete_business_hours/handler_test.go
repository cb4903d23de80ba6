package delete_business_hours

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/service/hours"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type fakeService struct {
	called  bool
	profile *string
	err     error
}

func (f *fakeService) Delete(_ context.Context, _ uuid.UUID, profile *string) error {
	f.called = true
	f.profile = profile
	return f.err
}

func serve(svc *fakeService, query string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/businesses/{businessId}/hours", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/businesses/"+uuid.NewString()+"/hours"+query, nil))
	return rec
}

func TestHandle_ProfileParam(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Nil(t, svc.profile)

	svc = &fakeService{}
	rec = serve(svc, "?profile=widget")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, svc.profile)
	assert.Equal(t, "widget", *svc.profile)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: hours.ErrHoursNotFound}, "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: hours.ErrInvalidInput}, "?profile=").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: hours.ErrInternal}, "").Code)
}
