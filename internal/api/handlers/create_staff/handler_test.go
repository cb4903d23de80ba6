package create_staff

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog"
	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type fakeService struct {
	got *models.StaffRequest
	err error
}

func (f *fakeService) CreateStaff(_ context.Context, _ uuid.UUID, req *models.StaffRequest) (*models.StaffResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.StaffResponse{ID: uuid.NewString(), Name: req.Name}, nil
}

func serve(svc *fakeService, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/businesses/{businessId}/staff", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/businesses/"+uuid.NewString()+"/staff", strings.NewReader(body)))
	return rec
}

const body = `{"name":"Ahmet Yılmaz","role":"Berber","commissionRate":40}`

func TestHandle_Created(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, "Berber", svc.got.Role)
	assert.Equal(t, 40.0, svc.got.CommissionRate)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, `not json`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: catalog.ErrInvalidInput}, body).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: catalog.ErrInternal}, body).Code)
}
