package update_service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog"
	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type fakeService struct {
	gotID uuid.UUID
	err   error
}

func (f *fakeService) UpdateService(_ context.Context, _, serviceID uuid.UUID, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	f.gotID = serviceID
	if f.err != nil {
		return nil, f.err
	}
	return &models.ServiceResponse{ID: serviceID.String(), Name: req.Name, DurationMinutes: req.DurationMinutes}, nil
}

func serve(svc *fakeService, serviceID, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/businesses/{businessId}/services/{serviceId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPut)

	rec := httptest.NewRecorder()
	target := "/businesses/" + uuid.NewString() + "/services/" + serviceID
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, target, strings.NewReader(body)))
	return rec
}

const body = `{"name":"Sakal Tıraşı","priceMinor":15000,"durationMinutes":20}`

func TestHandle_Success(t *testing.T) {
	svc := &fakeService{}
	serviceID := uuid.New()

	rec := serve(svc, serviceID.String(), body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, serviceID, svc.gotID)
	assert.Contains(t, rec.Body.String(), `"durationMinutes":20`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name      string
		serviceID string
		body      string
		err       error
		want      int
	}{
		{name: "bad service id", serviceID: "abc", body: body, want: http.StatusBadRequest},
		{name: "bad body", serviceID: uuid.NewString(), body: `{`, want: http.StatusBadRequest},
		{name: "invalid data", serviceID: uuid.NewString(), body: body, err: catalog.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "not found", serviceID: uuid.NewString(), body: body, err: catalog.ErrServiceNotFound, want: http.StatusNotFound},
		{name: "internal", serviceID: uuid.NewString(), body: body, err: catalog.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(&fakeService{err: tt.err}, tt.serviceID, tt.body).Code)
		})
	}
}
