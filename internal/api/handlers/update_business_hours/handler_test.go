package update_business_hours

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
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/service/hours"
	"github.com/m04kA/SMC-BarberBooking/internal/service/hours/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type fakeService struct {
	got     *models.UpsertHoursRequest
	created bool
	err     error
}

func (f *fakeService) Upsert(_ context.Context, _ uuid.UUID, req *models.UpsertHoursRequest) (*models.HoursResponse, bool, error) {
	f.got = req
	if f.err != nil {
		return nil, false, f.err
	}
	return &models.HoursResponse{OpeningHour: req.OpeningHour, Source: models.SourceProfile}, f.created, nil
}

func serve(svc *fakeService, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/businesses/{businessId}/hours", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPut)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/businesses/"+uuid.NewString()+"/hours", strings.NewReader(body)))
	return rec
}

const body = `{"profile":"quick_add","openingHour":8,"closingHour":18,"stepMinutes":20}`

func TestHandle_CreatedAndReplaced(t *testing.T) {
	svc := &fakeService{created: true}
	rec := serve(svc, body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.got.Profile)
	assert.Equal(t, "quick_add", *svc.got.Profile)
	assert.Equal(t, 20, svc.got.StepMinutes)

	rec = serve(&fakeService{}, body)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, `{"openingHour":"8"}`).Code)
	assert.Equal(t, http.StatusBadRequest,
		serve(&fakeService{err: fmt.Errorf("%w: step", hours.ErrInvalidInput)}, body).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: hours.ErrInternal}, body).Code)
}
