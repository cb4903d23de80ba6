package delete_staff

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type fakeService struct {
	deleted []uuid.UUID
	err     error
}

func (f *fakeService) DeleteStaff(_ context.Context, _, staffID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, staffID)
	return nil
}

func serve(svc *fakeService, staffID string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/businesses/{businessId}/staff/{staffId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	target := "/businesses/" + uuid.NewString() + "/staff/" + staffID
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, target, nil))
	return rec
}

func TestHandle_NoContent(t *testing.T) {
	svc := &fakeService{}
	staffID := uuid.New()

	rec := serve(svc, staffID.String())

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []uuid.UUID{staffID}, svc.deleted)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "abc").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: catalog.ErrStaffNotFound}, uuid.NewString()).Code)
	assert.Equal(t, http.StatusConflict, serve(&fakeService{err: catalog.ErrInUse}, uuid.NewString()).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: catalog.ErrInternal}, uuid.NewString()).Code)
}
