package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	createAppointmentHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/create_appointment"
	createServiceHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/create_service"
	createStaffHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/create_staff"
	deleteBusinessHoursHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/delete_business_hours"
	deleteServiceHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/delete_service"
	deleteStaffHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/delete_staff"
	getAppointmentHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_available_slots"
	getBusinessHoursHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_business_hours"
	getDayAgendaHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_day_agenda"
	getUpcomingAppointmentsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_upcoming_appointments"
	listBusinessHoursHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/list_business_hours"
	listServicesHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/list_services"
	listStaffHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/list_staff"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/update_appointment_status"
	updateBusinessHoursHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/update_business_hours"
	updateServiceHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/update_service"
	updateStaffHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/update_staff"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/config"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

// Сервисы не задаются: проверяются только маршрутизация и авторизация,
// до вызова сервиса запросы не доходят
func testRouter() http.Handler {
	log := logger.Nop()
	return newRouter(routes{
		createAppointment:       createAppointmentHandler.NewHandler(nil, nil, log),
		getAvailableSlots:       getAvailableSlotsHandler.NewHandler(nil, log),
		getAppointment:          getAppointmentHandler.NewHandler(nil, log),
		getDayAgenda:            getDayAgendaHandler.NewHandler(nil, log),
		getUpcomingAppointments: getUpcomingAppointmentsHandler.NewHandler(nil, log),
		updateAppointmentStatus: updateAppointmentStatusHandler.NewHandler(nil, log),
		getBusinessHours:        getBusinessHoursHandler.NewHandler(nil, log),
		listBusinessHours:       listBusinessHoursHandler.NewHandler(nil, log),
		updateBusinessHours:     updateBusinessHoursHandler.NewHandler(nil, log),
		deleteBusinessHours:     deleteBusinessHoursHandler.NewHandler(nil, log),
		listServices:            listServicesHandler.NewHandler(nil, log),
		createService:           createServiceHandler.NewHandler(nil, log),
		updateService:           updateServiceHandler.NewHandler(nil, log),
		deleteService:           deleteServiceHandler.NewHandler(nil, log),
		listStaff:               listStaffHandler.NewHandler(nil, log),
		createStaff:             createStaffHandler.NewHandler(nil, log),
		updateStaff:             updateStaffHandler.NewHandler(nil, log),
		deleteStaff:             deleteStaffHandler.NewHandler(nil, log),
	}, log)
}

func TestRouter(t *testing.T) {
	businessID := uuid.NewString()
	base := "/api/v1/businesses/" + businessID

	tests := []struct {
		name   string
		method string
		path   string
		header string
		want   int
	}{
		{"slots are public", http.MethodGet, base + "/available-slots", "", http.StatusBadRequest},
		{"booking is public", http.MethodPost, base + "/appointments", "", http.StatusBadRequest},
		{"hours are public", http.MethodGet, "/api/v1/businesses/1/hours", "", http.StatusBadRequest},
		{"agenda requires header", http.MethodGet, base + "/agenda", "", http.StatusUnauthorized},
		{"agenda of another business", http.MethodGet, base + "/agenda", uuid.NewString(), http.StatusForbidden},
		{"agenda with header", http.MethodGet, base + "/agenda", businessID, http.StatusBadRequest},
		{"status requires header", http.MethodPatch, base + "/appointments/" + uuid.NewString() + "/status", "", http.StatusUnauthorized},
		{"appointment requires header", http.MethodGet, base + "/appointments/" + uuid.NewString(), "", http.StatusUnauthorized},
		{"hours update requires header", http.MethodPut, base + "/hours", "", http.StatusUnauthorized},
		{"hours delete requires header", http.MethodDelete, base + "/hours", "", http.StatusUnauthorized},
		{"hours list requires header", http.MethodGet, base + "/hours/all", "", http.StatusUnauthorized},
		{"services are public", http.MethodGet, "/api/v1/businesses/1/services", "", http.StatusBadRequest},
		{"staff are public", http.MethodGet, "/api/v1/businesses/1/staff", "", http.StatusBadRequest},
		{"service create requires header", http.MethodPost, base + "/services", "", http.StatusUnauthorized},
		{"service create with header", http.MethodPost, base + "/services", businessID, http.StatusBadRequest},
		{"service update requires header", http.MethodPut, base + "/services/" + uuid.NewString(), "", http.StatusUnauthorized},
		{"service delete of another business", http.MethodDelete, base + "/services/" + uuid.NewString(), uuid.NewString(), http.StatusForbidden},
		{"staff create requires header", http.MethodPost, base + "/staff", "", http.StatusUnauthorized},
		{"staff update requires header", http.MethodPut, base + "/staff/" + uuid.NewString(), "", http.StatusUnauthorized},
		{"staff delete with bad id", http.MethodDelete, base + "/staff/abc", businessID, http.StatusBadRequest},
		{"upcoming requires header", http.MethodGet, base + "/appointments/upcoming", "", http.StatusUnauthorized},
		{"unknown route", http.MethodGet, base + "/clients", "", http.StatusNotFound},
	}

	router := testRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(middleware.BusinessIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRouter_UpcomingIsNotAnAppointmentID(t *testing.T) {
	businessID := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/"+businessID+"/appointments/upcoming?limit=x", nil)
	req.Header.Set(middleware.BusinessIDHeader, businessID)
	rec := httptest.NewRecorder()

	testRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "limit")
}

func TestProfileDefaults(t *testing.T) {
	defaults := profileDefaults(config.Default().Schedule)

	assert.Equal(t, domain.BusinessHours{OpeningHour: 9, ClosingHour: 21, StepMinutes: 30}, defaults[domain.ProfileWidget])
	assert.Equal(t, domain.BusinessHours{OpeningHour: 10, ClosingHour: 20, StepMinutes: 15}, defaults[domain.ProfileQuickAdd])
}
