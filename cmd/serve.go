package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
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
	appointmentRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/client"
	hoursRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/hours"
	"github.com/m04kA/SMC-BarberBooking/internal/infra/storage/migrations"
	appointmentsService "github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-BarberBooking/internal/service/catalog"
	hoursService "github.com/m04kA/SMC-BarberBooking/internal/service/hours"
	createAppointmentUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/metrics"
)

const msgDatabaseUnavailable = "veritabanı erişilemiyor"

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(_ *cobra.Command, _ []string) error {
			return serve(*configPath)
		},
	}
}

// routes обработчики HTTP API
type routes struct {
	createAppointment       *createAppointmentHandler.Handler
	getAvailableSlots       *getAvailableSlotsHandler.Handler
	getAppointment          *getAppointmentHandler.Handler
	getDayAgenda            *getDayAgendaHandler.Handler
	getUpcomingAppointments *getUpcomingAppointmentsHandler.Handler
	updateAppointmentStatus *updateAppointmentStatusHandler.Handler
	getBusinessHours        *getBusinessHoursHandler.Handler
	listBusinessHours       *listBusinessHoursHandler.Handler
	updateBusinessHours     *updateBusinessHoursHandler.Handler
	deleteBusinessHours     *deleteBusinessHoursHandler.Handler
	listServices            *listServicesHandler.Handler
	createService           *createServiceHandler.Handler
	updateService           *updateServiceHandler.Handler
	deleteService           *deleteServiceHandler.Handler
	listStaff               *listStaffHandler.Handler
	createStaff             *createStaffHandler.Handler
	updateStaff             *updateStaffHandler.Handler
	deleteStaff             *deleteStaffHandler.Handler
}

func serve(configPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting SMC-BarberBooking...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Schedule.Location()
	if err != nil {
		return err
	}

	// Метрики: при выключенных метриках пишем в реестр, который никто не отдает
	var collector *metrics.Metrics
	if cfg.Metrics.Enabled {
		collector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	} else {
		collector = metrics.NewWithRegistry(prometheus.NewRegistry(), cfg.Metrics.ServiceName)
	}
	stopMetricsCh := make(chan struct{})

	// Подключаемся к базе данных
	db, err := openDB(context.Background(), cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, collector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	if cfg.Database.AutoMigrate {
		if err := migrations.Migrate(context.Background(), executor); err != nil {
			return err
		}
		log.Info("Database schema applied")
	}

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(executor)
	catalogRepository := catalogRepo.NewRepository(executor)
	clientRepository := clientRepo.NewRepository(executor)
	hoursRepository := hoursRepo.NewRepository(executor)

	defaults := profileDefaults(cfg.Schedule)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, location, log)
	hoursSvc := hoursService.NewService(hoursRepository, defaults, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		catalogRepository,
		clientRepository,
		appointmentRepository,
		location,
		collector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalogRepository,
		appointmentRepository,
		hoursRepository,
		defaults,
		location,
		log,
	)

	// Инициализируем handlers
	h := routes{
		createAppointment:       createAppointmentHandler.NewHandler(createAppointmentUseCase, location, log),
		getAvailableSlots:       getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log),
		getAppointment:          getAppointmentHandler.NewHandler(appointmentsSvc, log),
		getDayAgenda:            getDayAgendaHandler.NewHandler(appointmentsSvc, log),
		getUpcomingAppointments: getUpcomingAppointmentsHandler.NewHandler(appointmentsSvc, log),
		updateAppointmentStatus: updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log),
		getBusinessHours:        getBusinessHoursHandler.NewHandler(hoursSvc, log),
		listBusinessHours:       listBusinessHoursHandler.NewHandler(hoursSvc, log),
		updateBusinessHours:     updateBusinessHoursHandler.NewHandler(hoursSvc, log),
		deleteBusinessHours:     deleteBusinessHoursHandler.NewHandler(hoursSvc, log),
		listServices:            listServicesHandler.NewHandler(catalogSvc, log),
		createService:           createServiceHandler.NewHandler(catalogSvc, log),
		updateService:           updateServiceHandler.NewHandler(catalogSvc, log),
		deleteService:           deleteServiceHandler.NewHandler(catalogSvc, log),
		listStaff:               listStaffHandler.NewHandler(catalogSvc, log),
		createStaff:             createStaffHandler.NewHandler(catalogSvc, log),
		updateStaff:             updateStaffHandler.NewHandler(catalogSvc, log),
		deleteStaff:             deleteStaffHandler.NewHandler(catalogSvc, log),
	}

	r := newRouter(h, log)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(collector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", healthHandler(db)).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		close(stopMetricsCh)
		return fmt.Errorf("server failed: %w", err)
	}

	log.Info("Shutting down server...")
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// newRouter регистрирует маршруты API
func newRouter(h routes, log *logger.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.AccessLog(log.Zerolog()))

	api := r.PathPrefix("/api/v1/businesses/{businessId}").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (виджет бронирования)
	// ============================================================

	api.HandleFunc("/available-slots", h.getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", h.createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/hours", h.getBusinessHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", h.listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff", h.listStaff.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Business-ID header)
	// ============================================================

	protected := func(handle http.HandlerFunc) http.Handler {
		return middleware.Auth(handle)
	}

	// --- Записи ---
	// upcoming регистрируется раньше {appointmentId}
	api.Handle("/appointments/upcoming", protected(h.getUpcomingAppointments.Handle)).Methods(http.MethodGet)
	api.Handle("/appointments/{appointmentId}", protected(h.getAppointment.Handle)).Methods(http.MethodGet)
	api.Handle("/appointments/{appointmentId}/status", protected(h.updateAppointmentStatus.Handle)).Methods(http.MethodPatch)
	api.Handle("/agenda", protected(h.getDayAgenda.Handle)).Methods(http.MethodGet)

	// --- Часы работы ---
	api.Handle("/hours/all", protected(h.listBusinessHours.Handle)).Methods(http.MethodGet)
	api.Handle("/hours", protected(h.updateBusinessHours.Handle)).Methods(http.MethodPut)
	api.Handle("/hours", protected(h.deleteBusinessHours.Handle)).Methods(http.MethodDelete)

	// --- Каталог ---
	api.Handle("/services", protected(h.createService.Handle)).Methods(http.MethodPost)
	api.Handle("/services/{serviceId}", protected(h.updateService.Handle)).Methods(http.MethodPut)
	api.Handle("/services/{serviceId}", protected(h.deleteService.Handle)).Methods(http.MethodDelete)
	api.Handle("/staff", protected(h.createStaff.Handle)).Methods(http.MethodPost)
	api.Handle("/staff/{staffId}", protected(h.updateStaff.Handle)).Methods(http.MethodPut)
	api.Handle("/staff/{staffId}", protected(h.deleteStaff.Handle)).Methods(http.MethodDelete)

	return r
}

// healthHandler проверяет доступность БД
func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			handlers.RespondError(w, http.StatusServiceUnavailable, msgDatabaseUnavailable)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// profileDefaults часы работы из конфигурации для каждой точки входа
func profileDefaults(s config.ScheduleConfig) map[domain.ScheduleProfile]domain.BusinessHours {
	toHours := func(p config.ProfileConfig) domain.BusinessHours {
		return domain.BusinessHours{
			OpeningHour: p.OpeningHour,
			ClosingHour: p.ClosingHour,
			StepMinutes: p.StepMinutes,
		}
	}

	return map[domain.ScheduleProfile]domain.BusinessHours{
		domain.ProfileWidget:   toHours(s.Widget),
		domain.ProfileQuickAdd: toHours(s.QuickAdd),
	}
}
