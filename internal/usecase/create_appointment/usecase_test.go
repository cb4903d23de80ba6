package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/client"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

var istanbul = time.FixedZone("TRT", 3*60*60)

type fakeCatalog struct {
	services   map[uuid.UUID]*domain.Service
	staff      []domain.StaffMember
	serviceErr error
	staffErr   error
}

func (f *fakeCatalog) GetService(_ context.Context, _, serviceID uuid.UUID) (*domain.Service, error) {
	if f.serviceErr != nil {
		return nil, f.serviceErr
	}
	svc, ok := f.services[serviceID]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return svc, nil
}

func (f *fakeCatalog) ListStaff(context.Context, uuid.UUID) ([]domain.StaffMember, error) {
	return f.staff, f.staffErr
}

type fakeClients struct {
	byPhone   map[string]*domain.Client
	findErr   error
	createErr error
}

func (f *fakeClients) FindByPhone(_ context.Context, _ uuid.UUID, phone string) (*domain.Client, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	c, ok := f.byPhone[phone]
	if !ok {
		return nil, clientRepo.ErrClientNotFound
	}
	return c, nil
}

func (f *fakeClients) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	c.ID = uuid.New()
	f.byPhone[c.Phone] = c
	return c, nil
}

type fakeAppointments struct {
	day       []domain.DayAppointment
	created   []domain.NewAppointment
	listCalls int
	listErr   error
	createErr error
	// beforeList вызывается перед каждой выдачей записей дня
	beforeList func(call int, f *fakeAppointments)
}

func (f *fakeAppointments) ListForDay(context.Context, uuid.UUID, time.Time, time.Time) ([]domain.DayAppointment, error) {
	f.listCalls++
	if f.beforeList != nil {
		f.beforeList(f.listCalls, f)
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.DayAppointment(nil), f.day...), nil
}

func (f *fakeAppointments) Create(_ context.Context, apt domain.NewAppointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, apt)
	return &domain.Appointment{
		ID:         uuid.New(),
		BusinessID: apt.BusinessID,
		ClientID:   apt.ClientID,
		ServiceID:  apt.ServiceID,
		Resource:   apt.Resource,
		StartTime:  apt.StartTime,
		Status:     apt.Status,
	}, nil
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type fakeMetrics struct{ outcomes []string }

func (f *fakeMetrics) ObserveBookingAttempt(outcome string) {
	f.outcomes = append(f.outcomes, outcome)
}

type fixture struct {
	businessID   uuid.UUID
	haircut      *domain.Service
	staffA       domain.StaffMember
	catalog      *fakeCatalog
	clients      *fakeClients
	appointments *fakeAppointments
	clock        *fixedTime
	metrics      *fakeMetrics
	uc           *UseCase
}

func newFixture() *fixture {
	f := &fixture{businessID: uuid.New()}
	f.haircut = &domain.Service{ID: uuid.New(), BusinessID: f.businessID, Name: "Haircut", PriceMinor: 30000, DurationMinutes: 30}
	f.staffA = domain.StaffMember{ID: uuid.New(), BusinessID: f.businessID, Name: "Ahmet"}
	f.catalog = &fakeCatalog{
		services: map[uuid.UUID]*domain.Service{f.haircut.ID: f.haircut},
		staff:    []domain.StaffMember{f.staffA},
	}
	f.clients = &fakeClients{byPhone: map[string]*domain.Client{}}
	f.appointments = &fakeAppointments{}
	f.clock = &fixedTime{now: time.Date(2026, 10, 20, 9, 0, 0, 0, istanbul)}
	f.metrics = &fakeMetrics{}

	f.uc = NewUseCase(f.catalog, f.clients, f.appointments, istanbul, f.metrics, logger.Nop())
	f.uc.timeProvider = f.clock
	return f
}

func (f *fixture) request(startTime types.TimeString) *Request {
	return &Request{
		BusinessID:    f.businessID,
		ServiceID:     f.haircut.ID,
		Date:          time.Date(2026, 10, 20, 0, 0, 0, 0, istanbul),
		StartTime:     startTime,
		Resource:      domain.ResourcePreference{Kind: domain.PreferOwner},
		CustomerName:  "Ayşe Yılmaz",
		CustomerPhone: "0532 123 45 67",
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 10, 20, hour, minute, 0, 0, istanbul)
}

func bookedAt(ref domain.ResourceRef, start time.Time) domain.DayAppointment {
	return domain.DayAppointment{
		ID:              uuid.New(),
		Resource:        ref,
		StartTime:       start,
		DurationMinutes: 30,
		Status:          domain.StatusBooked,
	}
}

func TestExecute_CreatesClientAndAppointment(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), f.request("14:00"))
	require.NoError(t, err)

	assert.True(t, resp.ClientCreated)
	assert.Equal(t, domain.OwnerResource, resp.Resource)
	assert.Equal(t, at(14, 0), resp.StartTime)
	assert.Equal(t, at(14, 30), resp.EndTime)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, domain.StatusBooked, resp.Status)

	require.Len(t, f.appointments.created, 1)
	created := f.appointments.created[0]
	assert.Equal(t, resp.ClientID, created.ClientID)
	assert.Equal(t, f.haircut.ID, created.ServiceID)
	assert.Equal(t, domain.StatusBooked, created.Status)

	client := f.clients.byPhone["5321234567"]
	require.NotNil(t, client)
	assert.Equal(t, "Ayşe Yılmaz", client.Name)

	assert.Equal(t, []string{OutcomeCommitted}, f.metrics.outcomes)
}

func TestExecute_ReusesClientByNormalizedPhone(t *testing.T) {
	f := newFixture()
	existing := &domain.Client{ID: uuid.New(), BusinessID: f.businessID, Name: "Ayşe", Phone: "5321234567"}
	f.clients.byPhone[existing.Phone] = existing

	req := f.request("14:00")
	req.CustomerPhone = "+90 (532) 123-45-67"

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.ClientCreated)
	assert.Equal(t, existing.ID, resp.ClientID)
	assert.Len(t, f.clients.byPhone, 1)
}

func TestExecute_HaircutScenario(t *testing.T) {
	f := newFixture()
	existing := bookedAt(domain.OwnerResource, at(14, 0))
	existing.ServiceID = f.haircut.ID
	f.appointments.day = []domain.DayAppointment{existing}

	_, err := f.uc.Execute(context.Background(), f.request("14:00"))
	assert.ErrorIs(t, err, ErrConflictDetected)

	_, err = f.uc.Execute(context.Background(), f.request("14:30"))
	assert.NoError(t, err)

	f.appointments.day[0].Status = domain.StatusCancelled
	_, err = f.uc.Execute(context.Background(), f.request("14:00"))
	assert.NoError(t, err)

	assert.Len(t, f.appointments.created, 2)
	assert.Equal(t, []string{OutcomeConflictDetected, OutcomeCommitted, OutcomeCommitted}, f.metrics.outcomes)
}

func TestExecute_AppointmentWithoutDurationBlocksDefault(t *testing.T) {
	f := newFixture()
	existing := bookedAt(domain.OwnerResource, at(14, 0))
	existing.DurationMinutes = 0
	f.appointments.day = []domain.DayAppointment{existing}

	_, err := f.uc.Execute(context.Background(), f.request("14:15"))
	assert.ErrorIs(t, err, ErrConflictDetected)

	_, err = f.uc.Execute(context.Background(), f.request("14:30"))
	assert.NoError(t, err)
}

func TestExecute_ValidationFailuresWriteNothing(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *fixture, req *Request)
		wantErr error
	}{
		{
			name:    "unknown service",
			mutate:  func(_ *fixture, req *Request) { req.ServiceID = uuid.New() },
			wantErr: ErrInvalidService,
		},
		{
			name:    "phone too short",
			mutate:  func(_ *fixture, req *Request) { req.CustomerPhone = "532 12" },
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "empty phone",
			mutate:  func(_ *fixture, req *Request) { req.CustomerPhone = "" },
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "start in the past",
			mutate:  func(_ *fixture, req *Request) { req.StartTime = "08:30" },
			wantErr: ErrPastTime,
		},
		{
			name:    "start equals now",
			mutate:  func(_ *fixture, req *Request) { req.StartTime = "09:00" },
			wantErr: ErrPastTime,
		},
		{
			name: "past day",
			mutate: func(_ *fixture, req *Request) {
				req.Date = req.Date.AddDate(0, 0, -1)
				req.StartTime = "20:00"
			},
			wantErr: ErrPastTime,
		},
		{
			name: "unknown staff member",
			mutate: func(_ *fixture, req *Request) {
				req.Resource = domain.ResourcePreference{Kind: domain.PreferStaff, StaffID: uuid.New()}
			},
			wantErr: ErrResourceNotFound,
		},
		{
			name:    "missing customer name",
			mutate:  func(_ *fixture, req *Request) { req.CustomerName = "   " },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed time",
			mutate:  func(_ *fixture, req *Request) { req.StartTime = "2pm" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "service lookup fails",
			mutate:  func(f *fixture, _ *Request) { f.catalog.serviceErr = errors.New("connection refused") },
			wantErr: ErrLookupFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := f.request("14:00")
			tt.mutate(f, req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.clients.byPhone)
			assert.Empty(t, f.appointments.created)
			assert.Equal(t, 0, f.appointments.listCalls)
		})
	}
}

func TestExecute_PastTimeCheckedBeforePhone(t *testing.T) {
	f := newFixture()

	req := f.request("08:30")
	req.CustomerPhone = "532 12"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastTime)
	assert.Empty(t, f.clients.byPhone)
}

func TestExecute_PastTimeWinsOverAvailability(t *testing.T) {
	f := newFixture()
	f.clock.now = at(14, 0)

	req := f.request("14:00")
	req.Resource = domain.ResourcePreference{Kind: domain.PreferAny}

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastTime)
}

func TestExecute_AnyResourcePicksFreeStaff(t *testing.T) {
	f := newFixture()
	f.appointments.day = []domain.DayAppointment{bookedAt(domain.OwnerResource, at(9, 0))}
	f.clock.now = at(8, 0)

	req := f.request("09:00")
	req.Resource = domain.ResourcePreference{Kind: domain.PreferAny}

	for i := 0; i < 10; i++ {
		resp, err := f.uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, f.staffA.Resource(), resp.Resource)
	}
}

func TestExecute_AnyResourceNoneAvailable(t *testing.T) {
	f := newFixture()
	f.appointments.day = []domain.DayAppointment{
		bookedAt(domain.OwnerResource, at(15, 0)),
		bookedAt(f.staffA.Resource(), at(15, 15)),
	}

	req := f.request("15:00")
	req.Resource = domain.ResourcePreference{Kind: domain.PreferAny}

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoResourceAvailable)
	assert.Empty(t, f.appointments.created)
	assert.Equal(t, []string{OutcomeNoResourceAvailable}, f.metrics.outcomes)
}

func TestExecute_SpecificStaff(t *testing.T) {
	f := newFixture()
	f.appointments.day = []domain.DayAppointment{bookedAt(domain.OwnerResource, at(16, 0))}

	req := f.request("16:00")
	req.Resource = domain.ResourcePreference{Kind: domain.PreferStaff, StaffID: f.staffA.ID}

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, f.staffA.Resource(), resp.Resource)
	assert.Equal(t, f.staffA.Resource(), f.appointments.created[0].Resource)
}

func TestExecute_RecheckSeesBookingThatLandedMeanwhile(t *testing.T) {
	f := newFixture()
	f.appointments.beforeList = func(call int, fa *fakeAppointments) {
		if call == 2 {
			fa.day = append(fa.day, bookedAt(domain.OwnerResource, at(14, 15)))
		}
	}

	req := f.request("14:00")
	req.Resource = domain.ResourcePreference{Kind: domain.PreferAny}
	f.catalog.staff = nil

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrConflictDetected)
	assert.Equal(t, 2, f.appointments.listCalls)
	assert.Empty(t, f.appointments.created)
}

func TestExecute_RecheckUsesFreshClock(t *testing.T) {
	f := newFixture()
	f.clock.now = at(13, 59)
	f.appointments.beforeList = func(int, *fakeAppointments) {
		f.clock.now = at(14, 0)
	}

	_, err := f.uc.Execute(context.Background(), f.request("14:00"))
	assert.ErrorIs(t, err, ErrPastTime)
	assert.Empty(t, f.appointments.created)
}

func TestExecute_PersistenceFailureKeepsCreatedClient(t *testing.T) {
	f := newFixture()
	f.appointments.createErr = errors.New("insert failed")

	_, err := f.uc.Execute(context.Background(), f.request("14:00"))

	assert.ErrorIs(t, err, ErrPersistenceFailure)
	assert.Contains(t, err.Error(), "insert failed")

	client, findErr := f.clients.FindByPhone(context.Background(), f.businessID, "5321234567")
	require.NoError(t, findErr)
	assert.Equal(t, "Ayşe Yılmaz", client.Name)
	assert.Empty(t, f.appointments.created)
	assert.Equal(t, []string{OutcomePersistenceFailure}, f.metrics.outcomes)
}

func TestExecute_StoreFailures(t *testing.T) {
	t.Run("client lookup", func(t *testing.T) {
		f := newFixture()
		f.clients.findErr = errors.New("timeout")

		_, err := f.uc.Execute(context.Background(), f.request("14:00"))
		assert.ErrorIs(t, err, ErrLookupFailure)
	})

	t.Run("client create", func(t *testing.T) {
		f := newFixture()
		f.clients.createErr = errors.New("timeout")

		_, err := f.uc.Execute(context.Background(), f.request("14:00"))
		assert.ErrorIs(t, err, ErrPersistenceFailure)
		assert.Empty(t, f.appointments.created)
	})

	t.Run("appointment fetch", func(t *testing.T) {
		f := newFixture()
		f.appointments.listErr = errors.New("timeout")

		_, err := f.uc.Execute(context.Background(), f.request("14:00"))
		assert.ErrorIs(t, err, ErrLookupFailure)
		assert.Empty(t, f.appointments.created)
	})

	t.Run("staff listing", func(t *testing.T) {
		f := newFixture()
		f.catalog.staffErr = errors.New("timeout")
		req := f.request("14:00")
		req.Resource = domain.ResourcePreference{Kind: domain.PreferAny}

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrLookupFailure)
	})
}

func TestOutcomeOf(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, OutcomeCommitted},
		{ErrInvalidService, OutcomeInvalidService},
		{ErrInvalidPhone, OutcomeInvalidPhone},
		{ErrPastTime, OutcomePastTime},
		{ErrNoResourceAvailable, OutcomeNoResourceAvailable},
		{ErrConflictDetected, OutcomeConflictDetected},
		{errors.Join(ErrPersistenceFailure, errors.New("x")), OutcomePersistenceFailure},
		{errors.New("other"), OutcomeUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, OutcomeOf(tt.err))
	}
}
