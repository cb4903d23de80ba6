package get_available_slots

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
	hoursRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/hours"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

var istanbul = time.FixedZone("TRT", 3*60*60)

type fakeCatalog struct {
	service *domain.Service
	staff   []domain.StaffMember
}

func (f *fakeCatalog) GetService(_ context.Context, _, serviceID uuid.UUID) (*domain.Service, error) {
	if f.service == nil || f.service.ID != serviceID {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return f.service, nil
}

func (f *fakeCatalog) ListStaff(context.Context, uuid.UUID) ([]domain.StaffMember, error) {
	return f.staff, nil
}

type fakeAppointments struct {
	day []domain.DayAppointment
	err error
}

func (f *fakeAppointments) ListForDay(context.Context, uuid.UUID, time.Time, time.Time) ([]domain.DayAppointment, error) {
	return f.day, f.err
}

type fakeHours struct {
	hours *domain.BusinessHours
	err   error
}

func (f *fakeHours) GetWithHierarchy(context.Context, uuid.UUID, domain.ScheduleProfile) (*domain.BusinessHours, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.hours == nil {
		return nil, hoursRepo.ErrHoursNotFound
	}
	return f.hours, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func at(hour, minute int) time.Time {
	return time.Date(2026, 10, 20, hour, minute, 0, 0, istanbul)
}

type fixture struct {
	businessID   uuid.UUID
	service      *domain.Service
	staffA       domain.StaffMember
	appointments *fakeAppointments
	hours        *fakeHours
	uc           *UseCase
}

func newFixture(now time.Time) *fixture {
	f := &fixture{businessID: uuid.New()}
	f.service = &domain.Service{ID: uuid.New(), Name: "Haircut", DurationMinutes: 30}
	f.staffA = domain.StaffMember{ID: uuid.New(), Name: "Ahmet"}
	f.appointments = &fakeAppointments{}
	f.hours = &fakeHours{}

	defaults := ProfileDefaults{
		domain.ProfileWidget:   {OpeningHour: 9, ClosingHour: 21, StepMinutes: 30},
		domain.ProfileQuickAdd: {OpeningHour: 10, ClosingHour: 20, StepMinutes: 15},
	}
	f.uc = NewUseCase(
		&fakeCatalog{service: f.service, staff: []domain.StaffMember{f.staffA}},
		f.appointments,
		f.hours,
		defaults,
		istanbul,
		logger.Nop(),
	)
	f.uc.timeProvider = fixedTime{now: now}
	return f
}

func (f *fixture) request(pref domain.ResourcePreference, profile domain.ScheduleProfile) *Request {
	return &Request{
		BusinessID: f.businessID,
		ServiceID:  f.service.ID,
		Date:       time.Date(2026, 10, 20, 0, 0, 0, 0, istanbul),
		Resource:   pref,
		Profile:    profile,
	}
}

func slotByTime(t *testing.T, slots []Slot, ts types.TimeString) Slot {
	t.Helper()
	for _, s := range slots {
		if s.StartTime == ts {
			return s
		}
	}
	t.Fatalf("slot %s not found", ts)
	return Slot{}
}

func TestExecute_WidgetGridFromDefaults(t *testing.T) {
	f := newFixture(at(0, 0).AddDate(0, 0, -1))

	resp, err := f.uc.Execute(context.Background(), f.request(domain.ResourcePreference{Kind: domain.PreferOwner}, ""))
	require.NoError(t, err)

	assert.Equal(t, domain.ProfileWidget, resp.Profile)
	assert.Equal(t, 30, resp.StepMinutes)
	require.Len(t, resp.Slots, 24)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("20:30"), resp.Slots[23].StartTime)
	for _, s := range resp.Slots {
		assert.True(t, s.Available, s.StartTime)
		require.NotNil(t, s.Resource)
		assert.True(t, s.Resource.IsOwner())
	}
}

func TestExecute_QuickAddGrid(t *testing.T) {
	f := newFixture(at(0, 0).AddDate(0, 0, -1))

	resp, err := f.uc.Execute(context.Background(), f.request(domain.ResourcePreference{Kind: domain.PreferOwner}, domain.ProfileQuickAdd))
	require.NoError(t, err)

	require.Len(t, resp.Slots, 40)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("10:15"), resp.Slots[1].StartTime)
}

func TestExecute_BusinessHoursOverrideDefaults(t *testing.T) {
	f := newFixture(at(0, 0).AddDate(0, 0, -1))
	f.hours.hours = &domain.BusinessHours{ID: 3, OpeningHour: 12, ClosingHour: 14, StepMinutes: 20}

	resp, err := f.uc.Execute(context.Background(), f.request(domain.ResourcePreference{Kind: domain.PreferOwner}, domain.ProfileWidget))
	require.NoError(t, err)

	require.Len(t, resp.Slots, 6)
	assert.Equal(t, types.TimeString("13:40"), resp.Slots[5].StartTime)
}

func TestExecute_MarksBusyAndPastSlots(t *testing.T) {
	f := newFixture(at(10, 10))
	f.appointments.day = []domain.DayAppointment{
		{ID: uuid.New(), Resource: domain.OwnerResource, StartTime: at(14, 0), DurationMinutes: 30, Status: domain.StatusBooked},
		{ID: uuid.New(), Resource: domain.OwnerResource, StartTime: at(16, 0), DurationMinutes: 30, Status: domain.StatusCancelled},
	}

	resp, err := f.uc.Execute(context.Background(), f.request(domain.ResourcePreference{Kind: domain.PreferOwner}, domain.ProfileWidget))
	require.NoError(t, err)

	assert.False(t, slotByTime(t, resp.Slots, "09:00").Available)
	assert.False(t, slotByTime(t, resp.Slots, "10:00").Available)
	assert.True(t, slotByTime(t, resp.Slots, "10:30").Available)
	assert.True(t, slotByTime(t, resp.Slots, "13:30").Available)
	assert.False(t, slotByTime(t, resp.Slots, "14:00").Available)
	assert.Nil(t, slotByTime(t, resp.Slots, "14:00").Resource)
	assert.True(t, slotByTime(t, resp.Slots, "14:30").Available)
	assert.True(t, slotByTime(t, resp.Slots, "16:00").Available)
}

func TestExecute_AnyResourceReportsAssignedStaff(t *testing.T) {
	f := newFixture(at(8, 0))
	f.appointments.day = []domain.DayAppointment{
		{ID: uuid.New(), Resource: domain.OwnerResource, StartTime: at(9, 0), DurationMinutes: 30, Status: domain.StatusBooked},
	}

	resp, err := f.uc.Execute(context.Background(), f.request(domain.ResourcePreference{Kind: domain.PreferAny}, domain.ProfileWidget))
	require.NoError(t, err)

	nine := slotByTime(t, resp.Slots, "09:00")
	require.True(t, nine.Available)
	assert.Equal(t, f.staffA.Resource(), *nine.Resource)

	half := slotByTime(t, resp.Slots, "09:30")
	require.True(t, half.Available)
	assert.True(t, half.Resource.IsOwner())
}

func TestExecute_PastDateHasNoAvailableSlots(t *testing.T) {
	f := newFixture(at(0, 0).AddDate(0, 0, 1))

	resp, err := f.uc.Execute(context.Background(), f.request(domain.ResourcePreference{Kind: domain.PreferAny}, domain.ProfileWidget))
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	for _, s := range resp.Slots {
		assert.False(t, s.Available)
	}
}

func TestExecute_Errors(t *testing.T) {
	t.Run("unknown service", func(t *testing.T) {
		f := newFixture(at(8, 0))
		req := f.request(domain.ResourcePreference{Kind: domain.PreferOwner}, domain.ProfileWidget)
		req.ServiceID = uuid.New()

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("unknown staff", func(t *testing.T) {
		f := newFixture(at(8, 0))
		req := f.request(domain.ResourcePreference{Kind: domain.PreferStaff, StaffID: uuid.New()}, domain.ProfileWidget)

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrResourceNotFound)
	})

	t.Run("unknown profile", func(t *testing.T) {
		f := newFixture(at(8, 0))
		req := f.request(domain.ResourcePreference{Kind: domain.PreferOwner}, "kiosk")

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("hours lookup failure", func(t *testing.T) {
		f := newFixture(at(8, 0))
		f.hours.err = errors.New("timeout")

		_, err := f.uc.Execute(context.Background(), f.request(domain.ResourcePreference{Kind: domain.PreferOwner}, domain.ProfileWidget))
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("appointments failure", func(t *testing.T) {
		f := newFixture(at(8, 0))
		f.appointments.err = errors.New("timeout")

		_, err := f.uc.Execute(context.Background(), f.request(domain.ResourcePreference{Kind: domain.PreferOwner}, domain.ProfileWidget))
		assert.ErrorIs(t, err, ErrInternal)
	})
}
