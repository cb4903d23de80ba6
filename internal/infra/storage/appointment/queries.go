package appointment

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/psqlbuilder"
)

const table = "appointments"

// agendaColumns колонки записи вместе с денормализованными данными услуги и клиента
var agendaColumns = []string{
	"a.id",
	"a.profile_id",
	"a.client_id",
	"a.service_id",
	"a.staff_member_id",
	"a.start_time",
	"a.status",
	"a.created_at",
	"s.duration",
	"COALESCE(s.name, '')",
	"COALESCE(c.name, '')",
	"COALESCE(c.phone, '')",
}

func insertQuery(apt domain.NewAppointment) squirrel.InsertBuilder {
	return psqlbuilder.Insert(table).
		Columns(
			"profile_id",
			"client_id",
			"service_id",
			"staff_member_id",
			"start_time",
			"status",
		).
		Values(
			apt.BusinessID,
			apt.ClientID,
			apt.ServiceID,
			apt.Resource.StaffIDPtr(),
			apt.StartTime,
			apt.Status,
		).
		Suffix("RETURNING id, created_at")
}

func agendaSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(agendaColumns...).
		From(table + " a").
		LeftJoin("services s ON s.id = a.service_id").
		LeftJoin("clients c ON c.id = a.client_id")
}

func getByIDQuery(businessID, id uuid.UUID) squirrel.SelectBuilder {
	return agendaSelect().
		Where(squirrel.Eq{"a.profile_id": businessID, "a.id": id})
}

// dayRange полуоткрытый диапазон [dayStart, dayEnd) по времени начала
func dayRange(dayStart, dayEnd time.Time) squirrel.And {
	return squirrel.And{
		squirrel.GtOrEq{"a.start_time": dayStart},
		squirrel.Lt{"a.start_time": dayEnd},
	}
}

func listForDayQuery(businessID uuid.UUID, dayStart, dayEnd time.Time) squirrel.SelectBuilder {
	statuses := make([]string, len(domain.OccupyingStatuses))
	for i, s := range domain.OccupyingStatuses {
		statuses[i] = string(s)
	}

	return psqlbuilder.Select(
		"a.id",
		"a.service_id",
		"a.staff_member_id",
		"a.start_time",
		"a.status",
		"s.duration",
	).
		From(table + " a").
		LeftJoin("services s ON s.id = a.service_id").
		Where(squirrel.Eq{"a.profile_id": businessID}).
		Where(dayRange(dayStart, dayEnd)).
		Where(squirrel.Eq{"a.status": statuses}).
		OrderBy("a.start_time ASC")
}

func listAgendaQuery(businessID uuid.UUID, dayStart, dayEnd time.Time) squirrel.SelectBuilder {
	return agendaSelect().
		Where(squirrel.Eq{"a.profile_id": businessID}).
		Where(dayRange(dayStart, dayEnd)).
		OrderBy("a.start_time ASC", "a.created_at ASC")
}

func updateStatusQuery(businessID, id uuid.UUID, status domain.AppointmentStatus) squirrel.UpdateBuilder {
	return psqlbuilder.Update(table).
		Set("status", status).
		Where(squirrel.Eq{"profile_id": businessID, "id": id})
}

// listUpcomingQuery записи с началом не раньше from в порядке начала, не более limit
func listUpcomingQuery(businessID uuid.UUID, from time.Time, limit int) squirrel.SelectBuilder {
	return agendaSelect().
		Where(squirrel.Eq{"a.profile_id": businessID}).
		Where(squirrel.GtOrEq{"a.start_time": from}).
		OrderBy("a.start_time ASC", "a.created_at ASC").
		Limit(uint64(limit))
}
