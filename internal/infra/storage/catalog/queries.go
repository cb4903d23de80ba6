package catalog

import (
	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/psqlbuilder"
)

const (
	servicesTable = "services"
	staffTable    = "staff_members"
)

var (
	serviceColumns = []string{"id", "profile_id", "name", "price", "duration"}
	staffColumns   = []string{"id", "profile_id", "name", "role", "commission_rate"}
)

func getServiceQuery(businessID, serviceID uuid.UUID) squirrel.SelectBuilder {
	return psqlbuilder.Select(serviceColumns...).
		From(servicesTable).
		Where(squirrel.Eq{"profile_id": businessID, "id": serviceID})
}

func listServicesQuery(businessID uuid.UUID) squirrel.SelectBuilder {
	return psqlbuilder.Select(serviceColumns...).
		From(servicesTable).
		Where(squirrel.Eq{"profile_id": businessID}).
		OrderBy("name ASC", "id ASC")
}

func insertServiceQuery(svc *domain.Service) squirrel.InsertBuilder {
	return psqlbuilder.Insert(servicesTable).
		Columns("profile_id", "name", "price", "duration").
		Values(svc.BusinessID, svc.Name, svc.PriceMinor, svc.DurationMinutes).
		Suffix("RETURNING id")
}

func updateServiceQuery(svc *domain.Service) squirrel.UpdateBuilder {
	return psqlbuilder.Update(servicesTable).
		Set("name", svc.Name).
		Set("price", svc.PriceMinor).
		Set("duration", svc.DurationMinutes).
		Where(squirrel.Eq{"id": svc.ID, "profile_id": svc.BusinessID}).
		Suffix("RETURNING id")
}

func deleteServiceQuery(businessID, serviceID uuid.UUID) squirrel.DeleteBuilder {
	return psqlbuilder.Delete(servicesTable).
		Where(squirrel.Eq{"id": serviceID, "profile_id": businessID})
}

func listStaffQuery(businessID uuid.UUID) squirrel.SelectBuilder {
	return psqlbuilder.Select(staffColumns...).
		From(staffTable).
		Where(squirrel.Eq{"profile_id": businessID}).
		OrderBy("name ASC", "id ASC")
}

func insertStaffQuery(m *domain.StaffMember) squirrel.InsertBuilder {
	return psqlbuilder.Insert(staffTable).
		Columns("profile_id", "name", "role", "commission_rate").
		Values(m.BusinessID, m.Name, m.Role, m.CommissionRate).
		Suffix("RETURNING id")
}

func updateStaffQuery(m *domain.StaffMember) squirrel.UpdateBuilder {
	return psqlbuilder.Update(staffTable).
		Set("name", m.Name).
		Set("role", m.Role).
		Set("commission_rate", m.CommissionRate).
		Where(squirrel.Eq{"id": m.ID, "profile_id": m.BusinessID}).
		Suffix("RETURNING id")
}

func deleteStaffQuery(businessID, staffID uuid.UUID) squirrel.DeleteBuilder {
	return psqlbuilder.Delete(staffTable).
		Where(squirrel.Eq{"id": staffID, "profile_id": businessID})
}
