package domain

import (
	"strings"

	"github.com/google/uuid"
)

const ownerKey = "owner"

// ResourceRef identifies a bookable unit of capacity
// The zero value refers to the business owner
type ResourceRef struct {
	StaffID uuid.UUID
}

// OwnerResource is the implicit resource of the business owner
var OwnerResource = ResourceRef{}

// StaffResource returns a reference to a staff member
func StaffResource(staffID uuid.UUID) ResourceRef {
	return ResourceRef{StaffID: staffID}
}

// ResourceFromStaffID maps a nullable staff_member_id column to a resource
func ResourceFromStaffID(staffID *uuid.UUID) ResourceRef {
	if staffID == nil {
		return OwnerResource
	}
	return StaffResource(*staffID)
}

// IsOwner returns true for the owner sentinel
func (r ResourceRef) IsOwner() bool {
	return r.StaffID == uuid.Nil
}

// StaffIDPtr returns nil for the owner, used for the nullable staff_member_id column
func (r ResourceRef) StaffIDPtr() *uuid.UUID {
	if r.IsOwner() {
		return nil
	}
	id := r.StaffID
	return &id
}

func (r ResourceRef) String() string {
	if r.IsOwner() {
		return ownerKey
	}
	return r.StaffID.String()
}

// PreferenceKind how the caller wants the resource chosen
type PreferenceKind string

const (
	PreferOwner PreferenceKind = "owner"
	PreferAny   PreferenceKind = "any"
	PreferStaff PreferenceKind = "staff"
)

// ResourcePreference resource selection of a booking request
type ResourcePreference struct {
	Kind    PreferenceKind
	StaffID uuid.UUID // only for PreferStaff
}

// ParseResourcePreference accepts "owner", "any" or a staff UUID
// An empty string means the owner
func ParseResourcePreference(s string) (ResourcePreference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", ownerKey:
		return ResourcePreference{Kind: PreferOwner}, nil
	case string(PreferAny):
		return ResourcePreference{Kind: PreferAny}, nil
	}

	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil || id == uuid.Nil {
		return ResourcePreference{}, ErrInvalidResourcePreference
	}
	return ResourcePreference{Kind: PreferStaff, StaffID: id}, nil
}

func (p ResourcePreference) String() string {
	if p.Kind == PreferStaff {
		return p.StaffID.String()
	}
	return string(p.Kind)
}
