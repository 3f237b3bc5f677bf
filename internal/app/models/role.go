package models

import "medibook-web/internal/pkg/constvars"

// Role is the closed set of roles the backend assigns. Anything else the
// backend sends decodes to RoleUnknown.
type Role string

const (
	RoleUnknown Role = ""
	RolePatient Role = "PATIENT"
	RoleDoctor  Role = "DOCTOR"
	RoleAdmin   Role = "ADMIN"
)

// RegistrationRoles are the roles a visitor may pick on sign up, default first.
var RegistrationRoles = []Role{RolePatient, RoleDoctor}

// ParseRole matches exactly, the backend is the source of truth for casing.
func ParseRole(value string) Role {
	switch Role(value) {
	case RolePatient, RoleDoctor, RoleAdmin:
		return Role(value)
	default:
		return RoleUnknown
	}
}

func (r Role) Dashboard() string {
	switch r {
	case RoleAdmin:
		return constvars.RouteAdminDashboard
	case RoleDoctor:
		return constvars.RouteDoctorDashboard
	case RolePatient:
		return constvars.RoutePatientDashboard
	default:
		return constvars.RouteHomeAlias
	}
}

func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleDoctor:
		return "Doctor"
	case RolePatient:
		return "Patient"
	default:
		return "Guest"
	}
}

func (r Role) String() string {
	return string(r)
}
