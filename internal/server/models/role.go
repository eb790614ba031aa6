package models

// Фиксированный набор ролей. Роли не создаются через API.
const (
	RoleAdministrator  = "Administrator"
	RoleFleetManager   = "FleetManager"
	RoleInsuranceAgent = "InsuranceAgent"
	RoleTechnician     = "Technician"
	RoleHrManager      = "HrManager"
	RoleDriver         = "Driver"
)

// Roles — все роли в порядке заведения.
var Roles = []string{
	RoleAdministrator,
	RoleFleetManager,
	RoleInsuranceAgent,
	RoleTechnician,
	RoleHrManager,
	RoleDriver,
}

// Role — роль пользователя.
type Role struct {
	Name string
}
