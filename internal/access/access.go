package access

// Role is a back-office user role.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleSales          Role = "verkoper"
	RoleAdministration Role = "administratie"
	RoleStaff          Role = "personeel"
)

// Module identifies one gated view.
type Module string

const (
	ModuleDashboard Module = "dashboard"
	ModuleVehicles  Module = "wagens"
	ModuleStaff     Module = "personeel"
	ModuleDocuments Module = "documenten"
	ModuleFinance   Module = "financien"
	ModuleReminders Module = "meldingen"
	ModuleSearch    Module = "zoeken"
)

// Modules lists every view in navigation order.
var Modules = []Module{
	ModuleDashboard,
	ModuleVehicles,
	ModuleStaff,
	ModuleDocuments,
	ModuleFinance,
	ModuleReminders,
	ModuleSearch,
}

var permissions = map[Role][]Module{
	RoleAdmin:          {ModuleDashboard, ModuleVehicles, ModuleStaff, ModuleDocuments, ModuleFinance, ModuleReminders, ModuleSearch},
	RoleSales:          {ModuleDashboard, ModuleVehicles, ModuleDocuments, ModuleSearch},
	RoleAdministration: {ModuleDashboard, ModuleDocuments, ModuleFinance, ModuleReminders},
	RoleStaff:          {ModuleDashboard, ModuleStaff},
}

// DeniedMessage is the notice shown when a role may not open a module.
const DeniedMessage = "Geen toegang tot deze pagina"

// HasAccess reports whether role may open module. Unknown roles get nothing.
func HasAccess(role Role, module Module) bool {
	for _, m := range permissions[role] {
		if m == module {
			return true
		}
	}
	return false
}

// Allowed returns the modules role may open, in navigation order.
func Allowed(role Role) []Module {
	out := make([]Module, 0, len(Modules))
	for _, m := range Modules {
		if HasAccess(role, m) {
			out = append(out, m)
		}
	}
	return out
}

// KnownRole reports whether role appears in the permission table.
func KnownRole(role Role) bool {
	_, ok := permissions[role]
	return ok
}
