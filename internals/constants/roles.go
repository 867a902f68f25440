package constants

import "fmt"

// Role names (klaim `role` di JWT)
const (
	RoleAdmin = "admin" // pengurus pesantren
	RoleWali  = "wali"  // orang tua/wali santri
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyWaliCanAccess   = "❌ Hanya wali santri yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorWali(feature string) string {
	return fmt.Sprintf(ErrOnlyWaliCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleWali,
	}

	AdminOnly = []string{RoleAdmin}
	WaliOnly  = []string{RoleWali}
)
