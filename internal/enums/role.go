package enums

import "maps"

type Role string

const (
	RoleStandardUser  Role = "standard_user"
	RoleAdmin         Role = "admin"
	RoleSystemSupport Role = "system_support"
	RoleSuperUser     Role = "super_user"
)

var roleDescriptions = map[Role]string{
	RoleStandardUser:  "Standard user with limited access.",
	RoleAdmin:         "Administrator with elevated privileges.",
	RoleSystemSupport: "System support role for troubleshooting.",
	RoleSuperUser:     "Super user with the highest level of access.",
}

func RoleValues() []Role {
	return []Role{RoleStandardUser, RoleAdmin, RoleSystemSupport, RoleSuperUser}
}

// RoleStrings is RoleValues as plain strings, for queries.
func RoleStrings() []string {
	return stringsOf(RoleValues())
}

func RoleDescriptions() map[Role]string {
	return maps.Clone(roleDescriptions)
}

func ParseRole(raw string) (Role, error) {
	return parse("role", raw, RoleValues())
}

func (r Role) Description() string {
	if d, ok := roleDescriptions[r]; ok {
		return d
	}
	return "Unknown role"
}

func (r Role) Valid() bool {
	_, ok := roleDescriptions[r]
	return ok
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperUser
}
