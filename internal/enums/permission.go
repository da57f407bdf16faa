package enums

import "maps"

type Permission string

const (
	PermViewProfile         Permission = "view_profile"
	PermUpdateProfile       Permission = "update_profile"
	PermCreateUsers         Permission = "create_users"
	PermViewUsers           Permission = "view_users"
	PermUpdateUsers         Permission = "update_users"
	PermDeleteUsers         Permission = "delete_users"
	PermReceiveSystemAlerts Permission = "receive_system_alerts"
	PermViewUserRoles       Permission = "view_user_roles"
	PermViewPermissions     Permission = "view_permissions"
	PermUpdateAppSettings   Permission = "update_app_settings"
)

var permissionDescriptions = map[Permission]string{
	PermViewProfile:         "Allows viewing user profile details.",
	PermUpdateProfile:       "Allows updating user profile information.",
	PermCreateUsers:         "Allows creation of new users in the system.",
	PermViewUsers:           "Allows viewing a list of all users.",
	PermUpdateUsers:         "Allows modifying user details.",
	PermDeleteUsers:         "Allows deleting user accounts.",
	PermReceiveSystemAlerts: "Allows receiving critical system alerts.",
	PermViewUserRoles:       "Allows viewing assigned roles of users.",
	PermViewPermissions:     "Allows viewing available permissions.",
	PermUpdateAppSettings:   "Allows modifying application settings.",
}

func PermissionValues() []Permission {
	return []Permission{
		PermViewProfile, PermUpdateProfile, PermCreateUsers, PermViewUsers,
		PermUpdateUsers, PermDeleteUsers, PermReceiveSystemAlerts,
		PermViewUserRoles, PermViewPermissions, PermUpdateAppSettings,
	}
}

// PermissionStrings is PermissionValues as plain strings, for queries.
func PermissionStrings() []string {
	return stringsOf(PermissionValues())
}

func PermissionDescriptions() map[Permission]string {
	return maps.Clone(permissionDescriptions)
}

func ParsePermission(raw string) (Permission, error) {
	return parse("permission", raw, PermissionValues())
}

func (p Permission) Description() string {
	if d, ok := permissionDescriptions[p]; ok {
		return d
	}
	return "Unknown permission."
}

func (p Permission) Valid() bool {
	_, ok := permissionDescriptions[p]
	return ok
}
