package constants

import "fmt"

const (
	RoleUser        = "user"
	RoleCoordinator = "coordinator"
	RoleAdmin       = "admin"
)

// Template pesan error role
const ErrOnlyCoordinatorsCanAccess = "Only coordinators or admins may access %s."

func RoleErrorCoordinator(feature string) string {
	return fmt.Sprintf(ErrOnlyCoordinatorsCanAccess, feature)
}

var roleRank = map[string]int{
	RoleUser:        1,
	RoleCoordinator: 2,
	RoleAdmin:       3,
}

// RoleRank returns 0 for unknown roles.
func RoleRank(role string) int {
	return roleRank[role]
}

// HasAtLeast reports whether role satisfies the minimum role.
func HasAtLeast(role, min string) bool {
	r := RoleRank(role)
	return r > 0 && r >= RoleRank(min)
}
