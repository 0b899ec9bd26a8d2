package user

import "strings"

// Roles
const (
	// Admin
	RoleAdmin          = "admin:"
	RoleAdminOwner     = "admin:owner"
	RoleAdminPrincipal = "admin:principal"

	// Teacher
	RoleTeacher = "teacher:"

	// Student
	RoleStudent = "student:"
)

var (
	AdminRoles   = []string{RoleAdmin, RoleAdminOwner, RoleAdminPrincipal}
	TeacherRoles = []string{RoleTeacher}
	StudentRoles = []string{RoleStudent}
	AllRoles     = getAllRoles()

	rolePriorities = map[string]int{
		// Admins: 30 - 21
		RoleAdminOwner:     30,
		RoleAdminPrincipal: 29,
		RoleAdmin:          21,

		// Teachers: 20 - 11
		RoleTeacher: 11,

		// Students: 10 - 1
		RoleStudent: 1,
	}

	Roles = []Role{
		{Name: "Student", Value: RoleStudent},
		{Name: "Teacher", Value: RoleTeacher},
		{Name: "Admin", Value: RoleAdmin},
		{Name: "Admin Principal", Value: RoleAdminPrincipal},
		{Name: "Admin Owner", Value: RoleAdminOwner},
	}
)

func getAllRoles() []string {
	all := make([]string, 0, 5)
	all = append(all, AdminRoles...)
	all = append(all, TeacherRoles...)
	all = append(all, StudentRoles...)
	return all
}

type Role struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func RolePriority(role string) int {
	return rolePriorities[role]
}

// IsKnownRole reports whether role is one of AllRoles.
func IsKnownRole(role string) bool {
	_, ok := rolePriorities[role]
	return ok
}

// PrimaryRole returns the role with the highest priority, or "" when roles holds no known role.
// The sidebar is filtered against a single role, so a user holding several roles sees the
// portal of the most privileged one.
func PrimaryRole(roles []string) string {
	var primary string
	var max int
	for _, role := range roles {
		if p := RolePriority(role); p > max {
			max = p
			primary = role
		}
	}
	return primary
}

// Portal returns the portal ("admin", "teacher", "student") a role belongs to.
func Portal(role string) string {
	switch {
	case strings.HasPrefix(role, RoleAdmin):
		return "admin"
	case strings.HasPrefix(role, RoleTeacher):
		return "teacher"
	case strings.HasPrefix(role, RoleStudent):
		return "student"
	}
	return ""
}
