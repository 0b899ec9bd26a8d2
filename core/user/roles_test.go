package user

import "testing"

func TestPrimaryRole(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  string
	}{
		{name: "no roles"},
		{name: "unknown role", roles: []string{"lol"}},
		{name: "student", roles: []string{RoleStudent}, want: RoleStudent},
		{name: "teacher over student", roles: []string{RoleStudent, RoleTeacher}, want: RoleTeacher},
		{name: "owner over admin", roles: []string{RoleAdmin, RoleAdminOwner, RoleTeacher}, want: RoleAdminOwner},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrimaryRole(tt.roles); got != tt.want {
				t.Errorf("PrimaryRole() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPortal(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{role: RoleAdminPrincipal, want: "admin"},
		{role: RoleAdmin, want: "admin"},
		{role: RoleTeacher, want: "teacher"},
		{role: RoleStudent, want: "student"},
		{role: "parent:", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			if got := Portal(tt.role); got != tt.want {
				t.Errorf("Portal(%q) = %q, want %q", tt.role, got, tt.want)
			}
		})
	}
}
