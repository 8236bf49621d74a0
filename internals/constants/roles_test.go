// file: internals/constants/roles_test.go
package constants

import "testing"

func TestIsValidRole(t *testing.T) {
	for _, role := range AllRoles {
		if !IsValidRole(role) {
			t.Errorf("IsValidRole(%q) = false, want true", role)
		}
	}
	for _, role := range []string{"", "Admin", "superuser", "student "} {
		if IsValidRole(role) {
			t.Errorf("IsValidRole(%q) = true, want false", role)
		}
	}
}
