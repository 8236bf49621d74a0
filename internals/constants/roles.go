package constants

import "fmt"

// Closed role set. Every authorization branch compares against these
// constants, never against ad-hoc strings.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
	RoleParent  = "parent"
)

// Role error message templates
const (
	ErrOnlyTeachersCanAccess = "Only teachers or admins may access %s."
	ErrOnlyAdminsCanAccess   = "Only admins may access %s."
	ErrOnlyStudentsCanAccess = "Only students may access %s."
	ErrOnlyParentsCanAccess  = "Only parents may access %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

func RoleErrorParent(feature string) string {
	return fmt.Sprintf(ErrOnlyParentsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleTeacher,
		RoleAdmin,
		RoleParent,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	StudentOnly = []string{
		RoleStudent,
	}

	ParentOnly = []string{
		RoleParent,
	}
)

// IsValidRole reports whether s belongs to the closed role set.
func IsValidRole(s string) bool {
	switch s {
	case RoleStudent, RoleTeacher, RoleAdmin, RoleParent:
		return true
	}
	return false
}
