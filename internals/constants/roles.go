package constants

import "fmt"

const (
	RoleUser    = "user"
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "amitrace_admin"
)

const ErrOnlyAdminsCanAccess = "Only admins may access %s."

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var AdminOnly = []string{
	RoleAdmin,
}
