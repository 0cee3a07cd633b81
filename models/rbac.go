package models

type RbacFunc func(scopeID, userID string, role UserRole, path string) bool

type Module string

const (
	RolesModule    Module = "ROLES"
	SubjectsModule Module = "SUBJECTS"
)

type Permission string

const (
	ViewPermission   Permission = "VIEW"
	ManagePermission Permission = "MANAGE"
	ExportPermission Permission = "EXPORT"
)
