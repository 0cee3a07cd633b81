package rbac

import (
	"console-backend/models"
)

var (
	AdminRoleSet         = []models.UserRole{models.AdminRole}
	AdminOperatorRoleSet = []models.UserRole{models.AdminRole, models.OperatorRole}
	AllRoles             = []models.UserRole{models.AdminRole, models.OperatorRole, models.ViewerRole}
)

func (i *impl) initRules() {
	i.addRolesRbac()
	i.addSubjectsRbac()
}

func (i *impl) addRolesRbac() {
	//VIEW
	i.mustRegister(models.RolesModule, models.ViewPermission, AllRoles, "/api/v1/roles/list [post]")
	i.mustRegister(models.RolesModule, models.ViewPermission, AllRoles, "/api/v1/roles/{idRole} [get]")
	i.mustRegister(models.RolesModule, models.ViewPermission, AllRoles, "/api/v1/roles/{idRole}/subjects [get]")
	//EXPORT
	i.mustRegister(models.RolesModule, models.ExportPermission, AdminOperatorRoleSet, "/api/v1/roles/{idRole}/subjects/export [get]")
	//MANAGE
	i.mustRegister(models.RolesModule, models.ManagePermission, AdminRoleSet, "/api/v1/roles [post]")
	i.mustRegister(models.RolesModule, models.ManagePermission, AdminRoleSet, "/api/v1/roles/{idRole} [delete]")
	i.mustRegister(models.RolesModule, models.ManagePermission, AdminRoleSet, "/api/v1/roles/{idRole}/subjects/{subjectId} [post]")
	i.mustRegister(models.RolesModule, models.ManagePermission, AdminRoleSet, "/api/v1/roles/{idRole}/subjects/{subjectId} [delete]")
}

func (i *impl) addSubjectsRbac() {
	//VIEW
	i.mustRegister(models.SubjectsModule, models.ViewPermission, AllRoles, "/api/v1/subjects/list [post]")
	i.mustRegister(models.SubjectsModule, models.ViewPermission, AllRoles, "/api/v1/subjects/{id} [get]")
	//MANAGE
	i.mustRegister(models.SubjectsModule, models.ManagePermission, AdminRoleSet, "/api/v1/subjects [post]")
}
