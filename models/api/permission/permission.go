package permissionapimodels

import "console-backend/models"

type PermissionsView struct {
	Role        models.UserRole                       `json:"role"`
	RoleName    string                                `json:"role_name"`   // Наименование роли пользователя
	Permissions map[models.Module][]models.Permission `json:"permissions"` // Разрешения по модулям
}
