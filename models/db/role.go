package dbmodels

import (
	roleapimodels "console-backend/models/api/role"

	"github.com/lib/pq"
)

type Role struct {
	BaseModel
	ScopeID     string         `gorm:"type:varchar(36);index;uniqueIndex:idx_role_scope_name"`
	Name        string         `gorm:"type:varchar(255);uniqueIndex:idx_role_scope_name"`
	Description string         `gorm:"type:text"`
	Permissions pq.StringArray `gorm:"type:text[]"`
}

func (r Role) ToModel() roleapimodels.RoleView {
	permissions := make([]string, 0, len(r.Permissions))
	permissions = append(permissions, r.Permissions...)
	return roleapimodels.RoleView{
		ID: r.ID,
		RoleData: roleapimodels.RoleData{
			Name:        r.Name,
			Description: r.Description,
			Permissions: permissions,
		},
		ScopeID:   r.ScopeID,
		CreatedAt: r.CreatedAt,
	}
}
