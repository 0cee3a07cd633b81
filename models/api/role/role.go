package roleapimodels

import (
	"regexp"
	"time"

	"github.com/pkg/errors"
)

var permissionRe = regexp.MustCompile(`^(\*|[a-z][a-z0-9_-]*):(\*|[a-z][a-z0-9_-]*)$`)

type RoleData struct {
	Name        string   `json:"name"`        // Наименование роли
	Description string   `json:"description"` // Описание
	Permissions []string `json:"permissions"` // Разрешения в формате domain:action
}

type CreateRole struct {
	RoleData
}

func (r RoleData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано наименование роли")
	}
	for _, permission := range r.Permissions {
		if !permissionRe.MatchString(permission) {
			return errors.Errorf("некорректное разрешение: %v", permission)
		}
	}
	return nil
}

type RoleView struct {
	ID string `json:"id"`
	RoleData
	ScopeID   string    `json:"scope_id"`
	CreatedAt time.Time `json:"created_at"`
}
