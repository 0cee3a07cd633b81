package db

import (
	rolestore "console-backend/lib/roles/store"
	dbmodels "console-backend/models/db"

	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

const AdminRoleName = "admin"

func InitPreload(scopeID string) {
	addAdminRole(scopeID)
}

// встроенная роль с полным доступом
func addAdminRole(scopeID string) {
	if scopeID == "" {
		log.Warn("роль admin не добавлена, отсутвует настройка PRELOAD_SCOPE_ID")
		return
	}
	store := rolestore.NewInstance(DB)
	exist, err := store.ExistByName(scopeID, AdminRoleName)
	if err != nil {
		log.WithError(err).Error("ошибка добавления роли admin")
		return
	}
	if exist {
		return
	}
	_, err = store.Create(dbmodels.Role{
		ScopeID:     scopeID,
		Name:        AdminRoleName,
		Description: "Полный доступ",
		Permissions: pq.StringArray{"*:*"},
	})
	if err != nil {
		log.WithError(err).Error("ошибка добавления роли admin")
	}
}
