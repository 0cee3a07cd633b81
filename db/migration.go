package db

import (
	dbmodels "console-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Role{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Role")
	}
	if err := DB.AutoMigrate(&dbmodels.Subject{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Subject")
	}
	if err := DB.AutoMigrate(&dbmodels.AccessRole{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AccessRole")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
