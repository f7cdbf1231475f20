package db

import (
	dbmodels "ai-interview-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.MockInterview{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры MockInterview")
	}
	if err := DB.AutoMigrate(&dbmodels.UserAnswer{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры UserAnswer")
	}
	if err := DB.AutoMigrate(&dbmodels.AiLog{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AiLog")
	}
	if err := DB.AutoMigrate(&dbmodels.RecordingFile{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры RecordingFile")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
