package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "skill-tracker-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := DB.AutoMigrate(&dbmodels.OrgEntry{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры OrgEntry")
	}
	if err := DB.AutoMigrate(&dbmodels.Goal{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Goal")
	}
	if err := DB.AutoMigrate(&dbmodels.UserGoal{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры UserGoal")
	}
	if err := DB.AutoMigrate(&dbmodels.Competency{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Competency")
	}
	if err := DB.AutoMigrate(&dbmodels.UserCompetency{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры UserCompetency")
	}
	if err := DB.AutoMigrate(&dbmodels.FeedbackQuestion{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FeedbackQuestion")
	}
	if err := DB.AutoMigrate(&dbmodels.UserFeedback{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры UserFeedback")
	}
	if err := DB.AutoMigrate(&dbmodels.FeedbackReviewer{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FeedbackReviewer")
	}
	if err := DB.AutoMigrate(&dbmodels.FeedbackResponse{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FeedbackResponse")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Notification")
	}
	if err := DB.AutoMigrate(&dbmodels.SkillWishlist{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры SkillWishlist")
	}
	if err := DB.AutoMigrate(&dbmodels.Roadmap{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Roadmap")
	}
	if err := DB.AutoMigrate(&dbmodels.ImportJob{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ImportJob")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
