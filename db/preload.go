package db

import (
	log "github.com/sirupsen/logrus"
	"skill-tracker-backend/config"
	usersstore "skill-tracker-backend/lib/users/store"
	authutils "skill-tracker-backend/lib/utils/auth-utils"
	"skill-tracker-backend/models"
	dbmodels "skill-tracker-backend/models/db"
)

func InitPreload() {
	addDefaultAdmin()
}

func addDefaultAdmin() {
	if config.Conf.Admin.Email == "" {
		log.Warn("администратор не добавлен, отсутствует настройка ADMIN_EMAIL")
		return
	}
	store := usersstore.NewInstance(DB)
	existedRec, err := store.FindByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	if existedRec != nil {
		return
	}
	rec := dbmodels.User{
		Email:     config.Conf.Admin.Email,
		Password:  authutils.GetMD5Hash(config.Conf.Admin.Password),
		FirstName: config.Conf.Admin.FirstName,
		LastName:  config.Conf.Admin.LastName,
		Role:      models.UserRoleAdmin,
		IsActive:  true,
	}
	_, err = store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	log.Info("добавлен администратор по умолчанию")
}
