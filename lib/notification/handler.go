package notification

import (
	log "github.com/sirupsen/logrus"
	"skill-tracker-backend/db"
	notificationstore "skill-tracker-backend/lib/notification/store"
	"skill-tracker-backend/lib/smtp"
	usersstore "skill-tracker-backend/lib/users/store"
	initchecker "skill-tracker-backend/lib/utils/init-checker"
	notificationapimodels "skill-tracker-backend/models/api/notification"
	dbmodels "skill-tracker-backend/models/db"
)

type Provider interface {
	Notify(userID, message string)
	NotifyWithEmail(userID, subject, message string)
	List(userID string, onlyUnread bool) (list []notificationapimodels.NotificationView, err error)
	MarkRead(userID, id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:      notificationstore.NewInstance(db.DB),
		usersStore: usersstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"usersStore", instance.usersStore,
	)
	Instance = instance
}

type impl struct {
	store      notificationstore.Provider
	usersStore usersstore.Provider
}

// Notify пишет уведомление пользователю, ошибка не прерывает
// основную операцию
func (i impl) Notify(userID, message string) {
	logger := log.WithField("user_id", userID)
	rec := dbmodels.Notification{
		UserID:  userID,
		Message: message,
	}
	_, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания уведомления")
		return
	}
}

func (i impl) NotifyWithEmail(userID, subject, message string) {
	logger := log.WithField("user_id", userID)
	i.Notify(userID, message)
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска пользователя для отправки письма")
		return
	}
	if user == nil || user.Email == "" {
		return
	}
	err = smtp.Instance.SendEMail(user.Email, subject, message)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки письма с уведомлением")
	}
}

func (i impl) List(userID string, onlyUnread bool) (list []notificationapimodels.NotificationView, err error) {
	recList, err := i.store.ListByUser(userID, onlyUnread)
	if err != nil {
		return nil, err
	}
	list = make([]notificationapimodels.NotificationView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, notificationapimodels.NotificationConvert(rec))
	}
	return list, nil
}

func (i impl) MarkRead(userID, id string) error {
	return i.store.MarkRead(userID, id)
}
