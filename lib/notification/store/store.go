package notificationstore

import (
	"gorm.io/gorm"
	dbmodels "skill-tracker-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notification) (id string, err error)
	ListByUser(userID string, onlyUnread bool) (list []dbmodels.Notification, err error)
	MarkRead(userID, id string) error
	CountUnread(userID string) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByUser(userID string, onlyUnread bool) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	tx := i.db.
		Where("user_id = ?", userID)
	if onlyUnread {
		tx = tx.Where("is_read = ?", false)
	}
	err = tx.
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkRead(userID, id string) error {
	err := i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Update("is_read", true).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) CountUnread(userID string) (count int64, err error) {
	err = i.db.
		Model(dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("is_read = ?", false).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
