package feedbackstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "skill-tracker-backend/models/db"
)

type Provider interface {
	CreateBatch(recs []dbmodels.UserFeedback) error
	GetByID(id string) (rec *dbmodels.UserFeedback, err error)
	ListByUser(userID string, year int) (list []dbmodels.UserFeedback, err error)
	UpdateStatus(id string, status string) error
	DeleteByUserAndYear(tx *gorm.DB, userID string, year int) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateBatch(recs []dbmodels.UserFeedback) error {
	if len(recs) == 0 {
		return nil
	}
	for _, rec := range recs {
		err := rec.Validate()
		if err != nil {
			return err
		}
	}
	err := i.db.
		CreateInBatches(recs, 100).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.UserFeedback, error) {
	rec := dbmodels.UserFeedback{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByUser(userID string, year int) (list []dbmodels.UserFeedback, err error) {
	list = []dbmodels.UserFeedback{}
	tx := i.db.Where("user_id = ?", userID)
	if year != 0 {
		tx = tx.Where("year = ?", year)
	}
	err = tx.
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) UpdateStatus(id string, status string) error {
	err := i.db.
		Model(&dbmodels.UserFeedback{}).
		Where("id = ?", id).
		Update("status", status).
		Error
	if err != nil {
		return err
	}
	return nil
}

// DeleteByUserAndYear выполняется внутри внешней транзакции очистки
func (i impl) DeleteByUserAndYear(tx *gorm.DB, userID string, year int) error {
	err := tx.
		Where("user_id = ?", userID).
		Where("year = ?", year).
		Delete(&dbmodels.UserFeedback{}).
		Error
	if err != nil {
		return err
	}
	return nil
}
