package goalstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "skill-tracker-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Goal) (id string, err error)
	GetByID(id string) (rec *dbmodels.Goal, err error)
	GetYear(id string) (year int, found bool, err error)
	ListByUser(userID string, year int) (list []dbmodels.Goal, err error)
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Goal) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", err
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Goal, error) {
	rec := dbmodels.Goal{}
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

func (i impl) GetYear(id string) (year int, found bool, err error) {
	rec, err := i.GetByID(id)
	if err != nil {
		return 0, false, err
	}
	if rec == nil {
		return 0, false, nil
	}
	return rec.Year, true, nil
}

func (i impl) ListByUser(userID string, year int) (list []dbmodels.Goal, err error) {
	list = []dbmodels.Goal{}
	tx := i.db.
		Where("user_id = ?", userID)
	if year != 0 {
		tx = tx.Where("year = ?", year)
	}
	err = tx.
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Goal{
		BaseModel: dbmodels.BaseModel{
			ID: id,
		},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}
