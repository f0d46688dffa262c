package competencystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "skill-tracker-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Competency) (id string, err error)
	GetByID(id string) (rec *dbmodels.Competency, err error)
	GetYear(id string) (year int, found bool, err error)
	List(year int) (list []dbmodels.Competency, err error)
	Update(id string, updMap map[string]interface{}) error
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

func (i impl) Create(rec dbmodels.Competency) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", err
	}
	err = i.isUnique(rec.CompetencyType, rec.Name, rec.Year, "")
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

func (i impl) GetByID(id string) (*dbmodels.Competency, error) {
	rec := dbmodels.Competency{}
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

func (i impl) List(year int) (list []dbmodels.Competency, err error) {
	list = []dbmodels.Competency{}
	tx := i.db
	if year != 0 {
		tx = tx.Where("year = ?", year)
	}
	err = tx.
		Order("competency_type, name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.Competency{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Competency{
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

func (i impl) isUnique(competencyType, name string, year int, selfID string) error {
	var rowCount int64
	tx := i.db.Model(dbmodels.Competency{})
	tx.Where("competency_type = ?", competencyType)
	tx.Where("name = ?", name)
	tx.Where("year = ?", year)
	if selfID != "" {
		tx.Where("id <> ?", selfID)
	}
	err := tx.Count(&rowCount).Error
	if err != nil {
		return errors.Wrap(err, "ошибка проверки уникальности компетенции")
	}
	if rowCount != 0 {
		return errors.New("компетенция уже существует")
	}
	return nil
}
