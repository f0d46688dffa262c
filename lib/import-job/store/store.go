package importjobstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"skill-tracker-backend/models"
	dbmodels "skill-tracker-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ImportJob) (id string, err error)
	GetByID(id string) (rec *dbmodels.ImportJob, err error)
	NextPending() (rec *dbmodels.ImportJob, err error)
	Update(id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ImportJob) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ImportJob, error) {
	rec := dbmodels.ImportJob{}
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

// NextPending — самая старая необработанная задача
func (i impl) NextPending() (*dbmodels.ImportJob, error) {
	rec := dbmodels.ImportJob{}
	err := i.db.
		Where("status = ?", models.ImportJobPending).
		Order("created_at").
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.ImportJob{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}
