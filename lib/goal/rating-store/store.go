package goalratingstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"skill-tracker-backend/lib/rating"
	dbmodels "skill-tracker-backend/models/db"
)

// Provider хранит записи оценок целей и отдаёт их движку оценок
// в обезличенном виде.
type Provider interface {
	rating.RecordStore
	FindByUserAndItem(userID, goalID string) (rec *rating.Record, err error)
	ListByUser(userID string, year int) (list []rating.Record, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(id string) (*rating.Record, error) {
	rec := dbmodels.UserGoal{}
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
	record := toRecord(rec)
	return &record, nil
}

func (i impl) Create(rec rating.Record) (id string, err error) {
	row := dbmodels.UserGoal{
		UserID:         rec.UserID,
		GoalID:         rec.ItemID,
		Year:           rec.Year,
		EmployeeRating: rec.EmployeeRating,
		ManagerRating:  rec.ManagerRating,
		AdminRating:    rec.AdminRating,
	}
	err = i.db.
		Create(&row).
		Error
	if err != nil {
		return "", err
	}
	return row.ID, nil
}

func (i impl) UpdateRating(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.UserGoal{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) FindByUserAndItem(userID, goalID string) (*rating.Record, error) {
	rec := dbmodels.UserGoal{}
	err := i.db.
		Where("user_id = ?", userID).
		Where("goal_id = ?", goalID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	record := toRecord(rec)
	return &record, nil
}

func (i impl) ListByUser(userID string, year int) (list []rating.Record, err error) {
	rows := []dbmodels.UserGoal{}
	tx := i.db.
		Where("user_id = ?", userID)
	if year != 0 {
		tx = tx.Where("year = ?", year)
	}
	err = tx.Find(&rows).Error
	if err != nil {
		return nil, err
	}
	list = make([]rating.Record, 0, len(rows))
	for _, row := range rows {
		list = append(list, toRecord(row))
	}
	return list, nil
}

func toRecord(rec dbmodels.UserGoal) rating.Record {
	return rating.Record{
		ID:             rec.ID,
		UserID:         rec.UserID,
		ItemID:         rec.GoalID,
		Year:           rec.Year,
		EmployeeRating: rec.EmployeeRating,
		ManagerRating:  rec.ManagerRating,
		AdminRating:    rec.AdminRating,
	}
}
