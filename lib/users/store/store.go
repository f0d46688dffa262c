package usersstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "skill-tracker-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User) (id string, err error)
	GetByID(id string) (rec *dbmodels.User, err error)
	FindByEmail(email string) (rec *dbmodels.User, err error)
	ListActive() (list []dbmodels.User, err error)
	List(search string, page, limit int) (list []dbmodels.User, rowCount int64, err error)
	GetNamesByIDs(ids []string) (names map[string]string, err error)
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

func (i impl) Create(rec dbmodels.User) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", err
	}
	existed, err := i.FindByEmail(rec.Email)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return "", errors.New("пользователь с такой почтой уже существует")
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
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

func (i impl) FindByEmail(email string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Where("email = ?", email).
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

func (i impl) ListActive() (list []dbmodels.User, err error) {
	list = []dbmodels.User{}
	err = i.db.
		Where("is_active = ?", true).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) List(search string, page, limit int) (list []dbmodels.User, rowCount int64, err error) {
	list = []dbmodels.User{}
	tx := i.db.Model(dbmodels.User{})
	if search != "" {
		pattern := "%" + search + "%"
		tx = tx.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	err = tx.
		Order("last_name, first_name").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

// GetNamesByIDs отдаёт имена пользователей одним запросом
func (i impl) GetNamesByIDs(ids []string) (map[string]string, error) {
	names := map[string]string{}
	if len(ids) == 0 {
		return names, nil
	}
	rows := []dbmodels.User{}
	err := i.db.
		Where("id IN ?", ids).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		names[row.ID] = row.GetFullName()
	}
	return names, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}
