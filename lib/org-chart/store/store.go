package orgchartstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "skill-tracker-backend/models/db"
)

type Provider interface {
	GetByEmployeeNo(employeeNo string) (rec *dbmodels.OrgEntry, err error)
	ListAll() (list []dbmodels.OrgEntry, err error)
	FindRoot() (rec *dbmodels.OrgEntry, err error)
	ReplaceAll(entries []dbmodels.OrgEntry) error
	IsDirectManager(managerNo, employeeNo string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByEmployeeNo(employeeNo string) (*dbmodels.OrgEntry, error) {
	rec := dbmodels.OrgEntry{}
	err := i.db.
		Where("employee_no = ?", employeeNo).
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

func (i impl) ListAll() (list []dbmodels.OrgEntry, err error) {
	list = []dbmodels.OrgEntry{}
	err = i.db.
		Order("employee_no").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) FindRoot() (*dbmodels.OrgEntry, error) {
	rec := dbmodels.OrgEntry{}
	err := i.db.
		Where("manager_no IS NULL").
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

// ReplaceAll атомарно заменяет всю оргструктуру:
// удаление и вставка выполняются в одной транзакции,
// при ошибке вставки прежние данные сохраняются.
func (i impl) ReplaceAll(entries []dbmodels.OrgEntry) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&dbmodels.OrgEntry{}).
			Error
		if err != nil {
			return errors.Wrap(err, "ошибка удаления прежней оргструктуры")
		}
		if len(entries) == 0 {
			return nil
		}
		err = tx.
			CreateInBatches(entries, 100).
			Error
		if err != nil {
			return errors.Wrap(err, "ошибка вставки оргструктуры")
		}
		return nil
	})
}

func (i impl) IsDirectManager(managerNo, employeeNo string) (bool, error) {
	var rowCount int64
	err := i.db.
		Model(dbmodels.OrgEntry{}).
		Where("employee_no = ?", employeeNo).
		Where("manager_no = ?", managerNo).
		Count(&rowCount).
		Error
	if err != nil {
		return false, err
	}
	return rowCount != 0, nil
}
