package dbmodels

import (
	"time"

	"github.com/pkg/errors"
)

// OrgEntry — узел организационной структуры.
// ManagerNo = nil помечает корень дерева, такой узел может быть только один.
type OrgEntry struct {
	BaseModel
	EmployeeNo    string  `gorm:"type:varchar(50);uniqueIndex"`
	EmployeeName  string  `gorm:"type:varchar(255)"`
	ManagerNo     *string `gorm:"type:varchar(50);index"`
	ManagerName   string  `gorm:"type:varchar(255)"`
	EffectiveDate *time.Time
}

func (r OrgEntry) Validate() error {
	if r.EmployeeNo == "" {
		return errors.New("не указан табельный номер сотрудника")
	}
	if r.EmployeeName == "" {
		return errors.New("не указано имя сотрудника")
	}
	return nil
}

func (r OrgEntry) IsRoot() bool {
	return r.ManagerNo == nil
}
