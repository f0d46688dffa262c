package dbmodels

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"skill-tracker-backend/models"
)

type User struct {
	BaseModel
	Email      string `gorm:"type:varchar(255);uniqueIndex"`
	Password   string `gorm:"type:varchar(128)"`
	FirstName  string `gorm:"type:varchar(150)"`
	LastName   string `gorm:"type:varchar(150)"`
	EmployeeNo string `gorm:"type:varchar(50);index"`
	Role       models.UserRole `gorm:"type:varchar(50)"`
	IsActive   bool
	LastLogin  time.Time
}

func (r User) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}

func (r User) Validate() error {
	if r.Email == "" {
		return errors.New("не указана почта пользователя")
	}
	if !r.Role.IsValid() {
		return errors.New("указана неизвестная роль пользователя")
	}
	if r.Role.IsManager() && r.EmployeeNo == "" {
		return errors.New("для руководителя не указан табельный номер")
	}
	return nil
}
