package userapimodels

import (
	"net/mail"

	"github.com/pkg/errors"
	"skill-tracker-backend/models"
	dbmodels "skill-tracker-backend/models/db"
)

type UserData struct {
	Email      string          `json:"email"`
	Password   string          `json:"password"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	EmployeeNo string          `json:"employee_no"`
	Role       models.UserRole `json:"role"`
}

func (r UserData) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	if !r.Role.IsValid() {
		return errors.New("указана неизвестная роль пользователя")
	}
	if r.Role.IsManager() && r.EmployeeNo == "" {
		return errors.New("для руководителя не указан табельный номер")
	}
	return nil
}

type UserView struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	EmployeeNo string `json:"employee_no,omitempty"`
	Role       string `json:"role"`
	IsActive   bool   `json:"is_active"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:         rec.ID,
		Email:      rec.Email,
		FullName:   rec.GetFullName(),
		EmployeeNo: rec.EmployeeNo,
		Role:       rec.Role.ToHuman(),
		IsActive:   rec.IsActive,
	}
}

type UserListRequest struct {
	Search string `json:"search,omitempty"`
}
