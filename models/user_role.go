package models

type UserRole string

const (
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleManager  UserRole = "MANAGER"
	UserRoleEmployee UserRole = "EMPLOYEE"
)

var roleHumanName = map[UserRole]string{
	UserRoleAdmin:    "Администратор",
	UserRoleManager:  "Руководитель",
	UserRoleEmployee: "Сотрудник",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

func (r UserRole) IsManager() bool {
	return r == UserRoleManager
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}
