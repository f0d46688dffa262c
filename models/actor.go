package models

// Actor — типизированный субъект действия.
// Роль и табельный номер передаются явно в каждую проверку доступа,
// а не читаются из контекста запроса.
type Actor struct {
	UserID     string
	Role       UserRole
	EmployeeNo string // обязателен для роли менеджера
}

func AdminActor(userID string) Actor {
	return Actor{UserID: userID, Role: UserRoleAdmin}
}

func ManagerActor(userID, employeeNo string) Actor {
	return Actor{UserID: userID, Role: UserRoleManager, EmployeeNo: employeeNo}
}

func EmployeeActor(userID string) Actor {
	return Actor{UserID: userID, Role: UserRoleEmployee}
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

func (a Actor) IsManager() bool {
	return a.Role.IsManager()
}
