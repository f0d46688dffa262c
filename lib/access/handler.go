package access

import (
	"github.com/pkg/errors"
	"skill-tracker-backend/db"
	orgchartstore "skill-tracker-backend/lib/org-chart/store"
	usersstore "skill-tracker-backend/lib/users/store"
	initchecker "skill-tracker-backend/lib/utils/init-checker"
	"skill-tracker-backend/models"
)

var (
	// ErrManagerOrgInfoNotFound — у руководителя нет табельного номера
	ErrManagerOrgInfoNotFound = errors.New("организационная информация руководителя не найдена")
	// ErrEmployeeOrgInfoNotFound — для сотрудника нет записи в оргструктуре
	ErrEmployeeOrgInfoNotFound = errors.New("организационная информация сотрудника не найдена")
	// ErrRoleForbidden — роль не даёт права действовать над чужими данными
	ErrRoleForbidden = errors.New("операция недоступна для роли")
	// ErrAccessDenied — актор не является прямым руководителем сотрудника
	ErrAccessDenied = errors.New("нет доступа к данным сотрудника")
	// ErrUserNotFound — один из участников проверки не найден
	ErrUserNotFound = errors.New("пользователь не найден")
)

// Provider решает, может ли субъект действовать над данными сотрудника.
// Проверка обязана выполняться перед любым изменением чужих оценок
// или назначением целей.
type Provider interface {
	CanActOn(actor models.Actor, targetEmployeeNo string) (allowed bool, err error)
	CheckManagerAccess(managerUserID, subordinateUserID string) (allowed bool, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		orgStore:   orgchartstore.NewInstance(db.DB),
		usersStore: usersstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"orgStore", instance.orgStore,
		"usersStore", instance.usersStore,
	)
	Instance = instance
}

// NewInstance собирает провайдер на переданных хранилищах
func NewInstance(orgStore orgchartstore.Provider, usersStore usersstore.Provider) Provider {
	return impl{orgStore: orgStore, usersStore: usersStore}
}

type impl struct {
	orgStore   orgchartstore.Provider
	usersStore usersstore.Provider
}

// CanActOn: администратору разрешено всегда; руководителю — только когда
// в оргструктуре есть запись, где он прямой руководитель сотрудника.
// Транзитивное подчинение доступа не даёт.
func (i impl) CanActOn(actor models.Actor, targetEmployeeNo string) (bool, error) {
	if actor.IsAdmin() {
		return true, nil
	}
	if !actor.IsManager() {
		return false, ErrRoleForbidden
	}
	if actor.EmployeeNo == "" {
		return false, ErrManagerOrgInfoNotFound
	}
	targetEntry, err := i.orgStore.GetByEmployeeNo(targetEmployeeNo)
	if err != nil {
		return false, err
	}
	if targetEntry == nil {
		return false, ErrEmployeeOrgInfoNotFound
	}
	if targetEntry.ManagerNo == nil {
		return false, nil
	}
	return *targetEntry.ManagerNo == actor.EmployeeNo, nil
}

// CheckManagerAccess — та же проверка, но по идентификаторам пользователей:
// роль и табельный номер руководителя берутся из его учётной записи.
func (i impl) CheckManagerAccess(managerUserID, subordinateUserID string) (bool, error) {
	manager, err := i.usersStore.GetByID(managerUserID)
	if err != nil {
		return false, err
	}
	if manager == nil {
		return false, ErrUserNotFound
	}
	subordinate, err := i.usersStore.GetByID(subordinateUserID)
	if err != nil {
		return false, err
	}
	if subordinate == nil {
		return false, ErrUserNotFound
	}
	actor := models.Actor{
		UserID:     manager.ID,
		Role:       manager.Role,
		EmployeeNo: manager.EmployeeNo,
	}
	return i.CanActOn(actor, subordinate.EmployeeNo)
}
