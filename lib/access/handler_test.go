package access

import (
	"testing"

	"github.com/stretchr/testify/require"
	"skill-tracker-backend/models"
	dbmodels "skill-tracker-backend/models/db"
)

type fakeOrgStore struct {
	entries map[string]dbmodels.OrgEntry
}

func (s fakeOrgStore) GetByEmployeeNo(employeeNo string) (*dbmodels.OrgEntry, error) {
	rec, exist := s.entries[employeeNo]
	if !exist {
		return nil, nil
	}
	return &rec, nil
}

func (s fakeOrgStore) ListAll() ([]dbmodels.OrgEntry, error) { return nil, nil }

func (s fakeOrgStore) FindRoot() (*dbmodels.OrgEntry, error) { return nil, nil }

func (s fakeOrgStore) ReplaceAll(entries []dbmodels.OrgEntry) error { return nil }

func (s fakeOrgStore) IsDirectManager(managerNo, employeeNo string) (bool, error) {
	rec, exist := s.entries[employeeNo]
	if !exist || rec.ManagerNo == nil {
		return false, nil
	}
	return *rec.ManagerNo == managerNo, nil
}

type fakeUsersStore struct {
	users map[string]dbmodels.User
}

func (s fakeUsersStore) Create(rec dbmodels.User) (string, error) { return "", nil }

func (s fakeUsersStore) GetByID(id string) (*dbmodels.User, error) {
	rec, exist := s.users[id]
	if !exist {
		return nil, nil
	}
	return &rec, nil
}

func (s fakeUsersStore) FindByEmail(email string) (*dbmodels.User, error) { return nil, nil }

func (s fakeUsersStore) ListActive() ([]dbmodels.User, error) { return nil, nil }

func (s fakeUsersStore) List(search string, page, limit int) ([]dbmodels.User, int64, error) {
	return nil, 0, nil
}

func (s fakeUsersStore) GetNamesByIDs(ids []string) (map[string]string, error) { return nil, nil }

func (s fakeUsersStore) Update(id string, updMap map[string]interface{}) error { return nil }

func strPtr(s string) *string { return &s }

func orgWithChain() fakeOrgStore {
	// m-100 руководит e-200, e-200 руководит e-300
	return fakeOrgStore{entries: map[string]dbmodels.OrgEntry{
		"m-100": {EmployeeNo: "m-100", EmployeeName: "Alice"},
		"e-200": {EmployeeNo: "e-200", EmployeeName: "Bob", ManagerNo: strPtr("m-100")},
		"e-300": {EmployeeNo: "e-300", EmployeeName: "Carol", ManagerNo: strPtr("e-200")},
	}}
}

func TestCanActOn(t *testing.T) {
	provider := NewInstance(orgWithChain(), fakeUsersStore{})

	t.Run(`администратору доступ всегда разрешён`, func(t *testing.T) {
		allowed, err := provider.CanActOn(models.AdminActor("admin-1"), "e-300")
		require.NoError(t, err)
		require.True(t, allowed)
	})

	t.Run(`сотруднику путь закрыт`, func(t *testing.T) {
		_, err := provider.CanActOn(models.EmployeeActor("user-1"), "e-200")
		require.ErrorIs(t, err, ErrRoleForbidden)
	})

	t.Run(`руководитель без табельного номера`, func(t *testing.T) {
		_, err := provider.CanActOn(models.Actor{UserID: "manager-1", Role: models.UserRoleManager}, "e-200")
		require.ErrorIs(t, err, ErrManagerOrgInfoNotFound)
	})

	t.Run(`сотрудник отсутствует в оргструктуре`, func(t *testing.T) {
		_, err := provider.CanActOn(models.ManagerActor("manager-1", "m-100"), "no-such-no")
		require.ErrorIs(t, err, ErrEmployeeOrgInfoNotFound)
	})

	t.Run(`прямое подчинение разрешает`, func(t *testing.T) {
		allowed, err := provider.CanActOn(models.ManagerActor("manager-1", "m-100"), "e-200")
		require.NoError(t, err)
		require.True(t, allowed)
	})

	t.Run(`транзитивное подчинение не разрешает`, func(t *testing.T) {
		allowed, err := provider.CanActOn(models.ManagerActor("manager-1", "m-100"), "e-300")
		require.NoError(t, err)
		require.False(t, allowed)
	})

	t.Run(`корень никому не подчинён`, func(t *testing.T) {
		allowed, err := provider.CanActOn(models.ManagerActor("manager-2", "e-200"), "m-100")
		require.NoError(t, err)
		require.False(t, allowed)
	})
}

func TestCheckManagerAccess(t *testing.T) {
	users := fakeUsersStore{users: map[string]dbmodels.User{
		"manager-1": {BaseModel: dbmodels.BaseModel{ID: "manager-1"}, Role: models.UserRoleManager, EmployeeNo: "m-100"},
		"user-2":    {BaseModel: dbmodels.BaseModel{ID: "user-2"}, Role: models.UserRoleEmployee, EmployeeNo: "e-200"},
		"user-3":    {BaseModel: dbmodels.BaseModel{ID: "user-3"}, Role: models.UserRoleEmployee, EmployeeNo: "e-300"},
	}}
	provider := NewInstance(orgWithChain(), users)

	t.Run(`прямой подчинённый`, func(t *testing.T) {
		allowed, err := provider.CheckManagerAccess("manager-1", "user-2")
		require.NoError(t, err)
		require.True(t, allowed)
	})

	t.Run(`подчинённый через уровень`, func(t *testing.T) {
		allowed, err := provider.CheckManagerAccess("manager-1", "user-3")
		require.NoError(t, err)
		require.False(t, allowed)
	})

	t.Run(`неизвестный участник`, func(t *testing.T) {
		_, err := provider.CheckManagerAccess("manager-1", "no-such-user")
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
