package rating

import (
	"testing"

	"github.com/stretchr/testify/require"
	"skill-tracker-backend/models"
)

type fakeRecordStore struct {
	recs    map[string]Record
	updates map[string]map[string]interface{}
	nextID  string
}

func newFakeRecordStore() *fakeRecordStore {
	return &fakeRecordStore{
		recs:    map[string]Record{},
		updates: map[string]map[string]interface{}{},
		nextID:  "new-rec-id",
	}
}

func (s *fakeRecordStore) GetByID(id string) (*Record, error) {
	rec, exist := s.recs[id]
	if !exist {
		return nil, nil
	}
	return &rec, nil
}

func (s *fakeRecordStore) Create(rec Record) (string, error) {
	rec.ID = s.nextID
	s.recs[rec.ID] = rec
	return rec.ID, nil
}

func (s *fakeRecordStore) UpdateRating(id string, updMap map[string]interface{}) error {
	s.updates[id] = updMap
	return nil
}

type fakeItemStore struct {
	years map[string]int
}

func (s fakeItemStore) GetYear(id string) (int, bool, error) {
	year, exist := s.years[id]
	return year, exist, nil
}

func TestApplyRatingScoreBounds(t *testing.T) {
	engine := NewEngine(fakeItemStore{years: map[string]int{"item-1": 2026}}, newFakeRecordStore())
	admin := models.AdminActor("admin-1")

	for _, score := range []int{-1, 0, 5, 10} {
		_, err := engine.ApplyRating(admin, "", "user-1", "item-1", 2026, score)
		require.ErrorIs(t, err, ErrInvalidScore)
	}
	for score := MinScore; score <= MaxScore; score++ {
		_, err := engine.ApplyRating(admin, "", "user-1", "item-1", 2026, score)
		require.NoError(t, err)
	}
}

func TestApplyRatingRoleField(t *testing.T) {
	t.Run(`администратор меняет только admin_rating`, func(t *testing.T) {
		records := newFakeRecordStore()
		records.recs["rec-1"] = Record{ID: "rec-1", UserID: "user-1", ItemID: "item-1", Year: 2026, EmployeeRating: 2}
		engine := NewEngine(fakeItemStore{}, records)

		rec, err := engine.ApplyRating(models.AdminActor("admin-1"), "rec-1", "user-1", "item-1", 2026, 4)
		require.NoError(t, err)
		require.Equal(t, 4, rec.AdminRating)
		require.Equal(t, 2, rec.EmployeeRating)
		require.Equal(t, map[string]interface{}{"admin_rating": 4}, records.updates["rec-1"])
	})

	t.Run(`руководитель меняет только manager_rating`, func(t *testing.T) {
		records := newFakeRecordStore()
		records.recs["rec-1"] = Record{ID: "rec-1", UserID: "user-1", ItemID: "item-1", Year: 2026}
		engine := NewEngine(fakeItemStore{}, records)

		rec, err := engine.ApplyRating(models.ManagerActor("manager-1", "m-100"), "rec-1", "user-1", "item-1", 2026, 3)
		require.NoError(t, err)
		require.Equal(t, 3, rec.ManagerRating)
		require.Equal(t, map[string]interface{}{"manager_rating": 3}, records.updates["rec-1"])
	})

	t.Run(`сотруднику путь недоступен`, func(t *testing.T) {
		engine := NewEngine(fakeItemStore{}, newFakeRecordStore())
		_, err := engine.ApplyRating(models.EmployeeActor("user-1"), "rec-1", "user-1", "item-1", 2026, 3)
		require.ErrorIs(t, err, ErrRoleNotAllowed)
	})
}

func TestApplyRatingUpdateMissingRecord(t *testing.T) {
	engine := NewEngine(fakeItemStore{}, newFakeRecordStore())
	_, err := engine.ApplyRating(models.AdminActor("admin-1"), "no-such-rec", "user-1", "item-1", 2026, 3)
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestApplyRatingUpdateForeignRecord(t *testing.T) {
	records := newFakeRecordStore()
	records.recs["rec-1"] = Record{ID: "rec-1", UserID: "victim-user", ItemID: "item-1", Year: 2026}
	engine := NewEngine(fakeItemStore{}, records)

	// запись чужого пользователя недоступна, даже если её id известен
	_, err := engine.ApplyRating(models.ManagerActor("manager-1", "m-100"), "rec-1", "subordinate-user", "item-1", 2026, 4)
	require.ErrorIs(t, err, ErrRecordNotFound)
	require.Empty(t, records.updates)

	_, err = engine.ApplyRating(models.AdminActor("admin-1"), "rec-1", "other-user", "item-1", 2026, 4)
	require.ErrorIs(t, err, ErrRecordNotFound)
	require.Empty(t, records.updates)
}

func TestApplyRatingCreatePath(t *testing.T) {
	t.Run(`объект должен существовать`, func(t *testing.T) {
		engine := NewEngine(fakeItemStore{years: map[string]int{}}, newFakeRecordStore())
		_, err := engine.ApplyRating(models.AdminActor("admin-1"), "", "user-1", "no-such-item", 2026, 3)
		require.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run(`год объекта должен совпадать`, func(t *testing.T) {
		engine := NewEngine(fakeItemStore{years: map[string]int{"item-1": 2025}}, newFakeRecordStore())
		_, err := engine.ApplyRating(models.AdminActor("admin-1"), "", "user-1", "item-1", 2026, 3)
		require.ErrorIs(t, err, ErrYearMismatch)
	})

	t.Run(`новая запись руководителя обнуляет остальные поля`, func(t *testing.T) {
		records := newFakeRecordStore()
		engine := NewEngine(fakeItemStore{years: map[string]int{"item-1": 2026}}, records)

		rec, err := engine.ApplyRating(models.ManagerActor("manager-1", "m-100"), "", "user-1", "item-1", 2026, 2)
		require.NoError(t, err)
		require.Equal(t, "new-rec-id", rec.ID)
		require.Equal(t, 2, rec.ManagerRating)
		require.Zero(t, rec.EmployeeRating)
		require.Zero(t, rec.AdminRating)
	})

	t.Run(`новая запись администратора обнуляет остальные поля`, func(t *testing.T) {
		records := newFakeRecordStore()
		engine := NewEngine(fakeItemStore{years: map[string]int{"item-1": 2026}}, records)

		rec, err := engine.ApplyRating(models.AdminActor("admin-1"), "", "user-1", "item-1", 2026, 4)
		require.NoError(t, err)
		require.Equal(t, 4, rec.AdminRating)
		require.Zero(t, rec.EmployeeRating)
		require.Zero(t, rec.ManagerRating)
	})
}
