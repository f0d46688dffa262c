package goal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"skill-tracker-backend/lib/rating"
	goalapimodels "skill-tracker-backend/models/api/goal"
	dbmodels "skill-tracker-backend/models/db"
)

type fakeGoalStore struct {
	recs map[string]dbmodels.Goal
}

func (s fakeGoalStore) Create(rec dbmodels.Goal) (string, error) { return "", nil }

func (s fakeGoalStore) GetByID(id string) (*dbmodels.Goal, error) {
	rec, exist := s.recs[id]
	if !exist {
		return nil, nil
	}
	return &rec, nil
}

func (s fakeGoalStore) GetYear(id string) (int, bool, error) {
	rec, exist := s.recs[id]
	return rec.Year, exist, nil
}

func (s fakeGoalStore) ListByUser(userID string, year int) ([]dbmodels.Goal, error) {
	return nil, nil
}

func (s fakeGoalStore) Delete(id string) error { return nil }

type fakeGoalRatingStore struct {
	recs    map[string]rating.Record
	updates map[string]map[string]interface{}
}

func newFakeGoalRatingStore() *fakeGoalRatingStore {
	return &fakeGoalRatingStore{
		recs:    map[string]rating.Record{},
		updates: map[string]map[string]interface{}{},
	}
}

func (s *fakeGoalRatingStore) GetByID(id string) (*rating.Record, error) {
	rec, exist := s.recs[id]
	if !exist {
		return nil, nil
	}
	return &rec, nil
}

func (s *fakeGoalRatingStore) Create(rec rating.Record) (string, error) {
	rec.ID = "new-rating-id"
	s.recs[rec.ID] = rec
	return rec.ID, nil
}

func (s *fakeGoalRatingStore) UpdateRating(id string, updMap map[string]interface{}) error {
	s.updates[id] = updMap
	return nil
}

func (s *fakeGoalRatingStore) FindByUserAndItem(userID, goalID string) (*rating.Record, error) {
	for _, rec := range s.recs {
		if rec.UserID == userID && rec.ItemID == goalID {
			return &rec, nil
		}
	}
	return nil, nil
}

func (s *fakeGoalRatingStore) ListByUser(userID string, year int) ([]rating.Record, error) {
	return nil, nil
}

func TestSelfRate(t *testing.T) {
	store := fakeGoalStore{
		recs: map[string]dbmodels.Goal{
			"goal-own": {
				BaseModel:   dbmodels.BaseModel{ID: "goal-own"},
				UserID:      "user-1",
				Description: "Изучить Go",
				Year:        2026,
			},
			"goal-foreign": {
				BaseModel: dbmodels.BaseModel{ID: "goal-foreign"},
				UserID:    "user-2",
				Year:      2026,
			},
		},
	}

	t.Run("самооценка собственной цели", func(t *testing.T) {
		ratings := newFakeGoalRatingStore()
		handler := impl{store: store, ratingStore: ratings}

		view, err := handler.SelfRate("user-1", goalapimodels.SelfRateRequest{
			GoalID: "goal-own",
			Year:   2026,
			Score:  3,
		})
		require.NoError(t, err)
		require.Equal(t, 3, view.EmployeeRating)
	})

	t.Run("чужая цель недоступна", func(t *testing.T) {
		ratings := newFakeGoalRatingStore()
		handler := impl{store: store, ratingStore: ratings}

		_, err := handler.SelfRate("user-1", goalapimodels.SelfRateRequest{
			GoalID: "goal-foreign",
			Year:   2026,
			Score:  3,
		})
		require.ErrorIs(t, err, rating.ErrItemNotFound)
		require.Empty(t, ratings.recs)
		require.Empty(t, ratings.updates)
	})

	t.Run("год цели должен совпадать", func(t *testing.T) {
		handler := impl{store: store, ratingStore: newFakeGoalRatingStore()}

		_, err := handler.SelfRate("user-1", goalapimodels.SelfRateRequest{
			GoalID: "goal-own",
			Year:   2025,
			Score:  3,
		})
		require.ErrorIs(t, err, rating.ErrYearMismatch)
	})
}
