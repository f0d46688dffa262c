package feedback

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"skill-tracker-backend/models"
	feedbackapimodels "skill-tracker-backend/models/api/feedback"
	notificationapimodels "skill-tracker-backend/models/api/notification"
	dbmodels "skill-tracker-backend/models/db"
)

type fakeFeedbackStore struct {
	recs []dbmodels.UserFeedback
}

func (f *fakeFeedbackStore) CreateBatch(recs []dbmodels.UserFeedback) error {
	f.recs = append(f.recs, recs...)
	return nil
}

func (f *fakeFeedbackStore) GetByID(id string) (*dbmodels.UserFeedback, error) {
	for _, rec := range f.recs {
		if rec.ID == id {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeFeedbackStore) ListByUser(userID string, year int) ([]dbmodels.UserFeedback, error) {
	list := []dbmodels.UserFeedback{}
	for _, rec := range f.recs {
		if rec.UserID != userID {
			continue
		}
		if year != 0 && rec.Year != year {
			continue
		}
		list = append(list, rec)
	}
	return list, nil
}

func (f *fakeFeedbackStore) UpdateStatus(id string, status string) error { return nil }

func (f *fakeFeedbackStore) DeleteByUserAndYear(tx *gorm.DB, userID string, year int) error {
	return nil
}

type fakeReviewerStore struct {
	recs    []dbmodels.FeedbackReviewer
	created []dbmodels.FeedbackReviewer
}

func (f *fakeReviewerStore) CreateBatch(recs []dbmodels.FeedbackReviewer) error {
	f.created = append(f.created, recs...)
	f.recs = append(f.recs, recs...)
	return nil
}

func (f *fakeReviewerStore) GetByID(id string) (*dbmodels.FeedbackReviewer, error) {
	for _, rec := range f.recs {
		if rec.ID == id {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewerStore) ListByFeedbackIDs(feedbackIDs []string) ([]dbmodels.FeedbackReviewer, error) {
	ids := map[string]bool{}
	for _, id := range feedbackIDs {
		ids[id] = true
	}
	list := []dbmodels.FeedbackReviewer{}
	for _, rec := range f.recs {
		if ids[rec.FeedbackID] {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeReviewerStore) ListByReviewer(reviewerID string) ([]dbmodels.FeedbackReviewer, error) {
	return nil, nil
}

func (f *fakeReviewerStore) UpdateStatus(id string, status string) error { return nil }

func (f *fakeReviewerStore) DeleteByFeedbackIDs(tx *gorm.DB, feedbackIDs []string) error {
	return nil
}

type fakeNamesStore struct {
	names map[string]string
}

func (f fakeNamesStore) Create(rec dbmodels.User) (string, error)     { return "", nil }
func (f fakeNamesStore) GetByID(id string) (*dbmodels.User, error)    { return nil, nil }
func (f fakeNamesStore) FindByEmail(email string) (*dbmodels.User, error) { return nil, nil }
func (f fakeNamesStore) ListActive() ([]dbmodels.User, error)         { return nil, nil }

func (f fakeNamesStore) List(search string, page, limit int) ([]dbmodels.User, int64, error) {
	return nil, 0, nil
}

func (f fakeNamesStore) GetNamesByIDs(ids []string) (map[string]string, error) {
	names := map[string]string{}
	for _, id := range ids {
		if name, ok := f.names[id]; ok {
			names[id] = name
		}
	}
	return names, nil
}

func (f fakeNamesStore) Update(id string, updMap map[string]interface{}) error { return nil }

type fakeNotifier struct {
	sent []string
}

func (f *fakeNotifier) Notify(userID, message string) {}

func (f *fakeNotifier) NotifyWithEmail(userID, subject, message string) {
	f.sent = append(f.sent, userID)
}

func (f *fakeNotifier) List(userID string, onlyUnread bool) ([]notificationapimodels.NotificationView, error) {
	return nil, nil
}

func (f *fakeNotifier) MarkRead(userID, id string) error { return nil }

func TestAssignReviewers(t *testing.T) {
	newImpl := func() (impl, *fakeFeedbackStore, *fakeReviewerStore, *fakeNotifier) {
		feedbacks := &fakeFeedbackStore{
			recs: []dbmodels.UserFeedback{
				{BaseModel: dbmodels.BaseModel{ID: "fb-1"}, UserID: "user-1", QuestionID: "q-1", Year: 2026},
				{BaseModel: dbmodels.BaseModel{ID: "fb-2"}, UserID: "user-1", QuestionID: "q-2", Year: 2026},
			},
		}
		reviewers := &fakeReviewerStore{}
		notifier := &fakeNotifier{}
		handler := impl{
			feedbackStore: feedbacks,
			reviewerStore: reviewers,
			usersStore:    fakeNamesStore{names: map[string]string{"rev-1": "Петров П.П."}},
			notify:        notifier,
		}
		return handler, feedbacks, reviewers, notifier
	}

	t.Run("назначение на все записи пользователя", func(t *testing.T) {
		handler, _, reviewers, notifier := newImpl()

		result, err := handler.AssignReviewers(feedbackapimodels.AssignRequest{
			UserID: "user-1",
			Year:   2026,
			Reviewers: []feedbackapimodels.ReviewerRef{
				{ID: "rev-1"},
				{ID: "rev-2", Name: "Сидоров С.С."},
			},
		})
		require.NoError(t, err)
		require.Equal(t, 4, result.Created)
		require.Len(t, reviewers.created, 4)
		for _, rec := range reviewers.created {
			require.Equal(t, models.ReviewerPendingStatus, rec.Status)
		}
		require.ElementsMatch(t, []string{"rev-1", "rev-2"}, notifier.sent)
	})

	t.Run("имя рецензента добирается из справочника", func(t *testing.T) {
		handler, _, reviewers, _ := newImpl()

		_, err := handler.AssignReviewers(feedbackapimodels.AssignRequest{
			UserID:    "user-1",
			Year:      2026,
			Reviewers: []feedbackapimodels.ReviewerRef{{ID: "rev-1"}},
		})
		require.NoError(t, err)
		require.Equal(t, "Петров П.П.", reviewers.created[0].ReviewerName)
	})

	t.Run("повторное назначение идемпотентно", func(t *testing.T) {
		handler, _, reviewers, notifier := newImpl()
		request := feedbackapimodels.AssignRequest{
			UserID:    "user-1",
			Year:      2026,
			Reviewers: []feedbackapimodels.ReviewerRef{{ID: "rev-1"}},
		}

		first, err := handler.AssignReviewers(request)
		require.NoError(t, err)
		require.Equal(t, 2, first.Created)
		require.Equal(t, []string{"rev-1"}, notifier.sent)

		second, err := handler.AssignReviewers(request)
		require.NoError(t, err)
		require.Equal(t, 0, second.Created)
		require.Len(t, reviewers.recs, 2)
		require.Len(t, notifier.sent, 1, "без новых назначений писем быть не должно")
	})

	t.Run("частичное назначение закрывает только пропуски", func(t *testing.T) {
		handler, _, reviewers, _ := newImpl()
		reviewers.recs = append(reviewers.recs, dbmodels.FeedbackReviewer{
			BaseModel:  dbmodels.BaseModel{ID: "rr-1"},
			FeedbackID: "fb-1",
			ReviewerID: "rev-1",
			Status:     models.ReviewerPendingStatus,
		})

		result, err := handler.AssignReviewers(feedbackapimodels.AssignRequest{
			UserID:    "user-1",
			Year:      2026,
			Reviewers: []feedbackapimodels.ReviewerRef{{ID: "rev-1"}},
		})
		require.NoError(t, err)
		require.Equal(t, 1, result.Created)
		require.Equal(t, "fb-2", reviewers.created[0].FeedbackID)
	})

	t.Run("без инициированной обратной связи назначение невозможно", func(t *testing.T) {
		handler, _, _, _ := newImpl()

		_, err := handler.AssignReviewers(feedbackapimodels.AssignRequest{
			UserID:    "user-2",
			Year:      2026,
			Reviewers: []feedbackapimodels.ReviewerRef{{ID: "rev-1"}},
		})
		require.Error(t, err)
	})
}

func TestSubmitResponse(t *testing.T) {
	reviewers := &fakeReviewerStore{
		recs: []dbmodels.FeedbackReviewer{{
			BaseModel:  dbmodels.BaseModel{ID: "rr-1"},
			FeedbackID: "fb-1",
			ReviewerID: "rev-1",
			Status:     models.ReviewerPendingStatus,
		}},
	}
	handler := impl{
		reviewerStore: reviewers,
		responseStore: &fakeResponseStore{},
	}

	t.Run("ответ по чужому назначению отклоняется", func(t *testing.T) {
		_, err := handler.SubmitResponse("rev-2", feedbackapimodels.ResponseSubmit{
			ReviewerRecID: "rr-1",
			Answer:        "Отлично",
		})
		require.ErrorIs(t, err, ErrNotAssignmentOwner)
	})

	t.Run("несуществующее назначение", func(t *testing.T) {
		_, err := handler.SubmitResponse("rev-1", feedbackapimodels.ResponseSubmit{
			ReviewerRecID: "rr-404",
			Answer:        "Отлично",
		})
		require.ErrorIs(t, err, ErrAssignmentNotFound)
	})

	t.Run("свой ответ принимается", func(t *testing.T) {
		id, err := handler.SubmitResponse("rev-1", feedbackapimodels.ResponseSubmit{
			ReviewerRecID: "rr-1",
			Answer:        "Отлично",
		})
		require.NoError(t, err)
		require.NotEmpty(t, id)
	})
}

type fakeResponseStore struct {
	recs []dbmodels.FeedbackResponse
}

func (f *fakeResponseStore) Create(rec dbmodels.FeedbackResponse) (string, error) {
	rec.ID = "resp-1"
	f.recs = append(f.recs, rec)
	return rec.ID, nil
}

func (f *fakeResponseStore) GetByReviewerRec(reviewerRecID string) (*dbmodels.FeedbackResponse, error) {
	return nil, nil
}

func (f *fakeResponseStore) ListByReviewerRecIDs(reviewerRecIDs []string) ([]dbmodels.FeedbackResponse, error) {
	return nil, nil
}

func (f *fakeResponseStore) DeleteByReviewerRecIDs(tx *gorm.DB, reviewerRecIDs []string) error {
	return nil
}
