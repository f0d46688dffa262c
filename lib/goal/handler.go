package goal

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"skill-tracker-backend/db"
	"skill-tracker-backend/lib/access"
	goalratingstore "skill-tracker-backend/lib/goal/rating-store"
	goalstore "skill-tracker-backend/lib/goal/store"
	"skill-tracker-backend/lib/notification"
	"skill-tracker-backend/lib/rating"
	usersstore "skill-tracker-backend/lib/users/store"
	initchecker "skill-tracker-backend/lib/utils/init-checker"
	"skill-tracker-backend/models"
	apimodels "skill-tracker-backend/models/api"
	goalapimodels "skill-tracker-backend/models/api/goal"
	dbmodels "skill-tracker-backend/models/db"
)

var ErrUserNotFound = errors.New("пользователь не найден")

type Provider interface {
	Create(actor models.Actor, request goalapimodels.GoalData) (id string, err error)
	List(actor models.Actor, request goalapimodels.GoalListRequest) (list []goalapimodels.GoalView, err error)
	SelfRate(userID string, request goalapimodels.SelfRateRequest) (view goalapimodels.GoalView, err error)
	UpdateRating(actor models.Actor, request apimodels.RatingUpdateRequest) (rec rating.Record, err error)
	Delete(actor models.Actor, id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:        goalstore.NewInstance(db.DB),
		ratingStore:  goalratingstore.NewInstance(db.DB),
		usersStore:   usersstore.NewInstance(db.DB),
		accessPolicy: access.Instance,
		notify:       notification.Instance,
	}
	instance.engine = rating.NewEngine(instance.store, instance.ratingStore)
	initchecker.CheckInit(
		"store", instance.store,
		"ratingStore", instance.ratingStore,
		"usersStore", instance.usersStore,
		"accessPolicy", instance.accessPolicy,
		"notify", instance.notify,
	)
	Instance = instance
}

type impl struct {
	store        goalstore.Provider
	ratingStore  goalratingstore.Provider
	usersStore   usersstore.Provider
	accessPolicy access.Provider
	engine       rating.Engine
	notify       notification.Provider
}

// Create создаёт цель себе, либо подчинённому —
// во втором случае обязательна проверка прямого подчинения.
func (i impl) Create(actor models.Actor, request goalapimodels.GoalData) (id string, err error) {
	targetUserID := request.UserID
	if targetUserID == "" || targetUserID == actor.UserID {
		targetUserID = actor.UserID
	} else {
		err = i.checkAccess(actor, targetUserID)
		if err != nil {
			return "", err
		}
	}
	rec := dbmodels.Goal{
		UserID:      targetUserID,
		Description: request.Description,
		Weightage:   request.Weightage,
		Year:        request.Year,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("user_id", targetUserID).
		WithField("rec_id", id).
		Info("создана цель")
	if targetUserID != actor.UserID {
		i.notify.Notify(targetUserID, fmt.Sprintf("Вам назначена цель на %v год", request.Year))
	}
	return id, nil
}

func (i impl) List(actor models.Actor, request goalapimodels.GoalListRequest) (list []goalapimodels.GoalView, err error) {
	targetUserID := request.UserID
	if targetUserID == "" {
		targetUserID = actor.UserID
	}
	if targetUserID != actor.UserID {
		err = i.checkAccess(actor, targetUserID)
		if err != nil {
			return nil, err
		}
	}
	goals, err := i.store.ListByUser(targetUserID, request.Year)
	if err != nil {
		return nil, err
	}
	ratings, err := i.ratingStore.ListByUser(targetUserID, request.Year)
	if err != nil {
		return nil, err
	}
	ratingByGoal := make(map[string]rating.Record, len(ratings))
	for _, rec := range ratings {
		ratingByGoal[rec.ItemID] = rec
	}
	list = make([]goalapimodels.GoalView, 0, len(goals))
	for _, goalRec := range goals {
		var ratingRec *dbmodels.UserGoal
		if rec, exist := ratingByGoal[goalRec.ID]; exist {
			ratingRec = &dbmodels.UserGoal{
				BaseModel:      dbmodels.BaseModel{ID: rec.ID},
				UserID:         rec.UserID,
				GoalID:         rec.ItemID,
				Year:           rec.Year,
				EmployeeRating: rec.EmployeeRating,
				ManagerRating:  rec.ManagerRating,
				AdminRating:    rec.AdminRating,
			}
		}
		list = append(list, goalapimodels.GoalConvert(goalRec, ratingRec))
	}
	return list, nil
}

// SelfRate — самооценка цели. Сотрудник оценивает только собственные
// цели, проверка политики доступа здесь не нужна.
func (i impl) SelfRate(userID string, request goalapimodels.SelfRateRequest) (goalapimodels.GoalView, error) {
	err := rating.ValidateScore(request.Score)
	if err != nil {
		return goalapimodels.GoalView{}, err
	}
	goalRec, err := i.store.GetByID(request.GoalID)
	if err != nil {
		return goalapimodels.GoalView{}, err
	}
	if goalRec == nil {
		return goalapimodels.GoalView{}, rating.ErrItemNotFound
	}
	// чужая цель для самооценки не существует
	if goalRec.UserID != userID {
		return goalapimodels.GoalView{}, rating.ErrItemNotFound
	}
	if goalRec.Year != request.Year {
		return goalapimodels.GoalView{}, rating.ErrYearMismatch
	}

	rec, err := i.ratingStore.FindByUserAndItem(userID, request.GoalID)
	if err != nil {
		return goalapimodels.GoalView{}, err
	}
	if rec != nil {
		err = i.ratingStore.UpdateRating(rec.ID, map[string]interface{}{"employee_rating": request.Score})
		if err != nil {
			return goalapimodels.GoalView{}, err
		}
		rec.EmployeeRating = request.Score
	} else {
		newRec := rating.Record{
			UserID:         userID,
			ItemID:         request.GoalID,
			Year:           request.Year,
			EmployeeRating: request.Score,
		}
		id, err := i.ratingStore.Create(newRec)
		if err != nil {
			return goalapimodels.GoalView{}, err
		}
		newRec.ID = id
		rec = &newRec
	}
	log.
		WithField("user_id", userID).
		WithField("goal_id", request.GoalID).
		Info("выставлена самооценка цели")
	row := dbmodels.UserGoal{
		BaseModel:      dbmodels.BaseModel{ID: rec.ID},
		UserID:         rec.UserID,
		GoalID:         rec.ItemID,
		Year:           rec.Year,
		EmployeeRating: rec.EmployeeRating,
		ManagerRating:  rec.ManagerRating,
		AdminRating:    rec.AdminRating,
	}
	return goalapimodels.GoalConvert(*goalRec, &row), nil
}

// UpdateRating — оценка цели руководителем или администратором
// через общий движок оценок.
func (i impl) UpdateRating(actor models.Actor, request apimodels.RatingUpdateRequest) (rating.Record, error) {
	err := i.checkAccess(actor, request.UserID)
	if err != nil {
		return rating.Record{}, err
	}
	rec, err := i.engine.ApplyRating(actor, request.RecordID, request.UserID, request.ItemID, request.Year, request.Score)
	if err != nil {
		return rating.Record{}, err
	}
	log.
		WithField("user_id", request.UserID).
		WithField("rec_id", rec.ID).
		WithField("actor_role", actor.Role).
		Info("выставлена оценка цели")
	i.notify.Notify(request.UserID, "Ваша цель получила новую оценку")
	return rec, nil
}

func (i impl) Delete(actor models.Actor, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return rating.ErrItemNotFound
	}
	if rec.UserID != actor.UserID {
		err = i.checkAccess(actor, rec.UserID)
		if err != nil {
			return err
		}
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("удалена цель")
	return nil
}

func (i impl) checkAccess(actor models.Actor, targetUserID string) error {
	targetUser, err := i.usersStore.GetByID(targetUserID)
	if err != nil {
		return err
	}
	if targetUser == nil {
		return ErrUserNotFound
	}
	allowed, err := i.accessPolicy.CanActOn(actor, targetUser.EmployeeNo)
	if err != nil {
		return err
	}
	if !allowed {
		return access.ErrAccessDenied
	}
	return nil
}
