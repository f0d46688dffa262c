package goalapimodels

import (
	"github.com/pkg/errors"
	dbmodels "skill-tracker-backend/models/db"
)

type GoalData struct {
	UserID      string `json:"user_id,omitempty"` // пусто — цель создаётся себе
	Description string `json:"description"`
	Weightage   int    `json:"weightage"`
	Year        int    `json:"year"`
}

func (r GoalData) Validate() error {
	if r.Description == "" {
		return errors.New("не указано описание цели")
	}
	if r.Year == 0 {
		return errors.New("не указан год цели")
	}
	if r.Weightage < 0 || r.Weightage > 100 {
		return errors.New("вес цели должен быть в диапазоне 0-100")
	}
	return nil
}

type GoalView struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	Description    string `json:"description"`
	Weightage      int    `json:"weightage"`
	Year           int    `json:"year"`
	RatingRecID    string `json:"rating_rec_id,omitempty"`
	EmployeeRating int    `json:"employee_rating"`
	ManagerRating  int    `json:"manager_rating"`
	AdminRating    int    `json:"admin_rating"`
}

func GoalConvert(rec dbmodels.Goal, rating *dbmodels.UserGoal) GoalView {
	view := GoalView{
		ID:          rec.ID,
		UserID:      rec.UserID,
		Description: rec.Description,
		Weightage:   rec.Weightage,
		Year:        rec.Year,
	}
	if rating != nil {
		view.RatingRecID = rating.ID
		view.EmployeeRating = rating.EmployeeRating
		view.ManagerRating = rating.ManagerRating
		view.AdminRating = rating.AdminRating
	}
	return view
}

type GoalListRequest struct {
	UserID string `json:"user_id,omitempty"` // пусто — свои цели
	Year   int    `json:"year"`
}

type SelfRateRequest struct {
	GoalID string `json:"goal_id"`
	Year   int    `json:"year"`
	Score  int    `json:"score"`
}

func (r SelfRateRequest) Validate() error {
	if r.GoalID == "" {
		return errors.New("не указана цель")
	}
	if r.Year == 0 {
		return errors.New("не указан год")
	}
	return nil
}
