package dbmodels

import "github.com/pkg/errors"

type Goal struct {
	BaseModel
	UserID      string `gorm:"index"`
	Description string `gorm:"type:text"`
	Weightage   int
	Year        int `gorm:"index"`
}

func (r Goal) Validate() error {
	if r.UserID == "" {
		return errors.New("не указан владелец цели")
	}
	if r.Description == "" {
		return errors.New("не указано описание цели")
	}
	if r.Year == 0 {
		return errors.New("не указан год цели")
	}
	return nil
}

// UserGoal — запись оценки цели. Три поля оценок независимы,
// каждая роль изменяет ровно одно из них.
type UserGoal struct {
	BaseModel
	UserID         string `gorm:"index;uniqueIndex:idx_user_goal_rating"`
	GoalID         string `gorm:"uniqueIndex:idx_user_goal_rating"`
	Year           int    `gorm:"index"`
	EmployeeRating int
	ManagerRating  int
	AdminRating    int
}
