package dbmodels

import "github.com/pkg/errors"

type Competency struct {
	BaseModel
	CompetencyType string `gorm:"type:varchar(100)"`
	Name           string `gorm:"type:varchar(255)"`
	Weightage      int
	Description    string `gorm:"type:text"`
	Year           int    `gorm:"index"`
}

func (r Competency) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название компетенции")
	}
	if r.Year == 0 {
		return errors.New("не указан год компетенции")
	}
	return nil
}

// UserCompetency — запись оценки компетенции сотрудника,
// та же трёхролевая схема, что и у UserGoal.
type UserCompetency struct {
	BaseModel
	UserID         string `gorm:"index;uniqueIndex:idx_user_competency_rating"`
	CompetencyID   string `gorm:"uniqueIndex:idx_user_competency_rating"`
	Year           int    `gorm:"index"`
	EmployeeRating int
	ManagerRating  int
	AdminRating    int
}
