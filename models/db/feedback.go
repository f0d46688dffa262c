package dbmodels

import (
	"github.com/pkg/errors"
	"skill-tracker-backend/models"
)

type FeedbackQuestion struct {
	BaseModel
	FormName       string              `gorm:"type:varchar(255);index"`
	QuestionNumber int                 // сквозной номер внутри формы и года
	QuestionText   string              `gorm:"type:text"`
	QuestionType   models.QuestionType `gorm:"type:varchar(50)"`
	Choice1        string              `gorm:"type:varchar(512)"`
	Choice2        string              `gorm:"type:varchar(512)"`
	Choice3        string              `gorm:"type:varchar(512)"`
	Choice4        string              `gorm:"type:varchar(512)"`
	Year           int                 `gorm:"index"`
	Original       bool                // true только для строк из импорта
}

func (r FeedbackQuestion) Validate() error {
	if r.FormName == "" {
		return errors.New("не указано название формы")
	}
	if r.QuestionText == "" {
		return errors.New("не указан текст вопроса")
	}
	if !r.QuestionType.IsValid() {
		return errors.New("указан неизвестный тип вопроса")
	}
	if r.Year == 0 {
		return errors.New("не указан год формы")
	}
	return nil
}

type UserFeedback struct {
	BaseModel
	UserID     string `gorm:"index"`
	QuestionID string `gorm:"index"`
	Year       int    `gorm:"index"`
	Status     models.FeedbackStatus `gorm:"type:varchar(50)"`
}

func (r UserFeedback) Validate() error {
	if r.UserID == "" {
		return errors.New("не указан пользователь")
	}
	if r.QuestionID == "" {
		return errors.New("не указан вопрос")
	}
	if r.Year == 0 {
		return errors.New("не указан год")
	}
	return nil
}

type FeedbackReviewer struct {
	BaseModel
	FeedbackID   string `gorm:"index"`
	ReviewerID   string `gorm:"index"`
	ReviewerName string `gorm:"type:varchar(255)"` // снимок имени на момент назначения
	Status       models.ReviewerStatus `gorm:"type:varchar(50)"`
}

func (r FeedbackReviewer) Validate() error {
	if r.FeedbackID == "" {
		return errors.New("не указана запись обратной связи")
	}
	if r.ReviewerID == "" {
		return errors.New("не указан проверяющий")
	}
	return nil
}

type FeedbackResponse struct {
	BaseModel
	ReviewerRecID string `gorm:"index"`
	Answer        string `gorm:"type:text"`
}
