package feedbackapimodels

import (
	"github.com/pkg/errors"
	"skill-tracker-backend/models"
	dbmodels "skill-tracker-backend/models/db"
)

type QuestionData struct {
	FormName     string              `json:"form_name"`
	QuestionText string              `json:"question_text"`
	QuestionType models.QuestionType `json:"question_type"`
	Choices      []string            `json:"choices"`
	Year         int                 `json:"year"`
}

func (r QuestionData) Validate() error {
	if r.FormName == "" {
		return errors.New("не указано название формы")
	}
	if r.QuestionText == "" {
		return errors.New("не указан текст вопроса")
	}
	if !r.QuestionType.IsValid() {
		return errors.New("указан неизвестный тип вопроса")
	}
	if len(r.Choices) > 4 {
		return errors.New("вопрос поддерживает не более 4 вариантов ответа")
	}
	if r.Year == 0 {
		return errors.New("не указан год формы")
	}
	return nil
}

type QuestionView struct {
	ID             string              `json:"id"`
	FormName       string              `json:"form_name"`
	QuestionNumber int                 `json:"question_number"`
	QuestionText   string              `json:"question_text"`
	QuestionType   models.QuestionType `json:"question_type"`
	Choices        []string            `json:"choices"`
	Year           int                 `json:"year"`
	Original       bool                `json:"original"`
}

func QuestionConvert(rec dbmodels.FeedbackQuestion) QuestionView {
	choices := make([]string, 0, 4)
	for _, choice := range []string{rec.Choice1, rec.Choice2, rec.Choice3, rec.Choice4} {
		if choice != "" {
			choices = append(choices, choice)
		}
	}
	return QuestionView{
		ID:             rec.ID,
		FormName:       rec.FormName,
		QuestionNumber: rec.QuestionNumber,
		QuestionText:   rec.QuestionText,
		QuestionType:   rec.QuestionType,
		Choices:        choices,
		Year:           rec.Year,
		Original:       rec.Original,
	}
}

type ReviewerRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"` // пусто — имя будет получено из справочника пользователей
}

type AssignRequest struct {
	UserID    string        `json:"user_id"`
	Year      int           `json:"year"`
	Reviewers []ReviewerRef `json:"reviewers"`
}

func (r AssignRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("не указан оцениваемый сотрудник")
	}
	if r.Year == 0 {
		return errors.New("не указан год")
	}
	if len(r.Reviewers) == 0 {
		return errors.New("не указаны рецензенты")
	}
	for _, reviewer := range r.Reviewers {
		if reviewer.ID == "" {
			return errors.New("указан рецензент без идентификатора")
		}
	}
	return nil
}

type AssignResult struct {
	Created int `json:"created"`
}

type ResponseSubmit struct {
	ReviewerRecID string `json:"reviewer_rec_id"`
	Answer        string `json:"answer"`
}

func (r ResponseSubmit) Validate() error {
	if r.ReviewerRecID == "" {
		return errors.New("не указано назначение рецензента")
	}
	if r.Answer == "" {
		return errors.New("не указан ответ")
	}
	return nil
}

type AssignedFeedbackView struct {
	ReviewerRecID string         `json:"reviewer_rec_id"`
	Status        models.ReviewerStatus `json:"status"`
	Question      QuestionView   `json:"question"`
	TargetUserID  string         `json:"target_user_id"`
	Year          int            `json:"year"`
}
