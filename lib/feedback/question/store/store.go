package feedbackquestionstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "skill-tracker-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.FeedbackQuestion) (id string, err error)
	GetByID(id string) (rec *dbmodels.FeedbackQuestion, err error)
	List(formName string, year int) (list []dbmodels.FeedbackQuestion, err error)
	NextQuestionNumber(formName string, year int) (number int, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ReplaceYear(year int, recs []dbmodels.FeedbackQuestion) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.FeedbackQuestion) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", err
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.FeedbackQuestion, error) {
	rec := dbmodels.FeedbackQuestion{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(formName string, year int) (list []dbmodels.FeedbackQuestion, err error) {
	list = []dbmodels.FeedbackQuestion{}
	tx := i.db
	if formName != "" {
		tx = tx.Where("form_name = ?", formName)
	}
	if year != 0 {
		tx = tx.Where("year = ?", year)
	}
	err = tx.
		Order("form_name, question_number").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// NextQuestionNumber — следующий сквозной номер внутри формы и года
func (i impl) NextQuestionNumber(formName string, year int) (int, error) {
	var maxNumber int
	err := i.db.
		Model(dbmodels.FeedbackQuestion{}).
		Where("form_name = ?", formName).
		Where("year = ?", year).
		Select("COALESCE(MAX(question_number), 0)").
		Scan(&maxNumber).
		Error
	if err != nil {
		return 0, err
	}
	return maxNumber + 1, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.FeedbackQuestion{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.FeedbackQuestion{
		BaseModel: dbmodels.BaseModel{
			ID: id,
		},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

// ReplaceYear заменяет вопросы одного года, не трогая остальные годы
func (i impl) ReplaceYear(year int, recs []dbmodels.FeedbackQuestion) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("year = ?", year).
			Delete(&dbmodels.FeedbackQuestion{}).
			Error
		if err != nil {
			return errors.Wrap(err, "ошибка удаления вопросов года")
		}
		if len(recs) == 0 {
			return nil
		}
		err = tx.
			CreateInBatches(recs, 100).
			Error
		if err != nil {
			return errors.Wrap(err, "ошибка вставки вопросов")
		}
		return nil
	})
}
