package feedbackresponsestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "skill-tracker-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.FeedbackResponse) (id string, err error)
	GetByReviewerRec(reviewerRecID string) (rec *dbmodels.FeedbackResponse, err error)
	ListByReviewerRecIDs(reviewerRecIDs []string) (list []dbmodels.FeedbackResponse, err error)
	DeleteByReviewerRecIDs(tx *gorm.DB, reviewerRecIDs []string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.FeedbackResponse) (id string, err error) {
	if rec.ReviewerRecID == "" {
		return "", errors.New("не указано назначение проверяющего")
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByReviewerRec(reviewerRecID string) (*dbmodels.FeedbackResponse, error) {
	rec := dbmodels.FeedbackResponse{}
	err := i.db.
		Where("reviewer_rec_id = ?", reviewerRecID).
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

func (i impl) ListByReviewerRecIDs(reviewerRecIDs []string) (list []dbmodels.FeedbackResponse, err error) {
	list = []dbmodels.FeedbackResponse{}
	if len(reviewerRecIDs) == 0 {
		return list, nil
	}
	err = i.db.
		Where("reviewer_rec_id IN ?", reviewerRecIDs).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteByReviewerRecIDs выполняется внутри внешней транзакции очистки
func (i impl) DeleteByReviewerRecIDs(tx *gorm.DB, reviewerRecIDs []string) error {
	if len(reviewerRecIDs) == 0 {
		return nil
	}
	err := tx.
		Where("reviewer_rec_id IN ?", reviewerRecIDs).
		Delete(&dbmodels.FeedbackResponse{}).
		Error
	if err != nil {
		return err
	}
	return nil
}
