package feedbackreviewerstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "skill-tracker-backend/models/db"
)

type Provider interface {
	CreateBatch(recs []dbmodels.FeedbackReviewer) error
	GetByID(id string) (rec *dbmodels.FeedbackReviewer, err error)
	ListByFeedbackIDs(feedbackIDs []string) (list []dbmodels.FeedbackReviewer, err error)
	ListByReviewer(reviewerID string) (list []dbmodels.FeedbackReviewer, err error)
	UpdateStatus(id string, status string) error
	DeleteByFeedbackIDs(tx *gorm.DB, feedbackIDs []string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateBatch(recs []dbmodels.FeedbackReviewer) error {
	if len(recs) == 0 {
		return nil
	}
	for _, rec := range recs {
		err := rec.Validate()
		if err != nil {
			return err
		}
	}
	err := i.db.
		CreateInBatches(recs, 100).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.FeedbackReviewer, error) {
	rec := dbmodels.FeedbackReviewer{}
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

func (i impl) ListByFeedbackIDs(feedbackIDs []string) (list []dbmodels.FeedbackReviewer, err error) {
	list = []dbmodels.FeedbackReviewer{}
	if len(feedbackIDs) == 0 {
		return list, nil
	}
	err = i.db.
		Where("feedback_id IN ?", feedbackIDs).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByReviewer(reviewerID string) (list []dbmodels.FeedbackReviewer, err error) {
	list = []dbmodels.FeedbackReviewer{}
	err = i.db.
		Where("reviewer_id = ?", reviewerID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) UpdateStatus(id string, status string) error {
	err := i.db.
		Model(&dbmodels.FeedbackReviewer{}).
		Where("id = ?", id).
		Update("status", status).
		Error
	if err != nil {
		return err
	}
	return nil
}

// DeleteByFeedbackIDs выполняется внутри внешней транзакции очистки
func (i impl) DeleteByFeedbackIDs(tx *gorm.DB, feedbackIDs []string) error {
	if len(feedbackIDs) == 0 {
		return nil
	}
	err := tx.
		Where("feedback_id IN ?", feedbackIDs).
		Delete(&dbmodels.FeedbackReviewer{}).
		Error
	if err != nil {
		return err
	}
	return nil
}
