package importjob

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"skill-tracker-backend/db"
	"skill-tracker-backend/lib/competency"
	"skill-tracker-backend/lib/feedback"
	filestorage "skill-tracker-backend/lib/file-storage"
	importjobstore "skill-tracker-backend/lib/import-job/store"
	initchecker "skill-tracker-backend/lib/utils/init-checker"
	"skill-tracker-backend/models"
	importjobapimodels "skill-tracker-backend/models/api/importjob"
	dbmodels "skill-tracker-backend/models/db"
)

var (
	ErrJobNotFound     = errors.New("задача импорта не найдена")
	ErrUnknownKind     = errors.New("неизвестный вид импорта")
	ErrYearNotProvided = errors.New("не указан год импорта")
)

type Provider interface {
	Enqueue(kind models.ImportKind, year int, fileName string, body []byte) (view importjobapimodels.JobView, err error)
	GetStatus(id string) (view importjobapimodels.JobView, err error)
	ProcessNext(ctx context.Context)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:       importjobstore.NewInstance(db.DB),
		fileStorage: filestorage.Instance,
		competency:  competency.Instance,
		feedback:    feedback.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"fileStorage", instance.fileStorage,
		"competency", instance.competency,
		"feedback", instance.feedback,
	)
	Instance = instance
}

type impl struct {
	store       importjobstore.Provider
	fileStorage filestorage.Provider
	competency  competency.Provider
	feedback    feedback.Provider
}

// Enqueue сохраняет файл в S3 и ставит задачу в очередь.
// Разбор файла выполняет фоновый воркер.
func (i impl) Enqueue(kind models.ImportKind, year int, fileName string, body []byte) (importjobapimodels.JobView, error) {
	if kind != models.ImportKindCompetency && kind != models.ImportKindFeedbackQuestion {
		return importjobapimodels.JobView{}, ErrUnknownKind
	}
	if year == 0 {
		return importjobapimodels.JobView{}, ErrYearNotProvided
	}
	s3Key := fmt.Sprintf("import/%s/%s.xlsx", kind, uuid.NewString())
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err := i.fileStorage.Upload(ctx, s3Key, body, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err != nil {
		return importjobapimodels.JobView{}, errors.Wrap(err, "ошибка сохранения файла импорта")
	}
	rec := dbmodels.ImportJob{
		Kind:     kind,
		Year:     year,
		FileName: fileName,
		S3Key:    s3Key,
		Status:   models.ImportJobPending,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return importjobapimodels.JobView{}, err
	}
	rec.ID = id
	log.
		WithField("rec_id", id).
		WithField("kind", kind).
		Info("поставлена задача импорта")
	return importjobapimodels.JobConvert(rec), nil
}

func (i impl) GetStatus(id string) (importjobapimodels.JobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return importjobapimodels.JobView{}, err
	}
	if rec == nil {
		return importjobapimodels.JobView{}, ErrJobNotFound
	}
	return importjobapimodels.JobConvert(*rec), nil
}

// ProcessNext забирает самую старую необработанную задачу и выполняет её.
// Вызывается воркером, ошибки обработки фиксируются в самой задаче.
func (i impl) ProcessNext(ctx context.Context) {
	rec, err := i.store.NextPending()
	if err != nil {
		log.WithError(err).Error("ошибка выборки задачи импорта")
		return
	}
	if rec == nil {
		return
	}
	logger := log.WithField("rec_id", rec.ID).WithField("kind", rec.Kind)
	err = i.store.Update(rec.ID, map[string]interface{}{"status": models.ImportJobProcessing})
	if err != nil {
		logger.WithError(err).Error("ошибка обновления статуса задачи")
		return
	}
	rowsAdded, fanoutAdded, err := i.process(ctx, *rec)
	if err != nil {
		logger.WithError(err).Error("задача импорта завершилась ошибкой")
		updErr := i.store.Update(rec.ID, map[string]interface{}{
			"status":  models.ImportJobFailed,
			"details": err.Error(),
		})
		if updErr != nil {
			logger.WithError(updErr).Error("ошибка фиксации ошибки задачи")
		}
		return
	}
	err = i.store.Update(rec.ID, map[string]interface{}{
		"status":       models.ImportJobDone,
		"rows_added":   rowsAdded,
		"fanout_added": fanoutAdded,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка завершения задачи")
		return
	}
	err = i.fileStorage.Delete(ctx, rec.S3Key)
	if err != nil {
		logger.WithError(err).Warn("не удалось удалить обработанный файл")
	}
	logger.
		WithField("rows_added", rowsAdded).
		Info("задача импорта выполнена")
}

func (i impl) process(ctx context.Context, rec dbmodels.ImportJob) (rowsAdded, fanoutAdded int, err error) {
	body, err := i.fileStorage.GetFile(ctx, rec.S3Key)
	if err != nil {
		return 0, 0, errors.Wrap(err, "ошибка чтения файла импорта")
	}
	switch rec.Kind {
	case models.ImportKindCompetency:
		result, err := i.competency.ImportFromFile(body, rec.Year)
		if err != nil {
			return 0, 0, err
		}
		return result.CompetenciesAdded, result.UserCompetenciesAdded, nil
	case models.ImportKindFeedbackQuestion:
		added, err := i.feedback.ImportQuestionsFromFile(bytes.NewReader(body), rec.Year)
		if err != nil {
			return 0, 0, err
		}
		return added, 0, nil
	default:
		return 0, 0, ErrUnknownKind
	}
}
