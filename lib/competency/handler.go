package competency

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	"skill-tracker-backend/db"
	"skill-tracker-backend/lib/access"
	competencyratingstore "skill-tracker-backend/lib/competency/rating-store"
	competencystore "skill-tracker-backend/lib/competency/store"
	"skill-tracker-backend/lib/notification"
	"skill-tracker-backend/lib/rating"
	usersstore "skill-tracker-backend/lib/users/store"
	initchecker "skill-tracker-backend/lib/utils/init-checker"
	"skill-tracker-backend/models"
	apimodels "skill-tracker-backend/models/api"
	competencyapimodels "skill-tracker-backend/models/api/competency"
	dbmodels "skill-tracker-backend/models/db"
)

var ErrUserNotFound = errors.New("пользователь не найден")

type Provider interface {
	Create(request competencyapimodels.CompetencyData) (id string, err error)
	List(year int) (list []competencyapimodels.CompetencyView, err error)
	Update(id string, request competencyapimodels.CompetencyData) error
	Delete(id string) error
	UpdateRating(actor models.Actor, request apimodels.RatingUpdateRequest) (rec rating.Record, err error)
	ImportFromFile(body []byte, year int) (result competencyapimodels.ImportResult, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:        competencystore.NewInstance(db.DB),
		ratingStore:  competencyratingstore.NewInstance(db.DB),
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
	store        competencystore.Provider
	ratingStore  competencyratingstore.Provider
	usersStore   usersstore.Provider
	accessPolicy access.Provider
	engine       rating.Engine
	notify       notification.Provider
}

func (i impl) Create(request competencyapimodels.CompetencyData) (id string, err error) {
	rec := dbmodels.Competency{
		CompetencyType: request.CompetencyType,
		Name:           request.Name,
		Weightage:      request.Weightage,
		Description:    request.Description,
		Year:           request.Year,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("competency_name", rec.Name).
		WithField("rec_id", id).
		Info("создана компетенция")
	return id, nil
}

func (i impl) List(year int) (list []competencyapimodels.CompetencyView, err error) {
	recList, err := i.store.List(year)
	if err != nil {
		return nil, err
	}
	list = make([]competencyapimodels.CompetencyView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, competencyapimodels.CompetencyConvert(rec))
	}
	return list, nil
}

func (i impl) Update(id string, request competencyapimodels.CompetencyData) error {
	updMap := map[string]interface{}{
		"competency_type": request.CompetencyType,
		"name":            request.Name,
		"weightage":       request.Weightage,
		"description":     request.Description,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("обновлена компетенция")
	return nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("удалена компетенция")
	return nil
}

// UpdateRating — оценка компетенции руководителем или администратором
// через общий движок оценок.
func (i impl) UpdateRating(actor models.Actor, request apimodels.RatingUpdateRequest) (rating.Record, error) {
	targetUser, err := i.usersStore.GetByID(request.UserID)
	if err != nil {
		return rating.Record{}, err
	}
	if targetUser == nil {
		return rating.Record{}, ErrUserNotFound
	}
	allowed, err := i.accessPolicy.CanActOn(actor, targetUser.EmployeeNo)
	if err != nil {
		return rating.Record{}, err
	}
	if !allowed {
		return rating.Record{}, access.ErrAccessDenied
	}
	rec, err := i.engine.ApplyRating(actor, request.RecordID, request.UserID, request.ItemID, request.Year, request.Score)
	if err != nil {
		return rating.Record{}, err
	}
	log.
		WithField("user_id", request.UserID).
		WithField("rec_id", rec.ID).
		WithField("actor_role", actor.Role).
		Info("выставлена оценка компетенции")
	i.notify.Notify(request.UserID, "Ваша компетенция получила новую оценку")
	return rec, nil
}

// ImportFromFile пересоздаёт каталог компетенций из файла и раздаёт
// каждую компетенцию каждому активному пользователю. Удаление и
// вставка идут в одной транзакции.
func (i impl) ImportFromFile(body []byte, year int) (competencyapimodels.ImportResult, error) {
	f, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		return competencyapimodels.ImportResult{}, errors.Wrap(err, "не удалось открыть файл компетенций")
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return competencyapimodels.ImportResult{}, errors.Wrap(err, "не удалось прочитать лист компетенций")
	}

	competencies := parseCompetencyRows(rows, year)
	if len(competencies) == 0 {
		return competencyapimodels.ImportResult{}, errors.New("в файле нет строк с компетенциями")
	}

	users, err := i.usersStore.ListActive()
	if err != nil {
		return competencyapimodels.ImportResult{}, err
	}
	userIDs := make([]string, 0, len(users))
	for _, user := range users {
		userIDs = append(userIDs, user.ID)
	}
	batches := fanOutUserCompetencies(userIDs, competencies, year)

	fanoutAdded := 0
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&dbmodels.UserCompetency{}).
			Error
		if err != nil {
			return errors.Wrap(err, "ошибка удаления прежних оценок компетенций")
		}
		err = tx.
			Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&dbmodels.Competency{}).
			Error
		if err != nil {
			return errors.Wrap(err, "ошибка удаления прежнего каталога компетенций")
		}
		err = tx.
			Create(&competencies).
			Error
		if err != nil {
			return errors.Wrap(err, "ошибка вставки каталога компетенций")
		}
		for _, batch := range batches {
			rows := batch
			err = tx.
				Create(&rows).
				Error
			if err != nil {
				return errors.Wrap(err, "ошибка раздачи компетенций пользователям")
			}
			fanoutAdded += len(rows)
		}
		return nil
	})
	if err != nil {
		return competencyapimodels.ImportResult{}, err
	}

	log.
		WithField("competencies_added", len(competencies)).
		WithField("user_competencies_added", fanoutAdded).
		Info("каталог компетенций загружен")
	return competencyapimodels.ImportResult{
		CompetenciesAdded:     len(competencies),
		UserCompetenciesAdded: fanoutAdded,
	}, nil
}
