package roadmap

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"skill-tracker-backend/config"
	"skill-tracker-backend/db"
	yagptclient "skill-tracker-backend/lib/gpt/yagpt-client"
	roadmapstore "skill-tracker-backend/lib/roadmap/store"
	initchecker "skill-tracker-backend/lib/utils/init-checker"
	wishliststore "skill-tracker-backend/lib/wishlist/store"
	"skill-tracker-backend/models"
	roadmapapimodels "skill-tracker-backend/models/api/roadmap"
	dbmodels "skill-tracker-backend/models/db"
)

var (
	ErrNotFound     = errors.New("этап развития не найден")
	ErrNoSkills     = errors.New("не указаны навыки для рекомендации")
	ErrGPTNotActive = errors.New("генерация рекомендаций не настроена")
)

const recommendationPromt = "Ты карьерный консультант. По списку навыков сотрудника предложи " +
	"короткий план развития на год: какие навыки углубить и какие освоить. Ответ — до 10 пунктов."

type Provider interface {
	Create(userID string, request roadmapapimodels.RoadmapData) (id string, err error)
	List(userID string) (list []roadmapapimodels.RoadmapView, err error)
	Update(userID, id string, request roadmapapimodels.RoadmapData) error
	Delete(userID, id string) error
	Recommend(userID string, request roadmapapimodels.RecommendationRequest) (response roadmapapimodels.RecommendationResponse, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:         roadmapstore.NewInstance(db.DB),
		wishlistStore: wishliststore.NewInstance(db.DB),
	}
	if config.Conf.YandexGPT.IAMToken != "" {
		instance.gpt = yagptclient.NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID)
	}
	initchecker.CheckInit(
		"store", instance.store,
		"wishlistStore", instance.wishlistStore,
	)
	Instance = instance
}

type impl struct {
	store         roadmapstore.Provider
	wishlistStore wishliststore.Provider
	gpt           yagptclient.Provider
}

func (i impl) Create(userID string, request roadmapapimodels.RoadmapData) (id string, err error) {
	err = request.Validate()
	if err != nil {
		return "", err
	}
	status := request.Status
	if status == "" {
		status = models.RoadmapPlannedStatus
	}
	id, err = i.store.Create(dbmodels.Roadmap{
		UserID:      userID,
		Title:       request.Title,
		Description: request.Description,
		Status:      status,
		TargetDate:  request.TargetDate,
	})
	if err != nil {
		return "", err
	}
	log.
		WithField("user_id", userID).
		WithField("rec_id", id).
		Info("создан этап развития")
	return id, nil
}

func (i impl) List(userID string) ([]roadmapapimodels.RoadmapView, error) {
	recs, err := i.store.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	list := make([]roadmapapimodels.RoadmapView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, roadmapapimodels.RoadmapConvert(rec))
	}
	return list, nil
}

func (i impl) Update(userID, id string, request roadmapapimodels.RoadmapData) error {
	err := request.Validate()
	if err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil || rec.UserID != userID {
		return ErrNotFound
	}
	updMap := map[string]interface{}{
		"title":       request.Title,
		"description": request.Description,
		"target_date": request.TargetDate,
	}
	if request.Status != "" {
		updMap["status"] = request.Status
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("обновлён этап развития")
	return nil
}

func (i impl) Delete(userID, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil || rec.UserID != userID {
		return ErrNotFound
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("удалён этап развития")
	return nil
}

// Recommend — рекомендация плана развития по навыкам сотрудника.
// Если навыки не переданы, берутся из вишлиста.
func (i impl) Recommend(userID string, request roadmapapimodels.RecommendationRequest) (roadmapapimodels.RecommendationResponse, error) {
	if i.gpt == nil {
		return roadmapapimodels.RecommendationResponse{}, ErrGPTNotActive
	}
	skills := request.Skills
	if len(skills) == 0 {
		wishes, err := i.wishlistStore.ListByUser(userID)
		if err != nil {
			return roadmapapimodels.RecommendationResponse{}, err
		}
		for _, wish := range wishes {
			skills = append(skills, wish.SkillName)
		}
	}
	if len(skills) == 0 {
		return roadmapapimodels.RecommendationResponse{}, ErrNoSkills
	}
	text, err := i.gpt.GenerateByPromtAndText(recommendationPromt, strings.Join(skills, ", "))
	if err != nil {
		log.WithError(err).Error("ошибка генерации рекомендации")
		return roadmapapimodels.RecommendationResponse{}, err
	}
	log.WithField("user_id", userID).Info("сгенерирована рекомендация развития")
	return roadmapapimodels.RecommendationResponse{Recommendation: text}, nil
}
