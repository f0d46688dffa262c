package feedback

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"skill-tracker-backend/db"
	feedbackquestionstore "skill-tracker-backend/lib/feedback/question/store"
	feedbackresponsestore "skill-tracker-backend/lib/feedback/response-store"
	feedbackreviewerstore "skill-tracker-backend/lib/feedback/reviewer-store"
	feedbackstore "skill-tracker-backend/lib/feedback/store"
	"skill-tracker-backend/lib/notification"
	usersstore "skill-tracker-backend/lib/users/store"
	initchecker "skill-tracker-backend/lib/utils/init-checker"
	"skill-tracker-backend/models"
	feedbackapimodels "skill-tracker-backend/models/api/feedback"
	dbmodels "skill-tracker-backend/models/db"
)

var (
	ErrQuestionNotFound   = errors.New("вопрос не найден")
	ErrAssignmentNotFound = errors.New("назначение рецензента не найдено")
	ErrNotAssignmentOwner = errors.New("назначение принадлежит другому рецензенту")
)

// clearTimeout — расширенный таймаут транзакции очистки:
// каскад затрагивает три таблицы разом.
const clearTimeout = 30 * time.Second

type Provider interface {
	CreateQuestion(request feedbackapimodels.QuestionData) (id string, err error)
	ListQuestions(formName string, year int) (list []feedbackapimodels.QuestionView, err error)
	UpdateQuestion(id string, request feedbackapimodels.QuestionData) error
	DeleteQuestion(id string) error
	ImportQuestionsFromFile(reader io.Reader, year int) (added int, err error)
	Initiate(targetUserID, formName string, year int) (created int, err error)
	AssignReviewers(request feedbackapimodels.AssignRequest) (result feedbackapimodels.AssignResult, err error)
	Clear(userID string, year int) error
	SubmitResponse(reviewerID string, request feedbackapimodels.ResponseSubmit) (id string, err error)
	ListAssigned(reviewerID string) (list []feedbackapimodels.AssignedFeedbackView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		questionStore: feedbackquestionstore.NewInstance(db.DB),
		feedbackStore: feedbackstore.NewInstance(db.DB),
		reviewerStore: feedbackreviewerstore.NewInstance(db.DB),
		responseStore: feedbackresponsestore.NewInstance(db.DB),
		usersStore:    usersstore.NewInstance(db.DB),
		notify:        notification.Instance,
	}
	initchecker.CheckInit(
		"questionStore", instance.questionStore,
		"feedbackStore", instance.feedbackStore,
		"reviewerStore", instance.reviewerStore,
		"responseStore", instance.responseStore,
		"usersStore", instance.usersStore,
		"notify", instance.notify,
	)
	Instance = instance
}

type impl struct {
	questionStore feedbackquestionstore.Provider
	feedbackStore feedbackstore.Provider
	reviewerStore feedbackreviewerstore.Provider
	responseStore feedbackresponsestore.Provider
	usersStore    usersstore.Provider
	notify        notification.Provider
}

// CreateQuestion создаёт вопрос, добавленный администратором вручную.
// Такие вопросы всегда помечаются original = false.
func (i impl) CreateQuestion(request feedbackapimodels.QuestionData) (id string, err error) {
	err = request.Validate()
	if err != nil {
		return "", err
	}
	number, err := i.questionStore.NextQuestionNumber(request.FormName, request.Year)
	if err != nil {
		return "", err
	}
	rec := dbmodels.FeedbackQuestion{
		FormName:       request.FormName,
		QuestionNumber: number,
		QuestionText:   request.QuestionText,
		QuestionType:   request.QuestionType,
		Year:           request.Year,
		Original:       false,
	}
	applyChoices(&rec, request.Choices)
	id, err = i.questionStore.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("rec_id", id).
		WithField("form_name", request.FormName).
		Info("создан вопрос обратной связи")
	return id, nil
}

func (i impl) ListQuestions(formName string, year int) ([]feedbackapimodels.QuestionView, error) {
	recs, err := i.questionStore.List(formName, year)
	if err != nil {
		return nil, err
	}
	list := make([]feedbackapimodels.QuestionView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, feedbackapimodels.QuestionConvert(rec))
	}
	return list, nil
}

func (i impl) UpdateQuestion(id string, request feedbackapimodels.QuestionData) error {
	err := request.Validate()
	if err != nil {
		return err
	}
	rec, err := i.questionStore.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrQuestionNotFound
	}
	updMap := map[string]interface{}{
		"question_text": request.QuestionText,
		"question_type": request.QuestionType,
	}
	choices := make([]string, 4)
	copy(choices, request.Choices)
	updMap["choice1"] = choices[0]
	updMap["choice2"] = choices[1]
	updMap["choice3"] = choices[2]
	updMap["choice4"] = choices[3]
	err = i.questionStore.Update(id, updMap)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("обновлён вопрос обратной связи")
	return nil
}

func (i impl) DeleteQuestion(id string) error {
	rec, err := i.questionStore.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrQuestionNotFound
	}
	err = i.questionStore.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("удалён вопрос обратной связи")
	return nil
}

// ImportQuestionsFromFile заменяет вопросы ровно одного года:
// вопросы других лет импорт не трогает.
func (i impl) ImportQuestionsFromFile(reader io.Reader, year int) (added int, err error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return 0, errors.Wrap(err, "ошибка открытия файла")
	}
	defer func() {
		closeErr := file.Close()
		if closeErr != nil {
			log.WithError(closeErr).Warn("ошибка закрытия файла импорта")
		}
	}()
	rows, err := readQuestionSheet(file)
	if err != nil {
		return 0, err
	}
	recs, err := parseQuestionRows(rows, year)
	if err != nil {
		return 0, err
	}
	err = i.questionStore.ReplaceYear(year, recs)
	if err != nil {
		return 0, err
	}
	log.
		WithField("year", year).
		WithField("count", len(recs)).
		Info("импортированы вопросы обратной связи")
	return len(recs), nil
}

// Initiate создаёт записи обратной связи по каждому вопросу формы.
// Уже существующие пары (пользователь, вопрос) пропускаются.
func (i impl) Initiate(targetUserID, formName string, year int) (created int, err error) {
	questions, err := i.questionStore.List(formName, year)
	if err != nil {
		return 0, err
	}
	if len(questions) == 0 {
		return 0, ErrQuestionNotFound
	}
	existing, err := i.feedbackStore.ListByUser(targetUserID, year)
	if err != nil {
		return 0, err
	}
	existingQuestions := make(map[string]struct{}, len(existing))
	for _, rec := range existing {
		existingQuestions[rec.QuestionID] = struct{}{}
	}
	recs := make([]dbmodels.UserFeedback, 0, len(questions))
	for _, question := range questions {
		if _, exist := existingQuestions[question.ID]; exist {
			continue
		}
		recs = append(recs, dbmodels.UserFeedback{
			UserID:     targetUserID,
			QuestionID: question.ID,
			Year:       year,
			Status:     models.FeedbackActiveStatus,
		})
	}
	err = i.feedbackStore.CreateBatch(recs)
	if err != nil {
		return 0, err
	}
	log.
		WithField("user_id", targetUserID).
		WithField("form_name", formName).
		WithField("count", len(recs)).
		Info("инициирован сбор обратной связи")
	return len(recs), nil
}

// AssignReviewers назначает рецензентов на все записи обратной связи
// пары (пользователь, год). Повторное назначение идемпотентно:
// существующие пары пропускаются по ключу feedbackID_reviewerID.
func (i impl) AssignReviewers(request feedbackapimodels.AssignRequest) (feedbackapimodels.AssignResult, error) {
	err := request.Validate()
	if err != nil {
		return feedbackapimodels.AssignResult{}, err
	}
	feedbacks, err := i.feedbackStore.ListByUser(request.UserID, request.Year)
	if err != nil {
		return feedbackapimodels.AssignResult{}, err
	}
	if len(feedbacks) == 0 {
		return feedbackapimodels.AssignResult{}, errors.New("для пользователя не инициирована обратная связь")
	}
	feedbackIDs := make([]string, 0, len(feedbacks))
	for _, rec := range feedbacks {
		feedbackIDs = append(feedbackIDs, rec.ID)
	}
	assigned, err := i.reviewerStore.ListByFeedbackIDs(feedbackIDs)
	if err != nil {
		return feedbackapimodels.AssignResult{}, err
	}
	existingSet := make(map[string]struct{}, len(assigned))
	for _, rec := range assigned {
		existingSet[assignKey(rec.FeedbackID, rec.ReviewerID)] = struct{}{}
	}

	names, err := i.resolveReviewerNames(request.Reviewers)
	if err != nil {
		return feedbackapimodels.AssignResult{}, err
	}

	recs := make([]dbmodels.FeedbackReviewer, 0, len(feedbacks)*len(request.Reviewers))
	for _, feedbackRec := range feedbacks {
		for _, reviewer := range request.Reviewers {
			if _, exist := existingSet[assignKey(feedbackRec.ID, reviewer.ID)]; exist {
				continue
			}
			recs = append(recs, dbmodels.FeedbackReviewer{
				FeedbackID:   feedbackRec.ID,
				ReviewerID:   reviewer.ID,
				ReviewerName: names[reviewer.ID],
				Status:       models.ReviewerPendingStatus,
			})
		}
	}
	err = i.reviewerStore.CreateBatch(recs)
	if err != nil {
		return feedbackapimodels.AssignResult{}, err
	}
	log.
		WithField("user_id", request.UserID).
		WithField("year", request.Year).
		WithField("created", len(recs)).
		Info("назначены рецензенты обратной связи")
	// уведомляются только рецензенты с новыми назначениями,
	// повторный вызов не рассылает письма заново
	notified := make(map[string]struct{}, len(request.Reviewers))
	for _, rec := range recs {
		if _, done := notified[rec.ReviewerID]; done {
			continue
		}
		notified[rec.ReviewerID] = struct{}{}
		i.notify.NotifyWithEmail(rec.ReviewerID,
			"Назначение рецензентом",
			fmt.Sprintf("Вам назначена проверка обратной связи за %v год", request.Year))
	}
	return feedbackapimodels.AssignResult{Created: len(recs)}, nil
}

// resolveReviewerNames — одним запросом добирает имена рецензентов,
// не переданные вызывающей стороной.
func (i impl) resolveReviewerNames(reviewers []feedbackapimodels.ReviewerRef) (map[string]string, error) {
	names := make(map[string]string, len(reviewers))
	missing := make([]string, 0, len(reviewers))
	for _, reviewer := range reviewers {
		if reviewer.Name != "" {
			names[reviewer.ID] = reviewer.Name
			continue
		}
		missing = append(missing, reviewer.ID)
	}
	if len(missing) == 0 {
		return names, nil
	}
	found, err := i.usersStore.GetNamesByIDs(missing)
	if err != nil {
		return nil, err
	}
	for id, name := range found {
		names[id] = name
	}
	return names, nil
}

// Clear удаляет обратную связь пары (пользователь, год) одной
// транзакцией в порядке ответы -> назначения -> записи.
func (i impl) Clear(userID string, year int) error {
	feedbacks, err := i.feedbackStore.ListByUser(userID, year)
	if err != nil {
		return err
	}
	if len(feedbacks) == 0 {
		return nil
	}
	feedbackIDs := make([]string, 0, len(feedbacks))
	for _, rec := range feedbacks {
		feedbackIDs = append(feedbackIDs, rec.ID)
	}
	assigned, err := i.reviewerStore.ListByFeedbackIDs(feedbackIDs)
	if err != nil {
		return err
	}
	reviewerRecIDs := make([]string, 0, len(assigned))
	for _, rec := range assigned {
		reviewerRecIDs = append(reviewerRecIDs, rec.ID)
	}

	ctx, cancel := context.WithTimeout(context.Background(), clearTimeout)
	defer cancel()
	err = db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := i.responseStore.DeleteByReviewerRecIDs(tx, reviewerRecIDs)
		if err != nil {
			return errors.Wrap(err, "ошибка удаления ответов")
		}
		err = i.reviewerStore.DeleteByFeedbackIDs(tx, feedbackIDs)
		if err != nil {
			return errors.Wrap(err, "ошибка удаления назначений")
		}
		err = i.feedbackStore.DeleteByUserAndYear(tx, userID, year)
		if err != nil {
			return errors.Wrap(err, "ошибка удаления записей обратной связи")
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.
		WithField("user_id", userID).
		WithField("year", year).
		Info("очищена обратная связь")
	return nil
}

func (i impl) SubmitResponse(reviewerID string, request feedbackapimodels.ResponseSubmit) (id string, err error) {
	err = request.Validate()
	if err != nil {
		return "", err
	}
	assignment, err := i.reviewerStore.GetByID(request.ReviewerRecID)
	if err != nil {
		return "", err
	}
	if assignment == nil {
		return "", ErrAssignmentNotFound
	}
	if assignment.ReviewerID != reviewerID {
		return "", ErrNotAssignmentOwner
	}
	id, err = i.responseStore.Create(dbmodels.FeedbackResponse{
		ReviewerRecID: request.ReviewerRecID,
		Answer:        request.Answer,
	})
	if err != nil {
		return "", err
	}
	err = i.reviewerStore.UpdateStatus(assignment.ID, string(models.ReviewerCompletedStatus))
	if err != nil {
		return "", err
	}
	log.
		WithField("reviewer_rec_id", request.ReviewerRecID).
		WithField("rec_id", id).
		Info("получен ответ рецензента")
	return id, nil
}

func (i impl) ListAssigned(reviewerID string) ([]feedbackapimodels.AssignedFeedbackView, error) {
	assigned, err := i.reviewerStore.ListByReviewer(reviewerID)
	if err != nil {
		return nil, err
	}
	list := make([]feedbackapimodels.AssignedFeedbackView, 0, len(assigned))
	for _, assignment := range assigned {
		feedbackRec, err := i.feedbackStore.GetByID(assignment.FeedbackID)
		if err != nil {
			return nil, err
		}
		if feedbackRec == nil {
			continue
		}
		question, err := i.questionStore.GetByID(feedbackRec.QuestionID)
		if err != nil {
			return nil, err
		}
		if question == nil {
			continue
		}
		list = append(list, feedbackapimodels.AssignedFeedbackView{
			ReviewerRecID: assignment.ID,
			Status:        assignment.Status,
			Question:      feedbackapimodels.QuestionConvert(*question),
			TargetUserID:  feedbackRec.UserID,
			Year:          feedbackRec.Year,
		})
	}
	return list, nil
}

func applyChoices(rec *dbmodels.FeedbackQuestion, choices []string) {
	padded := make([]string, 4)
	copy(padded, choices)
	rec.Choice1 = padded[0]
	rec.Choice2 = padded[1]
	rec.Choice3 = padded[2]
	rec.Choice4 = padded[3]
}

func assignKey(feedbackID, reviewerID string) string {
	return feedbackID + "_" + reviewerID
}
