package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"skill-tracker-backend/controllers"
	"skill-tracker-backend/lib/feedback"
	"skill-tracker-backend/middleware"
	apimodels "skill-tracker-backend/models/api"
	feedbackapimodels "skill-tracker-backend/models/api/feedback"
)

type feedbackApiController struct {
	controllers.BaseAPIController
}

func InitFeedbackApiRouters(app *fiber.App) {
	controller := feedbackApiController{}
	app.Route("feedback-questions", func(router fiber.Router) {
		router.Post("", middleware.AdminRequired(), controller.createQuestion)
		router.Get("", controller.listQuestions)
		router.Put(":id", middleware.AdminRequired(), controller.updateQuestion)
		router.Delete(":id", middleware.AdminRequired(), controller.deleteQuestion)
	})
	app.Post("feedback-initiate", middleware.AdminRequired(), controller.initiate)
	app.Post("feedback-reviewers", middleware.AdminRequired(), controller.assignReviewers)
	app.Delete("user-feedback/clear", middleware.AdminRequired(), controller.clear)
	app.Post("feedback-responses", controller.submitResponse)
	app.Get("assigned-feedback", controller.listAssigned)
}

// @Summary Создание вопроса
// @Tags Обратная связь
// @Description Создание вопроса формы обратной связи
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		feedbackapimodels.QuestionData	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback-questions [post]
func (c *feedbackApiController) createQuestion(ctx *fiber.Ctx) error {
	var payload feedbackapimodels.QuestionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := feedback.Instance.CreateQuestion(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания вопроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список вопросов
// @Tags Обратная связь
// @Description Список вопросов формы за год
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	formName			query		string	false	"название формы"
// @Param	year				query		int		false	"год"
// @Success 200 {array} feedbackapimodels.QuestionView
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback-questions [get]
func (c *feedbackApiController) listQuestions(ctx *fiber.Ctx) error {
	list, err := feedback.Instance.ListQuestions(ctx.Query("formName", ""), ctx.QueryInt("year", 0))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вопросов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Обновление вопроса
// @Tags Обратная связь
// @Description Обновление вопроса формы обратной связи
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"ID вопроса"
// @Param	body				body		feedbackapimodels.QuestionData	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback-questions/{id} [put]
func (c *feedbackApiController) updateQuestion(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload feedbackapimodels.QuestionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = feedback.Instance.UpdateQuestion(id, payload)
	if err != nil {
		if errors.Is(err, feedback.ErrQuestionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления вопроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление вопроса
// @Tags Обратная связь
// @Description Удаление вопроса формы обратной связи
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"ID вопроса"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback-questions/{id} [delete]
func (c *feedbackApiController) deleteQuestion(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = feedback.Instance.DeleteQuestion(id)
	if err != nil {
		if errors.Is(err, feedback.ErrQuestionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления вопроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Инициация обратной связи
// @Tags Обратная связь
// @Description Создание записей обратной связи по каждому вопросу формы
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	userId				query		string	true	"оцениваемый сотрудник"
// @Param	formName			query		string	true	"название формы"
// @Param	year				query		int		true	"год"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback-initiate [post]
func (c *feedbackApiController) initiate(ctx *fiber.Ctx) error {
	userID := ctx.Query("userId", "")
	formName := ctx.Query("formName", "")
	year := ctx.QueryInt("year", 0)
	if userID == "" || formName == "" || year == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указаны параметры инициации"))
	}
	created, err := feedback.Instance.Initiate(userID, formName, year)
	if err != nil {
		if errors.Is(err, feedback.ErrQuestionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка инициации обратной связи")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(created))
}

// @Summary Назначение рецензентов
// @Tags Обратная связь
// @Description Назначение рецензентов на обратную связь пользователя за год
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		feedbackapimodels.AssignRequest	true	"request body"
// @Success 200 {object} feedbackapimodels.AssignResult
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback-reviewers [post]
func (c *feedbackApiController) assignReviewers(ctx *fiber.Ctx) error {
	var payload feedbackapimodels.AssignRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := feedback.Instance.AssignReviewers(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка назначения рецензентов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Очистка обратной связи
// @Tags Обратная связь
// @Description Удаление ответов, назначений и записей обратной связи за год
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	userId				query		string	true	"пользователь"
// @Param	year				query		int		true	"год"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/user-feedback/clear [delete]
func (c *feedbackApiController) clear(ctx *fiber.Ctx) error {
	userID := ctx.Query("userId", "")
	year := ctx.QueryInt("year", 0)
	if userID == "" || year == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указаны пользователь и год"))
	}
	err := feedback.Instance.Clear(userID, year)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка очистки обратной связи")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Ответ рецензента
// @Tags Обратная связь
// @Description Сохранение ответа рецензента по назначению
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		feedbackapimodels.ResponseSubmit	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback-responses [post]
func (c *feedbackApiController) submitResponse(ctx *fiber.Ctx) error {
	var payload feedbackapimodels.ResponseSubmit
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := feedback.Instance.SubmitResponse(middleware.GetUserID(ctx), payload)
	if err != nil {
		switch {
		case errors.Is(err, feedback.ErrAssignmentNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		case errors.Is(err, feedback.ErrNotAssignmentOwner):
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения ответа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Назначенная обратная связь
// @Tags Обратная связь
// @Description Список назначений текущего рецензента
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} feedbackapimodels.AssignedFeedbackView
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assigned-feedback [get]
func (c *feedbackApiController) listAssigned(ctx *fiber.Ctx) error {
	list, err := feedback.Instance.ListAssigned(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения назначений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
