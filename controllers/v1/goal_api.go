package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"skill-tracker-backend/controllers"
	"skill-tracker-backend/lib/access"
	"skill-tracker-backend/lib/goal"
	"skill-tracker-backend/lib/rating"
	"skill-tracker-backend/middleware"
	apimodels "skill-tracker-backend/models/api"
	goalapimodels "skill-tracker-backend/models/api/goal"
)

type goalApiController struct {
	controllers.BaseAPIController
}

func InitGoalApiRouters(app *fiber.App) {
	controller := goalApiController{}
	app.Route("goals", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get("", controller.list)
		router.Put("", controller.selfRate)
		router.Delete(":id", controller.delete)
	})
	app.Put("update-goal-rating", controller.updateRating)
}

// @Summary Создание цели
// @Tags Цели
// @Description Создание цели себе либо прямому подчинённому
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		goalapimodels.GoalData	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/goals [post]
func (c *goalApiController) create(ctx *fiber.Ctx) error {
	var payload goalapimodels.GoalData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := goal.Instance.Create(middleware.GetActor(ctx), payload)
	if err != nil {
		return c.sendGoalError(ctx, err, "Ошибка создания цели")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список целей
// @Tags Цели
// @Description Список целей пользователя с оценками за год
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	userId				query		string	false	"пользователь, пусто — свои цели"
// @Param	year				query		int		false	"год"
// @Success 200 {array} goalapimodels.GoalView
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/goals [get]
func (c *goalApiController) list(ctx *fiber.Ctx) error {
	request := goalapimodels.GoalListRequest{
		UserID: ctx.Query("userId", ""),
		Year:   ctx.QueryInt("year", 0),
	}
	list, err := goal.Instance.List(middleware.GetActor(ctx), request)
	if err != nil {
		return c.sendGoalError(ctx, err, "Ошибка получения списка целей")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Самооценка цели
// @Tags Цели
// @Description Выставление самооценки по собственной цели
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		goalapimodels.SelfRateRequest	true	"request body"
// @Success 200 {object} goalapimodels.GoalView
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/goals [put]
func (c *goalApiController) selfRate(ctx *fiber.Ctx) error {
	var payload goalapimodels.SelfRateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := goal.Instance.SelfRate(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.sendGoalError(ctx, err, "Ошибка самооценки цели")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Оценка цели
// @Tags Цели
// @Description Оценка цели руководителем или администратором
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		apimodels.RatingUpdateRequest	true	"request body"
// @Success 200 {object} apimodels.RatingRecordView
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/update-goal-rating [put]
func (c *goalApiController) updateRating(ctx *fiber.Ctx) error {
	var payload apimodels.RatingUpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := goal.Instance.UpdateRating(middleware.GetActor(ctx), payload)
	if err != nil {
		return c.sendGoalError(ctx, err, "Ошибка оценки цели")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(ratingRecordView(rec)))
}

// @Summary Удаление цели
// @Tags Цели
// @Description Удаление своей цели либо цели прямого подчинённого
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"ID цели"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/goals/{id} [delete]
func (c *goalApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = goal.Instance.Delete(middleware.GetActor(ctx), id)
	if err != nil {
		return c.sendGoalError(ctx, err, "Ошибка удаления цели")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *goalApiController) sendGoalError(ctx *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, access.ErrAccessDenied) || errors.Is(err, access.ErrRoleForbidden) || errors.Is(err, rating.ErrRoleNotAllowed):
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, rating.ErrItemNotFound) || errors.Is(err, rating.ErrRecordNotFound) ||
		errors.Is(err, goal.ErrUserNotFound) ||
		errors.Is(err, access.ErrManagerOrgInfoNotFound) || errors.Is(err, access.ErrEmployeeOrgInfoNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, rating.ErrInvalidScore) || errors.Is(err, rating.ErrYearMismatch):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.SendError(ctx, c.GetLogger(ctx), err, message)
}
