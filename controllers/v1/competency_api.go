package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"skill-tracker-backend/controllers"
	"skill-tracker-backend/lib/access"
	"skill-tracker-backend/lib/competency"
	"skill-tracker-backend/lib/rating"
	"skill-tracker-backend/middleware"
	apimodels "skill-tracker-backend/models/api"
	competencyapimodels "skill-tracker-backend/models/api/competency"
)

type competencyApiController struct {
	controllers.BaseAPIController
}

func InitCompetencyApiRouters(app *fiber.App) {
	controller := competencyApiController{}
	app.Route("competencies", func(router fiber.Router) {
		router.Post("", middleware.AdminRequired(), controller.create)
		router.Get("", controller.list)
		router.Put(":id", middleware.AdminRequired(), controller.update)
		router.Delete(":id", middleware.AdminRequired(), controller.delete)
	})
	app.Put("update-competency-rating", controller.updateRating)
}

// @Summary Создание компетенции
// @Tags Компетенции
// @Description Создание компетенции в каталоге
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		competencyapimodels.CompetencyData	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/competencies [post]
func (c *competencyApiController) create(ctx *fiber.Ctx) error {
	var payload competencyapimodels.CompetencyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := competency.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания компетенции")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Каталог компетенций
// @Tags Компетенции
// @Description Каталог компетенций за год
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	year				query		int		false	"год"
// @Success 200 {array} competencyapimodels.CompetencyView
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/competencies [get]
func (c *competencyApiController) list(ctx *fiber.Ctx) error {
	list, err := competency.Instance.List(ctx.QueryInt("year", 0))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения каталога компетенций")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Обновление компетенции
// @Tags Компетенции
// @Description Обновление компетенции в каталоге
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"ID компетенции"
// @Param	body				body		competencyapimodels.CompetencyData	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/competencies/{id} [put]
func (c *competencyApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload competencyapimodels.CompetencyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = competency.Instance.Update(id, payload)
	if err != nil {
		if errors.Is(err, rating.ErrItemNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления компетенции")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление компетенции
// @Tags Компетенции
// @Description Удаление компетенции из каталога
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"ID компетенции"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/competencies/{id} [delete]
func (c *competencyApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = competency.Instance.Delete(id)
	if err != nil {
		if errors.Is(err, rating.ErrItemNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления компетенции")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Оценка компетенции
// @Tags Компетенции
// @Description Оценка компетенции руководителем или администратором
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		apimodels.RatingUpdateRequest	true	"request body"
// @Success 200 {object} apimodels.RatingRecordView
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/update-competency-rating [put]
func (c *competencyApiController) updateRating(ctx *fiber.Ctx) error {
	var payload apimodels.RatingUpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := competency.Instance.UpdateRating(middleware.GetActor(ctx), payload)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrAccessDenied) || errors.Is(err, access.ErrRoleForbidden) || errors.Is(err, rating.ErrRoleNotAllowed):
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
		case errors.Is(err, rating.ErrItemNotFound) || errors.Is(err, rating.ErrRecordNotFound) ||
			errors.Is(err, competency.ErrUserNotFound) ||
			errors.Is(err, access.ErrManagerOrgInfoNotFound) || errors.Is(err, access.ErrEmployeeOrgInfoNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		case errors.Is(err, rating.ErrInvalidScore) || errors.Is(err, rating.ErrYearMismatch):
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка оценки компетенции")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(ratingRecordView(rec)))
}
