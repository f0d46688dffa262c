package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"skill-tracker-backend/controllers"
	"skill-tracker-backend/lib/roadmap"
	"skill-tracker-backend/middleware"
	apimodels "skill-tracker-backend/models/api"
	roadmapapimodels "skill-tracker-backend/models/api/roadmap"
)

type roadmapApiController struct {
	controllers.BaseAPIController
}

func InitRoadmapApiRouters(app *fiber.App) {
	controller := roadmapApiController{}
	app.Route("roadmap", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get("", controller.list)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
		router.Post("recommendation", controller.recommend)
	})
}

// @Summary Этап развития
// @Tags План развития
// @Description Создание этапа плана развития
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		roadmapapimodels.RoadmapData	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roadmap [post]
func (c *roadmapApiController) create(ctx *fiber.Ctx) error {
	var payload roadmapapimodels.RoadmapData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := roadmap.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания этапа развития")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary План развития
// @Tags План развития
// @Description Этапы развития текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} roadmapapimodels.RoadmapView
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roadmap [get]
func (c *roadmapApiController) list(ctx *fiber.Ctx) error {
	list, err := roadmap.Instance.List(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения плана развития")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Обновление этапа
// @Tags План развития
// @Description Обновление этапа плана развития
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"ID этапа"
// @Param	body				body		roadmapapimodels.RoadmapData	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roadmap/{id} [put]
func (c *roadmapApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload roadmapapimodels.RoadmapData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = roadmap.Instance.Update(middleware.GetUserID(ctx), id, payload)
	if err != nil {
		if errors.Is(err, roadmap.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления этапа развития")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление этапа
// @Tags План развития
// @Description Удаление этапа плана развития
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"ID этапа"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roadmap/{id} [delete]
func (c *roadmapApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = roadmap.Instance.Delete(middleware.GetUserID(ctx), id)
	if err != nil {
		if errors.Is(err, roadmap.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления этапа развития")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Рекомендация развития
// @Tags План развития
// @Description Генерация рекомендации развития по навыкам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		roadmapapimodels.RecommendationRequest	true	"request body"
// @Success 200 {object} roadmapapimodels.RecommendationResponse
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roadmap/recommendation [post]
func (c *roadmapApiController) recommend(ctx *fiber.Ctx) error {
	var payload roadmapapimodels.RecommendationRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	response, err := roadmap.Instance.Recommend(middleware.GetUserID(ctx), payload)
	if err != nil {
		if errors.Is(err, roadmap.ErrNoSkills) || errors.Is(err, roadmap.ErrGPTNotActive) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка генерации рекомендации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(response))
}
