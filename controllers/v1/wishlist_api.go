package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"skill-tracker-backend/controllers"
	"skill-tracker-backend/lib/wishlist"
	"skill-tracker-backend/middleware"
	apimodels "skill-tracker-backend/models/api"
	wishlistapimodels "skill-tracker-backend/models/api/wishlist"
)

type wishlistApiController struct {
	controllers.BaseAPIController
}

func InitWishlistApiRouters(app *fiber.App) {
	controller := wishlistApiController{}
	app.Route("skill-wishlist", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get("", controller.list)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Навык в вишлист
// @Tags Вишлист навыков
// @Description Добавление желаемого навыка
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		wishlistapimodels.WishlistData	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/skill-wishlist [post]
func (c *wishlistApiController) create(ctx *fiber.Ctx) error {
	var payload wishlistapimodels.WishlistData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := wishlist.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления навыка")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Вишлист навыков
// @Tags Вишлист навыков
// @Description Желаемые навыки текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} wishlistapimodels.WishlistView
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/skill-wishlist [get]
func (c *wishlistApiController) list(ctx *fiber.Ctx) error {
	list, err := wishlist.Instance.List(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вишлиста")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Удаление из вишлиста
// @Tags Вишлист навыков
// @Description Удаление желаемого навыка
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"ID записи"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/skill-wishlist/{id} [delete]
func (c *wishlistApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = wishlist.Instance.Delete(middleware.GetUserID(ctx), id)
	if err != nil {
		if errors.Is(err, wishlist.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления навыка")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
