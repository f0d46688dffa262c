package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"skill-tracker-backend/controllers"
	"skill-tracker-backend/lib/users"
	"skill-tracker-backend/middleware"
	apimodels "skill-tracker-backend/models/api"
	userapimodels "skill-tracker-backend/models/api/user"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Post("", middleware.AdminRequired(), controller.create)
		router.Post("list", controller.list)
		router.Get(":id", controller.get)
		router.Put(":id", middleware.AdminRequired(), controller.update)
		router.Delete(":id", middleware.AdminRequired(), controller.block)
	})
}

// @Summary Создание пользователя
// @Tags Пользователи
// @Description Создание учётной записи сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		userapimodels.UserData	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users [post]
func (c *userApiController) create(ctx *fiber.Ctx) error {
	var payload userapimodels.UserData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := users.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список пользователей
// @Tags Пользователи
// @Description Постраничный список пользователей с поиском
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		userListRequest	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/list [post]
func (c *userApiController) list(ctx *fiber.Ctx) error {
	var payload userListRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := users.Instance.List(payload.Search, payload.Pagination)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка пользователей")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Пользователь
// @Tags Пользователи
// @Description Учётная запись по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"ID пользователя"
// @Success 200 {object} userapimodels.UserView
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [get]
func (c *userApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := users.Instance.GetByID(id)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Обновление пользователя
// @Tags Пользователи
// @Description Обновление полей учётной записи
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"ID пользователя"
// @Param	body				body		map[string]interface{}	true	"изменяемые поля"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [put]
func (c *userApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	updMap := map[string]interface{}{}
	if err := c.BodyParser(ctx, &updMap); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = users.Instance.Update(id, updMap)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Блокировка пользователя
// @Tags Пользователи
// @Description Деактивация учётной записи
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"ID пользователя"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [delete]
func (c *userApiController) block(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = users.Instance.Block(id)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка блокировки пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

type userListRequest struct {
	Search     string               `json:"search,omitempty"`
	Pagination apimodels.Pagination `json:"pagination"`
}
