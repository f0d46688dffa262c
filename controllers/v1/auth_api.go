package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"skill-tracker-backend/controllers"
	"skill-tracker-backend/lib/auth"
	"skill-tracker-backend/middleware"
	apimodels "skill-tracker-backend/models/api"
	authapimodels "skill-tracker-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Post("refresh", controller.refresh)
	})
}

func InitProfileApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Get("me", controller.me)
}

// @Summary Вход по почте и паролю
// @Tags Авторизация
// @Description Вход по почте и паролю
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} authapimodels.JWTResponse
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	response, err := auth.Instance.Login(payload)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) || errors.Is(err, auth.ErrWrongPwd) || errors.Is(err, auth.ErrUserBlocked) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка входа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(response))
}

// @Summary Обновление пары токенов
// @Tags Авторизация
// @Description Обновление пары токенов по refresh token
// @Param	body				body		authapimodels.JWTRefreshRequest	true	"request body"
// @Success 200 {object} authapimodels.JWTResponse
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/refresh [post]
func (c *authApiController) refresh(ctx *fiber.Ctx) error {
	var payload authapimodels.JWTRefreshRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	response, err := auth.Instance.Refresh(payload)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(response))
}

// @Summary Профиль текущего пользователя
// @Tags Авторизация
// @Description Профиль текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} userapimodels.UserView
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	view, err := auth.Instance.Me(middleware.GetUserID(ctx))
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения профиля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
