package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"skill-tracker-backend/controllers"
	"skill-tracker-backend/lib/notification"
	"skill-tracker-backend/middleware"
	apimodels "skill-tracker-backend/models/api"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notifications", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Put(":id/read", controller.markRead)
	})
}

// @Summary Уведомления
// @Tags Уведомления
// @Description Уведомления текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	onlyUnread			query		bool	false	"только непрочитанные"
// @Success 200 {array} notificationapimodels.NotificationView
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications [get]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	list, err := notification.Instance.List(middleware.GetUserID(ctx), ctx.QueryBool("onlyUnread", false))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Прочитано
// @Tags Уведомления
// @Description Пометка уведомления прочитанным
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"ID уведомления"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/{id}/read [put]
func (c *notificationApiController) markRead(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = notification.Instance.MarkRead(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка пометки уведомления")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
