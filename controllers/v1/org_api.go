package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"skill-tracker-backend/controllers"
	"skill-tracker-backend/lib/access"
	orgchart "skill-tracker-backend/lib/org-chart"
	"skill-tracker-backend/lib/utils/helpers"
	"skill-tracker-backend/middleware"
	apimodels "skill-tracker-backend/models/api"
	orgapimodels "skill-tracker-backend/models/api/org"
)

type orgApiController struct {
	controllers.BaseAPIController
}

func InitOrgApiRouters(app *fiber.App) {
	controller := orgApiController{}
	app.Post("org-chart-upload", middleware.AdminRequired(), controller.upload)
	app.Get("org-chart", controller.tree)
	app.Get("org-chart/list", controller.list)
	app.Get("check-manager-access", controller.checkAccess)
}

// @Summary Загрузка оргструктуры
// @Tags Оргструктура
// @Description Полная замена оргструктуры из Excel файла
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file				formData	file 	true 	"файл xlsx"
// @Success 200 {object} orgapimodels.UploadResult
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org-chart-upload [post]
func (c *orgApiController) upload(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if !helpers.IsXlsxFile(file.Filename) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("поддерживаются только файлы xlsx"))
	}
	buffer, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := orgchart.Instance.ImportFromFile(file.Filename, fileBody)
	if err != nil {
		if errors.Is(err, orgchart.ErrEmptyFile) || errors.Is(err, orgchart.ErrNoRoot) || errors.Is(err, orgchart.ErrMultipleRoots) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки оргструктуры")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Дерево оргструктуры
// @Tags Оргструктура
// @Description Дерево подчинения от корня
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} orgapimodels.OrgChartNode
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org-chart [get]
func (c *orgApiController) tree(ctx *fiber.Ctx) error {
	root, err := orgchart.Instance.GetTree()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка построения оргструктуры")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(root))
}

// @Summary Записи оргструктуры
// @Tags Оргструктура
// @Description Плоский список записей оргструктуры
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} orgapimodels.OrgEntryView
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org-chart/list [get]
func (c *orgApiController) list(ctx *fiber.Ctx) error {
	list, err := orgchart.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения оргструктуры")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Проверка прямого подчинения
// @Tags Оргструктура
// @Description Является ли руководитель прямым руководителем сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	managerId			query		string	true	"ID руководителя"
// @Param	subordinateId		query		string	true	"ID сотрудника"
// @Success 200 {object} orgapimodels.CheckAccessResponse
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/check-manager-access [get]
func (c *orgApiController) checkAccess(ctx *fiber.Ctx) error {
	managerID := ctx.Query("managerId", "")
	subordinateID := ctx.Query("subordinateId", "")
	if managerID == "" || subordinateID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указаны участники проверки"))
	}
	allowed, err := access.Instance.CheckManagerAccess(managerID, subordinateID)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrUserNotFound) ||
			errors.Is(err, access.ErrManagerOrgInfoNotFound) ||
			errors.Is(err, access.ErrEmployeeOrgInfoNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		case errors.Is(err, access.ErrRoleForbidden):
			return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(orgapimodels.CheckAccessResponse{HasAccess: false}))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка проверки подчинения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(orgapimodels.CheckAccessResponse{HasAccess: allowed}))
}
