package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"skill-tracker-backend/controllers"
	importjob "skill-tracker-backend/lib/import-job"
	"skill-tracker-backend/lib/utils/helpers"
	"skill-tracker-backend/middleware"
	"skill-tracker-backend/models"
	apimodels "skill-tracker-backend/models/api"
)

type importApiController struct {
	controllers.BaseAPIController
}

func InitImportApiRouters(app *fiber.App) {
	controller := importApiController{}
	app.Route("upload-excel", func(router fiber.Router) {
		router.Post("", middleware.AdminRequired(), controller.upload)
		router.Get("job-status", controller.jobStatus)
	})
}

// @Summary Загрузка Excel
// @Tags Импорт
// @Description Постановка фоновой задачи импорта компетенций или вопросов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file				formData	file 	true 	"файл xlsx"
// @Param	kind				query		string	true	"вид импорта: COMPETENCY или FEEDBACK_QUESTION"
// @Param	year				query		int		true	"год"
// @Success 200 {object} importjobapimodels.JobView
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/upload-excel [post]
func (c *importApiController) upload(ctx *fiber.Ctx) error {
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
	kind := models.ImportKind(ctx.Query("kind", string(models.ImportKindCompetency)))
	year := ctx.QueryInt("year", 0)
	view, err := importjob.Instance.Enqueue(kind, year, file.Filename, fileBody)
	if err != nil {
		if errors.Is(err, importjob.ErrUnknownKind) || errors.Is(err, importjob.ErrYearNotProvided) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка постановки задачи импорта")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Статус задачи импорта
// @Tags Импорт
// @Description Статус фоновой задачи импорта
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	jobId				query		string	true	"ID задачи"
// @Success 200 {object} importjobapimodels.JobView
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/upload-excel/job-status [get]
func (c *importApiController) jobStatus(ctx *fiber.Ctx) error {
	jobID := ctx.Query("jobId", "")
	if jobID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор задачи"))
	}
	view, err := importjob.Instance.GetStatus(jobID)
	if err != nil {
		if errors.Is(err, importjob.ErrJobNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения статуса задачи")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
