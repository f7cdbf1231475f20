package apiv1

import (
	"ai-interview-backend/controllers"
	filestorage "ai-interview-backend/lib/file-storage"
	"ai-interview-backend/middleware"
	apimodels "ai-interview-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type recordingApiController struct {
	controllers.BaseAPIController
}

func InitRecordingApiRouters(app *fiber.App) {
	controller := recordingApiController{}
	app.Route("interview/:mockId/recording", func(recordingRootRoute fiber.Router) {
		recordingRootRoute.Use(middleware.AuthorizationRequired())
		recordingRootRoute.Post(":questionIndex", controller.Upload)
		recordingRootRoute.Get(":questionIndex", controller.Download)
	})
}

// @Summary Загрузить запись ответа
// @Tags Записи
// @Description Загрузить аудиозапись ответа на вопрос, тело запроса - сырой аудиофайл
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   mockId				path		string	true	"Идентификатор интервью"
// @Param   questionIndex		path		int		true	"Номер вопроса, начиная с 0"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{mockId}/recording/{questionIndex} [post]
func (c *recordingApiController) Upload(ctx *fiber.Ctx) error {
	mockID := ctx.Params("mockId")
	questionIndex, err := c.ParamInt(ctx, "questionIndex")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body := ctx.Body()
	if len(body) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("пустое тело запроса"))
	}
	fileName := ctx.Get("X-File-Name")
	contentType := ctx.Get(fiber.HeaderContentType)
	id, err := filestorage.Instance.SaveRecording(ctx.UserContext(), mockID, questionIndex, fileName, contentType, body)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary Скачать запись ответа
// @Tags Записи
// @Description Скачать последнюю загруженную аудиозапись ответа на вопрос
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   mockId				path		string	true	"Идентификатор интервью"
// @Param   questionIndex		path		int		true	"Номер вопроса, начиная с 0"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{mockId}/recording/{questionIndex} [get]
func (c *recordingApiController) Download(ctx *fiber.Ctx) error {
	mockID := ctx.Params("mockId")
	questionIndex, err := c.ParamInt(ctx, "questionIndex")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, rec, err := filestorage.Instance.GetRecording(ctx.UserContext(), mockID, questionIndex)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if rec == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("запись не найдена"))
	}
	ctx.Set(fiber.HeaderContentType, rec.ContentType)
	return ctx.Status(fiber.StatusOK).Send(body)
}
