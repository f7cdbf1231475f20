package apiv1

import (
	"fmt"

	"ai-interview-backend/config"
	"ai-interview-backend/controllers"
	feedbackhandler "ai-interview-backend/lib/feedback"
	"ai-interview-backend/middleware"
	apimodels "ai-interview-backend/models/api"
	interviewapimodels "ai-interview-backend/models/api/interview"

	"github.com/gofiber/fiber/v2"
)

type feedbackApiController struct {
	controllers.BaseAPIController
}

func InitFeedbackApiRouters(app *fiber.App) {
	controller := feedbackApiController{}
	app.Route("interview/:mockId/feedback", func(feedbackRootRoute fiber.Router) {
		feedbackRootRoute.Use(middleware.AuthorizationRequired())
		feedbackRootRoute.Get("", controller.Get)
		feedbackRootRoute.Get("export/xlsx", controller.ExportXlsx)
		feedbackRootRoute.Get("export/pdf", controller.ExportPdf)
		feedbackRootRoute.Post("send", controller.Send)
	})
}

// @Summary Результаты интервью
// @Tags Результаты
// @Description Список оценённых ответов с общей оценкой
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   mockId				path		string	true	"Идентификатор интервью"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.FeedbackView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{mockId}/feedback [get]
func (c *feedbackApiController) Get(ctx *fiber.Ctx) error {
	mockID := ctx.Params("mockId")
	view, err := feedbackhandler.Instance.GetFeedback(mockID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Выгрузка результатов в xlsx
// @Tags Результаты
// @Description Выгрузить результаты интервью в xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   mockId				path		string	true	"Идентификатор интервью"
// @Success 200
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{mockId}/feedback/export/xlsx [get]
func (c *feedbackApiController) ExportXlsx(ctx *fiber.Ctx) error {
	mockID := ctx.Params("mockId")
	buf, err := feedbackhandler.Instance.ExportXlsx(mockID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="interview_%v.xlsx"`, mockID))
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Выгрузка результатов в pdf
// @Tags Результаты
// @Description Выгрузить результаты интервью в pdf
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   mockId				path		string	true	"Идентификатор интервью"
// @Success 200
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{mockId}/feedback/export/pdf [get]
func (c *feedbackApiController) ExportPdf(ctx *fiber.Ctx) error {
	mockID := ctx.Params("mockId")
	body, err := feedbackhandler.Instance.ExportPdf(mockID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="interview_%v.pdf"`, mockID))
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Отправить отчёт на почту
// @Tags Результаты
// @Description Отправить отчёт по интервью на указанный адрес
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   mockId				path		string	true	"Идентификатор интервью"
// @Param	body				body		interviewapimodels.SendFeedbackRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{mockId}/feedback/send [post]
func (c *feedbackApiController) Send(ctx *fiber.Ctx) error {
	var payload interviewapimodels.SendFeedbackRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	toEmail := payload.Email
	if toEmail == "" {
		toEmail = middleware.GetUserEmail(ctx)
	}
	mockID := ctx.Params("mockId")
	err := feedbackhandler.Instance.SendReport(config.Conf.Smtp.ReportFrom, toEmail, mockID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("отчёт отправлен"))
}
