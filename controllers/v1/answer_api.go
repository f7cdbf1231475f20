package apiv1

import (
	"ai-interview-backend/controllers"
	answerhandler "ai-interview-backend/lib/answer"
	"ai-interview-backend/middleware"
	apimodels "ai-interview-backend/models/api"
	interviewapimodels "ai-interview-backend/models/api/interview"

	"github.com/gofiber/fiber/v2"
)

type answerApiController struct {
	controllers.BaseAPIController
}

func InitAnswerApiRouters(app *fiber.App) {
	controller := answerApiController{}
	app.Route("interview/:mockId/answer", func(answerRootRoute fiber.Router) {
		answerRootRoute.Use(middleware.AuthorizationRequired())
		answerRootRoute.Post("", controller.ScoreAndSave)
	})
}

// @Summary Оценить и сохранить ответ
// @Tags Ответы
// @Description Отправить расшифровку ответа на оценку и сохранить результат
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   mockId				path		string	true	"Идентификатор интервью"
// @Param	body				body		interviewapimodels.SaveAnswerRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=interviewapimodels.AnswerView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{mockId}/answer [post]
func (c *answerApiController) ScoreAndSave(ctx *fiber.Ctx) error {
	var payload interviewapimodels.SaveAnswerRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	mockID := ctx.Params("mockId")
	userEmail := middleware.GetUserEmail(ctx)
	view, err := answerhandler.Instance.ScoreAndSave(mockID, userEmail, payload.QuestionIndex, payload.UserAns)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(view))
}
