package apiv1

import (
	"ai-interview-backend/controllers"
	interviewhandler "ai-interview-backend/lib/interview"
	"ai-interview-backend/middleware"
	apimodels "ai-interview-backend/models/api"
	interviewapimodels "ai-interview-backend/models/api/interview"

	"github.com/gofiber/fiber/v2"
)

type interviewApiController struct {
	controllers.BaseAPIController
}

func InitInterviewApiRouters(app *fiber.App) {
	controller := interviewApiController{}
	app.Route("interview", func(interviewRootRoute fiber.Router) {
		interviewRootRoute.Use(middleware.AuthorizationRequired())
		interviewRootRoute.Post("", controller.Create)
		interviewRootRoute.Get("list", controller.List)
		interviewRootRoute.Get(":mockId", controller.Get)
		interviewRootRoute.Get(":mockId/questions", controller.GetQuestions)
	})
}

// @Summary Создать интервью
// @Tags Интервью
// @Description Сгенерировать вопросы по описанию вакансии и создать интервью
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		interviewapimodels.CreateInterviewRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview [post]
func (c *interviewApiController) Create(ctx *fiber.Ctx) error {
	var payload interviewapimodels.CreateInterviewRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userEmail := middleware.GetUserEmail(ctx)
	view, err := interviewhandler.Instance.Create(userEmail, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(view))
}

// @Summary Список интервью
// @Tags Интервью
// @Description Список интервью, созданных пользователем
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.InterviewView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/list [get]
func (c *interviewApiController) List(ctx *fiber.Ctx) error {
	userEmail := middleware.GetUserEmail(ctx)
	list, err := interviewhandler.Instance.List(userEmail)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Получить интервью
// @Tags Интервью
// @Description Данные интервью по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   mockId				path		string	true	"Идентификатор интервью"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.InterviewView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{mockId} [get]
func (c *interviewApiController) Get(ctx *fiber.Ctx) error {
	mockID := ctx.Params("mockId")
	view, err := interviewhandler.Instance.GetByMockID(mockID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("интервью не найдено"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Вопросы интервью
// @Tags Интервью
// @Description Список вопросов с эталонными ответами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   mockId				path		string	true	"Идентификатор интервью"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.QuestionAnswer}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{mockId}/questions [get]
func (c *interviewApiController) GetQuestions(ctx *fiber.Ctx) error {
	mockID := ctx.Params("mockId")
	list, err := interviewhandler.Instance.GetQuestions(mockID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
