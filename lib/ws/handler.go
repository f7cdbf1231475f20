package ws

import (
	interviewhandler "ai-interview-backend/lib/interview"
	wsclient "ai-interview-backend/lib/ws/client"
	"ai-interview-backend/middleware"
	wsmodels "ai-interview-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func InitWs(app *fiber.App) {
	app.Use("/interview/:mockId", func(ctx *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(ctx) {
			return fiber.ErrUpgradeRequired
		}
		ctx.Locals("userEmail", middleware.GetUserEmail(ctx))
		return ctx.Next()
	})
	app.Get("/interview/:mockId", websocket.New(recordingHandler))
}

// @Summary Сессия записи ответов интервью
// @Tags Websocket Сессия записи
// @Description Клиент шлёт события start/fragment/stop/next, сервер ведёт машину состояний записи и отправляет state/tick/transcript/result
// @Param   token		query		string		true		"Authorization token"
// @Param   mockId		path		string		true		"Идентификатор интервью"
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 400
// @Failure 403
// @router /ws/interview/{mockId} [get]
func recordingHandler(c *websocket.Conn) {
	mockID := c.Params("mockId")
	userEmail := c.Locals("userEmail").(string)
	pairs, err := interviewhandler.Instance.GetQuestions(mockID)
	if err != nil {
		_ = c.WriteJSON(wsmodels.ServerMessage{
			Type:    wsmodels.MsgError,
			Message: err.Error(),
		})
		return
	}
	client := wsclient.NewClient(mockID, userEmail, pairs, c)
	client.Dispatch()
}
