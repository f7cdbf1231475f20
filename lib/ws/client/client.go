package wsclient

import (
	"context"
	"encoding/json"

	answerhandler "ai-interview-backend/lib/answer"
	"ai-interview-backend/lib/recording"
	interviewapimodels "ai-interview-backend/models/api/interview"
	wsmodels "ai-interview-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

func NewClient(mockID, userEmail string, pairs []interviewapimodels.QuestionAnswer, c *websocket.Conn) *WsClient {
	client := &WsClient{
		conn:   c,
		mockID: mockID,
	}
	sink := func(msg wsmodels.ServerMessage) {
		if err := c.WriteJSON(msg); err != nil {
			log.
				WithField("mock_id", mockID).
				WithError(err).
				Error("ошибка отправки сообщения сессии записи")
		}
	}
	client.sess = recording.NewSession(mockID, userEmail, pairs, answerhandler.Instance, sink)
	return client
}

type WsClient struct {
	conn   *websocket.Conn
	mockID string
	sess   *recording.Session
}

var closeCodes []int

func init() {
	for i := websocket.CloseNormalClosure; i <= websocket.CloseTLSHandshake; i++ {
		closeCodes = append(closeCodes, i)
	}
}

// Dispatch читает события клиента до закрытия соединения.
// Закрытие соединения отменяет контекст сессии, что эквивалентно остановке записи
func (c *WsClient) Dispatch() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.sess.Run(ctx)
	for {
		if c.conn == nil {
			return
		}
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, closeCodes...) {
				log.
					WithField("mock_id", c.mockID).
					WithError(err).
					Error("ошибка получения сообщения")
			}
			break
		}
		ev := wsmodels.ClientEvent{}
		if err := json.Unmarshal(data, &ev); err != nil {
			log.
				WithField("mock_id", c.mockID).
				WithField("ws_message", string(data)).
				WithError(err).
				Warn("не удалось разобрать событие клиента")
			continue
		}
		c.sess.Post(ev)
	}
}
