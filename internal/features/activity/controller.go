package activity

import (
	"encoding/json"

	common_models "go-temple/internal/common/models"
	"go-temple/internal/features/auth"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

type ActivityController struct {
	Hub    *Hub
	Logger *zap.Logger
}

func NewActivityController(hub *Hub, logger *zap.Logger) *ActivityController {
	return &ActivityController{
		Hub:    hub,
		Logger: logger,
	}
}

// HandleFeed streams the caller's temple events to the socket until the
// client goes away.
func (h *ActivityController) HandleFeed(c *websocket.Conn) {
	claims, ok := c.Locals(common_models.ClaimsKey).(*auth.Claims)
	if !ok || claims == nil {
		c.Close()
		return
	}

	ch := h.Hub.Subscribe(claims.TempleID)
	defer h.Hub.Unsubscribe(ch)

	// Reader goroutine: client messages are ignored, but reading is what
	// surfaces the close frame.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				h.Logger.Error("marshal activity event", zap.Error(err))
				continue
			}
			if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		}
	}
}
