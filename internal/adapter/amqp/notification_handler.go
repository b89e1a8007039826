package amqp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/demobistro/ordering/internal/adapter/logger"
	"github.com/demobistro/ordering/internal/interfaces"
)

type NotificationHandler struct {
	logger logger.Logger
}

func NewNotificationHandler(lgr logger.Logger) *NotificationHandler {
	return &NotificationHandler{logger: lgr}
}

func (h *NotificationHandler) HandleNotification(ctx context.Context, body []byte) error {
	var msg interfaces.StatusChangedMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		h.logger.Error("message_parse_failed", "Failed to parse notification", "", nil, err)
		return err
	}

	h.logger.Debug("notification_received", fmt.Sprintf("Received status update for order %d", msg.OrderID),
		"", map[string]interface{}{
			"order_id":   msg.OrderID,
			"new_status": msg.NewStatus,
		})

	fmt.Printf("Order %d: status changed from '%s' to '%s' by %s\n",
		msg.OrderID, msg.OldStatus, msg.NewStatus, msg.ChangedBy)

	return nil
}
