package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/dropmart/dropmart/internal/constants"
	"github.com/dropmart/dropmart/internal/logger"
	"github.com/dropmart/dropmart/internal/provider"
	"github.com/dropmart/dropmart/internal/queue"
	"github.com/dropmart/dropmart/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderCreatedEmail, c.handleOrderCreatedEmail)
}

func (c *Consumer) handleOrderCreatedEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_created_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderCreatedEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_created_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_created_email_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_created_email_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_created_email_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	var receiverEmail string
	var locale string
	if order.UserID != 0 {
		user, err := c.UserRepo.GetByID(order.UserID)
		if err != nil {
			logger.Warnw("worker_order_created_email_fetch_user_failed", "order_id", order.ID, "user_id", order.UserID, "error", err)
			return err
		}
		if user != nil {
			receiverEmail = strings.TrimSpace(user.Email)
			locale = strings.TrimSpace(user.Locale)
		}
	} else {
		receiverEmail = strings.TrimSpace(order.GuestEmail)
	}
	if receiverEmail == "" {
		logger.Debugw("worker_order_created_email_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	if isGuestPlaceholderReceiver(receiverEmail) {
		logger.Debugw("worker_order_created_email_skip_placeholder_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_order_created_email_skip_email_service_nil", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	input := service.OrderCreatedEmailInput{
		OrderNo:   order.OrderNo,
		Amount:    order.TotalAmount,
		ItemCount: len(order.Items),
		IsGuest:   order.UserID == 0,
	}
	if err := c.EmailService.SendOrderCreatedEmail(receiverEmail, input, locale); err != nil {
		logger.Warnw("worker_order_created_email_send_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"receiver_email", receiverEmail,
			"error", err,
		)
		return err
	}
	return nil
}

// isGuestPlaceholderReceiver 识别游客哨兵邮箱，避免往占位地址发信
func isGuestPlaceholderReceiver(email string) bool {
	return strings.EqualFold(strings.TrimSpace(email), constants.GuestEmailFallback)
}
