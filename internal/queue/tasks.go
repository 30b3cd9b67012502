package queue

import (
	"encoding/json"

	"github.com/dropmart/dropmart/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderCreatedEmail 下单成功邮件通知任务
	TaskOrderCreatedEmail = constants.TaskOrderCreatedEmail
)

// OrderCreatedEmailPayload 下单成功邮件任务载荷
type OrderCreatedEmailPayload struct {
	OrderID uint `json:"order_id"`
}

// NewOrderCreatedEmailTask 创建下单成功邮件任务
func NewOrderCreatedEmailTask(payload OrderCreatedEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderCreatedEmail, body), nil
}
