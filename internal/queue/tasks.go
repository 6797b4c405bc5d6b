package queue

import (
	"encoding/json"

	"github.com/shopnext/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskCartPrune 清理失效购物车项任务
	TaskCartPrune = constants.TaskCartPrune
)

// CartPrunePayload 清理任务载荷
type CartPrunePayload struct {
	CartID uint `json:"cart_id"`
}

// NewCartPruneTask 创建清理任务
func NewCartPruneTask(payload CartPrunePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCartPrune, body), nil
}
