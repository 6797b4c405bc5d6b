package worker

import (
	"context"
	"encoding/json"

	"github.com/shopnext/internal/logger"
	"github.com/shopnext/internal/provider"
	"github.com/shopnext/internal/queue"

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
	mux.HandleFunc(queue.TaskCartPrune, c.handleCartPrune)
}

// handleCartPrune 清理商品行已被硬删除的购物车项。
// 仅删除悬挂引用；下架或零库存商品的项保留，由投影以标记上报。
func (c *Consumer) handleCartPrune(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_cart_prune_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.CartPrunePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_cart_prune_unmarshal_failed", "error", err)
		return err
	}
	if payload.CartID == 0 {
		logger.Debugw("worker_cart_prune_skip_invalid_payload", "cart_id", payload.CartID)
		return nil
	}
	removed, err := c.CartRepo.DeleteDanglingItems(payload.CartID)
	if err != nil {
		logger.Warnw("worker_cart_prune_failed", "cart_id", payload.CartID, "error", err)
		return err
	}
	if removed > 0 {
		logger.Infow("worker_cart_prune_done", "cart_id", payload.CartID, "removed", removed)
	}
	return nil
}
