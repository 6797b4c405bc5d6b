package app

import (
	"context"
	"errors"
	"os/signal"
	"time"

	"go.uber.org/zap"
)

// Service 可独立启停的长驻服务（HTTP 入口、队列 worker）
type Service interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Runner 按注册顺序启动一组服务，任一服务退出即触发整体停机
type Runner struct {
	services []Service
}

// NewRunner 创建服务运行器
func NewRunner(services ...Service) *Runner {
	return &Runner{services: services}
}

// RunWithOptions 运行服务并接管停机信号
func RunWithOptions(runner *Runner, opts Options) error {
	if runner == nil {
		return errors.New("runner is nil")
	}
	opts = normalizeOptions(opts)
	ctx, cancel := signal.NotifyContext(context.Background(), opts.Signals...)
	defer cancel()
	return runner.Run(ctx, opts.ShutdownTimeout, opts.Logger)
}

type serviceExit struct {
	name string
	err  error
}

// Run 启动全部服务，等待首个退出或停机信号，然后按注册的逆序停机。
// 首个非取消类错误作为整体退出原因向上传递。
func (r *Runner) Run(ctx context.Context, stopTimeout time.Duration, log *zap.SugaredLogger) error {
	if r == nil || len(r.services) == 0 {
		return errors.New("no services to run")
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	exitCh := make(chan serviceExit, len(r.services))
	for _, svc := range r.services {
		service := svc
		go func() {
			if log != nil {
				log.Infow("service_start", "service", service.Name())
			}
			exitCh <- serviceExit{name: service.Name(), err: service.Start(ctx)}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		runErr = ctx.Err()
	case exit := <-exitCh:
		runErr = exit.err
		if log != nil {
			log.Infow("service_exit", "service", exit.name, "error", exit.err)
		}
	}
	cancel()

	if stopTimeout <= 0 {
		stopTimeout = DefaultShutdownTimeout
	}
	stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
	defer stopCancel()
	// 逆序停机
	for i := len(r.services) - 1; i >= 0; i-- {
		service := r.services[i]
		if service == nil {
			continue
		}
		if err := service.Stop(stopCtx); err != nil && log != nil {
			log.Errorw("service_stop_failed", "service", service.Name(), "error", err)
		}
	}
	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}
