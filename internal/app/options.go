package app

import (
	"os"
	"syscall"
	"time"

	"github.com/shopnext/internal/config"
	"github.com/shopnext/internal/logger"

	"go.uber.org/zap"
)

const (
	ModeAll    = "all"
	ModeAPI    = "api"
	ModeWorker = "worker"

	// DefaultShutdownTimeout 优雅停机的默认等待窗口
	DefaultShutdownTimeout = 10 * time.Second
)

// Options 应用启动选项
type Options struct {
	Config          *config.Config
	Logger          *zap.SugaredLogger
	Signals         []os.Signal
	ShutdownTimeout time.Duration
	Mode            string
}

// normalizeOptions 补齐默认参数：缺省监听 SIGINT/SIGTERM，未知模式回落到 all
func normalizeOptions(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if len(opts.Signals) == 0 {
		opts.Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = DefaultShutdownTimeout
	}
	switch opts.Mode {
	case ModeAll, ModeAPI, ModeWorker:
	default:
		opts.Mode = ModeAll
	}
	return opts
}
