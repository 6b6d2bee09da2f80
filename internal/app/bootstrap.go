package app

import (
	"errors"

	"github.com/pizzafy/pizzafy/internal/config"
	"github.com/pizzafy/pizzafy/internal/provider"
	"github.com/pizzafy/pizzafy/internal/router"
	"github.com/pizzafy/pizzafy/internal/worker"
)

// BuildRunner 按运行模式装配 HTTP / worker 服务
func BuildRunner(cfg *config.Config, mode string) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	container := provider.NewContainer(cfg)
	var services []Service

	if mode == ModeAll || mode == ModeAPI {
		engine := router.SetupRouter(cfg, container)
		services = append(services, NewHTTPService(httpAddr(cfg), engine))
	}

	if mode == ModeAll || mode == ModeWorker {
		workerService, err := worker.NewService(&cfg.Queue, worker.NewConsumer(container))
		if err != nil {
			return nil, err
		}
		services = append(services, workerService)
	}

	if len(services) == 0 {
		return nil, errors.New("no services initialized (check mode and config)")
	}
	return NewRunner(services...), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config, opts.Mode)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start", "addr", httpAddr(opts.Config), "mode", opts.Mode)
	return RunWithOptions(runner, opts)
}

func httpAddr(cfg *config.Config) string {
	return cfg.Server.Host + ":" + cfg.Server.Port
}
