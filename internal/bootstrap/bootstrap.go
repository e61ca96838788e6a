package bootstrap

import (
	"context"
	stderrors "errors"
	"net/http"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"adminconsole-go/internal/app"
	"adminconsole-go/internal/platform/config"
	"adminconsole-go/internal/platform/errors"
	"adminconsole-go/internal/platform/logging"
	"adminconsole-go/internal/platform/storage"
	httptransport "adminconsole-go/internal/transport/http"

	"golang.org/x/sync/errgroup"
)

type stepFn func(context.Context, *appState) error

type initStep struct {
	ID        string
	Title     string
	DependsOn []string
	Kind      errors.Kind
	Execute   stepFn
}

type appState struct {
	config     *config.Config
	configPath string
	logger     *logging.Logger
	kv         storage.KV
	appCtx     *app.AppContext
}

// Run drives the whole service lifecycle: configuration, store
// assembly, HTTP serving and graceful shutdown.
func Run(ctx context.Context) error {
	state := &appState{}

	if err := executeInitSteps(ctx, InitGraph(), state); err != nil {
		return err
	}

	appCtx := state.appCtx
	logger := state.logger
	if appCtx == nil || logger == nil {
		return errors.New(errors.KindBootstrap, "bootstrap state validation", "app context not initialised")
	}

	defer func() {
		if err := appCtx.Close(context.Background()); err != nil {
			logger.WarnTag("boot", "store shutdown incomplete", "error", err)
		}
		_ = logger.Close()
	}()

	rootCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	signalCtx, stop := signal.NotifyContext(rootCtx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(rootCtx)

	if state.config.Web.Enabled {
		if err := startHTTPServer(state, group, groupCtx); err != nil {
			cancel()
			return err
		}
	}

	logger.InfoTag("boot", "console ready", "config", state.configPath)
	return waitForShutdown(signalCtx, cancel, logger, group)
}

// InitGraph declares the startup steps in dependency order.
func InitGraph() []initStep {
	return []initStep{
		{
			ID:      "config:load",
			Title:   "Load configuration",
			Kind:    errors.KindConfig,
			Execute: loadConfigStep,
		},
		{
			ID:        "logging:init",
			Title:     "Initialise logging",
			DependsOn: []string{"config:load"},
			Kind:      errors.KindBootstrap,
			Execute:   initLoggingStep,
		},
		{
			ID:        "storage:init",
			Title:     "Initialise persistence",
			DependsOn: []string{"config:load", "logging:init"},
			Kind:      errors.KindStorage,
			Execute:   initStorageStep,
		},
		{
			ID:        "app:init",
			Title:     "Assemble store graph",
			DependsOn: []string{"storage:init"},
			Kind:      errors.KindBootstrap,
			Execute:   initAppStep,
		},
		{
			ID:        "app:start",
			Title:     "Restore persisted state",
			DependsOn: []string{"app:init"},
			Kind:      errors.KindBootstrap,
			Execute:   startAppStep,
		},
	}
}

func executeInitSteps(ctx context.Context, steps []initStep, state *appState) error {
	if state == nil {
		return errors.New(errors.KindBootstrap, "execute init steps", "nil bootstrap state")
	}

	completed := make(map[string]struct{}, len(steps))
	for _, step := range steps {
		for _, dep := range step.DependsOn {
			if _, ok := completed[dep]; !ok {
				return errors.New(errors.KindBootstrap, step.ID, "dependency "+dep+" not satisfied")
			}
		}
		if step.Execute == nil {
			return errors.New(errors.KindBootstrap, step.ID, "missing execute function")
		}
		if err := step.Execute(ctx, state); err != nil {
			var typed *errors.Error
			if stderrors.As(err, &typed) {
				return err
			}
			kind := step.Kind
			if kind == "" {
				kind = errors.KindBootstrap
			}
			return errors.Wrap(kind, step.ID, "bootstrap step failed", err)
		}
		completed[step.ID] = struct{}{}
	}
	return nil
}

func loadConfigStep(_ context.Context, state *appState) error {
	result, err := config.NewLoader().Load()
	if err != nil {
		return err
	}
	state.config = result.Config
	state.configPath = result.Path
	return nil
}

func initLoggingStep(_ context.Context, state *appState) error {
	if state.config == nil {
		return errors.New(errors.KindBootstrap, "logging:init", "config not loaded")
	}

	logger, err := logging.New(logging.Config{
		Level:    state.config.Log.Level,
		Dir:      state.config.Log.Dir,
		Filename: state.config.Log.File,
	})
	if err != nil {
		return errors.Wrap(errors.KindBootstrap, "logging:init", "failed to initialise logging", err)
	}
	state.logger = logger
	logging.DefaultLogger = logger

	logger.InfoTag("boot", "logging ready", "level", state.config.Log.Level, "config", state.configPath)
	return nil
}

func initStorageStep(_ context.Context, state *appState) error {
	cfg := state.config.Storage
	storeCfg := storage.Config{
		Driver: strings.ToLower(strings.TrimSpace(cfg.Driver)),
		SQLite: &storage.SQLiteConfig{Dir: cfg.SQLite.Dir},
	}
	if storeCfg.Driver == storage.DriverRedis {
		storeCfg.Redis = &storage.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		}
	}

	kv, err := storage.New(storeCfg)
	if err != nil {
		return errors.Wrap(errors.KindStorage, "storage:init", "failed to initialise persistence", err)
	}
	state.kv = kv

	state.logger.InfoTag("storage", "persistence ready", "driver", storeCfg.Driver)
	return nil
}

func initAppStep(_ context.Context, state *appState) error {
	if state.config == nil || state.logger == nil || state.kv == nil {
		return errors.New(errors.KindBootstrap, "app:init", "missing config/logger/storage")
	}
	state.appCtx = app.New(state.config, state.logger, state.kv)
	return nil
}

func startAppStep(ctx context.Context, state *appState) error {
	return state.appCtx.Start(ctx)
}

func startHTTPServer(state *appState, g *errgroup.Group, groupCtx context.Context) error {
	router, err := httptransport.Build(httptransport.Options{
		AppContext: state.appCtx,
	})
	if err != nil {
		return err
	}

	logger := state.logger
	httpServer := &http.Server{
		Addr:    ":" + strconv.Itoa(state.config.Web.Port),
		Handler: router.Engine,
	}

	g.Go(func() error {
		logger.InfoTag("http", "serving", "addr", httpServer.Addr)

		go func() {
			<-groupCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.ErrorTag("http", "shutdown failed", "error", err)
			} else {
				logger.InfoTag("http", "server stopped")
			}
		}()

		if err := httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			logger.ErrorTag("http", "serve failed", "error", err)
			return err
		}
		return nil
	})

	return nil
}

func waitForShutdown(
	ctx context.Context,
	cancel context.CancelFunc,
	logger *logging.Logger,
	g *errgroup.Group,
) error {
	<-ctx.Done()
	logger.InfoTag("boot", "shutdown signal received")

	cancel()

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.ErrorTag("boot", "shutdown finished with error", "error", err)
			return err
		}
		logger.InfoTag("boot", "all services stopped")
	case <-time.After(15 * time.Second):
		logger.ErrorTag("boot", "shutdown timed out")
		return stderrors.New("shutdown timed out")
	}
	return nil
}
