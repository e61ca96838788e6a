package app

import (
	"context"

	"adminconsole-go/internal/adapter/products"
	"adminconsole-go/internal/adapter/remote"
	"adminconsole-go/internal/domain/account"
	"adminconsole-go/internal/domain/catalog"
	"adminconsole-go/internal/domain/events"
	"adminconsole-go/internal/domain/metrics"
	"adminconsole-go/internal/domain/notify"
	"adminconsole-go/internal/domain/prefs"
	"adminconsole-go/internal/domain/thumbnail"
	"adminconsole-go/internal/domain/validate"
	"adminconsole-go/internal/platform/config"
	"adminconsole-go/internal/platform/errors"
	"adminconsole-go/internal/platform/logging"
	"adminconsole-go/internal/platform/storage"
)

// AppContext is the composition root: one instance of every store,
// constructed once at startup and passed by reference. Nothing in the
// console reaches for ambient global state.
type AppContext struct {
	Config *config.Config
	Logger *logging.Logger
	Bus    *events.Bus
	KV     storage.KV

	Remote    *remote.Client
	Validator *validate.Validator
	Products  *products.Adapter

	Account       *account.Store
	Catalog       *catalog.Store
	Metrics       *metrics.Store
	Notifications *notify.Store
	Prefs         *prefs.Store
}

// New assembles the full store graph over the given platform handles.
func New(cfg *config.Config, logger *logging.Logger, kv storage.KV) *AppContext {
	bus := events.New()

	remoteClient := remote.NewClient(cfg.Remote, logger)
	accountStore := account.NewStore(kv, bus, logger)

	local := products.NewLocalSource(kv, logger)
	thumbValidator := thumbnail.NewValidator(cfg.Thumbnail, logger)
	adapter := products.NewAdapter(local, products.NewRemoteSource(remoteClient), thumbValidator, logger)

	appCtx := &AppContext{
		Config:        cfg,
		Logger:        logger,
		Bus:           bus,
		KV:            kv,
		Remote:        remoteClient,
		Validator:     validate.New(),
		Products:      adapter,
		Account:       accountStore,
		Catalog:       catalog.NewStore(bus, accountStore.ActorName),
		Metrics:       metrics.NewStore(),
		Notifications: notify.NewStore(cfg.Notify.TTL.Std()),
		Prefs:         prefs.NewStore(kv),
	}

	appCtx.forwardCatalogEvents()
	return appCtx
}

// forwardCatalogEvents bridges catalog mutations into the dashboard
// activity feed. Registered here so the two stores stay unaware of
// each other.
func (a *AppContext) forwardCatalogEvents() {
	_ = a.Bus.Subscribe(events.EventProductCreated, func(data events.ProductEventData) {
		a.Metrics.AddActivity(metrics.KindCreate, data.ProductTitle, data.ActorName)
	})
	_ = a.Bus.Subscribe(events.EventProductUpdated, func(data events.ProductEventData) {
		a.Metrics.AddActivity(metrics.KindUpdate, data.ProductTitle, data.ActorName)
	})
	_ = a.Bus.Subscribe(events.EventProductDeleted, func(data events.ProductEventData) {
		a.Metrics.AddActivity(metrics.KindDelete, data.ProductTitle, data.ActorName)
	})
}

// Start restores persisted state: session, preferences, catalog.
func (a *AppContext) Start(ctx context.Context) error {
	if err := a.Account.Rehydrate(ctx); err != nil {
		return err
	}
	if token := a.Account.Token(); token != "" {
		a.Remote.SetToken(token)
	}
	if err := a.Prefs.Rehydrate(ctx); err != nil {
		return err
	}
	a.LoadCatalog(ctx)
	a.Logger.InfoTag("boot", "stores ready", "products", len(a.Catalog.Products()))
	return nil
}

// Close releases platform resources.
func (a *AppContext) Close(ctx context.Context) error {
	a.Notifications.Clear()
	return a.KV.Close(ctx)
}

// notifyFailure reports an operation failure as a transient message.
func (a *AppContext) notifyFailure(title string, err error) {
	a.Notifications.Push(notify.KindError, title, errors.UserMessage(err))
}
