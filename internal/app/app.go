package app

import (
	"fmt"

	"github.com/mlaskowski7/AllegroLikeByt/internal/domain"
	"github.com/mlaskowski7/AllegroLikeByt/internal/platform/logger"
	"github.com/mlaskowski7/AllegroLikeByt/internal/store"
	"github.com/mlaskowski7/AllegroLikeByt/internal/store/filestore"
	"github.com/mlaskowski7/AllegroLikeByt/internal/store/sqlitestore"
)

// App wires the configured store backend and the domain model together.
type App struct {
	Log    *logger.Logger
	Config Config
	Store  store.Store
	Model  *domain.Model
}

func New(log *logger.Logger) (*App, error) {
	cfg := LoadConfig(log)

	st, err := newStore(cfg, log)
	if err != nil {
		return nil, err
	}

	model := domain.NewModel(domain.Deps{
		Store:        st,
		Log:          log,
		CartCapacity: cfg.CartCapacity,
	})

	log.Info("app wired", "data_dir", cfg.DataDir, "store_backend", cfg.StoreBackend)
	return &App{Log: log, Config: cfg, Store: st, Model: model}, nil
}

func newStore(cfg Config, log *logger.Logger) (store.Store, error) {
	switch cfg.StoreBackend {
	case StoreBackendFile:
		return filestore.New(cfg.DataDir, log)
	case StoreBackendSQLite:
		return sqlitestore.New(cfg.DataDir, log)
	default:
		return nil, fmt.Errorf("app: unknown store backend %q", cfg.StoreBackend)
	}
}
