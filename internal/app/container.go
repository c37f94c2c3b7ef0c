// Package app wires the application's dependencies.
//
// There are no package-level singletons: the Container owns the one store of
// a session and hands it to every view-model it creates.
package app

import (
	"log/slog"

	"github.com/Makepad-fr/nameboard/internal/config"
	"github.com/Makepad-fr/nameboard/internal/store"
	"github.com/Makepad-fr/nameboard/internal/viewmodel"
)

// Container holds the dependencies of one session.
type Container struct {
	config config.Config
	log    *slog.Logger
	store  *store.Store
}

// NewContainer builds the store from cfg.Seed.
func NewContainer(cfg config.Config, log *slog.Logger) *Container {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Container{
		config: cfg,
		log:    log,
		store:  store.New(log.With("component", "store"), cfg.Seed...),
	}
}

func (c *Container) Config() config.Config { return c.config }

func (c *Container) Logger() *slog.Logger { return c.log }

func (c *Container) Store() *store.Store { return c.store }

// NewViewModel returns an initialised view-model bound to the container's store.
func (c *Container) NewViewModel() *viewmodel.ViewModel {
	vm := viewmodel.New(c.store, c.log.With("component", "viewmodel"))
	vm.Initialize()
	return vm
}
