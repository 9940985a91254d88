// Package app wires the application's dependencies in one place.
package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sylvie882/garbage-collection-frontend-sub000/internal/adapter/directory"
	"github.com/sylvie882/garbage-collection-frontend-sub000/internal/config"
	"github.com/sylvie882/garbage-collection-frontend-sub000/pkg/middleware"
)

// Container holds all application dependencies.
type Container struct {
	Cfg       config.Config
	Log       zerolog.Logger
	Templates *Templates
	Directory *directory.Client
}

// NewContainer creates and wires all dependencies. The directory client reads
// its bearer token from the request context, where the admin auth middleware
// puts it.
func NewContainer(cfg config.Config, log zerolog.Logger) (*Container, error) {
	templates, err := InitTemplates(cfg.ViewsDir, log)
	if err != nil {
		return nil, fmt.Errorf("init templates: %w", err)
	}

	return &Container{
		Cfg:       cfg,
		Log:       log,
		Templates: templates,
		Directory: directory.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, middleware.TokenFromContext, log),
	}, nil
}
