// Package http exposes the library API over HTTP: login, the public catalog
// reads, the protected catalog writes and the checkout/checkin endpoints.
// Handlers decode requests, call the service layer and translate its sentinel
// errors to statuses; no business rules live here.
package http

import (
	"github.com/avoronov/go-library-api/internal/logger"
	"github.com/avoronov/go-library-api/internal/service"
	"github.com/avoronov/go-library-api/internal/store"
)

// Handler carries the dependencies shared by all HTTP handlers.
type Handler struct {
	services *service.Services
	storages *store.Storages
	logger   *logger.Logger
}

// NewHandler returns a Handler wired to the given services and storages.
func NewHandler(services *service.Services, storages *store.Storages, log *logger.Logger) *Handler {
	return &Handler{
		services: services,
		storages: storages,
		logger:   log,
	}
}
