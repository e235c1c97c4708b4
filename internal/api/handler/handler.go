package handler

import (
	"meetgo/backend/internal/meethub"
	"meetgo/backend/internal/storage"
	"meetgo/backend/internal/telegram"
)

// Handler carries the dependencies of the HTTP layer.
type Handler struct {
	Hub      *meethub.ManagerService
	Storage  storage.Storage
	Notifier *telegram.Notifier

	jwtSecret []byte
}

func NewHandler(hub *meethub.ManagerService, s storage.Storage, notifier *telegram.Notifier, jwtSecret string) *Handler {
	return &Handler{
		Hub:       hub,
		Storage:   s,
		Notifier:  notifier,
		jwtSecret: []byte(jwtSecret),
	}
}
