// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/miscs-test/nextjs-learn-dashboard/internal/usecase"

	"go.uber.org/zap"
)

// Handler serves the webhook endpoint and the dashboard using service layer interfaces.
type Handler struct {
	log           *zap.SugaredLogger
	uc            usecase.InterfaceUsecase
	webhookSecret []byte
}

// NewHandler constructs an HTTP server with service dependencies. An empty webhookSecret
// disables signature verification.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase, webhookSecret string) *Handler {
	h := &Handler{
		log: log.Named("http"),
		uc:  usecase,
	}
	if webhookSecret != "" {
		h.webhookSecret = []byte(webhookSecret)
	}
	return h
}
