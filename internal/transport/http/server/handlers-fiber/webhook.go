package handlers_fiber

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/go-github/v62/github"
	"github.com/google/uuid"

	"github.com/miscs-test/nextjs-learn-dashboard/internal/entities"
	"github.com/miscs-test/nextjs-learn-dashboard/internal/transport/http/dto"
)

// GitHub webhook headers.
const (
	HeaderGitHubEvent    = "X-GitHub-Event"
	HeaderGitHubDelivery = "X-GitHub-Delivery"
	HeaderSignature256   = "X-Hub-Signature-256"
)

// PostPREvent receives a GitHub webhook delivery and replies with the chat message it produced.
func (h *Handler) PostPREvent(c *fiber.Ctx) error {
	eventType := c.Get(HeaderGitHubEvent)
	deliveryID := c.Get(HeaderGitHubDelivery)
	if deliveryID == "" {
		deliveryID = uuid.NewString()
	}

	payload := c.Body()
	if h.webhookSecret != nil {
		if err := github.ValidateSignature(c.Get(HeaderSignature256), payload, h.webhookSecret); err != nil {
			h.log.Warnw("webhook signature rejected", "event", eventType, "delivery", deliveryID, "error", err)
			return writeError(c, fmt.Errorf("%w: %w", entities.ErrInvalidSignature, err))
		}
	}

	msg, err := h.uc.HandleWebhook(c.UserContext(), eventType, deliveryID, payload)
	if err != nil {
		return c.Status(http.StatusBadRequest).SendString("Webhook error: " + err.Error())
	}
	return c.Status(http.StatusOK).JSON(dto.EventResponse{Msg: msg})
}
