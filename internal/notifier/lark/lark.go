// Package lark posts markdown cards to a Lark custom bot webhook.
package lark

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/miscs-test/nextjs-learn-dashboard/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Notifier sends chat messages to the configured bot URL.
type Notifier struct {
	log     *zap.SugaredLogger
	url     string
	timeout time.Duration
}

// New constructs a Notifier. An empty bot URL turns Send into a no-op.
func New(log *zap.SugaredLogger, cfg config.LarkConfig) *Notifier {
	return &Notifier{
		log:     log.Named("notifier.lark"),
		url:     cfg.BotURL,
		timeout: cfg.Timeout,
	}
}

type cardMessage struct {
	MsgType string `json:"msg_type"`
	Card    card   `json:"card"`
}

type card struct {
	Config   cardConfig    `json:"config"`
	Elements []cardElement `json:"elements"`
}

type cardConfig struct {
	WideScreenMode bool `json:"wide_screen_mode"`
}

type cardElement struct {
	Tag     string `json:"tag"`
	Content string `json:"content"`
}

type botResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func newCardMessage(text string) cardMessage {
	return cardMessage{
		MsgType: "interactive",
		Card: card{
			Config:   cardConfig{WideScreenMode: true},
			Elements: []cardElement{{Tag: "markdown", Content: text}},
		},
	}
}

// Send posts text as an interactive markdown card. Empty text is ignored.
func (n *Notifier) Send(ctx context.Context, text string) error {
	if text == "" || n.url == "" {
		return nil
	}

	timeout := n.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	if timeout <= 0 {
		return fmt.Errorf("lark send: %w", context.DeadlineExceeded)
	}

	agent := fiber.Post(n.url).JSON(newCardMessage(text)).Timeout(timeout)
	if err := agent.Parse(); err != nil {
		n.log.Errorw("failed to build lark request", "error", err)
		return fmt.Errorf("lark request: %w", err)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		err := errors.Join(errs...)
		n.log.Errorw("failed to send lark message", "error", err)
		return fmt.Errorf("lark send: %w", err)
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		n.log.Errorw("lark rejected message", "status", code, "body", string(body))
		return fmt.Errorf("lark send: unexpected status %d", code)
	}

	var resp botResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Code != 0 {
		n.log.Errorw("lark rejected message", "code", resp.Code, "msg", resp.Msg)
		return fmt.Errorf("lark send: code %d: %s", resp.Code, resp.Msg)
	}

	n.log.Debugw("lark message sent", "length", len(text))
	return nil
}
