// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package webhook fires best-effort, fire-and-forget notifications to a
// paste's configured webhook (Slack/Teams/generic) on view and on burn.
// Delivery failures are logged and never surfaced to the caller: a
// notification is a courtesy, not part of the paste's contract.
package webhook

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-keeper/internal/logger"
	"github.com/MKhiriev/go-pass-keeper/models"
)

// Event identifies which lifecycle moment triggered a notification.
type Event string

const (
	EventViewed   Event = "viewed"
	EventConsumed Event = "consumed"
)

// Dispatcher sends webhook notifications over HTTP.
type Dispatcher struct {
	client *resty.Client
	logger *logger.Logger
}

// New constructs a Dispatcher with a short client-side timeout: a slow or
// unreachable webhook endpoint must never hold up a paste read.
func New(log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		client: resty.New().SetTimeout(5 * time.Second),
		logger: log,
	}
}

type slackBody struct {
	Text string `json:"text"`
}

// Notify sends id's configured webhook (if any) the message for event,
// rendering cfg.ViewTemplate/BurnTemplate when set or falling back to a
// default message. Delivery happens on a detached goroutine: Notify
// returns immediately and never reports an error to the caller, matching
// the original implementation's fire-and-forget dispatch.
func (d *Dispatcher) Notify(ctx context.Context, cfg *models.WebhookConfig, id string, label string, event Event) {
	if cfg == nil || cfg.URL == "" {
		return
	}

	message := d.render(cfg, id, label, event)

	go func() {
		detached, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()

		_, err := d.client.R().
			SetContext(detached).
			SetBody(slackBody{Text: message}).
			Post(cfg.URL)
		if err != nil {
			d.logErr(err, id, "webhook delivery failed")
		}
	}()
}

func (d *Dispatcher) render(cfg *models.WebhookConfig, id, label string, event Event) string {
	template := cfg.ViewTemplate
	if event == EventConsumed && cfg.BurnTemplate != "" {
		template = cfg.BurnTemplate
	}

	if template == "" {
		return defaultMessage(id, label, event)
	}

	replacer := strings.NewReplacer(
		"{{id}}", id,
		"{{event}}", string(event),
		"{{label}}", label,
	)
	return replacer.Replace(template)
}

func defaultMessage(id, label string, event Event) string {
	switch {
	case event == EventConsumed && label != "":
		return fmt.Sprintf("Paste %q (%s) was burned after reading.", label, id)
	case event == EventConsumed:
		return fmt.Sprintf("Paste %s was burned after reading.", id)
	case label != "":
		return fmt.Sprintf("Paste %q (%s) was viewed.", label, id)
	default:
		return fmt.Sprintf("Paste %s was viewed.", id)
	}
}

func (d *Dispatcher) logErr(err error, id, msg string) {
	if d.logger == nil {
		return
	}
	d.logger.Err(err).Str("func", "webhook.Dispatcher").Str("paste_id", id).Msg(msg)
}
