// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package anchor

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-keeper/models"
)

// Relayer submits an anchor payload to an external commitment log and
// returns a receipt.
type Relayer interface {
	Relay(ctx context.Context, payload models.AnchorPayload) (models.AnchorReceipt, error)
}

// NoopRelayer is the default relayer when no anchor endpoint is
// configured: every submission succeeds locally without leaving the
// process, returning no transaction id.
type NoopRelayer struct{}

func (NoopRelayer) Relay(context.Context, models.AnchorPayload) (models.AnchorReceipt, error) {
	return models.AnchorReceipt{}, nil
}

// HTTPConfig configures an HTTPRelayer.
type HTTPConfig struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// HTTPRelayer submits anchor payloads to a configured HTTP endpoint,
// expecting a JSON body carrying the assigned transaction id back.
type HTTPRelayer struct {
	client   *resty.Client
	endpoint string
}

// NewHTTPRelayer constructs an HTTPRelayer. Endpoint is required.
func NewHTTPRelayer(cfg HTTPConfig) (*HTTPRelayer, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("anchor: http relayer requires an endpoint")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	cli := resty.New().SetTimeout(cfg.Timeout)
	if cfg.APIKey != "" {
		cli.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	}

	return &HTTPRelayer{client: cli, endpoint: cfg.Endpoint}, nil
}

type relayResponseBody struct {
	TransactionID *string `json:"transactionId"`
}

func (r *HTTPRelayer) Relay(ctx context.Context, payload models.AnchorPayload) (models.AnchorReceipt, error) {
	var body relayResponseBody

	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&body).
		Post(r.endpoint)
	if err != nil {
		return models.AnchorReceipt{}, fmt.Errorf("%w: %w", ErrRelayFailed, err)
	}
	if resp.IsError() {
		return models.AnchorReceipt{}, fmt.Errorf("%w: relay returned %d", ErrRelayFailed, resp.StatusCode())
	}

	return models.AnchorReceipt{TransactionID: body.TransactionID}, nil
}
