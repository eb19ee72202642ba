// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// VaultConfig configures a HashiCorp Vault KV-v2 backed Adapter.
type VaultConfig struct {
	Addr      string
	Token     string
	Mount     string // default "secret"
	Namespace string // optional
	KeyPrefix string // default "copypaste"
	Timeout   time.Duration
}

// Vault persists pastes under a Vault KV-v2 secrets engine, the same
// request shapes the original implementation's VaultPersistenceAdapter
// uses: POST/GET on ".../data/<path>" and DELETE on ".../metadata/<path>".
type Vault struct {
	client    *resty.Client
	addr      string
	mount     string
	namespace string
	keyPrefix string
}

type vaultPayload struct {
	Payload string `json:"payload"`
}

type vaultSaveBody struct {
	Data vaultPayload `json:"data"`
}

type vaultLoadBody struct {
	Data struct {
		Data vaultPayload `json:"data"`
	} `json:"data"`
}

// NewVault constructs a Vault adapter. Addr and Token are required;
// Mount defaults to "secret" and KeyPrefix to "copypaste" when empty.
func NewVault(cfg VaultConfig) (*Vault, error) {
	if cfg.Addr == "" || cfg.Token == "" {
		return nil, fmt.Errorf("persistence: vault adapter requires an address and a token")
	}
	if cfg.Mount == "" {
		cfg.Mount = "secret"
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "copypaste"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Addr, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("X-Vault-Token", cfg.Token)
	if cfg.Namespace != "" {
		cli.SetHeader("X-Vault-Namespace", cfg.Namespace)
	}

	return &Vault{client: cli, addr: cfg.Addr, mount: cfg.Mount, namespace: cfg.Namespace, keyPrefix: cfg.KeyPrefix}, nil
}

func (v *Vault) namespacedID(id string) string {
	if v.keyPrefix == "" {
		return id
	}
	return v.keyPrefix + "/" + id
}

func (v *Vault) dataPath(id string) string {
	return fmt.Sprintf("/v1/%s/data/%s", v.mount, v.namespacedID(id))
}

func (v *Vault) metadataPath(id string) string {
	return fmt.Sprintf("/v1/%s/metadata/%s", v.mount, v.namespacedID(id))
}

func (v *Vault) Save(ctx context.Context, id string, payload []byte, _ int64) error {
	resp, err := v.client.R().
		SetContext(ctx).
		SetBody(vaultSaveBody{Data: vaultPayload{Payload: string(payload)}}).
		Post(v.dataPath(id))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSave, id, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: %s: vault returned %d", ErrSave, id, resp.StatusCode())
	}
	return nil
}

func (v *Vault) Load(ctx context.Context, id string) ([]byte, error) {
	resp, err := v.client.R().SetContext(ctx).Get(v.dataPath(id))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, id, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s: vault returned %d", ErrLoad, id, resp.StatusCode())
	}

	var body vaultLoadBody
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: %s: decode response: %w", ErrLoad, id, err)
	}
	return []byte(body.Data.Data.Payload), nil
}

func (v *Vault) Delete(ctx context.Context, id string) error {
	resp, err := v.client.R().SetContext(ctx).Delete(v.metadataPath(id))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDelete, id, err)
	}
	if resp.IsError() && resp.StatusCode() != http.StatusNotFound {
		return fmt.Errorf("%w: %s: vault returned %d", ErrDelete, id, resp.StatusCode())
	}
	return nil
}
