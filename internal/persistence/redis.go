// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// RedisConfig configures an Upstash-flavoured Redis REST Adapter.
type RedisConfig struct {
	BaseURL   string
	Token     string
	KeyPrefix string // default "paste:"
	Timeout   time.Duration
}

// Redis persists pastes via Upstash's Redis REST API, issuing the same
// GET/SETEX/SET/DEL command shapes as the original RedisPersistenceAdapter.
type Redis struct {
	client    *resty.Client
	keyPrefix string
}

type redisGetResponse struct {
	Result *string `json:"result"`
	Error  *string `json:"error"`
}

// NewRedis constructs a Redis adapter. BaseURL and Token are required.
func NewRedis(cfg RedisConfig) (*Redis, error) {
	if cfg.BaseURL == "" || cfg.Token == "" {
		return nil, fmt.Errorf("persistence: redis adapter requires a base URL and a token")
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "paste:"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.Token)

	return &Redis{client: cli, keyPrefix: cfg.KeyPrefix}, nil
}

func (r *Redis) key(id string) string {
	return r.keyPrefix + id
}

func (r *Redis) postCommand(ctx context.Context, command, key string, extra ...string) (*resty.Response, error) {
	segments := []string{command, url.PathEscape(key)}
	for _, e := range extra {
		segments = append(segments, url.PathEscape(e))
	}
	return r.client.R().SetContext(ctx).Post("/" + strings.Join(segments, "/"))
}

func (r *Redis) Save(ctx context.Context, id string, payload []byte, ttlSeconds int64) error {
	var resp *resty.Response
	var err error
	if ttlSeconds > 0 {
		resp, err = r.postCommand(ctx, "setex", r.key(id), strconv.FormatInt(ttlSeconds, 10), string(payload))
	} else {
		resp, err = r.postCommand(ctx, "set", r.key(id), string(payload))
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSave, id, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: %s: redis returned %d: %s", ErrSave, id, resp.StatusCode(), resp.String())
	}
	return nil
}

func (r *Redis) Load(ctx context.Context, id string) ([]byte, error) {
	resp, err := r.client.R().SetContext(ctx).Get("/get/" + url.PathEscape(r.key(id)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, id, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s: redis returned %d", ErrLoad, id, resp.StatusCode())
	}

	var body redisGetResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: %s: decode response: %w", ErrLoad, id, err)
	}
	if body.Error != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrLoad, id, *body.Error)
	}
	if body.Result == nil {
		return nil, nil
	}
	return []byte(*body.Result), nil
}

func (r *Redis) Delete(ctx context.Context, id string) error {
	resp, err := r.postCommand(ctx, "del", r.key(id))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDelete, id, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: %s: redis returned %d", ErrDelete, id, resp.StatusCode())
	}
	return nil
}
