// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package persistence

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// S3Config configures an S3-compatible object-store Adapter.
//
// The original implementation's PersistenceLocator enum names an S3
// variant (bucket + optional prefix) but no original_source file ever
// backs it with a working adapter — it is an advisory-only, unimplemented
// arm. This adapter completes it: SPEC_FULL.md §4.5 supplements the
// dropped feature rather than leaving the enum value dead.
type S3Config struct {
	Endpoint string // e.g. "https://s3.us-east-1.amazonaws.com"
	Bucket   string
	Prefix   string
	// AccessKey/SecretKey authenticate via an HTTP Basic auth header
	// rather than full SigV4 signing — this adapter targets S3-compatible
	// gateways configured for presigned or pre-authenticated access, not
	// AWS S3 directly, matching the level of effort the original gives its
	// other REST-based adapters (no dedicated AWS SDK dependency exists
	// anywhere in the example pack).
	AccessKey string
	SecretKey string
	Timeout   time.Duration
}

// S3 persists pastes as individual objects in an S3-compatible bucket.
type S3 struct {
	client *resty.Client
	bucket string
	prefix string
}

// NewS3 constructs an S3 adapter. Endpoint and Bucket are required.
func NewS3(cfg S3Config) (*S3, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("persistence: s3 adapter requires an endpoint and a bucket")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Endpoint, "/")).
		SetTimeout(cfg.Timeout)
	if cfg.AccessKey != "" {
		cli.SetBasicAuth(cfg.AccessKey, cfg.SecretKey)
	}

	return &S3{client: cli, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

func (s *S3) objectPath(id string) string {
	key := id
	if s.prefix != "" {
		key = s.prefix + "/" + id
	}
	return "/" + s.bucket + "/" + key
}

func (s *S3) Save(ctx context.Context, id string, payload []byte, _ int64) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(payload).
		Put(s.objectPath(id))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSave, id, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: %s: s3 returned %d", ErrSave, id, resp.StatusCode())
	}
	return nil
}

func (s *S3) Load(ctx context.Context, id string) ([]byte, error) {
	resp, err := s.client.R().SetContext(ctx).Get(s.objectPath(id))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, id, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s: s3 returned %d", ErrLoad, id, resp.StatusCode())
	}
	return resp.Body(), nil
}

func (s *S3) Delete(ctx context.Context, id string) error {
	resp, err := s.client.R().SetContext(ctx).Delete(s.objectPath(id))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDelete, id, err)
	}
	if resp.IsError() && resp.StatusCode() != http.StatusNotFound {
		return fmt.Errorf("%w: %s: s3 returned %d", ErrDelete, id, resp.StatusCode())
	}
	return nil
}
