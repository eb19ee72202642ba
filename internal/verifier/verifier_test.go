// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package verifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVerifyHash_NoOpWhenURLEmpty(t *testing.T) {
	c := New("", nil)
	// Must not panic and must not attempt any network call.
	c.VerifyHash(context.Background(), "deadbeef")
}

func TestVerifyHash_PostsToConfiguredURL(t *testing.T) {
	received := make(chan verifyRequestBody, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body verifyRequestBody
		_ = json.NewDecoder(r.Body).Decode(&body)
		received <- body
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	c.VerifyHash(context.Background(), "abc123")

	select {
	case body := <-received:
		assert.Equal(t, "abc123", body.Hash)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for verifier submission")
	}
}
