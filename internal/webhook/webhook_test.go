// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-keeper/models"
)

func TestNotify_NilConfig_NoOp(t *testing.T) {
	d := New(nil)
	d.Notify(context.Background(), nil, "id", "", EventViewed)
}

func TestNotify_DeliversToConfiguredURL(t *testing.T) {
	received := make(chan slackBody, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body slackBody
		_ = json.NewDecoder(r.Body).Decode(&body)
		received <- body
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := New(nil)
	cfg := &models.WebhookConfig{URL: srv.URL}
	d.Notify(context.Background(), cfg, "abc123", "", EventViewed)

	select {
	case body := <-received:
		assert.Equal(t, "Paste abc123 was viewed.", body.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for webhook delivery")
	}
}

func TestRender_DefaultMessages(t *testing.T) {
	d := New(nil)

	assert.Equal(t, "Paste abc was viewed.", d.render(&models.WebhookConfig{}, "abc", "", EventViewed))
	assert.Equal(t, `Paste "label" (abc) was viewed.`, d.render(&models.WebhookConfig{}, "abc", "label", EventViewed))
	assert.Equal(t, "Paste abc was burned after reading.", d.render(&models.WebhookConfig{}, "abc", "", EventConsumed))
	assert.Equal(t, `Paste "label" (abc) was burned after reading.`, d.render(&models.WebhookConfig{}, "abc", "label", EventConsumed))
}

func TestRender_CustomTemplate(t *testing.T) {
	d := New(nil)
	cfg := &models.WebhookConfig{ViewTemplate: "{{label}} ({{id}}) -> {{event}}"}

	got := d.render(cfg, "abc", "mylabel", EventViewed)
	assert.Equal(t, "mylabel (abc) -> viewed", got)
}

func TestRender_BurnTemplateOverridesViewOnConsumed(t *testing.T) {
	d := New(nil)
	cfg := &models.WebhookConfig{ViewTemplate: "viewed: {{id}}", BurnTemplate: "burned: {{id}}"}

	got := d.render(cfg, "abc", "", EventConsumed)
	assert.Equal(t, "burned: abc", got)
}
