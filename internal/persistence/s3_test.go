// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package persistence

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3_RequiresEndpointAndBucket(t *testing.T) {
	_, err := NewS3(S3Config{})
	assert.Error(t, err)

	_, err = NewS3(S3Config{Endpoint: "https://s3.example"})
	assert.Error(t, err)
}

func TestS3_Save_PutsToObjectPath(t *testing.T) {
	var gotPath, gotMethod, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		user, pass, _ := r.BasicAuth()
		gotAuth = user + ":" + pass
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s3, err := NewS3(S3Config{Endpoint: srv.URL, Bucket: "pastes", Prefix: "p", AccessKey: "key", SecretKey: "secret"})
	require.NoError(t, err)

	err = s3.Save(context.Background(), "abc", []byte("payload"), 0)
	require.NoError(t, err)
	assert.Equal(t, "/pastes/p/abc", gotPath)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "key:secret", gotAuth)
}

func TestS3_ObjectPath_NoPrefix(t *testing.T) {
	s3, err := NewS3(S3Config{Endpoint: "https://s3.example", Bucket: "pastes"})
	require.NoError(t, err)
	assert.Equal(t, "/pastes/abc", s3.objectPath("abc"))
}

func TestS3_Load_ReturnsNilOnNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	s3, err := NewS3(S3Config{Endpoint: srv.URL, Bucket: "pastes"})
	require.NoError(t, err)

	payload, err := s3.Load(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestS3_Load_ReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("the stored bytes"))
	}))
	defer srv.Close()

	s3, err := NewS3(S3Config{Endpoint: srv.URL, Bucket: "pastes"})
	require.NoError(t, err)

	payload, err := s3.Load(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "the stored bytes", string(payload))
}

func TestS3_Delete_NotFoundIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	s3, err := NewS3(S3Config{Endpoint: srv.URL, Bucket: "pastes"})
	require.NoError(t, err)

	assert.NoError(t, s3.Delete(context.Background(), "missing"))
}

func TestS3_Delete_PropagatesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s3, err := NewS3(S3Config{Endpoint: srv.URL, Bucket: "pastes"})
	require.NoError(t, err)

	err = s3.Delete(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrDelete)
}
