package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deirn/cf-b2cdn/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	return &config.Config{
		ListenAddr:  ":8080",
		AccountHost: "https://api.example.com",
		KeyID:       "key-id",
		AppKey:      "app-key",
		BucketID:    "bucket-id",
		BucketName:  "my-bucket",
		FileHost:    "https://files.example.com",
		CacheMaxAge: 3600,
	}
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestHealth(t *testing.T) {
	e := newServer(testConfig(), newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestSecurityAndCacheHeadersApplied(t *testing.T) {
	e := newServer(testConfig(), newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
}
