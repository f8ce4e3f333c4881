package alerts

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	sql string
	err error
}

func (g *fakeGenerator) Translate(ctx context.Context, alertText string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.sql, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSubmitQueuesTranslatedAlert(t *testing.T) {
	svc := NewService(&fakeGenerator{sql: "SELECT 1"}, "http://unused", testLogger())

	alert, err := svc.Submit(context.Background(), "a person near the camera")
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", alert.SQL)
	assert.Len(t, svc.Pending(), 1)
}

func TestSubmitFailureLeavesQueueUntouched(t *testing.T) {
	gen := &fakeGenerator{sql: "SELECT 1"}
	svc := NewService(gen, "http://unused", testLogger())

	_, err := svc.Submit(context.Background(), "first")
	require.NoError(t, err)

	gen.err = errors.New("model unavailable")
	_, err = svc.Submit(context.Background(), "second")
	require.Error(t, err)

	// The earlier alert is still queued
	pending := svc.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, "first", pending[0].Alert)
}

func TestExecuteDispatchesBatchAndClears(t *testing.T) {
	var payload struct {
		Alerts []Alert `json:"alerts"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/execute_alerts", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Write([]byte(`{"status": "ok"}`))
	}))
	defer server.Close()

	svc := NewService(&fakeGenerator{sql: "SELECT 1"}, server.URL, testLogger())
	_, err := svc.Submit(context.Background(), "one")
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), "two")
	require.NoError(t, err)

	require.NoError(t, svc.Execute(context.Background()))

	assert.Len(t, payload.Alerts, 2)
	assert.Empty(t, svc.Pending())
}

func TestExecuteEmptyQueueNoRequest(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	svc := NewService(&fakeGenerator{}, server.URL, testLogger())
	require.NoError(t, svc.Execute(context.Background()))
	assert.False(t, called)
}

func TestExecuteFailureClearsByDefault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewService(&fakeGenerator{sql: "SELECT 1"}, server.URL, testLogger())
	_, err := svc.Submit(context.Background(), "one")
	require.NoError(t, err)

	err = svc.Execute(context.Background())
	require.Error(t, err)

	// Fire-and-forget: the batch is gone even though dispatch failed
	assert.Empty(t, svc.Pending())
}

func TestExecuteFailureKeepsQueueWhenConfigured(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewService(&fakeGenerator{sql: "SELECT 1"}, server.URL, testLogger()).
		WithOptions(Options{ClearOnFailure: false})
	_, err := svc.Submit(context.Background(), "one")
	require.NoError(t, err)

	err = svc.Execute(context.Background())
	require.Error(t, err)
	assert.Len(t, svc.Pending(), 1)
}
