package api

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchTriggers(t *testing.T) {
	ctx := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/feeds/feed-1/triggers", r.URL.Path)
		w.Write([]byte(`{"data": [{"id": "trg-1", "feed_id": "feed-1", "stream_name": "temp", "type": "gt", "threshold_value": 30, "notify_url": "https://example.com/hook"}]}`))
	})

	triggers, err := FetchTriggers(ctx, "feed-1")
	assert.NoError(t, err)
	assert.Len(t, triggers, 1)
	assert.Equal(t, "trg-1", triggers[0].ID)
	assert.Equal(t, "gt", triggers[0].Type)
	assert.Equal(t, 30.0, triggers[0].Threshold)
}

func TestCreateTrigger(t *testing.T) {
	ctx := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/feeds/feed-1/triggers", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"stream_name": "temp", "type": "gt", "threshold_value": 30, "notify_url": "https://example.com/hook"}`, string(body))
		w.Write([]byte(`{"id": "trg-1", "feed_id": "feed-1", "stream_name": "temp", "type": "gt", "threshold_value": 30, "notify_url": "https://example.com/hook"}`))
	})

	trigger, err := CreateTrigger(ctx, "feed-1", TriggerCreateOptions{
		StreamName: "temp",
		Type:       "gt",
		Threshold:  30,
		NotifyURL:  "https://example.com/hook",
	})
	assert.NoError(t, err)
	assert.Equal(t, "trg-1", trigger.ID)
}

func TestUpdateTrigger(t *testing.T) {
	ctx := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v2/feeds/feed-1/triggers/trg-1", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"threshold_value": 35}`, string(body))
		w.Write([]byte(`{"id": "trg-1", "threshold_value": 35}`))
	})

	trigger, err := UpdateTrigger(ctx, "feed-1", "trg-1", TriggerUpdateOptions{Threshold: 35})
	assert.NoError(t, err)
	assert.Equal(t, 35.0, trigger.Threshold)
}

func TestTestTrigger(t *testing.T) {
	ctx := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/feeds/feed-1/triggers/trg-1", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)
		w.WriteHeader(http.StatusOK)
	})

	assert.NoError(t, TestTrigger(ctx, "feed-1", "trg-1"))
}

func TestDeleteTrigger(t *testing.T) {
	ctx := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v2/feeds/feed-1/triggers/trg-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, DeleteTrigger(ctx, "feed-1", "trg-1"))
}

func TestTriggerErrorStatus(t *testing.T) {
	ctx := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"summary": "bad key"}`))
	})

	err := TestTrigger(ctx, "feed-1", "trg-1")
	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}
