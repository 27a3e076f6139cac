package surveymonkey

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListWebhooks(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/webhooks", r.URL.Path)
		w.Write([]byte(`{
			"data": [{"id": "w1", "name": "completed hook", "event_type": "response_completed"}],
			"total": 1
		}`))
	}))

	list, err := client.ListWebhooks(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "response_completed", list.Data[0].EventType)
}

func TestCreateWebhook(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/webhooks", r.URL.Path)

		var req CreateWebhookRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "completed hook", req.Name)
		assert.Equal(t, "response_completed", req.EventType)
		assert.Equal(t, "survey", req.ObjectType)
		assert.Equal(t, []string{"101"}, req.ObjectIDs)
		assert.Equal(t, "https://example.com/hook", req.SubscriptionURL)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "w9", "name": "completed hook", "event_type": "response_completed"}`))
	}))

	webhook, err := client.CreateWebhook(context.Background(), &CreateWebhookRequest{
		Name:            "completed hook",
		EventType:       "response_completed",
		ObjectType:      "survey",
		ObjectIDs:       []string{"101"},
		SubscriptionURL: "https://example.com/hook",
	})
	require.NoError(t, err)
	assert.Equal(t, "w9", webhook.ID)
}

func TestDeleteWebhook(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v3/webhooks/w9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.DeleteWebhook(context.Background(), "w9"))
}

func TestWebhookEvents(t *testing.T) {
	assert.Contains(t, WebhookEvents, "response_completed")
	assert.Contains(t, WebhookEvents, "app_uninstalled")
	assert.Len(t, WebhookEvents, 14)
}
