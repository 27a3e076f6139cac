package surveymonkey

import (
	"context"
	"fmt"
)

// WebhookEvents lists the events a webhook can subscribe to.
var WebhookEvents = []string{
	"response_completed",
	"response_disqualified",
	"response_updated",
	"response_created",
	"response_deleted",
	"response_overquota",
	"survey_created",
	"survey_updated",
	"survey_deleted",
	"collector_created",
	"collector_updated",
	"collector_deleted",
	"app_installed",
	"app_uninstalled",
}

// ListWebhooks returns the created webhook subscriptions.
func (c *Client) ListWebhooks(ctx context.Context) (*WebhookList, error) {
	var list WebhookList
	if err := c.get(ctx, "/webhooks", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateWebhook subscribes a callback URL to an event.
func (c *Client) CreateWebhook(ctx context.Context, req *CreateWebhookRequest) (*Webhook, error) {
	var webhook Webhook
	if err := c.post(ctx, "/webhooks", req, &webhook); err != nil {
		return nil, err
	}
	return &webhook, nil
}

// DeleteWebhook removes a webhook subscription.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) error {
	return c.delete(ctx, fmt.Sprintf("/webhooks/%s", webhookID))
}
