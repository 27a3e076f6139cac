package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gearplug/surveymonkey-go/surveymonkey"
)

// webhooksCmd groups the webhook subscription commands
var webhooksCmd = &cobra.Command{
	Use:   "webhooks",
	Short: "Manage webhook subscriptions",
}

var webhooksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List webhook subscriptions",
	RunE:  runWebhooksList,
}

var webhooksCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Subscribe a callback URL to an event",
	RunE:  runWebhooksCreate,
}

var webhooksDeleteCmd = &cobra.Command{
	Use:   "delete <webhook-id>",
	Short: "Delete a webhook subscription",
	Args:  cobra.ExactArgs(1),
	RunE:  runWebhooksDelete,
}

var webhooksEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the events a webhook can subscribe to",
	Run: func(cmd *cobra.Command, args []string) {
		for _, event := range surveymonkey.WebhookEvents {
			fmt.Println(event)
		}
	},
}

var (
	webhookName      string
	webhookEvent     string
	webhookObject    string
	webhookObjectIDs []string
	webhookURL       string
)

func init() {
	webhooksCreateCmd.Flags().StringVar(&webhookName, "name", "", "webhook name")
	webhooksCreateCmd.Flags().StringVar(&webhookEvent, "event", "", "event type (see 'webhooks events')")
	webhooksCreateCmd.Flags().StringVar(&webhookObject, "object-type", "survey", "object type the subscription applies to")
	webhooksCreateCmd.Flags().StringSliceVar(&webhookObjectIDs, "object-ids", nil, "object ids the subscription applies to")
	webhooksCreateCmd.Flags().StringVar(&webhookURL, "url", "", "callback URL")
	webhooksCreateCmd.MarkFlagRequired("name")
	webhooksCreateCmd.MarkFlagRequired("event")
	webhooksCreateCmd.MarkFlagRequired("url")

	webhooksCmd.AddCommand(webhooksListCmd)
	webhooksCmd.AddCommand(webhooksCreateCmd)
	webhooksCmd.AddCommand(webhooksDeleteCmd)
	webhooksCmd.AddCommand(webhooksEventsCmd)
}

func runWebhooksList(cmd *cobra.Command, args []string) error {
	list, err := client.ListWebhooks(context.Background())
	if err != nil {
		return err
	}

	if len(list.Data) == 0 {
		fmt.Println("No webhooks configured.")
		return nil
	}

	for _, webhook := range list.Data {
		fmt.Printf("• %s (%s)\n", webhook.Name, webhook.ID)
		fmt.Printf("  Event: %s\n", webhook.EventType)
		if len(webhook.ObjectIDs) > 0 {
			fmt.Printf("  Objects: %s (%s)\n", strings.Join(webhook.ObjectIDs, ", "), webhook.ObjectType)
		}
		fmt.Printf("  URL: %s\n", webhook.SubscriptionURL)
	}
	return nil
}

func runWebhooksCreate(cmd *cobra.Command, args []string) error {
	webhook, err := client.CreateWebhook(context.Background(), &surveymonkey.CreateWebhookRequest{
		Name:            webhookName,
		EventType:       webhookEvent,
		ObjectType:      webhookObject,
		ObjectIDs:       webhookObjectIDs,
		SubscriptionURL: webhookURL,
	})
	if err != nil {
		return err
	}

	logger.Info().Str("id", webhook.ID).Msg("Webhook created")
	fmt.Printf("Created webhook %s\n", webhook.ID)
	return nil
}

func runWebhooksDelete(cmd *cobra.Command, args []string) error {
	if err := client.DeleteWebhook(context.Background(), args[0]); err != nil {
		return err
	}

	logger.Info().Str("id", args[0]).Msg("Webhook deleted")
	fmt.Printf("Deleted webhook %s\n", args[0])
	return nil
}
