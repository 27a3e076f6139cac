package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// authCmd groups the OAuth commands
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Complete the OAuth2 authorization flow",
	Long: `Commands for the OAuth2 authorization-code flow: generate the URL the
user must visit to authorize the app, then exchange the returned code for an
access token.`,
}

var authURLCmd = &cobra.Command{
	Use:   "url",
	Short: "Print the authorization URL",
	Long:  `Print the URL the user must visit to authorize the app.`,
	RunE:  runAuthURL,
}

var authExchangeCmd = &cobra.Command{
	Use:   "exchange <code>",
	Short: "Exchange an authorization code for an access token",
	Long: `Exchange the authorization code returned to the redirect URI for an
access token. Store the token under auth.access_token in the config file to
use it for subsequent commands.`,
	Args: cobra.ExactArgs(1),
	RunE: runAuthExchange,
}

func init() {
	authCmd.AddCommand(authURLCmd)
	authCmd.AddCommand(authExchangeCmd)
}

func runAuthURL(cmd *cobra.Command, args []string) error {
	fmt.Println(client.AuthCodeURL())
	return nil
}

func runAuthExchange(cmd *cobra.Command, args []string) error {
	token, err := client.ExchangeCode(context.Background(), args[0])
	if err != nil {
		return err
	}

	logger.Info().Msg("Authorization code exchanged successfully")

	fmt.Printf("Access token: %s\n", token.AccessToken)
	if !token.Expiry.IsZero() {
		fmt.Printf("Expires: %s\n", token.Expiry.Format("2006-01-02 15:04:05"))
	}
	fmt.Println("\nAdd the token to your config file under auth.access_token.")
	return nil
}
