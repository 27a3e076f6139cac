package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

// responsesCmd groups the response commands
var responsesCmd = &cobra.Command{
	Use:   "responses",
	Short: "List and export survey responses",
}

var responsesListCmd = &cobra.Command{
	Use:   "list <survey-id>",
	Short: "List a survey's responses",
	Args:  cobra.ExactArgs(1),
	RunE:  runResponsesList,
}

var responsesExportCmd = &cobra.Command{
	Use:   "export <survey-id>...",
	Short: "Export expanded responses for one or more surveys as JSON",
	Long: `Export the fully expanded responses, including answers to all
questions, for the given surveys. Surveys are fetched concurrently and the
result is written to stdout as a JSON object keyed by survey id.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResponsesExport,
}

var exportStatus string

func init() {
	responsesExportCmd.Flags().StringVar(&exportStatus, "status", "", "only export responses with this status (e.g. completed)")

	responsesCmd.AddCommand(responsesListCmd)
	responsesCmd.AddCommand(responsesExportCmd)
}

func runResponsesList(cmd *cobra.Command, args []string) error {
	list, err := client.ListResponses(context.Background(), args[0], nil)
	if err != nil {
		return err
	}

	if len(list.Data) == 0 {
		fmt.Println("No responses found.")
		return nil
	}

	fmt.Printf("Responses: %d of %d\n", len(list.Data), list.Total)
	for _, response := range list.Data {
		fmt.Printf("• %s", response.ID)
		if response.ResponseStatus != "" {
			fmt.Printf(" [%s]", response.ResponseStatus)
		}
		if response.DateCreated != "" {
			fmt.Printf(" %s", response.DateCreated)
		}
		fmt.Println()
	}
	return nil
}

func runResponsesExport(cmd *cobra.Command, args []string) error {
	params := url.Values{}
	status := exportStatus
	if status == "" {
		status = cfg.Export.Status
	}
	if status != "" {
		params.Set("status", status)
	}

	logger.Info().
		Int("surveys", len(args)).
		Str("status", status).
		Msg("Exporting survey responses")

	results, err := client.ExportResponses(context.Background(), args, params)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return nil
}
