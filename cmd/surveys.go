package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gearplug/surveymonkey-go/filter"
)

// surveysCmd groups the survey inspection commands
var surveysCmd = &cobra.Command{
	Use:   "surveys",
	Short: "Browse surveys, pages and questions",
}

var surveysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List surveys matching the filter criteria",
	Long: `List all surveys in the account, optionally narrowed by a filter
expression evaluated against each survey, e.g.:

  smctl surveys list --filter 'contains(Survey.Title, "feedback")'
  smctl surveys list --filter 'Survey.ResponseCount > 100'`,
	RunE: runSurveysList,
}

var surveysShowCmd = &cobra.Command{
	Use:   "show <survey-id>",
	Short: "Show a survey's details",
	Args:  cobra.ExactArgs(1),
	RunE:  runSurveysShow,
}

var surveysPagesCmd = &cobra.Command{
	Use:   "pages <survey-id>",
	Short: "List a survey's pages",
	Args:  cobra.ExactArgs(1),
	RunE:  runSurveysPages,
}

var surveysQuestionsCmd = &cobra.Command{
	Use:   "questions <survey-id> <page-id>",
	Short: "List the questions on a survey page",
	Args:  cobra.ExactArgs(2),
	RunE:  runSurveysQuestions,
}

var showDetails bool

func init() {
	surveysListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	surveysListCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	surveysShowCmd.Flags().BoolVar(&showDetails, "details", false, "include pages and questions")

	surveysCmd.AddCommand(surveysListCmd)
	surveysCmd.AddCommand(surveysShowCmd)
	surveysCmd.AddCommand(surveysPagesCmd)
	surveysCmd.AddCommand(surveysQuestionsCmd)
}

func runSurveysList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	surveys, err := client.ListAllSurveys(ctx, nil)
	if err != nil {
		return err
	}

	// Apply the client-side filter if one was given
	expr, err := getFilterExpression()
	if err != nil {
		return err
	}
	if expr != "" {
		logger.Info().Str("filter", expr).Msg("Filtering surveys")

		f, err := filter.Compile(expr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		surveys, err = f.Apply(surveys)
		if err != nil {
			return err
		}
	}

	if len(surveys) == 0 {
		fmt.Println("No surveys found matching the filter criteria.")
		return nil
	}

	fmt.Printf("\nFound %d surveys:\n", len(surveys))
	fmt.Println(strings.Repeat("-", 80))

	for _, survey := range surveys {
		fmt.Printf("• %s (%s)\n", survey.Title, survey.ID)
		if survey.Nickname != "" {
			fmt.Printf("  Nickname: %s\n", survey.Nickname)
		}
		fmt.Printf("  Questions: %d  Responses: %d\n", survey.QuestionCount, survey.ResponseCount)
		if survey.DateModified != "" {
			fmt.Printf("  Modified: %s\n", survey.DateModified)
		}
	}

	return nil
}

func runSurveysShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	surveyID := args[0]

	if showDetails {
		survey, err := client.GetSurveyDetails(ctx, surveyID)
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n", survey.Title, survey.ID)
		for _, page := range survey.Pages {
			fmt.Printf("\nPage: %s (%s)\n", page.Title, page.ID)
			for _, question := range page.Questions {
				heading := ""
				if len(question.Headings) > 0 {
					heading = question.Headings[0].Heading
				}
				fmt.Printf("  %d. [%s/%s] %s\n", question.Position, question.Family, question.Subtype, heading)
			}
		}
		return nil
	}

	survey, err := client.GetSurvey(ctx, surveyID)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", survey.Title, survey.ID)
	fmt.Printf("- Language: %s\n", survey.Language)
	fmt.Printf("- Pages: %d\n", survey.PageCount)
	fmt.Printf("- Questions: %d\n", survey.QuestionCount)
	fmt.Printf("- Responses: %d\n", survey.ResponseCount)
	fmt.Printf("- Created: %s\n", survey.DateCreated)
	fmt.Printf("- Modified: %s\n", survey.DateModified)
	return nil
}

func runSurveysPages(cmd *cobra.Command, args []string) error {
	pages, err := client.ListPages(context.Background(), args[0])
	if err != nil {
		return err
	}

	for _, page := range pages.Data {
		fmt.Printf("• %s (%s) — %d questions\n", page.Title, page.ID, page.QuestionCount)
	}
	return nil
}

func runSurveysQuestions(cmd *cobra.Command, args []string) error {
	questions, err := client.ListQuestions(context.Background(), args[0], args[1])
	if err != nil {
		return err
	}

	for _, question := range questions.Data {
		heading := ""
		if len(question.Headings) > 0 {
			heading = question.Headings[0].Heading
		}
		fmt.Printf("• %s [%s/%s] %s\n", question.ID, question.Family, question.Subtype, heading)
	}
	return nil
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset > default
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if presetExpr, ok := cfg.Filter.Presets[preset]; ok {
			return presetExpr, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return cfg.Filter.DefaultExpression, nil
}
