package surveymonkey

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ListSurveysOptions narrows and pages the survey list.
type ListSurveysOptions struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string
	Title     string
	FolderID  string
}

func (o *ListSurveysOptions) values() url.Values {
	params := url.Values{}
	if o == nil {
		return params
	}
	if o.Page > 0 {
		params.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(o.PerPage))
	}
	if o.SortBy != "" {
		params.Set("sort_by", o.SortBy)
	}
	if o.SortOrder != "" {
		params.Set("sort_order", o.SortOrder)
	}
	if o.Title != "" {
		params.Set("title", o.Title)
	}
	if o.FolderID != "" {
		params.Set("folder_id", o.FolderID)
	}
	return params
}

// ListSurveys returns one page of the user's surveys.
func (c *Client) ListSurveys(ctx context.Context, opts *ListSurveysOptions) (*SurveyList, error) {
	var list SurveyList
	if err := c.get(ctx, "/surveys", opts.values(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ListAllSurveys follows the paging links and returns every survey matching
// the options.
func (c *Client) ListAllSurveys(ctx context.Context, opts *ListSurveysOptions) ([]Survey, error) {
	pageOpts := ListSurveysOptions{PerPage: 100}
	if opts != nil {
		pageOpts = *opts
		if pageOpts.PerPage == 0 {
			pageOpts.PerPage = 100
		}
	}
	pageOpts.Page = 1

	var all []Survey
	for {
		list, err := c.ListSurveys(ctx, &pageOpts)
		if err != nil {
			return nil, fmt.Errorf("failed to list surveys page %d: %w", pageOpts.Page, err)
		}
		all = append(all, list.Data...)

		c.logger.Debug().
			Int("page", pageOpts.Page).
			Int("count", len(list.Data)).
			Int("total", len(all)).
			Msg("Retrieved surveys")

		if len(list.Data) == 0 || len(all) >= list.Total || list.Links.Next == "" {
			break
		}
		pageOpts.Page++
	}
	return all, nil
}

// GetSurvey returns a survey's summary details.
func (c *Client) GetSurvey(ctx context.Context, surveyID string) (*Survey, error) {
	var survey Survey
	endpoint := fmt.Sprintf("/surveys/%s", surveyID)
	if err := c.get(ctx, endpoint, nil, &survey); err != nil {
		return nil, err
	}
	return &survey, nil
}

// GetSurveyDetails returns a survey expanded with its pages and questions.
func (c *Client) GetSurveyDetails(ctx context.Context, surveyID string) (*Survey, error) {
	var survey Survey
	endpoint := fmt.Sprintf("/surveys/%s/details", surveyID)
	if err := c.get(ctx, endpoint, nil, &survey); err != nil {
		return nil, err
	}
	return &survey, nil
}

// CreateSurvey creates a new survey: blank, from a template, or copied from an
// existing survey, depending on the request fields.
func (c *Client) CreateSurvey(ctx context.Context, req *CreateSurveyRequest) (*Survey, error) {
	var survey Survey
	if err := c.post(ctx, "/surveys", req, &survey); err != nil {
		return nil, err
	}
	return &survey, nil
}

// ModifySurvey modifies a survey's title, nickname or language.
func (c *Client) ModifySurvey(ctx context.Context, surveyID string, req *ModifySurveyRequest) (*Survey, error) {
	var survey Survey
	endpoint := fmt.Sprintf("/surveys/%s", surveyID)
	if err := c.patch(ctx, endpoint, req, &survey); err != nil {
		return nil, err
	}
	return &survey, nil
}

// DeleteSurvey deletes a survey.
func (c *Client) DeleteSurvey(ctx context.Context, surveyID string) error {
	return c.delete(ctx, fmt.Sprintf("/surveys/%s", surveyID))
}

// GetSurveyCategories returns the survey categories usable to filter templates.
func (c *Client) GetSurveyCategories(ctx context.Context) (*CategoryList, error) {
	var list CategoryList
	if err := c.get(ctx, "/survey_categories", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetSurveyTemplates returns the survey templates. Template ids can be used
// as an argument when creating a new survey.
func (c *Client) GetSurveyTemplates(ctx context.Context) (*TemplateList, error) {
	var list TemplateList
	if err := c.get(ctx, "/survey_templates", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetSurveyLanguages returns the languages available to generate translations
// for multilingual surveys.
func (c *Client) GetSurveyLanguages(ctx context.Context) (*LanguageList, error) {
	var list LanguageList
	if err := c.get(ctx, "/survey_languages", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetSurveyTranslations returns a survey's existing translations.
func (c *Client) GetSurveyTranslations(ctx context.Context, surveyID string) (*TranslationList, error) {
	var list TranslationList
	endpoint := fmt.Sprintf("/surveys/%s/languages", surveyID)
	if err := c.get(ctx, endpoint, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ListSurveyFolders returns the available survey folders.
func (c *Client) ListSurveyFolders(ctx context.Context) (*FolderList, error) {
	var list FolderList
	if err := c.get(ctx, "/survey_folders", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateSurveyFolder creates a new survey folder.
func (c *Client) CreateSurveyFolder(ctx context.Context, req *CreateFolderRequest) (*Folder, error) {
	var folder Folder
	if err := c.post(ctx, "/survey_folders", req, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}
