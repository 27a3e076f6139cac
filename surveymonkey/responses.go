package surveymonkey

import (
	"context"
	"fmt"
	"net/url"
)

// ListResponses returns one page of a survey's responses without answer data.
func (c *Client) ListResponses(ctx context.Context, surveyID string, params url.Values) (*ResponseList, error) {
	var list ResponseList
	endpoint := fmt.Sprintf("/surveys/%s/responses", surveyID)
	if err := c.get(ctx, endpoint, params, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ListResponsesBulk returns fully expanded responses including the answers to
// all questions. The params are forwarded verbatim; see the API documentation
// for the accepted filters (status, start_created_at, sort_by, ...).
func (c *Client) ListResponsesBulk(ctx context.Context, surveyID string, params url.Values) (*ResponseList, error) {
	var list ResponseList
	endpoint := fmt.Sprintf("/surveys/%s/responses/bulk", surveyID)
	if err := c.get(ctx, endpoint, params, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetResponseDetails returns a single response expanded with the respondent's
// answers to every question.
func (c *Client) GetResponseDetails(ctx context.Context, surveyID, responseID string) (*Response, error) {
	var response Response
	endpoint := fmt.Sprintf("/surveys/%s/responses/%s/details", surveyID, responseID)
	if err := c.get(ctx, endpoint, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
