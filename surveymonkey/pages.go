package surveymonkey

import (
	"context"
	"fmt"
)

// ListPages returns a survey's pages.
func (c *Client) ListPages(ctx context.Context, surveyID string) (*PageList, error) {
	var list PageList
	endpoint := fmt.Sprintf("/surveys/%s/pages", surveyID)
	if err := c.get(ctx, endpoint, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreatePage creates a new, empty page on a survey.
func (c *Client) CreatePage(ctx context.Context, surveyID string, req *PageRequest) (*Page, error) {
	var page Page
	endpoint := fmt.Sprintf("/surveys/%s/pages", surveyID)
	if err := c.post(ctx, endpoint, req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetPage returns a page's details.
func (c *Client) GetPage(ctx context.Context, surveyID, pageID string) (*Page, error) {
	var page Page
	endpoint := fmt.Sprintf("/surveys/%s/pages/%s", surveyID, pageID)
	if err := c.get(ctx, endpoint, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ModifyPage modifies a page's title, description or position.
func (c *Client) ModifyPage(ctx context.Context, surveyID, pageID string, req *PageRequest) (*Page, error) {
	var page Page
	endpoint := fmt.Sprintf("/surveys/%s/pages/%s", surveyID, pageID)
	if err := c.patch(ctx, endpoint, req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// DeletePage deletes a page.
func (c *Client) DeletePage(ctx context.Context, surveyID, pageID string) error {
	return c.delete(ctx, fmt.Sprintf("/surveys/%s/pages/%s", surveyID, pageID))
}
