package surveymonkey

import (
	"context"
	"fmt"
)

// GetMe returns the authenticated user's account details, including their plan.
func (c *Client) GetMe(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserWorkgroups returns the workgroups a specific user is in.
func (c *Client) GetUserWorkgroups(ctx context.Context, userID string) (*WorkgroupList, error) {
	var list WorkgroupList
	endpoint := fmt.Sprintf("/users/%s/workgroups", userID)
	if err := c.get(ctx, endpoint, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetUserShared returns the resources shared with a user across all workgroups.
func (c *Client) GetUserShared(ctx context.Context, userID string) (*SharedResourceList, error) {
	var list SharedResourceList
	endpoint := fmt.Sprintf("/users/%s/shared", userID)
	if err := c.get(ctx, endpoint, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
