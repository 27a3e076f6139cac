package surveymonkey

import (
	"context"
	"fmt"
)

// GetGroups returns the team the user account belongs to, if any. Users can
// only belong to one team.
func (c *Client) GetGroups(ctx context.Context) (*GroupList, error) {
	var list GroupList
	if err := c.get(ctx, "/groups", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetGroup returns a team's details including the owner and email address.
func (c *Client) GetGroup(ctx context.Context, groupID string) (*Group, error) {
	var group Group
	endpoint := fmt.Sprintf("/groups/%s", groupID)
	if err := c.get(ctx, endpoint, nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// GetGroupMembers returns the users who are members of the specified group.
func (c *Client) GetGroupMembers(ctx context.Context, groupID string) (*MemberList, error) {
	var list MemberList
	endpoint := fmt.Sprintf("/groups/%s/members", groupID)
	if err := c.get(ctx, endpoint, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetGroupMember returns a group member's details including role and status.
func (c *Client) GetGroupMember(ctx context.Context, groupID, memberID string) (*Member, error) {
	var member Member
	endpoint := fmt.Sprintf("/groups/%s/members/%s", groupID, memberID)
	if err := c.get(ctx, endpoint, nil, &member); err != nil {
		return nil, err
	}
	return &member, nil
}
