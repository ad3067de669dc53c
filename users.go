package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/piaxar/splitwise-mcp/splitwise"
)

type UserSummary struct {
	ID                 int    `json:"id"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name,omitempty"`
	FullName           string `json:"full_name"`
	Email              string `json:"email,omitempty"`
	RegistrationStatus string `json:"registration_status,omitempty"`
}

type GetUsersInput struct{}

type GetUsersOutput struct {
	Users []UserSummary `json:"users"`
}

// GetUsers lists the current user's friends.
func (t *Toolset) GetUsers(ctx context.Context, req *mcp.CallToolRequest, input *GetUsersInput) (*mcp.CallToolResult, *GetUsersOutput, error) {
	if err := t.requireAPIKey(); err != nil {
		return nil, nil, err
	}

	client := splitwise.NewClient(t.cfg)
	defer client.Close()

	friends, err := client.GetFriends(ctx)
	if err != nil {
		return nil, nil, err
	}

	users := make([]UserSummary, 0, len(friends))
	for _, friend := range friends {
		users = append(users, UserSummary{
			ID:                 friend.ID,
			FirstName:          friend.FirstName,
			LastName:           friend.LastName,
			FullName:           fullName(friend.FirstName, friend.LastName),
			Email:              friend.Email,
			RegistrationStatus: friend.RegistrationStatus,
		})
	}
	return nil, &GetUsersOutput{Users: users}, nil
}

type GetCurrentUserInput struct{}

type GetCurrentUserOutput struct {
	ID                 int               `json:"id"`
	FirstName          string            `json:"first_name"`
	LastName           string            `json:"last_name,omitempty"`
	FullName           string            `json:"full_name"`
	Email              string            `json:"email,omitempty"`
	RegistrationStatus string            `json:"registration_status,omitempty"`
	Picture            map[string]string `json:"picture,omitempty"`
}

// GetCurrentUser returns the authenticated user's profile.
func (t *Toolset) GetCurrentUser(ctx context.Context, req *mcp.CallToolRequest, input *GetCurrentUserInput) (*mcp.CallToolResult, *GetCurrentUserOutput, error) {
	if err := t.requireAPIKey(); err != nil {
		return nil, nil, err
	}

	client := splitwise.NewClient(t.cfg)
	defer client.Close()

	user, err := client.GetCurrentUser(ctx)
	if err != nil {
		return nil, nil, err
	}

	output := &GetCurrentUserOutput{
		ID:                 user.ID,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		FullName:           fullName(user.FirstName, user.LastName),
		Email:              user.Email,
		RegistrationStatus: user.RegistrationStatus,
		Picture:            user.Picture,
	}
	return nil, output, nil
}
