package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/piaxar/splitwise-mcp/splitwise"
)

type MemberSummary struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	FullName  string `json:"full_name"`
	Email     string `json:"email,omitempty"`
}

type GroupSummary struct {
	ID                int             `json:"id"`
	Name              string          `json:"name"`
	CreatedAt         string          `json:"created_at"`
	UpdatedAt         string          `json:"updated_at"`
	MemberCount       int             `json:"member_count"`
	Members           []MemberSummary `json:"members"`
	SimplifyByDefault bool            `json:"simplify_by_default"`
}

type GetGroupsInput struct{}

type GetGroupsOutput struct {
	Groups []GroupSummary `json:"groups"`
}

// GetGroups lists the current user's groups with their members. Debt records
// are not part of the projection.
func (t *Toolset) GetGroups(ctx context.Context, req *mcp.CallToolRequest, input *GetGroupsInput) (*mcp.CallToolResult, *GetGroupsOutput, error) {
	if err := t.requireAPIKey(); err != nil {
		return nil, nil, err
	}

	client := splitwise.NewClient(t.cfg)
	defer client.Close()

	list, err := client.GetGroups(ctx)
	if err != nil {
		return nil, nil, err
	}

	groups := make([]GroupSummary, 0, len(list))
	for _, group := range list {
		members := make([]MemberSummary, 0, len(group.Members))
		for _, member := range group.Members {
			members = append(members, MemberSummary{
				ID:        member.ID,
				FirstName: member.FirstName,
				LastName:  member.LastName,
				FullName:  fullName(member.FirstName, member.LastName),
				Email:     member.Email,
			})
		}
		groups = append(groups, GroupSummary{
			ID:                group.ID,
			Name:              group.Name,
			CreatedAt:         group.CreatedAt,
			UpdatedAt:         group.UpdatedAt,
			MemberCount:       len(group.Members),
			Members:           members,
			SimplifyByDefault: group.SimplifyByDefault,
		})
	}
	return nil, &GetGroupsOutput{Groups: groups}, nil
}
