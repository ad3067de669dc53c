package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/shopspring/decimal"

	"github.com/piaxar/splitwise-mcp/splitwise"
)

type AddExpenseInput struct {
	Cost         string                 `json:"cost" jsonschema_description:"total cost of the expense as a decimal string (e.g. \"25.50\")"`
	Description  string                 `json:"description" jsonschema_description:"description of the expense"`
	GroupID      int                    `json:"group_id,omitempty" jsonschema_description:"group to add the expense to"`
	Users        []splitwise.ShareInput `json:"users,omitempty" jsonschema_description:"per-user shares of the expense"`
	CurrencyCode string                 `json:"currency_code,omitempty" jsonschema_description:"currency code (default USD)"`
	Date         string                 `json:"date,omitempty" jsonschema_description:"date of the expense in YYYY-MM-DD format"`
	Details      string                 `json:"details,omitempty" jsonschema_description:"additional details about the expense"`
	Payment      bool                   `json:"payment,omitempty" jsonschema_description:"true when this is a settlement payment rather than an expense"`
	CategoryID   int                    `json:"category_id,omitempty" jsonschema_description:"category for the expense"`
}

type AddExpenseOutput struct {
	ID           int    `json:"id"`
	Description  string `json:"description"`
	Cost         string `json:"cost"`
	CurrencyCode string `json:"currency_code"`
	Date         string `json:"date"`
	GroupID      int    `json:"group_id"`
	CreatedAt    string `json:"created_at"`
	Success      bool   `json:"success"`
}

func (t *Toolset) AddExpense(ctx context.Context, req *mcp.CallToolRequest, input *AddExpenseInput) (*mcp.CallToolResult, *AddExpenseOutput, error) {
	if err := t.requireAPIKey(); err != nil {
		return nil, nil, err
	}

	cost := strings.TrimSpace(input.Cost)
	if cost == "" {
		return nil, nil, errors.New("cost is required")
	}
	// Syntax check only; the string itself goes on the wire so upstream
	// precision is preserved.
	if _, err := decimal.NewFromString(cost); err != nil {
		return nil, nil, fmt.Errorf("invalid cost %q: expected a decimal amount like \"25.50\"", input.Cost)
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, nil, errors.New("description is required")
	}

	currency := input.CurrencyCode
	if currency == "" {
		currency = "USD"
	}

	client := splitwise.NewClient(t.cfg)
	defer client.Close()

	expense, err := client.CreateExpense(ctx, splitwise.CreateExpenseParams{
		Cost:         cost,
		Description:  input.Description,
		GroupID:      input.GroupID,
		Users:        input.Users,
		CurrencyCode: currency,
		Date:         input.Date,
		Details:      input.Details,
		Payment:      input.Payment,
		CategoryID:   input.CategoryID,
	})
	if err != nil {
		return nil, nil, err
	}

	slog.Debug("created expense", "expense_id", expense.ID, "group_id", expense.GroupID)

	output := &AddExpenseOutput{
		ID:           expense.ID,
		Description:  expense.Description,
		Cost:         expense.Cost,
		CurrencyCode: expense.CurrencyCode,
		Date:         expense.Date,
		GroupID:      expense.GroupID,
		CreatedAt:    expense.CreatedAt,
		Success:      true,
	}
	return nil, output, nil
}
