package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/piaxar/splitwise-mcp/splitwise"
)

func main() {
	// A missing .env just means the settings come from the process
	// environment.
	_ = godotenv.Load()

	// stdout carries the MCP transport, so all diagnostics go to stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	})))

	tools := NewToolset(splitwise.ConfigFromEnv())

	server := mcp.NewServer(&mcp.Implementation{Name: "splitwise", Version: "v1.0.0"}, nil)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_expense",
		Description: "Add a new expense to Splitwise with user splitting support",
		InputSchema: addExpenseInputSchema,
	}, tools.AddExpense)
	mcp.AddTool(server, &mcp.Tool{Name: "get_users", Description: "Get all users (friends) from Splitwise"}, tools.GetUsers)
	mcp.AddTool(server, &mcp.Tool{Name: "get_groups", Description: "Get all groups from Splitwise"}, tools.GetGroups)
	mcp.AddTool(server, &mcp.Tool{Name: "get_current_user", Description: "Get current user information from Splitwise"}, tools.GetCurrentUser)

	log.Printf("Running mcp server...\n")
	// Run the server over stdin/stdout until the client disconnects
	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}

func logLevel() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
