package splitwise

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const requestTimeout = 30 * time.Second

// Client talks to the Splitwise API. A Client is scoped to a single tool
// invocation: create it, make the call, and Close it on every exit path.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient builds a client from the given config. The underlying HTTP
// client applies a fixed 30-second timeout; requests are never retried.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: requestTimeout},
	}
}

// Close releases the connections pooled by the client.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

func (c *Client) headers() (http.Header, error) {
	if c.cfg.APIKey == "" {
		return nil, &APIError{
			Kind:    KindAuthentication,
			Message: "API key is required; OAuth flow not implemented",
		}
	}
	h := http.Header{}
	h.Set("Authorization", "Bearer "+c.cfg.APIKey)
	h.Set("Content-Type", "application/json")
	return h, nil
}

// do issues a single request and returns the raw body of a successful
// response.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	headers, err := c.headers()
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s payload: %w", path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.baseURL()+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header = headers

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &APIError{Kind: KindTransport, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{
			Kind:       KindTransport,
			HTTPStatus: resp.StatusCode,
			Message:    "read response body",
			Cause:      err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		kind := KindTransport
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			kind = KindAuthentication
		}
		return nil, &APIError{
			Kind:       kind,
			HTTPStatus: resp.StatusCode,
			Message:    upstreamErrorMessage(raw),
			Body:       string(raw),
		}
	}
	return raw, nil
}

// upstreamErrorMessage pulls the error payload out of a failed response.
func upstreamErrorMessage(raw []byte) string {
	var payload struct {
		Error  string          `json:"error"`
		Errors json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if len(payload.Errors) > 0 && string(payload.Errors) != "null" {
			return string(payload.Errors)
		}
	}
	return "API request failed"
}

// decodeEnvelope checks the response for the expected top-level key and
// decodes its value into out. A field-shape mismatch names the offending
// field.
func decodeEnvelope(raw []byte, key string, out any) error {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return &APIError{
			Kind:    KindMalformedResponse,
			Message: "response is not a JSON object",
			Body:    string(raw),
			Cause:   err,
		}
	}
	inner, ok := envelope[key]
	if !ok {
		return &APIError{
			Kind:    KindMalformedResponse,
			Message: fmt.Sprintf("missing %q key in response", key),
			Body:    string(raw),
		}
	}
	if err := json.Unmarshal(inner, out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				field = key
			}
			return &APIError{
				Kind:    KindSchemaValidation,
				Field:   field,
				Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
				Cause:   err,
			}
		}
		return &APIError{Kind: KindSchemaValidation, Field: key, Message: "undecodable payload", Cause: err}
	}
	return nil
}

// GetCurrentUser fetches the authenticated user's profile.
func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	raw, err := c.do(ctx, http.MethodGet, "/get_current_user", nil)
	if err != nil {
		return nil, err
	}
	var user User
	if err := decodeEnvelope(raw, "user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetGroups lists the current user's groups.
func (c *Client) GetGroups(ctx context.Context) ([]Group, error) {
	raw, err := c.do(ctx, http.MethodGet, "/get_groups", nil)
	if err != nil {
		return nil, err
	}
	var groups []Group
	if err := decodeEnvelope(raw, "groups", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// GetFriends lists the current user's friends.
func (c *Client) GetFriends(ctx context.Context) ([]User, error) {
	raw, err := c.do(ctx, http.MethodGet, "/get_friends", nil)
	if err != nil {
		return nil, err
	}
	var friends []User
	if err := decodeEnvelope(raw, "friends", &friends); err != nil {
		return nil, err
	}
	return friends, nil
}

// CreateExpense creates a single expense. Share entries are flattened into
// the indexed users__<i>__* fields the upstream API expects.
func (c *Client) CreateExpense(ctx context.Context, params CreateExpenseParams) (*Expense, error) {
	raw, err := c.do(ctx, http.MethodPost, "/create_expense", expensePayload(params))
	if err != nil {
		return nil, err
	}
	var expense Expense
	if err := decodeEnvelope(raw, "expense", &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

// expensePayload builds the create_expense body. Optional fields are omitted
// entirely when unset, never sent as null.
func expensePayload(p CreateExpenseParams) map[string]any {
	payload := map[string]any{
		"cost":          p.Cost,
		"description":   p.Description,
		"currency_code": p.CurrencyCode,
		"payment":       p.Payment,
	}
	if p.GroupID != 0 {
		payload["group_id"] = p.GroupID
	}
	if p.Date != "" {
		payload["date"] = p.Date
	}
	if p.Details != "" {
		payload["details"] = p.Details
	}
	if p.CategoryID != 0 {
		payload["category_id"] = p.CategoryID
	}
	for i, share := range p.Users {
		if share.UserID != nil {
			payload[fmt.Sprintf("users__%d__user_id", i)] = *share.UserID
		}
		if share.PaidShare != nil {
			payload[fmt.Sprintf("users__%d__paid_share", i)] = *share.PaidShare
		}
		if share.OwedShare != nil {
			payload[fmt.Sprintf("users__%d__owed_share", i)] = *share.OwedShare
		}
	}
	return payload
}
