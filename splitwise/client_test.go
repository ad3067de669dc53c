package splitwise

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	t.Cleanup(client.Close)
	return client
}

func TestGetCurrentUser(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/get_current_user", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"user":{"id":42,"first_name":"Siddharth","last_name":"Patel","email":"sid@example.com","registration_status":"confirmed","picture":{"small":"https://example.com/s.png"}}}`))
	}))

	user, err := client.GetCurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, user.ID)
	assert.Equal(t, "Siddharth", user.FirstName)
	assert.Equal(t, "Patel", user.LastName)
	assert.Equal(t, "sid@example.com", user.Email)
	assert.Equal(t, "confirmed", user.RegistrationStatus)
	assert.Equal(t, "https://example.com/s.png", user.Picture["small"])
}

func TestGetFriends(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get_friends", r.URL.Path)
		_, _ = w.Write([]byte(`{"friends":[{"id":1,"first_name":"Ada"},{"id":2,"first_name":"Bob","last_name":"Stone"}]}`))
	}))

	friends, err := client.GetFriends(context.Background())
	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, "Ada", friends[0].FirstName)
	assert.Empty(t, friends[0].LastName)
	assert.Equal(t, "Stone", friends[1].LastName)
}

func TestGetGroupsZeroMembers(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get_groups", r.URL.Path)
		_, _ = w.Write([]byte(`{"groups":[{"id":7,"name":"Empty house","created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-02T00:00:00Z","members":[],"simplify_by_default":true,"original_debts":[],"simplified_debts":[]}]}`))
	}))

	groups, err := client.GetGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Empty house", groups[0].Name)
	assert.Empty(t, groups[0].Members)
	assert.True(t, groups[0].SimplifyByDefault)
}

func TestCreateExpenseFlattensShares(t *testing.T) {
	var payload map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/create_expense", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		_, _ = w.Write([]byte(`{"expense":{"id":100,"group_id":0,"description":"dinner","payment":false,"cost":"10.00","currency_code":"USD","date":"2026-08-25","created_at":"2026-08-25T01:02:03Z","updated_at":"2026-08-25T01:02:03Z","users":[],"repayments":[]}}`))
	}))

	uid1, uid2 := 1, 2
	paid, owed := "5.00", "5.00"
	expense, err := client.CreateExpense(context.Background(), CreateExpenseParams{
		Cost:         "10.00",
		Description:  "dinner",
		CurrencyCode: "USD",
		Users: []ShareInput{
			{UserID: &uid1, PaidShare: &paid},
			{UserID: &uid2, OwedShare: &owed},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, expense.ID)
	assert.Equal(t, "10.00", expense.Cost)

	assert.Equal(t, float64(1), payload["users__0__user_id"])
	assert.Equal(t, "5.00", payload["users__0__paid_share"])
	assert.Equal(t, float64(2), payload["users__1__user_id"])
	assert.Equal(t, "5.00", payload["users__1__owed_share"])
	assert.NotContains(t, payload, "users__0__owed_share")
	assert.NotContains(t, payload, "users__1__paid_share")
}

func TestCreateExpenseOmitsUnsetOptionals(t *testing.T) {
	var payload map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		_, _ = w.Write([]byte(`{"expense":{"id":101,"description":"coffee","cost":"3.75","currency_code":"USD","users":[],"repayments":[]}}`))
	}))

	_, err := client.CreateExpense(context.Background(), CreateExpenseParams{
		Cost:         "3.75",
		Description:  "coffee",
		CurrencyCode: "USD",
	})
	require.NoError(t, err)

	assert.Equal(t, "3.75", payload["cost"])
	assert.Equal(t, "coffee", payload["description"])
	assert.Equal(t, "USD", payload["currency_code"])
	assert.Equal(t, false, payload["payment"])
	for _, key := range []string{"group_id", "date", "details", "category_id"} {
		assert.NotContains(t, payload, key)
	}
}

func TestCreateExpenseIncludesSetOptionals(t *testing.T) {
	var payload map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		_, _ = w.Write([]byte(`{"expense":{"id":102,"group_id":9,"description":"rent","cost":"800","currency_code":"EUR","users":[],"repayments":[]}}`))
	}))

	_, err := client.CreateExpense(context.Background(), CreateExpenseParams{
		Cost:         "800",
		Description:  "rent",
		CurrencyCode: "EUR",
		GroupID:      9,
		Date:         "2026-08-01",
		Details:      "august",
		CategoryID:   3,
		Payment:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(9), payload["group_id"])
	assert.Equal(t, "2026-08-01", payload["date"])
	assert.Equal(t, "august", payload["details"])
	assert.Equal(t, float64(3), payload["category_id"])
	assert.Equal(t, true, payload["payment"])
}

func TestCreateExpenseMissingTopLevelKey(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":{}}`))
	}))

	_, err := client.CreateExpense(context.Background(), CreateExpenseParams{
		Cost: "1.00", Description: "x", CurrencyCode: "USD",
	})
	require.Error(t, err)
	assert.True(t, IsMalformedResponseError(err))

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Contains(t, apiErr.Body, "errors")
}

func TestTransportErrorCarriesStatusAndPayload(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"upstream exploded"}`))
	}))

	_, err := client.GetGroups(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransportError(err))

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.HTTPStatus)
	assert.Equal(t, "upstream exploded", apiErr.Message)
}

func TestRejectedCredentialIsAuthenticationError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid API request: you are not logged in"}`))
	}))

	_, err := client.GetCurrentUser(context.Background())
	require.Error(t, err)
	assert.True(t, IsAuthenticationError(err))

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.HTTPStatus)
}

func TestSchemaMismatchNamesField(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user":{"id":"not-a-number","first_name":"Ada"}}`))
	}))

	_, err := client.GetCurrentUser(context.Background())
	require.Error(t, err)
	assert.True(t, IsSchemaValidationError(err))

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "id", apiErr.Field)
}

func TestMissingAPIKeyFailsBeforeRequest(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Config{BaseURL: srv.URL})
	defer client.Close()

	_, err := client.GetCurrentUser(context.Background())
	require.Error(t, err)
	assert.True(t, IsAuthenticationError(err))

	_, err = client.CreateExpense(context.Background(), CreateExpenseParams{Cost: "1", Description: "x", CurrencyCode: "USD"})
	require.Error(t, err)
	assert.True(t, IsAuthenticationError(err))

	assert.Zero(t, requests)
}
