package splitwise

import "encoding/json"

// User is a Splitwise user as returned by the API.
type User struct {
	ID                 int               `json:"id"`
	FirstName          string            `json:"first_name"`
	LastName           string            `json:"last_name,omitempty"`
	Email              string            `json:"email,omitempty"`
	RegistrationStatus string            `json:"registration_status,omitempty"`
	Picture            map[string]string `json:"picture,omitempty"`
}

// Group is a Splitwise group. The debt lists keep the raw upstream shape;
// nothing here interprets them.
type Group struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	CreatedAt         string            `json:"created_at"`
	UpdatedAt         string            `json:"updated_at"`
	Members           []User            `json:"members"`
	SimplifyByDefault bool              `json:"simplify_by_default"`
	OriginalDebts     []json.RawMessage `json:"original_debts"`
	SimplifiedDebts   []json.RawMessage `json:"simplified_debts"`
}

// Category labels an expense.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ExpenseShare is one participant's portion of an expense. Shares are decimal
// strings exactly as the API sends them.
type ExpenseShare struct {
	User       *User  `json:"user,omitempty"`
	UserID     int    `json:"user_id,omitempty"`
	PaidShare  string `json:"paid_share,omitempty"`
	OwedShare  string `json:"owed_share,omitempty"`
	NetBalance string `json:"net_balance,omitempty"`
}

// Repayment is a settlement suggestion between two users.
type Repayment struct {
	From   int    `json:"from"`
	To     int    `json:"to"`
	Amount string `json:"amount"`
}

// Expense is a Splitwise expense. Cost and all share amounts stay strings to
// preserve upstream decimal precision; a GroupID of 0 means the expense is
// groupless.
type Expense struct {
	ID              int            `json:"id"`
	GroupID         int            `json:"group_id"`
	Description     string         `json:"description"`
	Payment         bool           `json:"payment"`
	Cost            string         `json:"cost"`
	CurrencyCode    string         `json:"currency_code"`
	Date            string         `json:"date"`
	CreatedAt       string         `json:"created_at"`
	UpdatedAt       string         `json:"updated_at"`
	CreatedBy       *User          `json:"created_by"`
	UpdatedBy       *User          `json:"updated_by"`
	Category        *Category      `json:"category"`
	Details         string         `json:"details,omitempty"`
	Users           []ExpenseShare `json:"users"`
	ExpenseBundleID *int           `json:"expense_bundle_id,omitempty"`
	FriendshipID    *int           `json:"friendship_id,omitempty"`
	Repayments      []Repayment    `json:"repayments"`
}

// ShareInput is a caller-supplied participant share for CreateExpense. Every
// sub-field may be absent per entry; absent fields are left out of the
// flattened payload.
type ShareInput struct {
	UserID    *int    `json:"user_id,omitempty"`
	PaidShare *string `json:"paid_share,omitempty"`
	OwedShare *string `json:"owed_share,omitempty"`
}

// CreateExpenseParams holds the arguments for CreateExpense. Zero-valued
// optional fields are omitted from the request entirely.
type CreateExpenseParams struct {
	Cost         string
	Description  string
	GroupID      int
	Users        []ShareInput
	CurrencyCode string
	Date         string
	Details      string
	Payment      bool
	CategoryID   int
}
