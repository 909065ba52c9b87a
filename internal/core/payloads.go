package core

import (
	"net/url"
	"strings"
)

// Command objects built by the pages and handed to a gateway. Validate checks
// that required fields are present; everything else is the server's call.
type (
	Credentials struct {
		Name     string `json:"name,omitempty"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	TransactionPayload struct {
		Type        TransactionType `json:"type"`
		Category    string          `json:"category"`
		Amount      Money           `json:"amount"`
		Description string          `json:"description"`
		Date        Date            `json:"date"`
	}

	// TransactionPatch carries only the fields being changed.
	TransactionPatch struct {
		Type        *TransactionType `json:"type,omitempty"`
		Category    *string          `json:"category,omitempty"`
		Amount      *Money           `json:"amount,omitempty"`
		Description *string          `json:"description,omitempty"`
		Date        *Date            `json:"date,omitempty"`
	}

	BudgetPayload struct {
		Category string       `json:"category"`
		Amount   Money        `json:"amount"`
		Period   BudgetPeriod `json:"period"`
	}

	BudgetPatch struct {
		Category *string       `json:"category,omitempty"`
		Amount   *Money        `json:"amount,omitempty"`
		Period   *BudgetPeriod `json:"period,omitempty"`
	}

	GoalPayload struct {
		Name          string `json:"name"`
		TargetAmount  Money  `json:"target_amount"`
		CurrentAmount *Money `json:"current_amount,omitempty"`
		TargetDate    Date   `json:"target_date"`
	}

	// SavePayload is the body of a goal contribution.
	SavePayload struct {
		Amount Money `json:"amount"`
	}

	BillPayload struct {
		Name    string `json:"name"`
		Amount  Money  `json:"amount"`
		DueDate Date   `json:"due_date"`
	}

	DebtPayload struct {
		Name         string  `json:"name"`
		Amount       Money   `json:"amount"`
		InterestRate float64 `json:"interest_rate"`
	}

	DebtPatch struct {
		Name         *string  `json:"name,omitempty"`
		Amount       *Money   `json:"amount,omitempty"`
		InterestRate *float64 `json:"interest_rate,omitempty"`
	}

	InvestmentPayload struct {
		Name         string `json:"name"`
		Type         string `json:"type"`
		Amount       Money  `json:"amount"`
		CurrentValue *Money `json:"current_value,omitempty"`
	}

	InvestmentPatch struct {
		Name         *string `json:"name,omitempty"`
		Type         *string `json:"type,omitempty"`
		Amount       *Money  `json:"amount,omitempty"`
		CurrentValue *Money  `json:"current_value,omitempty"`
	}

	// TransactionFilter narrows a transaction listing. Empty fields are omitted
	// from the query string and the server applies no filter for them.
	TransactionFilter struct {
		Month    string // YYYY-MM
		Type     TransactionType
		Category string
	}
)

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// ValidateLogin checks the fields a login needs.
func (c Credentials) ValidateLogin() error {
	if blank(c.Email) {
		return ErrEmptyEmail
	}
	if c.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

// ValidateRegister checks the fields a registration needs.
func (c Credentials) ValidateRegister() error {
	if blank(c.Name) {
		return ErrEmptyName
	}
	return c.ValidateLogin()
}

func (p TransactionPayload) Validate() error {
	switch {
	case blank(string(p.Type)):
		return ErrEmptyType
	case blank(p.Category):
		return ErrEmptyCategory
	case p.Amount.IsZero():
		return ErrInvalidAmount
	case blank(p.Description):
		return ErrEmptyDescription
	case p.Date.IsZero():
		return ErrEmptyDate
	}
	return nil
}

func (p BudgetPayload) Validate() error {
	switch {
	case blank(p.Category):
		return ErrEmptyCategory
	case p.Amount.IsZero():
		return ErrInvalidAmount
	case blank(string(p.Period)):
		return ErrEmptyPeriod
	}
	return nil
}

func (p GoalPayload) Validate() error {
	switch {
	case blank(p.Name):
		return ErrEmptyName
	case p.TargetAmount.IsZero():
		return ErrInvalidAmount
	case p.TargetDate.IsZero():
		return ErrEmptyDate
	}
	return nil
}

func (p SavePayload) Validate() error {
	if p.Amount.IsZero() {
		return ErrInvalidAmount
	}
	return nil
}

func (p BillPayload) Validate() error {
	switch {
	case blank(p.Name):
		return ErrEmptyName
	case p.Amount.IsZero():
		return ErrInvalidAmount
	case p.DueDate.IsZero():
		return ErrEmptyDate
	}
	return nil
}

func (p DebtPayload) Validate() error {
	switch {
	case blank(p.Name):
		return ErrEmptyName
	case p.Amount.IsZero():
		return ErrInvalidAmount
	}
	return nil
}

func (p InvestmentPayload) Validate() error {
	switch {
	case blank(p.Name):
		return ErrEmptyName
	case blank(p.Type):
		return ErrEmptyType
	case p.Amount.IsZero():
		return ErrInvalidAmount
	}
	return nil
}

// Query encodes the filter as URL parameters.
func (f TransactionFilter) Query() url.Values {
	q := url.Values{}
	if f.Month != "" {
		q.Set("month", f.Month)
	}
	if f.Type != "" {
		q.Set("type", string(f.Type))
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	return q
}

// Matches reports whether t passes the filter.
func (f TransactionFilter) Matches(t Transaction) bool {
	if f.Month != "" && t.Date.MonthKey() != f.Month {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Category != "" && !strings.EqualFold(t.Category, f.Category) {
		return false
	}
	return true
}
