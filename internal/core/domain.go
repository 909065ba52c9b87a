package core

import (
	"errors"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

const (
	Weekly  BudgetPeriod = "weekly"
	Monthly BudgetPeriod = "monthly"
	Yearly  BudgetPeriod = "yearly"
)

type (
	TransactionType string

	BudgetPeriod string

	User struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		Name      string `json:"name"`
		CreatedAt Date   `json:"created_at"`
	}

	// AuthResult is what register and login hand back: a bearer token and its owner.
	AuthResult struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}

	Transaction struct {
		ID          string          `json:"id"`
		UserID      string          `json:"user_id"`
		Type        TransactionType `json:"type"`
		Category    string          `json:"category"`
		Amount      Money           `json:"amount"`
		Description string          `json:"description"`
		Date        Date            `json:"date"`
		CreatedAt   Date            `json:"created_at"`
	}

	Budget struct {
		ID        string       `json:"id"`
		UserID    string       `json:"user_id"`
		Category  string       `json:"category"`
		Amount    Money        `json:"amount"`
		Spent     Money        `json:"spent"` // absent on the wire reads as zero
		Period    BudgetPeriod `json:"period"`
		CreatedAt Date         `json:"created_at"`
	}

	Goal struct {
		ID            string `json:"id"`
		UserID        string `json:"user_id"`
		Name          string `json:"name"`
		TargetAmount  Money  `json:"target_amount"`
		CurrentAmount Money  `json:"current_amount"`
		TargetDate    Date   `json:"target_date"`
		CreatedAt     Date   `json:"created_at"`
	}

	Bill struct {
		ID        string `json:"id"`
		UserID    string `json:"user_id"`
		Name      string `json:"name"`
		Amount    Money  `json:"amount"`
		DueDate   Date   `json:"due_date"`
		IsPaid    bool   `json:"is_paid"`
		CreatedAt Date   `json:"created_at"`
	}

	Debt struct {
		ID           string  `json:"id"`
		UserID       string  `json:"user_id"`
		Name         string  `json:"name"`
		Amount       Money   `json:"amount"`
		InterestRate float64 `json:"interest_rate"`
		CreatedAt    Date    `json:"created_at"`
	}

	Investment struct {
		ID           string `json:"id"`
		UserID       string `json:"user_id"`
		Name         string `json:"name"`
		Type         string `json:"type"`
		Amount       Money  `json:"amount"`
		CurrentValue Money  `json:"current_value"`
		CreatedAt    Date   `json:"created_at"`
	}
)

var (
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrNegativeAmount         = errors.New("amount cannot be negative")
	ErrEmptyEmail             = errors.New("email is required")
	ErrEmptyPassword          = errors.New("password is required")
	ErrEmptyName              = errors.New("name is required")
	ErrEmptyCategory          = errors.New("category is required")
	ErrEmptyDescription       = errors.New("description is required")
	ErrEmptyType              = errors.New("type is required")
	ErrEmptyDate              = errors.New("date is required")
	ErrEmptyPeriod            = errors.New("period is required")
	ErrInvalidTransactionType = errors.New("type must be income or expense")
	ErrInvalidPeriod          = errors.New("period must be weekly, monthly or yearly")
	ErrEmptyID                = errors.New("id is required")
)

var validationErrors = []error{
	ErrInvalidAmount, ErrNegativeAmount,
	ErrEmptyEmail, ErrEmptyPassword, ErrEmptyName,
	ErrEmptyCategory, ErrEmptyDescription, ErrEmptyType,
	ErrEmptyDate, ErrEmptyPeriod, ErrEmptyID,
	ErrInvalidTransactionType, ErrInvalidPeriod,
}

// ValidationMessage returns err's text capitalized for display when err wraps
// one of the validation errors above.
func ValidationMessage(err error) (string, bool) {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return capitalize(err.Error()), true
		}
	}
	return "", false
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// IsValid reports whether t is one of the two transaction kinds.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

func (p BudgetPeriod) IsValid() bool {
	switch p {
	case Weekly, Monthly, Yearly:
		return true
	default:
		return false
	}
}

// Signed returns the amount with the sign the transaction has on a balance.
func (t Transaction) Signed() Money {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}
