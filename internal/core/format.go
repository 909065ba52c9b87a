package core

import (
	"strings"
)

// TransactionCategories are the suggested categories offered by the forms.
// Any other value is accepted.
var TransactionCategories = []string{
	"Salary", "Freelance", "Investment", "Food", "Transport",
	"Entertainment", "Shopping", "Bills", "Health", "Education", "Other",
}

// InvestmentTypes are the suggested investment kinds.
var InvestmentTypes = []string{
	"Stocks", "Bonds", "Crypto", "Real Estate", "Mutual Funds", "ETF", "Other",
}

// FormatCurrency renders m as US dollars, e.g. "$1,234.56" or "-$12.00".
func FormatCurrency(m Money) string {
	s := m.d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if m.IsNegative() && !m.d.Round(2).IsZero() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// FormatDate renders d as "Jan 2, 2006".
func FormatDate(d Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Time.Format("Jan 2, 2006")
}

// FormatShortDate renders d as "Jan 2".
func FormatShortDate(d Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Time.Format("Jan 2")
}
