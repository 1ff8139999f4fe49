// Package export builds the filtered CSV download: a caller-supplied
// filter compiled into an in-process predicate, applied to the fetched
// transaction set, then serialized over a chosen column subset.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"finboard/internal/models"
)

// Filter carries the optional export filters as received on the wire.
// Empty strings mean the key was not supplied. Distinct keys AND
// together; search is OR-ed internally across its sub-fields.
type Filter struct {
	Search     string `json:"search"`
	Category   string `json:"category"`
	Status     string `json:"status"`
	User       string `json:"user"`
	DateFrom   string `json:"dateFrom"`
	DateTo     string `json:"dateTo"`
	AmountFrom string `json:"amountFrom"`
	AmountTo   string `json:"amountTo"`
}

// Predicate reports whether a transaction passes the compiled filter.
type Predicate func(models.Transaction) bool

// Compile translates the filter into a predicate. Non-numeric amount
// bounds are rejected here rather than silently dropping the bound.
func (f Filter) Compile() (Predicate, error) {
	var amountFrom, amountTo float64
	var hasAmountFrom, hasAmountTo bool

	if f.AmountFrom != "" {
		v, err := strconv.ParseFloat(f.AmountFrom, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amountFrom %q", f.AmountFrom)
		}
		amountFrom, hasAmountFrom = v, true
	}
	if f.AmountTo != "" {
		v, err := strconv.ParseFloat(f.AmountTo, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amountTo %q", f.AmountTo)
		}
		amountTo, hasAmountTo = v, true
	}

	search := strings.ToLower(f.Search)
	category := strings.ToLower(f.Category)
	status := strings.ToLower(f.Status)
	user := strings.ToLower(f.User)

	return func(t models.Transaction) bool {
		if search != "" && !matchesSearch(t, search) {
			return false
		}
		if category != "" && !strings.Contains(strings.ToLower(t.Category), category) {
			return false
		}
		if status != "" && !strings.Contains(strings.ToLower(t.Status), status) {
			return false
		}
		if user != "" && !strings.Contains(strings.ToLower(t.User), user) {
			return false
		}
		if f.DateFrom != "" && t.Date < f.DateFrom {
			return false
		}
		if f.DateTo != "" && t.Date > f.DateTo {
			return false
		}
		if hasAmountFrom && t.Amount < amountFrom {
			return false
		}
		if hasAmountTo && t.Amount > amountTo {
			return false
		}
		return true
	}, nil
}

// matchesSearch checks the case-insensitive substring OR across user,
// category, status, and the decimal form of the id.
func matchesSearch(t models.Transaction, needle string) bool {
	for _, haystack := range []string{
		t.User,
		t.Category,
		t.Status,
		strconv.FormatInt(t.ID, 10),
	} {
		if strings.Contains(strings.ToLower(haystack), needle) {
			return true
		}
	}
	return false
}

// Apply keeps only the transactions passing the predicate.
func Apply(txns []models.Transaction, match Predicate) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(txns))
	for _, t := range txns {
		if match(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
