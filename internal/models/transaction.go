package models

// Transaction mirrors one document in the external "transactions"
// collection. The schema is not enforced by this service; uniqueness of
// ID is by convention only.
type Transaction struct {
	ID       int64   `json:"id" bson:"id"`
	User     string  `json:"user" bson:"user"`
	Amount   float64 `json:"amount" bson:"amount"`
	Category string  `json:"category" bson:"category"`
	Status   string  `json:"status" bson:"status"`
	Date     string  `json:"date" bson:"date"` // YYYY-MM-DD
}

// RevenueCategory is the sentinel category value separating revenue
// from expense line items.
const RevenueCategory = "Revenue"

// IsRevenue reports whether the transaction counts as revenue.
func (t Transaction) IsRevenue() bool {
	return t.Category == RevenueCategory
}

// Month returns the YYYY-MM bucket key derived from the date field.
func (t Transaction) Month() string {
	if len(t.Date) < 7 {
		return t.Date
	}
	return t.Date[:7]
}
