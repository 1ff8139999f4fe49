// Package report computes the dashboard analytics as a single fold over
// the transaction set, so the reduction can be fed record by record and
// later pushed down to the store or streamed without changing the
// response shape.
package report

import "finboard/internal/models"

type Summary struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalExpenses     float64 `json:"totalExpenses"`
	NetProfit         float64 `json:"netProfit"`
	TotalTransactions int     `json:"totalTransactions"`
}

// MonthlyFlow is one YYYY-MM bucket of the trends map.
type MonthlyFlow struct {
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

type Analytics struct {
	Summary           Summary                `json:"summary"`
	CategoryBreakdown map[string]float64     `json:"categoryBreakdown"`
	StatusBreakdown   map[string]int         `json:"statusBreakdown"`
	MonthlyTrends     map[string]MonthlyFlow `json:"monthlyTrends"`
}

// Aggregator accumulates analytics one transaction at a time. The zero
// value is not usable; call NewAggregator.
type Aggregator struct {
	result Analytics
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		result: Analytics{
			CategoryBreakdown: make(map[string]float64),
			StatusBreakdown:   make(map[string]int),
			MonthlyTrends:     make(map[string]MonthlyFlow),
		},
	}
}

// Add folds one transaction into the running totals. Revenue vs expense
// is decided solely by the category sentinel.
func (a *Aggregator) Add(t models.Transaction) {
	a.result.Summary.TotalTransactions++
	a.result.CategoryBreakdown[t.Category] += t.Amount
	a.result.StatusBreakdown[t.Status]++

	month := t.Month()
	flow := a.result.MonthlyTrends[month]
	if t.IsRevenue() {
		a.result.Summary.TotalRevenue += t.Amount
		flow.Revenue += t.Amount
	} else {
		a.result.Summary.TotalExpenses += t.Amount
		flow.Expenses += t.Amount
	}
	a.result.MonthlyTrends[month] = flow
}

// Result finalizes the derived figures and returns the analytics.
func (a *Aggregator) Result() Analytics {
	a.result.Summary.NetProfit = a.result.Summary.TotalRevenue - a.result.Summary.TotalExpenses
	return a.result
}

// Build folds an entire transaction set at once. An empty set yields an
// all-zero summary and empty breakdown maps.
func Build(txns []models.Transaction) Analytics {
	agg := NewAggregator()
	for _, t := range txns {
		agg.Add(t)
	}
	return agg.Result()
}
