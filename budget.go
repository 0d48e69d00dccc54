package gagyebu

import (
	"iter"
	"maps"
	"slices"
)

// BudgetTable holds at most one budget per calendar month.
type BudgetTable struct {
	amounts map[Month]int64
}

// NewBudgetTable creates an empty budget table.
func NewBudgetTable() *BudgetTable {
	return &BudgetTable{amounts: make(map[Month]int64)}
}

// Len returns the number of budgeted months.
func (b *BudgetTable) Len() int { return len(b.amounts) }

// Get returns the budget set for the month, if any.
func (b *BudgetTable) Get(m Month) (int64, bool) {
	v, ok := b.amounts[m]
	return v, ok
}

// Set records the budget for a month, replacing any previous value. The
// budget must strictly exceed the expense total already recorded for that
// month ("spent"); equality is rejected.
func (b *BudgetTable) Set(m Month, amount, spent int64) error {
	if amount <= spent {
		return &BudgetError{Month: m, Spent: spent}
	}
	b.amounts[m] = amount
	return nil
}

// All iterates over the budgets in chronological month order.
func (b *BudgetTable) All() iter.Seq2[Month, int64] {
	return func(yield func(Month, int64) bool) {
		months := slices.Collect(maps.Keys(b.amounts))
		slices.SortFunc(months, func(a, x Month) int {
			switch {
			case a.Before(x):
				return -1
			case x.Before(a):
				return 1
			default:
				return 0
			}
		})
		for _, m := range months {
			if !yield(m, b.amounts[m]) {
				return
			}
		}
	}
}
