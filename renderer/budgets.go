package renderer

import (
	"fmt"
	"strings"

	"github.com/hbkim/gagyebu"
	"github.com/shopspring/decimal"
)

// Budgets renders the budget table with the expense total recorded so far
// for each budgeted month. The usage ratio is computed with decimals to
// stay exact; budgets are always positive so the division is safe.
func Budgets(budgets *gagyebu.BudgetTable, ledger *gagyebu.Ledger) string {
	var b strings.Builder
	b.WriteString("| 월 | 예산 | 지출 | 잔여 | 사용률 |\n")
	b.WriteString("|----|-----:|-----:|-----:|-------:|\n")
	for m, amount := range budgets.All() {
		spent := ledger.ExpenseTotal(m)
		usage := decimal.NewFromInt(spent).
			Div(decimal.NewFromInt(amount)).
			Mul(decimal.NewFromInt(100)).
			Round(1)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s%% |\n",
			m, Won(amount), Won(spent), Won(amount-spent), usage)
	}
	return b.String()
}
