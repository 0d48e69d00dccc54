package renderer

import (
	"fmt"
	"strings"

	"github.com/hbkim/gagyebu"
)

// Records renders a record list as a markdown table, in the order given
// (the ledger's display order: date descending, stable). Category codes
// are resolved to standard names through the registry; codes the registry
// no longer knows are shown verbatim rather than dropped.
func Records(records []gagyebu.Record, reg *gagyebu.Registry, totalAsset int64) string {
	var b strings.Builder
	b.WriteString("| # | 날짜 | 지출 | 수입 | 카테고리 | 결제수단 |\n")
	b.WriteString("|---|------|-----:|-----:|----------|----------|\n")
	for i, r := range records {
		expense, income := "-", "-"
		if r.Kind == gagyebu.Expense {
			expense = Won(r.Amount)
		} else {
			income = Won(r.Amount)
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
			i+1, r.Date, expense, income, categoryLabel(r.Categories, reg), r.Payment)
	}
	fmt.Fprintf(&b, "\n현재 총 자산은 %s입니다.\n", Won(totalAsset))
	return b.String()
}

// Record renders a single record the way the edit confirmation shows it.
func Record(r gagyebu.Record, reg *gagyebu.Registry) string {
	expense, income := "-", "-"
	if r.Kind == gagyebu.Expense {
		expense = Won(r.Amount)
	} else {
		income = Won(r.Amount)
	}
	return fmt.Sprintf("%s  %s  %s  %s  %s",
		r.Date, expense, income, categoryLabel(r.Categories, reg), r.Payment)
}

func categoryLabel(set gagyebu.CategorySet, reg *gagyebu.Registry) string {
	names := make([]string, 0, len(set))
	for _, code := range set {
		if c, ok := reg.ResolveCode(code); ok {
			names = append(names, c.Name)
		} else {
			names = append(names, code)
		}
	}
	return strings.Join(names, " ")
}
