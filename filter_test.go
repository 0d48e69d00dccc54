package gagyebu

import (
	"errors"
	"testing"
)

func TestFilter(t *testing.T) {
	reg := DefaultRegistry()
	l := seedLedger(t,
		rec("2024-01-01", Income, 50000, "C1", "계좌이체"),
		rec("2024-01-05", Expense, 12000, "C2", "카드"),
		rec("2024-02-03", Expense, 3000, "C2 C3", "현금"),
		rec("2024-02-14", Expense, 8000, "C5", "카드"),
	)
	records := l.Slice()

	testCases := []struct {
		name      string
		term      string
		wantDates []string
		wantErr   error
	}{
		{name: "full date", term: "2024-01-05", wantDates: []string{"2024-01-05"}},
		{name: "month prefix", term: "2024-02", wantDates: []string{"2024-02-14", "2024-02-03"}},
		{name: "date with no match", term: "2024-03", wantDates: nil},
		{name: "digit-leading junk", term: "2024", wantErr: ErrInvalidSearchTerm},
		{name: "digit-leading date fragment", term: "01-05", wantErr: ErrInvalidSearchTerm},
		{name: "category standard name", term: "식비", wantDates: []string{"2024-02-03", "2024-01-05"}},
		{name: "category synonym", term: "food", wantDates: []string{"2024-02-03", "2024-01-05"}},
		{name: "multi-code record matched on second code", term: "교통", wantDates: []string{"2024-02-03"}},
		{name: "category with no record", term: "주거", wantDates: nil},
		{name: "payment standard name", term: "카드", wantDates: []string{"2024-02-14", "2024-01-05"}},
		{name: "payment synonym", term: "card", wantDates: []string{"2024-02-14", "2024-01-05"}},
		{name: "unrecognized", term: "whatever", wantErr: ErrUnrecognizedTerm},
		{name: "empty", term: "", wantErr: ErrUnrecognizedTerm},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Filter(records, tc.term, reg)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Filter(%q) error = %v, want %v", tc.term, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Filter(%q) unexpected error: %v", tc.term, err)
			}
			if len(got) != len(tc.wantDates) {
				t.Fatalf("Filter(%q) returned %d records, want %d", tc.term, len(got), len(tc.wantDates))
			}
			for i, r := range got {
				if r.Date.String() != tc.wantDates[i] {
					t.Errorf("Filter(%q)[%d].Date = %s, want %s", tc.term, i, r.Date, tc.wantDates[i])
				}
			}
		})
	}
}

// A category whose token happens to also be a payment synonym must resolve
// as a category: the priority order is fixed.
func TestFilterPriority(t *testing.T) {
	reg := DefaultRegistry()
	if _, err := reg.Add("현금관리", []string{"cash"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	l := seedLedger(t,
		rec("2024-01-01", Income, 10000, "C1", "현금"),
		rec("2024-01-02", Expense, 500, "C7", "카드"),
	)

	got, err := Filter(l.Slice(), "cash", reg)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(got) != 1 || !got[0].Categories.Contains("C7") {
		t.Fatalf("Filter(cash) = %v, want the C7 record only", got)
	}
}

// Legacy records written before categories were coded store the standard
// name in the category field; a category term still finds them.
func TestFilterLegacyName(t *testing.T) {
	reg := DefaultRegistry()
	l := seedLedger(t,
		rec("2024-01-01", Income, 10000, "C1", "현금"),
		rec("2024-01-02", Expense, 500, "식비", "카드"),
	)

	got, err := Filter(l.Slice(), "food", reg)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(got) != 1 || got[0].Amount != 500 {
		t.Fatalf("Filter(food) = %v, want the legacy record", got)
	}
}
