package gagyebu

import (
	"errors"
	"testing"
)

func TestBudgetSet(t *testing.T) {
	m := MustMonth("2024-01")

	testCases := []struct {
		name    string
		amount  int64
		spent   int64
		wantErr bool
	}{
		{name: "above spent", amount: 500000, spent: 300000},
		{name: "no spending yet", amount: 1, spent: 0},
		{name: "equal to spent", amount: 300000, spent: 300000, wantErr: true},
		{name: "below spent", amount: 200000, spent: 300000, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBudgetTable()
			err := b.Set(m, tc.amount, tc.spent)
			if tc.wantErr {
				var budgetErr *BudgetError
				if !errors.As(err, &budgetErr) {
					t.Fatalf("error = %v, want *BudgetError", err)
				}
				if budgetErr.Spent != tc.spent {
					t.Errorf("reported spent = %d, want %d", budgetErr.Spent, tc.spent)
				}
				if _, ok := b.Get(m); ok {
					t.Error("budget recorded despite rejection")
				}
				return
			}
			if err != nil {
				t.Fatalf("Set: %v", err)
			}
			if got, ok := b.Get(m); !ok || got != tc.amount {
				t.Errorf("Get = %d, %v, want %d", got, ok, tc.amount)
			}
		})
	}
}

func TestBudgetReplace(t *testing.T) {
	b := NewBudgetTable()
	m := MustMonth("2024-01")
	if err := b.Set(m, 500000, 0); err != nil {
		t.Fatal(err)
	}
	if err := b.Set(m, 400000, 0); err != nil {
		t.Fatal(err)
	}
	if got, _ := b.Get(m); got != 400000 {
		t.Errorf("budget after replace = %d, want 400000", got)
	}
	if b.Len() != 1 {
		t.Errorf("budget count = %d, want 1", b.Len())
	}
}

func TestBudgetAllOrder(t *testing.T) {
	b := NewBudgetTable()
	for _, m := range []string{"2024-03", "2023-12", "2024-01"} {
		if err := b.Set(MustMonth(m), 100000, 0); err != nil {
			t.Fatal(err)
		}
	}

	var got []string
	for m := range b.All() {
		got = append(got, m.String())
	}
	want := []string{"2023-12", "2024-01", "2024-03"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
