package gagyebu

import (
	"errors"
	"testing"
)

func TestEditSession(t *testing.T) {
	l := seedLedger(t,
		rec("2024-01-01", Income, 1000, "C1", "현금"),
		rec("2024-01-02", Expense, 300, "C2", "카드"),
	)
	expense, _ := l.At(0)
	today := MustDate("2024-06-15")

	s, err := NewEditSession(l, expense.Seq())
	if err != nil {
		t.Fatalf("NewEditSession: %v", err)
	}

	if err := s.SetDate("2024-01-03", today); err != nil {
		t.Fatalf("SetDate: %v", err)
	}
	if err := s.SetCategory("교통", DefaultRegistry()); err != nil {
		t.Fatalf("SetCategory: %v", err)
	}
	if err := s.SetAmount("450"); err != nil {
		t.Fatalf("SetAmount: %v", err)
	}
	if err := s.SetPayment("cash"); err != nil {
		t.Fatalf("SetPayment: %v", err)
	}

	// nothing reaches the ledger before Commit
	if got, _ := l.BySeq(expense.Seq()); got.Amount != 300 {
		t.Fatalf("ledger changed before commit: %+v", got)
	}

	balance, err := s.Commit()
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if balance != 550 {
		t.Errorf("balance = %d, want 550", balance)
	}
	got, _ := l.BySeq(expense.Seq())
	want := rec("2024-01-03", Expense, 450, "C3", "현금")
	if !got.Equal(want) {
		t.Errorf("committed record = %+v, want %+v", got, want)
	}

	// the session is closed after commit
	if err := s.SetAmount("100"); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("setter after commit error = %v, want %v", err, ErrSessionClosed)
	}
	if _, err := s.Commit(); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("second commit error = %v, want %v", err, ErrSessionClosed)
	}
}

func TestEditBlankKeepsValue(t *testing.T) {
	l := seedLedger(t,
		rec("2024-01-01", Income, 1000, "C1", "현금"),
		rec("2024-01-02", Expense, 300, "C2", "카드"),
	)
	expense, _ := l.At(0)

	s, err := NewEditSession(l, expense.Seq())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetDate("", MustDate("2024-06-15")); err != nil {
		t.Fatal(err)
	}
	if err := s.SetCategory("", DefaultRegistry()); err != nil {
		t.Fatal(err)
	}
	if err := s.SetAmount(""); err != nil {
		t.Fatal(err)
	}
	if err := s.SetPayment(""); err != nil {
		t.Fatal(err)
	}
	if !s.Working().Equal(expense) {
		t.Errorf("blank inputs changed the working copy: %+v", s.Working())
	}
}

func TestEditInsolventAmount(t *testing.T) {
	l := seedLedger(t,
		rec("2024-01-01", Income, 1000, "C1", "현금"),
		rec("2024-01-02", Expense, 300, "C2", "카드"),
	)
	expense, _ := l.At(0)

	s, err := NewEditSession(l, expense.Seq())
	if err != nil {
		t.Fatal(err)
	}

	// raising the expense beyond the remaining balance is rejected field-side
	var insolvent *InsolvencyError
	if err := s.SetAmount("1100"); !errors.As(err, &insolvent) {
		t.Fatalf("SetAmount(1100) error = %v, want *InsolvencyError", err)
	}
	if s.Working().Amount != 300 {
		t.Errorf("amount after rejection = %d, want the prior 300", s.Working().Amount)
	}

	// the session stays open for a corrected retry
	if err := s.SetAmount("1000"); err != nil {
		t.Fatalf("SetAmount(1000): %v", err)
	}
	balance, err := s.Commit()
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if balance != 0 {
		t.Errorf("balance = %d, want 0", balance)
	}
}

func TestEditKindRules(t *testing.T) {
	l := seedLedger(t,
		rec("2024-01-01", Income, 1000, "C1", "현금"),
		rec("2024-01-02", Expense, 300, "C2", "카드"),
	)
	reg := DefaultRegistry()

	income, _ := l.At(1)
	s, err := NewEditSession(l, income.Seq())
	if err != nil {
		t.Fatal(err)
	}
	// an income record only accepts the income category
	if err := s.SetCategory("식비", reg); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("income SetCategory(식비) error = %v, want %v", err, ErrUnknownCategory)
	}
	if err := s.SetCategory("월급", reg); err != nil {
		t.Errorf("income SetCategory(월급): %v", err)
	}

	expense, _ := l.At(0)
	s2, err := NewEditSession(l, expense.Seq())
	if err != nil {
		t.Fatal(err)
	}
	if err := s2.SetCategory("입금", reg); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expense SetCategory(입금) error = %v, want %v", err, ErrUnknownCategory)
	}
}

func TestEditCancel(t *testing.T) {
	l := seedLedger(t,
		rec("2024-01-01", Income, 1000, "C1", "현금"),
	)
	income, _ := l.At(0)

	s, err := NewEditSession(l, income.Seq())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetAmount("2000"); err != nil {
		t.Fatal(err)
	}
	s.Cancel()

	if _, err := s.Commit(); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("commit after cancel error = %v, want %v", err, ErrSessionClosed)
	}
	if got, _ := l.BySeq(income.Seq()); got.Amount != 1000 {
		t.Errorf("ledger changed by a cancelled session: %+v", got)
	}
}

func TestEditFutureDate(t *testing.T) {
	l := seedLedger(t, rec("2024-01-01", Income, 1000, "C1", "현금"))
	income, _ := l.At(0)

	s, err := NewEditSession(l, income.Seq())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetDate("2024-06-16", MustDate("2024-06-15")); !errors.Is(err, ErrFutureDate) {
		t.Errorf("SetDate(tomorrow) error = %v, want %v", err, ErrFutureDate)
	}
}
