package gagyebu

import "fmt"

type sessionState int

const (
	stateEditing sessionState = iota
	stateCommitted
	stateCancelled
)

// EditSession mutates a single record through a working copy. Each field
// setter validates its input, applies it to the copy, and immediately
// re-checks the solvency invariant: a change that would drive the total
// asset negative is rolled back and reported, so the caller can re-prompt
// for that same field. Nothing reaches the ledger before Commit; Cancel
// discards the copy entirely.
//
// Blank input to any setter keeps the current value, matching the
// interactive contract of the edit prompt.
type EditSession struct {
	ledger   *Ledger
	original Record
	working  Record
	state    sessionState
}

// NewEditSession starts editing the record with the given ordinal.
func NewEditSession(l *Ledger, seq int) (*EditSession, error) {
	rec, err := l.BySeq(seq)
	if err != nil {
		return nil, err
	}
	working := rec
	working.Categories = rec.Categories.Clone()
	return &EditSession{ledger: l, original: rec, working: working}, nil
}

// Working returns the current state of the working copy, for display.
func (s *EditSession) Working() Record { return s.working }

// SetDate replaces the working copy's date. The current date is injected
// so the future-date rule stays testable.
func (s *EditSession) SetDate(input string, today Date) error {
	if err := s.open(); err != nil {
		return err
	}
	if input == "" {
		return nil
	}
	d, err := ValidateEntryDate(input, today)
	if err != nil {
		return err
	}
	s.working.Date = d
	return nil
}

// SetCategory replaces the working copy's category. The record kind is not
// editable, so income records only accept the income category and expense
// records everything else.
func (s *EditSession) SetCategory(input string, reg *Registry) error {
	if err := s.open(); err != nil {
		return err
	}
	if input == "" {
		return nil
	}
	c, err := reg.ResolveEntry(input, s.working.Kind)
	if err != nil {
		return err
	}
	s.working.Categories = CategorySet{c.Code}
	return nil
}

// SetAmount replaces the working copy's amount, re-checking solvency
// immediately. On an insolvent result the prior amount is restored and the
// failure surfaced as *InsolvencyError.
func (s *EditSession) SetAmount(input string) error {
	if err := s.open(); err != nil {
		return err
	}
	if input == "" {
		return nil
	}
	amount, err := ParseAmount(input)
	if err != nil {
		return err
	}
	prior := s.working.Amount
	s.working.Amount = amount
	if balance := s.previewBalance(); balance < 0 {
		s.working.Amount = prior
		return &InsolvencyError{Balance: s.ledger.TotalAsset()}
	}
	return nil
}

// SetPayment replaces the working copy's payment method.
func (s *EditSession) SetPayment(input string) error {
	if err := s.open(); err != nil {
		return err
	}
	if input == "" {
		return nil
	}
	name, err := ResolvePayment(input)
	if err != nil {
		return err
	}
	s.working.Payment = name
	return nil
}

// Commit applies the working copy to the ledger and returns the new total
// asset. The caller is responsible for rewriting the ledger file. The
// session is closed either way unless the ledger itself rejects the update.
func (s *EditSession) Commit() (int64, error) {
	if err := s.open(); err != nil {
		return 0, err
	}
	balance, err := s.ledger.Update(s.original.seq, s.working)
	if err != nil {
		return 0, err
	}
	s.state = stateCommitted
	return balance, nil
}

// Cancel discards the working copy. The ledger and its file are untouched.
func (s *EditSession) Cancel() {
	if s.state == stateEditing {
		s.state = stateCancelled
	}
}

func (s *EditSession) open() error {
	if s.state != stateEditing {
		return fmt.Errorf("record %d: %w", s.original.seq, ErrSessionClosed)
	}
	return nil
}

// previewBalance computes the total asset as if the working copy replaced
// the original, without mutating the ledger.
func (s *EditSession) previewBalance() int64 {
	return s.ledger.TotalAsset() - s.original.Signed() + s.working.Signed()
}
