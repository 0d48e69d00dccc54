package gagyebu

import (
	"fmt"
	"io"
)

// Session ties together one user's store, ledger, and settings, and owns
// every operation that must keep the two files mutually consistent. The
// registry is an explicit value carried by the session; no component holds
// category state of its own.
type Session struct {
	store    *Store
	Ledger   *Ledger
	Settings *Settings
}

// Open loads (or lazily creates) both of the user's files.
func Open(dir, user string) (*Session, error) {
	store := NewStore(dir, user)
	settings, err := store.LoadSettings()
	if err != nil {
		return nil, err
	}
	ledger, err := store.LoadLedger()
	if err != nil {
		return nil, err
	}
	return &Session{store: store, Ledger: ledger, Settings: settings}, nil
}

// Registry returns the session's category registry.
func (s *Session) Registry() *Registry { return s.Settings.Registry }

// Append validates nothing itself: the record must already carry resolved
// values. It re-reads the ledger file, re-checks solvency and appends on
// success, returning the new total asset.
func (s *Session) Append(rec Record) (int64, error) {
	balance, err := s.store.AppendRecord(rec)
	if err != nil {
		return 0, err
	}
	// Refresh the in-memory view from the file just written.
	ledger, err := s.store.LoadLedger()
	if err != nil {
		return 0, err
	}
	s.Ledger = ledger
	return balance, nil
}

// SaveLedger rewrites the whole ledger file from the in-memory view. It
// does not re-check solvency; mutation paths check before calling.
func (s *Session) SaveLedger() error {
	return s.store.SaveLedger(s.Ledger)
}

// DeleteRecord removes the record with the given ordinal (income deletions
// re-check solvency) and rewrites the ledger file.
func (s *Session) DeleteRecord(seq int) (int64, error) {
	balance, err := s.Ledger.Delete(seq)
	if err != nil {
		return 0, err
	}
	if err := s.store.SaveLedger(s.Ledger); err != nil {
		return 0, err
	}
	return balance, nil
}

// AddCategory creates a category and rewrites the settings file.
func (s *Session) AddCategory(name string, synonyms []string) (Category, error) {
	c, err := s.Registry().Add(name, synonyms)
	if err != nil {
		return Category{}, err
	}
	if err := s.store.SaveSettings(s.Settings); err != nil {
		return Category{}, err
	}
	return c, nil
}

// RenameCategory renames a category and rewrites the settings file. Codes
// are stable, so the ledger file needs no rewrite.
func (s *Session) RenameCategory(oldName, newName string, synonyms []string) error {
	if err := s.Registry().Rename(oldName, newName, synonyms); err != nil {
		return err
	}
	return s.store.SaveSettings(s.Settings)
}

// DeleteCategory removes a category and cascades the removal into the
// ledger: the deleted code is stripped from every record's category set
// (tokens are filtered, never the whole field). Both file images are
// staged before either is published, and a failed settings publish rolls
// the ledger back, so a failed cascade persists no partial state. It
// returns the number of ledger records rewritten.
func (s *Session) DeleteCategory(name string) (int, error) {
	code, err := s.Registry().Delete(name)
	if err != nil {
		return 0, err
	}
	changed := s.Ledger.StripCategory(code)

	if err := s.store.SaveLedgerAndSettings(s.Ledger, s.Settings); err != nil {
		return 0, err
	}
	return changed, nil
}

// SetBudget records the budget for a month after checking it strictly
// exceeds the expenses already recorded for that month, then rewrites the
// settings file.
func (s *Session) SetBudget(m Month, amount int64) error {
	spent := s.Ledger.ExpenseTotal(m)
	if err := s.Settings.Budgets.Set(m, amount, spent); err != nil {
		return err
	}
	return s.store.SaveSettings(s.Settings)
}

// Fmt rewrites the ledger file in canonical form: strict field layout,
// date-descending order, trailing newline on every line.
func (s *Session) Fmt(w io.Writer) error {
	if err := s.store.SaveLedger(s.Ledger); err != nil {
		return err
	}
	fmt.Fprintf(w, "formatted %d records\n", s.Ledger.Len())
	return nil
}
