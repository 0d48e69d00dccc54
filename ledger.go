package gagyebu

import (
	"fmt"
	"iter"
	"slices"
	"sort"
)

// Ledger is the in-memory view of one user's ledger file.
//
// Records are kept sorted by date descending, ties broken by original file
// order (stable). Every mutating operation that could violate the solvency
// invariant checks it first and leaves the ledger untouched on failure.
type Ledger struct {
	records []Record
	nextSeq int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Len returns the number of records.
func (l *Ledger) Len() int { return len(l.records) }

// Records iterates over the records in display order (date descending,
// stable by file order).
func (l *Ledger) Records() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, r := range l.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Slice returns a copy of the records in display order.
func (l *Ledger) Slice() []Record {
	return slices.Clone(l.records)
}

// At returns the record at the given display position.
func (l *Ledger) At(pos int) (Record, error) {
	if pos < 0 || pos >= len(l.records) {
		return Record{}, fmt.Errorf("position %d of %d records: %w", pos, len(l.records), ErrNoSuchRecord)
	}
	return l.records[pos], nil
}

// BySeq returns the record carrying the given load-time ordinal.
func (l *Ledger) BySeq(seq int) (Record, error) {
	for _, r := range l.records {
		if r.seq == seq {
			return r, nil
		}
	}
	return Record{}, fmt.Errorf("ordinal %d: %w", seq, ErrNoSuchRecord)
}

// TotalAsset returns the signed sum over all records: income positive,
// expense negative. The solvency invariant keeps it non-negative in every
// committed state.
func (l *Ledger) TotalAsset() int64 {
	var total int64
	for _, r := range l.records {
		total += r.Signed()
	}
	return total
}

// ExpenseTotal returns the expense sum recorded within the given month.
func (l *Ledger) ExpenseTotal(m Month) int64 {
	var total int64
	for _, r := range l.records {
		if r.Kind == Expense && m.Contains(r.Date) {
			total += r.Amount
		}
	}
	return total
}

// Append adds a brand-new record and returns the new total asset. It is
// rejected with *InsolvencyError when the record would make total assets
// negative; the ledger is then unchanged.
func (l *Ledger) Append(rec Record) (int64, error) {
	total := l.TotalAsset()
	if total+rec.Signed() < 0 {
		return 0, &InsolvencyError{Balance: total}
	}
	rec.seq = l.nextSeq
	l.nextSeq++
	l.records = append(l.records, rec)
	l.sortDesc()
	return total + rec.Signed(), nil
}

// Update replaces the record carrying the given ordinal. It is rejected
// with *InsolvencyError when the replacement would make total assets
// negative; the ledger is then unchanged.
func (l *Ledger) Update(seq int, rec Record) (int64, error) {
	i := l.indexOf(seq)
	if i < 0 {
		return 0, fmt.Errorf("ordinal %d: %w", seq, ErrNoSuchRecord)
	}
	total := l.TotalAsset()
	newTotal := total - l.records[i].Signed() + rec.Signed()
	if newTotal < 0 {
		return 0, &InsolvencyError{Balance: total}
	}
	rec.seq = seq
	l.records[i] = rec
	l.sortDesc()
	return newTotal, nil
}

// Delete removes the record carrying the given ordinal. Deleting an income
// record that recorded expenses already depend on would drive the total
// asset negative; such deletions are rejected with *InsolvencyError and the
// ledger is unchanged. Expense deletions always succeed.
func (l *Ledger) Delete(seq int) (int64, error) {
	i := l.indexOf(seq)
	if i < 0 {
		return 0, fmt.Errorf("ordinal %d: %w", seq, ErrNoSuchRecord)
	}
	total := l.TotalAsset()
	newTotal := total - l.records[i].Signed()
	if l.records[i].Kind == Income && newTotal < 0 {
		return 0, &InsolvencyError{Balance: total}
	}
	l.records = slices.Delete(l.records, i, i+1)
	return newTotal, nil
}

// StripCategory removes the given code from every record's category set,
// filtering tokens rather than clearing the field. It returns the number of
// records changed. Amounts are untouched, so solvency cannot be affected.
func (l *Ledger) StripCategory(code string) int {
	changed := 0
	for i, r := range l.records {
		if r.Categories.Contains(code) {
			l.records[i].Categories = r.Categories.Remove(code)
			changed++
		}
	}
	return changed
}

func (l *Ledger) indexOf(seq int) int {
	for i, r := range l.records {
		if r.seq == seq {
			return i
		}
	}
	return -1
}

// sortDesc sorts records by date descending. The sort is stable, so records
// on the same day keep their original relative order.
func (l *Ledger) sortDesc() {
	sort.SliceStable(l.records, func(i, j int) bool {
		return l.records[i].Date.After(l.records[j].Date)
	})
}
