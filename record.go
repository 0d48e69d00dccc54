package gagyebu

import (
	"fmt"
	"slices"
	"strings"
)

// Kind discriminates income from expense records.
type Kind int

const (
	// Expense decreases the total asset.
	Expense Kind = iota
	// Income increases the total asset.
	Income
)

// String returns the single-letter code persisted in the ledger file.
func (k Kind) String() string {
	switch k {
	case Expense:
		return "E"
	case Income:
		return "I"
	default:
		return "?"
	}
}

// ParseKind parses the single-letter kind code of the ledger file.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "E":
		return Expense, nil
	case "I":
		return Income, nil
	default:
		return 0, fmt.Errorf("unknown record kind %q", s)
	}
}

// CategorySet is the ordered set of category codes attached to a record.
// The file format allows a record to carry several space-separated codes;
// order is preserved so that rewrites are byte-stable.
type CategorySet []string

// ParseCategorySet splits the space-separated category field of a ledger
// line. Duplicated tokens are collapsed, first occurrence wins.
func ParseCategorySet(field string) CategorySet {
	var set CategorySet
	for _, tok := range strings.Fields(field) {
		if !set.Contains(tok) {
			set = append(set, tok)
		}
	}
	return set
}

// String joins the codes back into the persisted field form.
func (s CategorySet) String() string { return strings.Join(s, " ") }

// Contains reports whether the set holds the given code.
func (s CategorySet) Contains(code string) bool { return slices.Contains(s, code) }

// Remove returns a copy of the set without the given code. Removing an
// absent code returns an equal copy.
func (s CategorySet) Remove(code string) CategorySet {
	out := make(CategorySet, 0, len(s))
	for _, c := range s {
		if c != code {
			out = append(out, c)
		}
	}
	return out
}

// Clone returns an independent copy of the set.
func (s CategorySet) Clone() CategorySet { return slices.Clone(s) }

// Equal reports whether two sets hold the same codes in the same order.
func (s CategorySet) Equal(t CategorySet) bool { return slices.Equal(s, t) }

// Record is a single ledger entry.
type Record struct {
	Date       Date
	Kind       Kind
	Amount     int64 // always positive; Kind carries the sign
	Categories CategorySet
	Payment    string // resolved payment standard name

	// seq is the stable ordinal assigned from file line order at load time.
	// It only disambiguates records during edit and delete; it is discarded
	// on save and reassigned on the next load.
	seq int
}

// Seq returns the load-time ordinal of the record.
func (r Record) Seq() int { return r.seq }

// Signed returns the amount with the sign implied by the record kind.
func (r Record) Signed() int64 {
	if r.Kind == Income {
		return r.Amount
	}
	return -r.Amount
}

// Equal reports whether two records carry the same field values,
// disregarding the load-time ordinal.
func (r Record) Equal(x Record) bool {
	return r.Date == x.Date &&
		r.Kind == x.Kind &&
		r.Amount == x.Amount &&
		r.Categories.Equal(x.Categories) &&
		r.Payment == x.Payment
}
