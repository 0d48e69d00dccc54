package gagyebu

import (
	"fmt"
	"strings"
)

// Filter resolves a free-text search term and returns the matching records
// in their original relative order. Resolution priority is fixed:
//
//  1. A digit-leading term must be a YYYY-MM-DD date or a YYYY-MM month
//     (anything else is ErrInvalidSearchTerm) and matches records whose
//     date string starts with the term.
//  2. Otherwise the term is tried as a category name or synonym and
//     matches by category code.
//  3. Otherwise the term is tried as a payment method and matches by
//     payment standard name.
//  4. A term resolving to none of the above is ErrUnrecognizedTerm.
//
// An empty result with a nil error means the term was recognized but no
// record matched; the two cases are never conflated.
func Filter(records []Record, term string, reg *Registry) ([]Record, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("empty term: %w", ErrUnrecognizedTerm)
	}

	if term[0] >= '0' && term[0] <= '9' {
		if !dateRE.MatchString(term) && !monthRE.MatchString(term) {
			return nil, fmt.Errorf("term %q is neither %q nor %q: %w", term, DateFormat, MonthFormat, ErrInvalidSearchTerm)
		}
		return filterBy(records, func(r Record) bool {
			return strings.HasPrefix(r.Date.String(), term)
		}), nil
	}

	if c, ok := reg.ResolveName(term); ok {
		return filterBy(records, func(r Record) bool {
			return r.Categories.Contains(c.Code) || r.Categories.Contains(c.Name)
		}), nil
	}

	if name, err := ResolvePayment(term); err == nil {
		return filterBy(records, func(r Record) bool {
			return r.Payment == name
		}), nil
	}

	return nil, fmt.Errorf("term %q: %w", term, ErrUnrecognizedTerm)
}

func filterBy(records []Record, accept func(Record) bool) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if accept(r) {
			out = append(out, r)
		}
	}
	return out
}
