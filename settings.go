package gagyebu

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Settings is the in-memory view of one user's settings file: the category
// registry and the monthly budget table, which share a single file on disk.
// This file exclusively owns the two-section layout; Registry and
// BudgetTable never touch the file themselves.
//
//	C1 \t 입금 \t 월급 \t salary ...     (one line per category)
//	                                    (exactly one blank separator line)
//	2024-01 \t 500000                   (one line per budget)
type Settings struct {
	Registry *Registry
	Budgets  *BudgetTable
}

// DefaultSettings returns the settings a brand-new user starts with: the
// default categories and no budgets.
func DefaultSettings() *Settings {
	return &Settings{Registry: DefaultRegistry(), Budgets: NewBudgetTable()}
}

var codeRE = regexp.MustCompile(`^C[1-9][0-9]*$`)

// DecodeSettings reads a whole settings stream into memory. Malformed lines
// surface as *CorruptError.
func DecodeSettings(r io.Reader) (*Settings, error) {
	s := &Settings{Registry: NewRegistry(), Budgets: NewBudgetTable()}
	scanner := bufio.NewScanner(r)

	lineNo := 0
	inBudgets := false
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			// The first blank line terminates the category section.
			inBudgets = true
			continue
		}
		if !inBudgets {
			cat, err := decodeCategoryLine(line)
			if err != nil {
				return nil, &CorruptError{Line: lineNo, Err: err}
			}
			s.Registry.cats = append(s.Registry.cats, cat)
			continue
		}
		m, amount, err := decodeBudgetLine(line)
		if err != nil {
			return nil, &CorruptError{Line: lineNo, Err: err}
		}
		s.Budgets.amounts[m] = amount
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading settings: %w", err)
	}
	return s, nil
}

func decodeCategoryLine(line string) (Category, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 2 {
		return Category{}, fmt.Errorf("want at least 2 tab-separated fields, got %d", len(fields))
	}
	code := strings.TrimSpace(fields[0])
	name := strings.TrimSpace(fields[1])
	if !codeRE.MatchString(code) {
		return Category{}, fmt.Errorf("malformed category code %q", code)
	}
	if name == "" {
		return Category{}, fmt.Errorf("empty standard name for code %q", code)
	}
	var synonyms []string
	for _, f := range fields[2:] {
		if f = strings.TrimSpace(f); f != "" {
			synonyms = append(synonyms, f)
		}
	}
	return Category{Code: code, Name: name, Synonyms: synonyms}, nil
}

func decodeBudgetLine(line string) (Month, int64, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 2 {
		return Month{}, 0, fmt.Errorf("want 2 tab-separated fields, got %d", len(fields))
	}
	m, err := ParseMonth(strings.TrimSpace(fields[0]))
	if err != nil {
		return Month{}, 0, err
	}
	amount, err := ParseAmount(strings.TrimSpace(fields[1]))
	if err != nil {
		return Month{}, 0, err
	}
	return m, amount, nil
}

// EncodeSettings persists the settings to w in canonical form: the category
// section in registry order, one blank separator line, then the budget
// section in chronological order.
func EncodeSettings(w io.Writer, s *Settings) error {
	bw := bufio.NewWriter(w)
	for c := range s.Registry.All() {
		fields := append([]string{c.Code, c.Name}, c.Synonyms...)
		if _, err := bw.WriteString(strings.Join(fields, "\t") + "\n"); err != nil {
			return fmt.Errorf("failed to write category: %w", err)
		}
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return fmt.Errorf("failed to write section separator: %w", err)
	}
	for m, amount := range s.Budgets.All() {
		if _, err := bw.WriteString(m.String() + "\t" + strconv.FormatInt(amount, 10) + "\n"); err != nil {
			return fmt.Errorf("failed to write budget: %w", err)
		}
	}
	return bw.Flush()
}
