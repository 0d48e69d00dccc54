package gagyebu

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// IncomeCode is the reserved category code for income records. The category
// behind it can be renamed but never deleted.
const IncomeCode = "C1"

// MinCategories is the smallest registry a user may have: the reserved
// income category plus at least one expense category.
const MinCategories = 2

// Category maps a stable internal code to a human-readable standard name
// and its accepted synonyms.
type Category struct {
	Code     string
	Name     string
	Synonyms []string
}

// Matches reports whether the token equals the standard name or any
// synonym, ignoring ASCII case.
func (c Category) Matches(token string) bool {
	if strings.EqualFold(c.Name, token) {
		return true
	}
	for _, s := range c.Synonyms {
		if strings.EqualFold(s, token) {
			return true
		}
	}
	return false
}

// Registry is the per-user bidirectional mapping between category names and
// codes. It is an explicit value owned by the session: there is no
// process-wide category state. Order follows the settings file and is
// preserved across rewrites.
type Registry struct {
	cats []Category
}

// NewRegistry creates an empty registry. Decoding a settings file is the
// usual way to obtain one; DefaultRegistry seeds a brand-new user.
func NewRegistry() *Registry { return &Registry{} }

// DefaultRegistry returns the registry a new user starts with.
func DefaultRegistry() *Registry {
	return &Registry{cats: []Category{
		{Code: "C1", Name: "입금", Synonyms: []string{"월급", "용돈", "salary", "wage", "income", "입"}},
		{Code: "C2", Name: "식비", Synonyms: []string{"음식", "밥", "food", "식"}},
		{Code: "C3", Name: "교통", Synonyms: []string{"차", "지하철", "transport", "transportation", "교"}},
		{Code: "C4", Name: "주거", Synonyms: []string{"월세", "관리비", "housing", "house", "rent", "주"}},
		{Code: "C5", Name: "여가", Synonyms: []string{"취미", "문화생활", "hobby", "leisure", "여"}},
		{Code: "C6", Name: "기타", Synonyms: []string{"etc", "other", "기"}},
	}}
}

// Len returns the number of categories.
func (r *Registry) Len() int { return len(r.cats) }

// All iterates over the categories in settings-file order.
func (r *Registry) All() iter.Seq[Category] {
	return func(yield func(Category) bool) {
		for _, c := range r.cats {
			if !yield(c) {
				return
			}
		}
	}
}

// ResolveName finds the category whose standard name or synonym matches the
// token, ignoring ASCII case.
func (r *Registry) ResolveName(token string) (Category, bool) {
	token = strings.TrimSpace(token)
	for _, c := range r.cats {
		if c.Matches(token) {
			return c, true
		}
	}
	return Category{}, false
}

// ResolveCode finds the category with the given code.
func (r *Registry) ResolveCode(code string) (Category, bool) {
	for _, c := range r.cats {
		if c.Code == code {
			return c, true
		}
	}
	return Category{}, false
}

// ResolveEntry validates a category token for a ledger entry of the given
// kind. Income entries only match the reserved income category; expense
// entries match everything but it.
func (r *Registry) ResolveEntry(token string, kind Kind) (Category, error) {
	c, ok := r.ResolveName(token)
	if !ok {
		return Category{}, fmt.Errorf("category %q: %w", token, ErrUnknownCategory)
	}
	if kind == Income && c.Code != IncomeCode {
		return Category{}, fmt.Errorf("category %q is not an income category: %w", token, ErrUnknownCategory)
	}
	if kind == Expense && c.Code == IncomeCode {
		return Category{}, fmt.Errorf("category %q is reserved for income: %w", token, ErrUnknownCategory)
	}
	return c, nil
}

// NamesToCodes resolves each name (standard or synonym) to its code.
// Unmatched names are silently skipped, a quirk of the original file format
// tooling that downstream cascade code relies on. Callers that must surface
// lookup failures should use ResolveName per item instead.
func (r *Registry) NamesToCodes(names []string) []string {
	codes := make([]string, 0, len(names))
	for _, name := range names {
		if c, ok := r.ResolveName(name); ok {
			codes = append(codes, c.Code)
		}
	}
	return codes
}

// CodesToNames is the inverse lookup. Unmatched codes are silently skipped,
// mirroring NamesToCodes.
func (r *Registry) CodesToNames(codes []string) []string {
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		if c, ok := r.ResolveCode(code); ok {
			names = append(names, c.Name)
		}
	}
	return names
}

// Add creates a category under a freshly assigned code: 1 plus the highest
// numeric suffix among existing codes. C1 is never minted; it stays
// reserved for income even when the registry is empty.
func (r *Registry) Add(name string, synonyms []string) (Category, error) {
	if err := r.checkTokens(name, synonyms, ""); err != nil {
		return Category{}, err
	}
	suffix := r.maxCodeSuffix() + 1
	if suffix <= 1 {
		suffix = 2
	}
	c := Category{
		Code:     "C" + strconv.Itoa(suffix),
		Name:     name,
		Synonyms: slices.Clone(synonyms),
	}
	r.cats = append(r.cats, c)
	return c, nil
}

// Rename changes a category's standard name and replaces its synonym set.
// The code is preserved, so ledger records referencing it need no rewrite.
func (r *Registry) Rename(oldName, newName string, synonyms []string) error {
	i := r.indexOfName(oldName)
	if i < 0 {
		return fmt.Errorf("category %q: %w", oldName, ErrCategoryNotFound)
	}
	if err := r.checkTokens(newName, synonyms, r.cats[i].Code); err != nil {
		return err
	}
	r.cats[i].Name = newName
	r.cats[i].Synonyms = slices.Clone(synonyms)
	return nil
}

// Delete removes a category and returns its code so the caller can cascade
// the removal into the ledger. The reserved income category is never
// deletable, and the registry never shrinks below MinCategories.
func (r *Registry) Delete(name string) (code string, err error) {
	i := r.indexOfName(name)
	if i < 0 {
		return "", fmt.Errorf("category %q: %w", name, ErrCategoryNotFound)
	}
	if r.cats[i].Code == IncomeCode {
		return "", fmt.Errorf("category %q: %w", name, ErrIncomeCategory)
	}
	if len(r.cats) <= MinCategories {
		return "", fmt.Errorf("registry holds %d categories: %w", len(r.cats), ErrCategoryFloor)
	}
	code = r.cats[i].Code
	r.cats = slices.Delete(r.cats, i, i+1)
	return code, nil
}

// indexOfName matches by standard name only (exact, case-insensitive);
// management operations address categories by their display name, never by
// synonym.
func (r *Registry) indexOfName(name string) int {
	name = strings.TrimSpace(name)
	for i, c := range r.cats {
		if strings.EqualFold(c.Name, name) {
			return i
		}
	}
	return -1
}

func (r *Registry) maxCodeSuffix() int {
	max := 0
	for _, c := range r.cats {
		n, err := strconv.Atoi(strings.TrimPrefix(c.Code, "C"))
		if err == nil && n > max {
			max = n
		}
	}
	return max
}

// checkTokens validates the character set of the name and synonyms and
// their uniqueness across the whole registry. skipCode exempts one category
// (the one being renamed) from the uniqueness scan.
func (r *Registry) checkTokens(name string, synonyms []string, skipCode string) error {
	if err := checkNameChars(name); err != nil {
		return err
	}
	for _, s := range synonyms {
		if err := checkNameChars(s); err != nil {
			return err
		}
	}
	// duplicates within the submission itself
	seen := map[string]bool{strings.ToLower(name): true}
	for _, s := range synonyms {
		k := strings.ToLower(s)
		if seen[k] {
			return fmt.Errorf("%q: %w", s, ErrDuplicateSynonym)
		}
		seen[k] = true
	}
	// duplicates against every other name and synonym in the registry
	for _, c := range r.cats {
		if c.Code == skipCode {
			continue
		}
		for token := range seen {
			if c.Matches(token) {
				return fmt.Errorf("%q: %w", token, ErrDuplicateName)
			}
		}
	}
	return nil
}

// checkNameChars restricts names and synonyms to Hangul syllables and ASCII
// alphanumerics.
func checkNameChars(s string) error {
	if s == "" {
		return fmt.Errorf("empty name: %w", ErrInvalidChars)
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= 0xAC00 && r <= 0xD7A3: // Hangul syllables block
		default:
			return fmt.Errorf("%q: %w", s, ErrInvalidChars)
		}
	}
	return nil
}
