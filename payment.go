package gagyebu

import (
	"fmt"
	"strings"
)

// Payment methods are a fixed three-entry vocabulary. Unlike categories
// they carry no codes: records store the resolved standard name directly.
var payments = []struct {
	name     string
	synonyms []string
}{
	{"현금", []string{"cash", "지폐", "현"}},
	{"카드", []string{"card", "credit", "카"}},
	{"계좌이체", []string{"transfer", "bank", "account", "송금", "계"}},
}

// PaymentNames returns the standard names of the fixed payment methods.
func PaymentNames() []string {
	names := make([]string, len(payments))
	for i, p := range payments {
		names[i] = p.name
	}
	return names
}

// ResolvePayment validates a payment token against the fixed payment map
// and returns the standard name. Matching ignores ASCII case.
func ResolvePayment(token string) (string, error) {
	token = strings.TrimSpace(token)
	for _, p := range payments {
		if strings.EqualFold(p.name, token) {
			return p.name, nil
		}
		for _, s := range p.synonyms {
			if strings.EqualFold(s, token) {
				return p.name, nil
			}
		}
	}
	return "", fmt.Errorf("payment %q: %w", token, ErrUnknownPayment)
}

// IsPayment reports whether the token resolves to a payment method.
func IsPayment(token string) bool {
	_, err := ResolvePayment(token)
	return err == nil
}
