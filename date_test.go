package gagyebu

import (
	"errors"
	"testing"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "valid date", input: "2024-01-15", want: "2024-01-15"},
		{name: "lower bound", input: "1900-01-01", want: "1900-01-01"},
		{name: "upper bound", input: "2099-12-31", want: "2099-12-31"},
		{name: "year too small", input: "1899-12-31", wantErr: ErrInvalidDate},
		{name: "year too large", input: "2100-01-01", wantErr: ErrInvalidDate},
		{name: "not a calendar date", input: "2024-02-30", wantErr: ErrInvalidDate},
		{name: "month out of range", input: "2024-13-01", wantErr: ErrInvalidDate},
		{name: "single digit month", input: "2024-1-15", wantErr: ErrInvalidDate},
		{name: "missing day", input: "2024-01", wantErr: ErrInvalidDate},
		{name: "garbage", input: "yesterday", wantErr: ErrInvalidDate},
		{name: "empty", input: "", wantErr: ErrInvalidDate},
		{name: "trailing text", input: "2024-01-15x", wantErr: ErrInvalidDate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("ParseDate(%q) error = %v, want %v", tc.input, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tc.input, err)
			}
			if got.String() != tc.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestValidateEntryDate(t *testing.T) {
	today := MustDate("2024-06-15")

	testCases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "past", input: "2024-06-14"},
		{name: "today", input: "2024-06-15"},
		{name: "tomorrow", input: "2024-06-16", wantErr: ErrFutureDate},
		{name: "far future", input: "2099-01-01", wantErr: ErrFutureDate},
		{name: "malformed", input: "2024/06/14", wantErr: ErrInvalidDate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateEntryDate(tc.input, today)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("ValidateEntryDate(%q, %s) error = %v, want %v", tc.input, today, err, tc.wantErr)
			}
		})
	}
}

func TestParseMonth(t *testing.T) {
	testCases := []struct {
		input   string
		wantErr bool
	}{
		{input: "2024-01"},
		{input: "1900-12"},
		{input: "2024-13", wantErr: true},
		{input: "2100-01", wantErr: true},
		{input: "2024-1", wantErr: true},
		{input: "2024-01-15", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			m, err := ParseMonth(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseMonth(%q) = %s, want error", tc.input, m)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMonth(%q) unexpected error: %v", tc.input, err)
			}
			if m.String() != tc.input {
				t.Errorf("ParseMonth(%q) = %s", tc.input, m)
			}
		})
	}
}

func TestMonthContains(t *testing.T) {
	m := MustMonth("2024-01")
	if !m.Contains(MustDate("2024-01-31")) {
		t.Errorf("%s should contain 2024-01-31", m)
	}
	if m.Contains(MustDate("2024-02-01")) {
		t.Errorf("%s should not contain 2024-02-01", m)
	}
	if m.Contains(MustDate("2023-01-15")) {
		t.Errorf("%s should not contain 2023-01-15", m)
	}
}
