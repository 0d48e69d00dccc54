package gagyebu

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    int64
		wantErr error
	}{
		{name: "simple", input: "1000", want: 1000},
		{name: "one", input: "1", want: 1},
		{name: "max", input: "999999999", want: MaxAmount},
		{name: "over max", input: "1000000000", wantErr: ErrTooLarge},
		{name: "way over max", input: "99999999999999999999", wantErr: ErrTooLarge},
		{name: "zero", input: "0", wantErr: ErrNonPositive},
		{name: "leading zero", input: "0500", wantErr: ErrNotInteger},
		{name: "negative", input: "-100", wantErr: ErrNotInteger},
		{name: "decimal", input: "10.5", wantErr: ErrNotInteger},
		{name: "grouped", input: "1,000", wantErr: ErrNotInteger},
		{name: "currency suffix", input: "1000원", wantErr: ErrNotInteger},
		{name: "empty", input: "", wantErr: ErrNotInteger},
		{name: "spaces", input: " 1000", wantErr: ErrNotInteger},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAmount(tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("ParseAmount(%q) error = %v, want %v", tc.input, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseAmount(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}
