package season

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Season
		wantErr error
	}{
		{"2023", 2023, nil},
		{"1950", 1950, nil},
		{"  1996\n", 1996, nil},
		{"1949", 0, ErrOutOfRange},
		{"2024", 0, ErrOutOfRange},
		{"-5", 0, ErrOutOfRange},
		{"abc", 0, ErrNotInteger},
		{"20.5", 0, ErrNotInteger},
		{"", 0, ErrNotInteger},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestSeason_String(t *testing.T) {
	if got := Season(2010).String(); got != "2010" {
		t.Errorf("String() = %q, want 2010", got)
	}
}
