package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestYear(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        int
		wantRejects int
		wantErr     error
	}{
		{
			name:  "valid first try",
			input: "2023\n",
			want:  2023,
		},
		{
			name:        "rejects non-integer and out of range",
			input:       "abc\n1949\n2024\n20.5\n\n1996\n",
			want:        1996,
			wantRejects: 5,
		},
		{
			name:        "input runs out",
			input:       "1800\n",
			wantRejects: 1,
			wantErr:     ErrNoInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tt.input), &out)

			got, err := p.Year()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Year() error = %v, want %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("Year() unexpected error: %v", err)
				}
				if int(got) != tt.want {
					t.Errorf("Year() = %d, want %d", got, tt.want)
				}
			}

			rejects := strings.Count(out.String(), "Error: "+YearReason())
			if rejects != tt.wantRejects {
				t.Errorf("printed %d rejections, want %d\noutput: %s", rejects, tt.wantRejects, out.String())
			}
		})
	}
}

func TestYear_ReasonText(t *testing.T) {
	want := "Please enter a valid year between 1950 and 2023."
	if got := YearReason(); got != want {
		t.Errorf("YearReason() = %q, want %q", got, want)
	}
}

func TestStatistic(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("pts\nXYZ\nPTS\n"), &out)

	got, err := p.Statistic([]string{"Pos", "Age", "PTS"})
	if err != nil {
		t.Fatalf("Statistic() error: %v", err)
	}
	if got != "PTS" {
		t.Errorf("Statistic() = %q, want PTS", got)
	}

	output := out.String()
	if !strings.Contains(output, "Error: pts is not a valid statistic.") {
		t.Errorf("missing rejection for pts in %q", output)
	}
	if !strings.Contains(output, "Error: XYZ is not a valid statistic.") {
		t.Errorf("missing rejection for XYZ in %q", output)
	}
	if !strings.Contains(output, "(e.g. Pos, Age, PTS)") {
		t.Errorf("prompt does not list columns: %q", output)
	}
}

func TestAsk_CustomValidator(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("no\nyes\n"), &out)

	got, err := p.Ask("Continue? ", func(answer string) (bool, string) {
		return answer == "yes", "answer yes"
	})
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}
	if got != "yes" {
		t.Errorf("Ask() = %q, want yes", got)
	}
	if strings.Count(out.String(), "Continue? ") != 2 {
		t.Errorf("expected two prompts, got %q", out.String())
	}
}
