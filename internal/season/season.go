package season

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// First is the earliest season with a per-game stats page.
	First Season = 1950
	// Last is the latest season the tool accepts.
	Last Season = 2023
)

var (
	ErrNotInteger = errors.New("year is not an integer")
	ErrOutOfRange = errors.New("year is out of range")
)

// Season is an NBA season identified by the calendar year it ends in
type Season int

// Validate reports whether the season lies within [First, Last]
func (s Season) Validate() error {
	if s < First || s > Last {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, int(s), int(First), int(Last))
	}
	return nil
}

// String returns the year as text
func (s Season) String() string {
	return strconv.Itoa(int(s))
}

// Parse converts user input into a validated Season.
// The returned error carries a human-readable reason for rejection.
func Parse(input string) (Season, error) {
	text := strings.TrimSpace(input)
	year, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, text)
	}

	s := Season(year)
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return s, nil
}
