package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pfrederiksen/nba-stats/internal/season"
)

const YearQuestion = "Enter year to scrape data for: "

var ErrNoInput = errors.New("no more input")

// Validator checks an answer. A rejected answer comes with the reason shown to the user.
type Validator func(answer string) (ok bool, reason string)

// Prompter asks questions on an output stream and reads answers line by line
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Prompter reading from in and writing prompts to out
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Ask prompts until validate accepts an answer, printing the reason for each rejection.
// It fails only when input runs out.
func (p *Prompter) Ask(question string, validate Validator) (string, error) {
	for {
		fmt.Fprint(p.out, question)

		if !p.in.Scan() {
			fmt.Fprintln(p.out)
			if err := p.in.Err(); err != nil {
				return "", fmt.Errorf("reading answer: %w", err)
			}
			return "", ErrNoInput
		}

		answer := strings.TrimSpace(p.in.Text())
		ok, reason := validate(answer)
		if ok {
			return answer, nil
		}
		fmt.Fprintf(p.out, "Error: %s\n", reason)
	}
}

// Year asks for a season until a valid one is entered
func (p *Prompter) Year() (season.Season, error) {
	var chosen season.Season
	_, err := p.Ask(YearQuestion, func(answer string) (bool, string) {
		s, err := season.Parse(answer)
		if err != nil {
			return false, YearReason()
		}
		chosen = s
		return true, ""
	})
	if err != nil {
		return 0, err
	}
	return chosen, nil
}

// YearReason is shown when a year is rejected
func YearReason() string {
	return fmt.Sprintf("Please enter a valid year between %d and %d.", int(season.First), int(season.Last))
}

// Statistic asks for a column name until one of columns is entered
func (p *Prompter) Statistic(columns []string) (string, error) {
	question := fmt.Sprintf("Enter statistic to analyze (e.g. %s): ", strings.Join(columns, ", "))

	return p.Ask(question, func(answer string) (bool, string) {
		for _, c := range columns {
			if c == answer {
				return true, ""
			}
		}
		return false, StatisticReason(answer)
	})
}

// StatisticReason is shown when a statistic name is rejected
func StatisticReason(name string) string {
	return fmt.Sprintf("%s is not a valid statistic.", name)
}
