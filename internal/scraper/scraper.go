package scraper

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/nba-stats/internal/season"
	"github.com/pfrederiksen/nba-stats/internal/table"
)

const (
	BaseURL   = "https://www.basketball-reference.com"
	UserAgent = "Mozilla/5.0"
	Timeout   = 30 * time.Second
)

var (
	ErrNoTable       = errors.New("no stats table found")
	ErrShapeMismatch = table.ErrShapeMismatch
)

// Scraper handles fetching and parsing per-game stats pages
type Scraper struct {
	client  *http.Client
	baseURL string
}

// New creates a new Scraper instance
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL: BaseURL,
	}
}

// NewWithBaseURL creates a Scraper pointed at a mirror of the stats site
func NewWithBaseURL(baseURL string) *Scraper {
	s := New()
	if baseURL != "" {
		s.baseURL = strings.TrimRight(baseURL, "/")
	}
	return s
}

// SeasonURL returns the per-game stats page for a season
func SeasonURL(baseURL string, s season.Season) string {
	return fmt.Sprintf("%s/leagues/NBA_%s_per_game.html", baseURL, s)
}

// URL returns the page this scraper fetches for a season
func (s *Scraper) URL(sn season.Season) string {
	return SeasonURL(s.baseURL, sn)
}

// FetchTable fetches and parses the per-game stats table of a season.
// The returned table is raw: blank cells are still present.
func (s *Scraper) FetchTable(sn season.Season) (*table.Table, error) {
	req, err := http.NewRequest("GET", s.URL(sn), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return parseTable(resp.Body)
}

// parseTable extracts the stats table from HTML.
// The first row supplies the header minus its leading rank label; every later row
// supplies the text of its data cells.
func parseTable(r io.Reader) (*table.Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	trs := doc.Find("tr")
	if trs.Length() == 0 {
		return nil, ErrNoTable
	}

	header := cellTexts(trs.First().Find("th"))
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: header has %d cells", ErrNoTable, len(header))
	}
	header = header[1:]

	rows := make([][]table.Cell, 0, trs.Length()-1)
	var shapeErr error
	trs.Slice(1, trs.Length()).EachWithBreak(func(i int, tr *goquery.Selection) bool {
		texts := cellTexts(tr.Find("td"))
		if len(texts) > len(header) {
			shapeErr = fmt.Errorf("%w: row %d has %d cells, header has %d", ErrShapeMismatch, i+1, len(texts), len(header))
			return false
		}

		row := make([]table.Cell, len(header))
		for j := range row {
			if j < len(texts) {
				row[j] = table.Value(texts[j])
			} else {
				row[j] = table.NA()
			}
		}
		rows = append(rows, row)
		return true
	})
	if shapeErr != nil {
		return nil, shapeErr
	}

	return table.New(header, rows)
}

// cellTexts returns the trimmed text of each selected cell
func cellTexts(sel *goquery.Selection) []string {
	texts := make([]string, 0, sel.Length())
	sel.Each(func(_ int, cell *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(cell.Text()))
	})
	return texts
}
