// Package scraper provides HTTP fetching and HTML parsing for NBA per-game stats pages.
//
// The scraper package fetches a season's per-game page from basketball-reference with a
// static browser User-Agent and extracts the player table. The first table row supplies
// the column names (its leading rank label is dropped); every later row supplies one
// player's data cells. Rows narrower than the header are padded with missing cells, and
// rows wider than the header are rejected.
package scraper
