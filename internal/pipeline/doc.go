// Package pipeline ties the scraper, normalizer and cache together.
//
// Ensure consults the cache first and only fetches a season when no cache file exists
// (or a refresh is requested); fetched tables are normalized before they are written.
// Load always reads back from the cache file, so fresh and cached runs see the same data.
package pipeline
