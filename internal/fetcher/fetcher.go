package fetcher

import "context"

// Fetcher defines the interface for retrieving the source page.
type Fetcher interface {
	// FetchPage issues a single GET for the URL and returns the document body.
	FetchPage(ctx context.Context, url string) (string, error)
}
