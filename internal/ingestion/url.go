package ingestion

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/resume-screener/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails.
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails.
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// FetchJobPosting downloads a job posting page and reduces it to cleaned
// text using job board content selectors.
func FetchJobPosting(ctx context.Context, urlStr string) (*Document, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	text, err := fetch.ExtractMainText(result.HTML, fetch.JobPostingSelectors())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	cleaned := CleanText(text)
	return &Document{
		URL:      urlStr,
		Text:     cleaned,
		Hash:     contentHash(cleaned),
		LoadedAt: time.Now().UTC(),
	}, nil
}
