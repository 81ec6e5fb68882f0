package sheet

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultSheetURL is the CSV export of the community-maintained
	// Atlanta tech resources spreadsheet.
	DefaultSheetURL = "https://docs.google.com/spreadsheets/d/1MQN7xN8ZNxPiV2ZOURA_qWEQ9E589GdURK4epvvQhfE/export?format=csv&gid=0"
	UserAgent       = "atltech-cli/1.0 (github.com/khendrix/atltech)"
	Timeout         = 30 * time.Second
)

// Client fetches the sheet's CSV export over HTTP.
type Client struct {
	client *http.Client
	url    string
}

// NewClient creates a Client for the given sheet URL. An empty URL selects
// DefaultSheetURL.
func NewClient(url string) *Client {
	if url == "" {
		url = DefaultSheetURL
	}
	return &Client{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: url,
	}
}

// URL returns the sheet export URL this client fetches.
func (c *Client) URL() string {
	return c.url
}

// FetchRows fetches the CSV export and parses it into listing rows. A failed
// fetch aborts the run: no rows are returned and the error is propagated to
// the caller. There is no retry.
func (c *Client) FetchRows() ([]Row, error) {
	req, err := http.NewRequest("GET", c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading sheet body: %w", err)
	}

	return ParseRecords(string(body)), nil
}
