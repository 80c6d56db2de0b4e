package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

const opSearch = "search"

// Match is the first hit of a company search.
type Match struct {
	Title string
	Code  string // NSE trading code
}

// SearchClient queries the fuzzy company-search upstream.
type SearchClient struct {
	client
	baseURL string
}

// NewSearchClient creates a client for the company search endpoint.
func NewSearchClient(baseURL string, options ...Option) *SearchClient {
	return &SearchClient{client: newClient(options...), baseURL: baseURL}
}

// Search looks up query (first page, web flavour) and returns the first content match.
// A match without an nse_scrip_code fails with ReasonNotFound but still carries
// its title, so callers can report the mismatch.
//
// Expected body:
//
//	{"data": {"content": [{"title": "Reliance Industries Ltd", "nse_scrip_code": "RELIANCE"}]}}
func (c *SearchClient) Search(ctx context.Context, query string) (Match, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return Match{}, newError(opSearch, ReasonTransport, fmt.Errorf("build url: %w", err))
	}
	q := u.Query()
	q.Set("page", "0")
	q.Set("query", query)
	q.Set("web", "true")
	u.RawQuery = q.Encode()

	var doc any
	if err := c.getJSON(ctx, opSearch, u.String(), &doc); err != nil {
		return Match{}, err
	}

	raw, err := jsonpath.Get("$.data.content", doc)
	if err != nil {
		return Match{}, newError(opSearch, ReasonMalformed, err)
	}
	content, ok := raw.([]any)
	if !ok {
		return Match{}, newError(opSearch, ReasonMalformed, fmt.Errorf("content is %T, not a list", raw))
	}
	if len(content) == 0 {
		return Match{}, newError(opSearch, ReasonNotFound, fmt.Errorf("no match for %q", query))
	}

	first, ok := content[0].(map[string]any)
	if !ok {
		return Match{}, newError(opSearch, ReasonMalformed, fmt.Errorf("match is %T, not an object", content[0]))
	}
	title, _ := first["title"].(string)
	code, _ := first["nse_scrip_code"].(string)
	if code == "" {
		return Match{Title: title}, newError(opSearch, ReasonNotFound, errors.New("match has no nse_scrip_code"))
	}
	return Match{Title: title, Code: code}, nil
}
