package upstream

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

const (
	opQuote       = "quote"
	dayChangePath = "$.dayChangePerc"
)

// CodePlaceholders are the tokens replaced by the trading code in a quote URL
// template. "{stock_code}" is the canonical one.
var CodePlaceholders = []string{"{stock_code}", "{code}", "{}"}

// QuoteClient reads live quotes from a templated endpoint such as
// https://example.com/latest_prices_ohlc/NSE/{stock_code}. "{code}" and a bare
// "{}" are accepted as well.
type QuoteClient struct {
	client
	template string
}

// NewQuoteClient creates a quote client for the given URL template.
func NewQuoteClient(template string, options ...Option) *QuoteClient {
	return &QuoteClient{client: newClient(options...), template: template}
}

// URL renders the quote endpoint for code.
func (c *QuoteClient) URL(code string) string {
	escaped := url.PathEscape(code)
	pairs := make([]string, 0, 2*len(CodePlaceholders))
	for _, p := range CodePlaceholders {
		pairs = append(pairs, p, escaped)
	}
	return strings.NewReplacer(pairs...).Replace(c.template)
}

// DayChange returns the intraday change percentage of code.
func (c *QuoteClient) DayChange(ctx context.Context, code string) (float64, error) {
	var doc any
	if err := c.getJSON(ctx, opQuote, c.URL(code), &doc); err != nil {
		return 0, err
	}

	raw, err := jsonpath.Get(dayChangePath, doc)
	if err != nil {
		return 0, newError(opQuote, ReasonMalformed, err)
	}

	var change float64
	switch v := raw.(type) {
	case float64:
		change = v
	case string:
		change, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, newError(opQuote, ReasonMalformed, fmt.Errorf("dayChangePerc %q: %w", v, err))
		}
	default:
		return 0, newError(opQuote, ReasonMalformed, fmt.Errorf("dayChangePerc is %T", raw))
	}
	if math.IsNaN(change) || math.IsInf(change, 0) {
		return 0, newError(opQuote, ReasonMalformed, fmt.Errorf("dayChangePerc is not finite: %v", change))
	}
	return change, nil
}
