package resolver

import "strings"

// maxQueryTokens is how many words of a company name are sent to the search upstream.
const maxQueryTokens = 3

var stripper = strings.NewReplacer(",", "", "'", "", "&", "", "-", "")

// Sanitize turns a company name into a search query: it drops , ' & and -
// (parentheses are kept) and keeps the first three whitespace separated tokens.
//
//	Sanitize("Larsen & Toubro Ltd.")        // "Larsen Toubro Ltd."
//	Sanitize("Dr. Reddy's Laboratories Ltd") // "Dr. Reddys Laboratories"
func Sanitize(name string) string {
	tokens := strings.Fields(stripper.Replace(name))
	if len(tokens) > maxQueryTokens {
		tokens = tokens[:maxQueryTokens]
	}
	return strings.Join(tokens, " ")
}
