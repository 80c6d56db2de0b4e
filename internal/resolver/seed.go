package resolver

// defaultSeed maps stock search ids to their NSE trading codes.
var defaultSeed = map[string]string{
	"jio-financial-services-ltd": "JIOFIN",
	"reliance-industries-ltd":    "RELIANCE",
}

// DefaultSeed returns a copy of the built-in seed table.
func DefaultSeed() map[string]string {
	out := make(map[string]string, len(defaultSeed))
	for k, v := range defaultSeed {
		out[k] = v
	}
	return out
}
