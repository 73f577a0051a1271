// Package negotiate selects the response content coding for a request from
// its Accept-Encoding tokens and the configured server preference.
package negotiate

import "strings"

type codingState struct {
	found  bool
	weight float64
}

func (cs *codingState) mark(q float64) {
	cs.found = true
	if q > cs.weight {
		cs.weight = q
	}
}

// Negotiate scans the raw Accept-Encoding values of a request and returns
// the coding to apply to the response body, or CodingNone when no mutually
// acceptable coding exists. CodingNone is the normal outcome for clients
// that do not advertise compression support and is never an error.
//
// Each element of tokens is treated as one opaque coding token: values are
// trimmed and lower-cased but never split on commas, so a client folding
// several codings into a single header line is matched on the first coding
// only. With net/http this means callers pass r.Header.Values directly and
// each header line becomes one token.
//
// Matching is prefix-based against gzip (including the legacy x-gzip
// alias), deflate and the wildcard; anything else is ignored. A coding
// named several times keeps the highest weight seen. The wildcard weight
// applies to a coding only when that coding was not named explicitly, so
// "gzip;q=0, *" still refuses gzip.
//
// A malformed q-value aborts negotiation with a *QualityError; callers are
// expected to surface it to the client rather than fall back to identity.
func Negotiate(tokens []string, cfg Config) (Coding, error) {
	var gz, df, star codingState

	for _, raw := range tokens {
		token := strings.ToLower(strings.TrimSpace(raw))

		matchGzip := strings.HasPrefix(token, "gzip") || strings.HasPrefix(token, "x-gzip")
		matchDeflate := strings.HasPrefix(token, "deflate")
		matchStar := strings.HasPrefix(token, "*")
		if !matchGzip && !matchDeflate && !matchStar {
			continue
		}

		q, err := ParseQuality(token)
		if err != nil {
			return CodingNone, err
		}
		if matchGzip {
			gz.mark(q)
		}
		if matchDeflate {
			df.mark(q)
		}
		if matchStar {
			star.mark(q)
		}
	}

	starAcceptable := star.found && star.weight > 0
	deflateAcceptable := (df.found && df.weight > 0) || (!df.found && starAcceptable)
	gzipAcceptable := (gz.found && gz.weight > 0) || (!gz.found && starAcceptable)

	// Codings reached only through the wildcard inherit its weight.
	if deflateAcceptable && !df.found {
		df.weight = star.weight
	}
	if gzipAcceptable && !gz.found {
		gz.weight = star.weight
	}

	switch {
	case deflateAcceptable && (!gzipAcceptable || df.weight > gz.weight):
		return CodingDeflate, nil
	case gzipAcceptable && (!deflateAcceptable || df.weight < gz.weight):
		return CodingGzip, nil
	case deflateAcceptable && cfg.Preferred == CodingDeflate:
		return CodingDeflate, nil
	case gzipAcceptable && cfg.Preferred == CodingGzip:
		return CodingGzip, nil
	default:
		return CodingNone, nil
	}
}
