package negotiate

import (
	"fmt"
	"strconv"
	"strings"
)

// QualityError reports a coding token whose q-value could not be parsed.
type QualityError struct {
	Token string
	Err   error
}

func (e *QualityError) Error() string {
	return fmt.Sprintf("malformed quality value in token %q: %v", e.Token, e.Err)
}

func (e *QualityError) Unwrap() error {
	return e.Err
}

// ParseQuality extracts the quality weight from a single coding token.
// The token must already be trimmed and lower-cased. A token without a
// "q=" parameter weighs 1.0.
//
// Everything from just after "q=" to the end of the token is parsed as one
// float, so a token carrying further parameters after the q-value (e.g.
// "gzip;q=0.5;foo=bar") fails instead of being truncated at the next
// separator. Callers that need a stricter RFC 9110 parameter grammar can
// replace this function without touching the selection algorithm.
func ParseQuality(token string) (float64, error) {
	idx := strings.Index(token, "q=")
	if idx < 0 {
		return 1.0, nil
	}
	q, err := strconv.ParseFloat(token[idx+2:], 64)
	if err != nil {
		return 0, &QualityError{Token: token, Err: err}
	}
	return q, nil
}
