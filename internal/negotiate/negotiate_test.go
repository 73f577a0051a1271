package negotiate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNegotiate(t *testing.T) {
	tests := []struct {
		name      string
		tokens    []string
		preferred Coding
		want      Coding
	}{
		{
			name:      "no_known_codings",
			tokens:    []string{"br", "zstd;q=0.9", "identity"},
			preferred: CodingGzip,
			want:      CodingNone,
		},
		{
			name:      "empty_token_list",
			tokens:    []string{},
			preferred: CodingGzip,
			want:      CodingNone,
		},
		{
			name:      "gzip_only",
			tokens:    []string{"gzip"},
			preferred: CodingDeflate,
			want:      CodingGzip,
		},
		{
			name:      "deflate_only",
			tokens:    []string{"deflate"},
			preferred: CodingGzip,
			want:      CodingDeflate,
		},
		{
			name:      "legacy_x_gzip_alias",
			tokens:    []string{"x-gzip"},
			preferred: CodingDeflate,
			want:      CodingGzip,
		},
		{
			name:      "case_and_whitespace_normalized",
			tokens:    []string{"  GZip  "},
			preferred: CodingDeflate,
			want:      CodingGzip,
		},
		{
			name:      "rejected_gzip_leaves_deflate",
			tokens:    []string{"gzip;q=0", "deflate"},
			preferred: CodingGzip,
			want:      CodingDeflate,
		},
		{
			name:      "wildcard_resolved_by_gzip_preference",
			tokens:    []string{"*"},
			preferred: CodingGzip,
			want:      CodingGzip,
		},
		{
			name:      "wildcard_resolved_by_deflate_preference",
			tokens:    []string{"*"},
			preferred: CodingDeflate,
			want:      CodingDeflate,
		},
		{
			name:      "wildcard_with_zero_weight",
			tokens:    []string{"*;q=0"},
			preferred: CodingGzip,
			want:      CodingNone,
		},
		{
			name:      "higher_weight_wins_over_preference",
			tokens:    []string{"gzip;q=0.5", "deflate;q=0.8"},
			preferred: CodingGzip,
			want:      CodingDeflate,
		},
		{
			name:      "explicit_tie_broken_by_preference",
			tokens:    []string{"deflate;q=0.8", "gzip;q=0.8", "*"},
			preferred: CodingGzip,
			want:      CodingGzip,
		},
		{
			name:      "explicit_tie_broken_by_deflate_preference",
			tokens:    []string{"gzip;q=0.5", "deflate;q=0.5"},
			preferred: CodingDeflate,
			want:      CodingDeflate,
		},
		{
			name:      "wildcard_never_revives_rejected_coding",
			tokens:    []string{"gzip;q=0", "*"},
			preferred: CodingGzip,
			want:      CodingDeflate,
		},
		{
			name:      "rejected_preferred_coding_yields_none",
			tokens:    []string{"deflate;q=0"},
			preferred: CodingDeflate,
			want:      CodingNone,
		},
		{
			name:      "max_weight_retained_per_coding",
			tokens:    []string{"gzip;q=0.1", "gzip;q=0.9", "deflate;q=0.5"},
			preferred: CodingDeflate,
			want:      CodingGzip,
		},
		{
			name:      "comma_joined_line_matched_on_first_coding_only",
			tokens:    []string{"gzip, deflate"},
			preferred: CodingDeflate,
			want:      CodingGzip,
		},
		{
			name:      "explicit_weight_beats_wildcard_weight",
			tokens:    []string{"gzip;q=0.4", "*;q=0.9"},
			preferred: CodingGzip,
			want:      CodingDeflate,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Negotiate(test.tokens, Config{Preferred: test.preferred})
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestNegotiateMalformedQuality(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{
			name:   "trailing_parameter_after_quality",
			tokens: []string{"gzip;q=0.5;foo=bar"},
		},
		{
			name:   "non_numeric_quality",
			tokens: []string{"deflate;q=abc"},
		},
		{
			name:   "empty_quality",
			tokens: []string{"gzip;q="},
		},
		{
			name:   "comma_joined_line_with_quality",
			tokens: []string{"gzip;q=0.5, deflate"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Negotiate(test.tokens, Config{Preferred: CodingGzip})
			require.Error(t, err)
			assert.Equal(t, CodingNone, got)

			var qerr *QualityError
			require.ErrorAs(t, err, &qerr)
			assert.NotEmpty(t, qerr.Token)
		})
	}
}

func TestNegotiateMalformedQualityOnUnknownCoding(t *testing.T) {
	// Unknown codings are skipped before quality parsing, so their broken
	// q-values must not abort negotiation.
	got, err := Negotiate([]string{"zstd;q=oops", "gzip"}, Config{Preferred: CodingGzip})
	require.NoError(t, err)
	assert.Equal(t, CodingGzip, got)
}

func TestNegotiateIsDeterministic(t *testing.T) {
	tokens := []string{"deflate;q=0.8", "gzip;q=0.8", "*;q=0.1"}
	cfg := Config{Preferred: CodingDeflate}

	first, err := Negotiate(tokens, cfg)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		got, err := Negotiate(tokens, cfg)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}
