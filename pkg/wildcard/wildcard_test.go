// Test Type: Unit Test
// Description: Tests for the wildcard package - pattern compilation and matching

package wildcard_test

import (
	"sync"
	"testing"

	"github.com/isker/robots/pkg/wildcard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		candidate string
		want      bool
	}{
		{"literal_prefix", "/foo", "/foo/bar", true},
		{"literal_exact", "/foo", "/foo", true},
		{"literal_miss", "/foo", "/bar", false},
		{"prefix_only_from_start", "/foo", "/x/foo", false},

		{"star_matches_substring", "/a*b", "/axyzb", true},
		{"star_prefix_match_continues", "/a*b", "/axyzb/and/more", true},
		{"star_matches_empty", "/a*b", "/ab", true},
		{"star_run_collapses", "/a**b", "/axyzb", true},
		{"star_needs_following_literal", "/a*b", "/axyz", false},

		{"anchored_exact_end", "/a*b$", "/axyzb", true},
		{"anchored_rejects_suffix", "/a*b$", "/axyzb/more", false},
		{"anchored_literal", "/foo$", "/foo", true},
		{"anchored_literal_miss", "/foo$", "/foo/", false},

		{"regex_metachars_are_literal", "/a.c", "/abc", false},
		{"regex_metachars_match_themselves", "/a.c", "/a.c", true},
		{"query_string_is_plain_text", "/rap*?cat=*", "/rapsheet?cat=etcpwd", true},

		{"case_sensitive_paths", "/Foo", "/foo", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := wildcard.Match(tt.pattern, tt.candidate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got,
				"Match(%q, %q)", tt.pattern, tt.candidate)
		})
	}
}

func TestCompile_Idempotent(t *testing.T) {
	first, err := wildcard.Compile("/a*b$")
	require.NoError(t, err)

	second, err := wildcard.Compile("/a*b$")
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
}

func TestMatch_ConcurrentCachePopulation(t *testing.T) {
	patterns := []string{"/a*", "/b$", "/c*d$", "/plain", "/e*f*g"}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, p := range patterns {
				if _, err := wildcard.Match(p, "/abcdefg"); err != nil {
					t.Error(err)
				}
			}
		}()
	}
	wg.Wait()
}
