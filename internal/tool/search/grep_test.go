package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrep(t *testing.T) {
	lines := "one\ntwo\nthree\nfour\nfive\nsix\nseven\neight\nnine\nten\n"

	tests := []struct {
		name     string
		data     string
		pattern  string
		before   int
		after    int
		expected string
	}{
		{
			name:     "single match without context",
			data:     lines,
			pattern:  "four",
			expected: "4:four\n",
		},
		{
			name:     "no match",
			data:     lines,
			pattern:  "eleven",
			expected: "",
		},
		{
			name:     "separate matches without context print no separator",
			data:     lines,
			pattern:  "two|nine",
			expected: "2:two\n9:nine\n",
		},
		{
			name:     "before and after context",
			data:     lines,
			pattern:  "five",
			before:   1,
			after:    2,
			expected: "4-four\n5:five\n6-six\n7-seven\n",
		},
		{
			name:     "distant groups are separated",
			data:     lines,
			pattern:  "two|nine",
			before:   1,
			after:    0,
			expected: "1-one\n2:two\n--\n8-eight\n9:nine\n",
		},
		{
			name:     "overlapping groups merge",
			data:     lines,
			pattern:  "three|five",
			before:   1,
			after:    1,
			expected: "2-two\n3:three\n4-four\n5:five\n6-six\n",
		},
		{
			name:     "adjacent groups merge",
			data:     lines,
			pattern:  "two|five",
			after:    2,
			expected: "2:two\n3-three\n4-four\n5:five\n6-six\n7-seven\n",
		},
		{
			name:     "context clamps at file edges",
			data:     lines,
			pattern:  "one|ten",
			before:   3,
			after:    3,
			expected: "1:one\n2-two\n3-three\n4-four\n--\n7-seven\n8-eight\n9-nine\n10:ten\n",
		},
		{
			name:     "match spanning lines prints every touched line",
			data:     lines,
			pattern:  `three\nfour`,
			expected: "3:three\n4:four\n",
		},
		{
			name:     "match ending in newline stays on its line",
			data:     lines,
			pattern:  `six\n`,
			expected: "6:six\n",
		},
		{
			name:     "anchors match at line breaks",
			data:     lines,
			pattern:  `^t`,
			expected: "2:two\n3:three\n10:ten\n",
		},
		{
			name:     "last line without newline",
			data:     "alpha\nbeta",
			pattern:  "beta",
			expected: "2:beta\n",
		},
		{
			name:     "crlf endings are kept",
			data:     "alpha\r\nbeta\r\n",
			pattern:  "alpha",
			expected: "1:alpha\r\n",
		},
		{
			name:     "several matches on one line print it once",
			data:     "a a a\nb\n",
			pattern:  "a",
			expected: "1:a a a\n",
		},
		{
			name:     "empty input",
			data:     "",
			pattern:  ".*",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := compilePattern(tt.pattern, false)
			require.NoError(t, err)

			got := grep([]byte(tt.data), re, tt.before, tt.after)

			assert.Equal(t, tt.expected, string(got))
		})
	}
}

func TestCompilePattern(t *testing.T) {
	t.Run("case sensitive by default", func(t *testing.T) {
		re, err := compilePattern("error", false)
		require.NoError(t, err)
		assert.False(t, re.MatchString("ERROR"))
	})

	t.Run("case insensitive", func(t *testing.T) {
		re, err := compilePattern("error", true)
		require.NoError(t, err)
		assert.True(t, re.MatchString("ERROR"))
	})

	t.Run("invalid syntax", func(t *testing.T) {
		_, err := compilePattern("a(b", false)

		var patternErr *InvalidPatternError
		require.ErrorAs(t, err, &patternErr)
		assert.True(t, patternErr.InvalidInput())
		assert.Equal(t, "a(b", patternErr.Pattern)
	})
}
