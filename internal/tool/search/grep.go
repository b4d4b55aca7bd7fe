package search

import (
	"bytes"
	"regexp"
	"strconv"

	"github.com/Cyclone1070/fileview/internal/tool/helper/content"
)

// contextSeparator is printed between non-adjacent line groups when context is requested.
const contextSeparator = "--\n"

// Line number delimiters: "12:" marks a matched line, "12-" a context line.
const (
	matchDelim   = ':'
	contextDelim = '-'
)

// compilePattern compiles query in multi-line mode so ^ and $ match at line breaks.
func compilePattern(query string, caseInsensitive bool) (*regexp.Regexp, error) {
	flags := "(?m)"
	if caseInsensitive {
		flags = "(?mi)"
	}
	re, err := regexp.Compile(flags + query)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: query, Cause: err}
	}
	return re, nil
}

type lineSpan struct {
	lo, hi int
}

// grep prints every line touched by a match, widened by before/after lines of
// context. Each line is prefixed with its 1-based number followed by ':' for
// matched lines or '-' for context lines. Overlapping and adjacent groups
// merge; other groups are separated by "--" when context is requested. Every
// printed line ends with a newline.
func grep(data []byte, re *regexp.Regexp, before, after int) []byte {
	if len(data) == 0 {
		return nil
	}

	matches := re.FindAllIndex(data, -1)
	if len(matches) == 0 {
		return nil
	}

	idx := content.NewLineIndex(data)
	lastLine := idx.Len() - 1

	var spans []lineSpan
	matched := make(map[int]struct{}, len(matches))
	for _, m := range matches {
		end := m[1]
		if end > m[0] {
			end-- // last byte of a non-empty match
		}
		first, last := idx.LineAt(m[0]), idx.LineAt(end)
		for n := first; n <= last; n++ {
			matched[n] = struct{}{}
		}
		lo := max(first-before, 0)
		hi := min(last+after, lastLine)

		if n := len(spans); n > 0 && lo <= spans[n-1].hi+1 {
			spans[n-1].hi = max(spans[n-1].hi, hi)
			continue
		}
		spans = append(spans, lineSpan{lo: lo, hi: hi})
	}

	var out bytes.Buffer
	for i, span := range spans {
		if i > 0 && (before > 0 || after > 0) {
			out.WriteString(contextSeparator)
		}
		for n := span.lo; n <= span.hi; n++ {
			delim := byte(contextDelim)
			if _, ok := matched[n]; ok {
				delim = matchDelim
			}
			out.WriteString(strconv.Itoa(n + 1))
			out.WriteByte(delim)

			line := idx.Line(n)
			out.Write(line)
			if len(line) == 0 || line[len(line)-1] != '\n' {
				out.WriteByte('\n')
			}
		}
	}
	return out.Bytes()
}
