package content

import "sort"

// SplitLines splits content into lines, handling both \n and \r\n line endings.
// It returns a slice of strings, each representing a line without its line ending.
// If the content ends with a newline sequence, it does NOT return a trailing empty string.
func SplitLines(content string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lines = append(lines, content[start:i])
			start = i + 1
		} else if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			lines = append(lines, content[start:i])
			start = i + 2
			i++ // Skip the \n
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}

// LineIndex maps byte offsets of a buffer to zero-based line numbers.
// Lines keep their terminator; a trailing newline does not start an extra line.
type LineIndex struct {
	data   []byte
	starts []int
}

// NewLineIndex indexes the line starts of data.
func NewLineIndex(data []byte) *LineIndex {
	starts := make([]int, 0, 64)
	if len(data) > 0 {
		starts = append(starts, 0)
	}
	for i, b := range data {
		if b == '\n' && i+1 < len(data) {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{data: data, starts: starts}
}

// Len returns the number of lines.
func (x *LineIndex) Len() int {
	return len(x.starts)
}

// LineAt returns the line containing offset. Offsets past the end map to the last line.
func (x *LineIndex) LineAt(offset int) int {
	n := sort.Search(len(x.starts), func(i int) bool { return x.starts[i] > offset })
	return max(n-1, 0)
}

// Line returns line n including its terminator, if any.
func (x *LineIndex) Line(n int) []byte {
	end := len(x.data)
	if n+1 < len(x.starts) {
		end = x.starts[n+1]
	}
	return x.data[x.starts[n]:end]
}
