package content

import "bytes"

// binarySampleSize is the number of leading bytes scanned for a NUL byte.
// This matches Git's heuristic (8000 bytes since 2005).
const binarySampleSize = 8000

// IsBinaryContent reports whether content contains a NUL byte within its first 8000 bytes.
func IsBinaryContent(content []byte) bool {
	sample := content[:min(len(content), binarySampleSize)]
	return bytes.IndexByte(sample, 0) >= 0
}
