package directory

import "time"

// DateLayout is the modified-time format of listing entries (UTC).
const DateLayout = "2006-01-02 15:04:05"

// EntryKind classifies a listing entry.
type EntryKind string

const (
	KindDirectory EntryKind = "d"
	KindFile      EntryKind = "f"
)

// DirectoryEntry represents a single visible child of a listed directory.
type DirectoryEntry struct {
	Kind    EntryKind
	Name    string
	ModTime time.Time
	// Size is the byte length of a file. Directories report the size the
	// filesystem gives their directory entry (typically 4096 on ext4), not
	// the size of their contents.
	Size int64
}

// Date returns the modified time formatted with DateLayout in UTC.
func (e DirectoryEntry) Date() string {
	return e.ModTime.UTC().Format(DateLayout)
}

// ListDirectoryRequest names the directory to list. AbsPath must already be
// resolved under the root.
type ListDirectoryRequest struct {
	AbsPath string
}

// ListDirectoryResponse contains the visible children of a directory.
type ListDirectoryResponse struct {
	DirectoryPath string // root-relative, "" for the root
	Entries       []DirectoryEntry
}
