package adapter

// InfoInvalidDirectory is the listing info for a path that is not a directory.
const InfoInvalidDirectory = "invalid directory configuration"

// ListEntry is one row of a directory listing.
type ListEntry struct {
	Class string `json:"class"` // "d" or "f"
	Name  string `json:"name"`
	Date  string `json:"date"`
	Size  int64  `json:"size"`
}

// ListPayload is the response of listDirectory.
type ListPayload struct {
	Status       bool        `json:"status"`
	Info         string      `json:"info"`
	InfoLegacy   string      `json:"infoLegacy,omitempty"`
	Entries      []ListEntry `json:"entries"`
	FilteredPath *string     `json:"filteredPath"`
}

// ReadPayload is the response of readWindow. Seek carries the full file length.
type ReadPayload struct {
	Content  string `json:"content"`
	Seek     int64  `json:"seek"`
	FilePath string `json:"filePath"`
	Start    int64  `json:"start"`
	End      int64  `json:"end"`
}

// SearchPayload is the response of search.
type SearchPayload struct {
	Search       string `json:"search"`
	Content      string `json:"content"`
	FilePath     string `json:"filePath"`
	MatchedFiles int    `json:"matchedFiles"`
}

// WritePayload is the response of append, upload and fileExists.
type WritePayload struct {
	Status  int    `json:"status"` // 1 on success, 0 on failure
	Message string `json:"message"`
	Exists  *bool  `json:"exists,omitempty"`
}

// ErrorPayload is the response of a failed read-only operation.
type ErrorPayload struct {
	Status int    `json:"status"`
	Kind   string `json:"kind"`
	Error  string `json:"error"`
}
