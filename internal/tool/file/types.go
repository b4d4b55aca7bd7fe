package file

import "io"

// ReadFileRequest asks for a window of a file. Offset 0 selects the
// default policy: the whole file when small, otherwise its tail. FromStart
// makes offset 0 an explicit window start instead.
type ReadFileRequest struct {
	AbsPath   string
	Offset    int64
	FromStart bool
}

// Validate checks the request fields.
func (r ReadFileRequest) Validate() error {
	if r.Offset < 0 {
		return &NegativeOffsetError{Value: r.Offset}
	}
	return nil
}

// ReadFileResponse is a decoded window of a file.
type ReadFileResponse struct {
	Content    string
	FileLength int64 // full size of the file, not of the window
	Start      int64 // offset of the first returned byte
	End        int64 // offset just past the last returned byte
}

// AppendRequest appends a line of text to a file.
type AppendRequest struct {
	AbsPath string
	Content string
}

// UploadRequest streams Body into AbsPath.
type UploadRequest struct {
	AbsPath string
	Body    io.Reader
}

// UploadResponse reports how many bytes were stored.
type UploadResponse struct {
	BytesWritten int64
}
