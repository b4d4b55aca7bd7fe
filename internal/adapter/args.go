package adapter

// ListArgs are the arguments of listDirectory.
type ListArgs struct {
	Path string `mapstructure:"path"`
}

// ReadArgs are the arguments of readWindow.
// FromStart reads from offset 0 as an explicit window even when Seek is 0.
type ReadArgs struct {
	Path      string `mapstructure:"path"`
	Seek      int64  `mapstructure:"seek"`
	FromStart bool   `mapstructure:"from_start"`
}

// SearchArgs are the arguments of search. CaseSensitive defaults to true.
type SearchArgs struct {
	Path          string `mapstructure:"path"`
	Search        string `mapstructure:"search"`
	Before        int    `mapstructure:"before"`
	After         int    `mapstructure:"after"`
	CaseSensitive *bool  `mapstructure:"case_sensitive"`
}

// AppendArgs are the arguments of append.
type AppendArgs struct {
	Path    string `mapstructure:"path"`
	Content string `mapstructure:"content"`
}

// UploadArgs name the upload target directory and file.
type UploadArgs struct {
	Path     string `mapstructure:"path"`
	FileName string `mapstructure:"file_name"`
}

// validate runs after the write gate check so a disabled gate wins.
func (a UploadArgs) validate() error {
	if a.FileName == "" {
		return &FileNameRequiredError{}
	}
	return nil
}

// ExistsArgs name the file whose existence is checked.
type ExistsArgs struct {
	Path     string `mapstructure:"path"`
	FileName string `mapstructure:"file_name"`
}

func (a ExistsArgs) validate() error {
	if a.FileName == "" {
		return &FileNameRequiredError{}
	}
	return nil
}
