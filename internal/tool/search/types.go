package search

import (
	"github.com/Cyclone1070/fileview/internal/config"
)

// SearchContentRequest describes one search. AbsPath must already be resolved
// under the root and may name a file or a directory.
type SearchContentRequest struct {
	AbsPath         string
	Query           string
	Before          int
	After           int
	CaseInsensitive bool
}

// Validate checks the request against configured limits.
func (r *SearchContentRequest) Validate(cfg *config.Config) error {
	if r.Query == "" {
		return &QueryRequiredError{}
	}
	if r.Before < 0 {
		return &NegativeContextError{Name: "before", Value: r.Before}
	}
	if r.After < 0 {
		return &NegativeContextError{Name: "after", Value: r.After}
	}
	if limit := cfg.Search.MaxContextLines; limit > 0 {
		if r.Before > limit {
			return &ContextLimitError{Name: "before", Value: r.Before, Max: limit}
		}
		if r.After > limit {
			return &ContextLimitError{Name: "after", Value: r.After, Max: limit}
		}
	}
	return nil
}

// SearchContentResponse holds the grep-style text of a search.
type SearchContentResponse struct {
	Query        string
	Content      string
	Path         string // root-relative path that was searched
	MatchedFiles int
}
