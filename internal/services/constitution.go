package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/localnerve/legalaid-api/data"
)

// ConstitutionExcerpt is one constitution search hit.
type ConstitutionExcerpt struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Chapter   string  `json:"chapter"`
	Section   string  `json:"section"`
	Relevance float64 `json:"relevance"`
}

var (
	excerpts     []ConstitutionExcerpt
	excerptsErr  error
	excerptsOnce sync.Once
)

func loadExcerpts() ([]ConstitutionExcerpt, error) {
	excerptsOnce.Do(func() {
		if err := json.Unmarshal(data.ConstitutionExcerpts, &excerpts); err != nil {
			excerptsErr = fmt.Errorf("failed to parse constitution excerpts: %w", err)
		}
	})
	return excerpts, excerptsErr
}

// SearchConstitution returns the excerpts whose title or content contains
// query, ignoring case. The result set is fixed; there is no search index.
func SearchConstitution(query string) ([]ConstitutionExcerpt, error) {
	if strings.TrimSpace(query) == "" {
		return nil, invalid("q", "search query required")
	}
	all, err := loadExcerpts()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	results := []ConstitutionExcerpt{}
	for _, e := range all {
		if strings.Contains(strings.ToLower(e.Title), needle) || strings.Contains(strings.ToLower(e.Content), needle) {
			results = append(results, e)
		}
	}
	return results, nil
}
