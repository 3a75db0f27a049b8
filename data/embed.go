package data

import (
	_ "embed"
)

// ConstitutionExcerpts is the fixed result set served by constitution search.
//
//go:embed constitution.json
var ConstitutionExcerpts []byte

// DocumentTemplates holds the document templates seeded at startup.
//
//go:embed templates.yaml
var DocumentTemplates []byte
