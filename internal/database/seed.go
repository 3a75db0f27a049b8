// seed.go
//
// Legal-aid data service: constitution, Q&A forum, case management and document templates
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of legalaid-api.
// legalaid-api is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// legalaid-api is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with legalaid-api.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/localnerve/legalaid-api/data"
	"github.com/localnerve/legalaid-api/internal/models"
	"github.com/localnerve/legalaid-api/internal/services"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type templateField struct {
	Name     string `yaml:"name" json:"name"`
	Label    string `yaml:"label" json:"label"`
	Type     string `yaml:"type" json:"type"`
	Required bool   `yaml:"required" json:"required"`
}

type templateSeed struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Category    models.Category `yaml:"category"`
	Fields      []templateField `yaml:"fields"`
	HTML        string          `yaml:"html"`
	Active      *bool           `yaml:"active"`
}

type templateFile struct {
	Templates []templateSeed `yaml:"templates"`
}

// TemplateSeeds parses the embedded document template definitions.
func TemplateSeeds() ([]services.TemplateInput, error) {
	var file templateFile
	if err := yaml.Unmarshal(data.DocumentTemplates, &file); err != nil {
		return nil, fmt.Errorf("failed to parse template seeds: %w", err)
	}

	inputs := make([]services.TemplateInput, 0, len(file.Templates))
	for _, t := range file.Templates {
		schema, err := json.Marshal(map[string]interface{}{"fields": t.Fields})
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", t.Name, err)
		}
		in := services.TemplateInput{
			Name:     t.Name,
			Category: t.Category,
			Template: schema,
			IsActive: t.Active,
		}
		if t.Description != "" {
			desc := t.Description
			in.Description = &desc
		}
		if t.HTML != "" {
			html := t.HTML
			in.HTMLTemplate = &html
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

// SeedTemplates inserts every embedded template not already present by name
// and returns how many were created.
func SeedTemplates(ctx context.Context, db *gorm.DB) (int, error) {
	seeds, err := TemplateSeeds()
	if err != nil {
		return 0, err
	}

	created := 0
	for _, seed := range seeds {
		_, isNew, err := services.EnsureDocumentTemplate(ctx, db, seed)
		if err != nil {
			return created, fmt.Errorf("failed to seed template %q: %w", seed.Name, err)
		}
		if isNew {
			created++
		}
	}

	slog.Info("document templates seeded", "created", created, "total", len(seeds))
	return created, nil
}
