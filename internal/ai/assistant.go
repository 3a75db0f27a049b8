// assistant.go
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

package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/localnerve/legalaid-api/internal/models"
)

// ErrGeneration is returned when the model call fails or yields nothing usable.
var ErrGeneration = errors.New("text generation failed")

const (
	summarySystemPrompt = "You are a legal expert specializing in Kenyan law. " +
		"Provide clear, concise summaries of legal documents and constitutional provisions."
	analysisSystemPrompt = "You are a legal AI assistant for Kenya. Analyze legal questions and categorize them. " +
		"Respond with JSON in this format: { 'category': 'constitutional|civil|criminal|family|property|business|employment|human_rights', " +
		"'complexity': 1-5, 'suggestedResources': ['resource1', 'resource2'] }"
	documentSystemPrompt = "You are a legal document generator for Kenya. Create properly formatted legal documents " +
		"based on the template type and form data provided. Ensure compliance with Kenyan law."
)

// QuestionAnalysis classifies a legal question.
type QuestionAnalysis struct {
	Category           models.Category `json:"category"`
	Complexity         int             `json:"complexity"`
	SuggestedResources []string        `json:"suggestedResources"`
}

// DefaultAnalysis is returned whenever a question cannot be analyzed.
func DefaultAnalysis() QuestionAnalysis {
	return QuestionAnalysis{
		Category:           models.CategoryCivil,
		Complexity:         3,
		SuggestedResources: []string{"Kenya Law Database", "Constitution of Kenya 2010"},
	}
}

// Assistant produces legal summaries, question analyses and document drafts.
type Assistant struct {
	llm     Completer
	timeout time.Duration
}

// NewAssistant wraps llm. Each call is bounded by timeout when it is positive.
func NewAssistant(llm Completer, timeout time.Duration) *Assistant {
	return &Assistant{llm: llm, timeout: timeout}
}

func (a *Assistant) complete(ctx context.Context, req ChatRequest) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}
	out, err := a.llm.Complete(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("%w: empty response", ErrGeneration)
	}
	return out, nil
}

// Summarize explains text for a reader without legal training.
func (a *Assistant) Summarize(ctx context.Context, text string) (string, error) {
	return a.complete(ctx, ChatRequest{
		System:      summarySystemPrompt,
		User:        "Please provide a clear summary of this legal text for someone without legal training: " + text,
		MaxTokens:   300,
		Temperature: 0.3,
	})
}

// AnalyzeQuestion classifies question. It never fails: any model error or
// unusable reply yields DefaultAnalysis, and missing fields are filled from it.
func (a *Assistant) AnalyzeQuestion(ctx context.Context, question string) QuestionAnalysis {
	fallback := DefaultAnalysis()

	out, err := a.complete(ctx, ChatRequest{
		System:      analysisSystemPrompt,
		User:        question,
		Temperature: 0.2,
		JSON:        true,
	})
	if err != nil {
		slog.Warn("question analysis failed", "error", err)
		return fallback
	}

	var result QuestionAnalysis
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		slog.Warn("question analysis returned invalid JSON", "error", err)
		return fallback
	}
	if !result.Category.Valid() {
		result.Category = fallback.Category
	}
	if result.Complexity < 1 || result.Complexity > 5 {
		result.Complexity = fallback.Complexity
	}
	if len(result.SuggestedResources) == 0 {
		result.SuggestedResources = fallback.SuggestedResources
	}
	return result
}

// GenerateDocument drafts a document of templateType from formData.
func (a *Assistant) GenerateDocument(ctx context.Context, templateType string, formData json.RawMessage) (string, error) {
	if len(formData) == 0 {
		formData = json.RawMessage("{}")
	}
	return a.complete(ctx, ChatRequest{
		System:      documentSystemPrompt,
		User:        fmt.Sprintf("Generate a %s document using this form data: %s", templateType, formData),
		MaxTokens:   2000,
		Temperature: 0.1,
	})
}
