package services

import (
	"context"
	"strings"

	"github.com/localnerve/legalaid-api/internal/models"
	"github.com/localnerve/legalaid-api/internal/types"
	"gorm.io/gorm"
)

// LegalDocumentFilter narrows ListLegalDocuments. Empty fields apply no predicate.
type LegalDocumentFilter struct {
	Category models.Category
	Search   string
	Page
}

// LegalDocumentInput is the payload for CreateLegalDocument.
type LegalDocumentInput struct {
	Title           string                 `json:"title"`
	Content         string                 `json:"content"`
	Summary         *string                `json:"summary"`
	Category        models.Category        `json:"category"`
	DifficultyLevel types.FlexInt          `json:"difficultyLevel"`
	Language        string                 `json:"language"`
	Tags            types.FlexList[string] `json:"tags"`
	SourceURL       *string                `json:"sourceUrl"`
	IsOfficial      bool                   `json:"isOfficial"`
}

// LegalDocumentUpdate is a partial update; nil fields are left untouched.
type LegalDocumentUpdate struct {
	Title           *string                 `json:"title"`
	Content         *string                 `json:"content"`
	Summary         *string                 `json:"summary"`
	Category        *models.Category        `json:"category"`
	DifficultyLevel *types.FlexInt          `json:"difficultyLevel"`
	Language        *string                 `json:"language"`
	Tags            *types.FlexList[string] `json:"tags"`
	SourceURL       *string                 `json:"sourceUrl"`
	IsOfficial      *bool                   `json:"isOfficial"`
}

func validateDifficulty(level int) error {
	if level < 1 || level > 5 {
		return invalid("difficultyLevel", "must be between 1 and 5")
	}
	return nil
}

func validateCategory(c models.Category) error {
	if !c.Valid() {
		return invalid("category", "unknown category %q", c)
	}
	return nil
}

// ListLegalDocuments returns legal documents newest first.
func ListLegalDocuments(ctx context.Context, db *gorm.DB, f LegalDocumentFilter) ([]models.LegalDocument, error) {
	docs := []models.LegalDocument{}
	err := reader(ctx, db, "listLegalDocuments").
		Scopes(
			whereEq("category", f.Category),
			search("title", "content", f.Search),
			paginate(f.Page),
		).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, translateError(err)
	}
	return docs, nil
}

// GetLegalDocument retrieves a legal document by id.
func GetLegalDocument(ctx context.Context, db *gorm.DB, id string) (*models.LegalDocument, error) {
	return findByID[models.LegalDocument](ctx, db, "getLegalDocument", id)
}

// CreateLegalDocument validates and stores a new legal document.
func CreateLegalDocument(ctx context.Context, db *gorm.DB, in LegalDocumentInput) (*models.LegalDocument, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, invalid("title", "is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, invalid("content", "is required")
	}
	if err := validateCategory(in.Category); err != nil {
		return nil, err
	}
	if in.DifficultyLevel != 0 {
		if err := validateDifficulty(in.DifficultyLevel.Int()); err != nil {
			return nil, err
		}
	}

	doc := models.LegalDocument{
		Title:           in.Title,
		Content:         in.Content,
		Summary:         in.Summary,
		Category:        in.Category,
		DifficultyLevel: in.DifficultyLevel.Int(),
		Language:        in.Language,
		Tags:            models.StringList(in.Tags.Slice()),
		SourceURL:       in.SourceURL,
		IsOfficial:      in.IsOfficial,
	}
	if err := db.WithContext(ctx).Create(&doc).Error; err != nil {
		return nil, translateError(err)
	}
	return &doc, nil
}

// UpdateLegalDocument applies a partial update to a legal document.
func UpdateLegalDocument(ctx context.Context, db *gorm.DB, id string, in LegalDocumentUpdate) (*models.LegalDocument, error) {
	fields := map[string]interface{}{}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, invalid("title", "is required")
		}
		fields["title"] = *in.Title
	}
	if in.Content != nil {
		if strings.TrimSpace(*in.Content) == "" {
			return nil, invalid("content", "is required")
		}
		fields["content"] = *in.Content
	}
	if in.Summary != nil {
		fields["summary"] = *in.Summary
	}
	if in.Category != nil {
		if err := validateCategory(*in.Category); err != nil {
			return nil, err
		}
		fields["category"] = *in.Category
	}
	if in.DifficultyLevel != nil {
		if err := validateDifficulty(in.DifficultyLevel.Int()); err != nil {
			return nil, err
		}
		fields["difficulty_level"] = in.DifficultyLevel.Int()
	}
	if in.Language != nil {
		fields["language"] = *in.Language
	}
	if in.Tags != nil {
		fields["tags"] = models.StringList(in.Tags.Slice())
	}
	if in.SourceURL != nil {
		fields["source_url"] = *in.SourceURL
	}
	if in.IsOfficial != nil {
		fields["is_official"] = *in.IsOfficial
	}
	if err := updateByID[models.LegalDocument](ctx, db, id, fields); err != nil {
		return nil, err
	}
	return GetLegalDocument(ctx, db, id)
}
