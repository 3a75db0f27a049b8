package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/localnerve/legalaid-api/internal/models"
	"gorm.io/gorm"
)

// TemplateInput is the payload for EnsureDocumentTemplate.
type TemplateInput struct {
	Name         string
	Description  *string
	Category     models.Category
	Template     json.RawMessage
	HTMLTemplate *string
	// IsActive defaults to true when nil.
	IsActive *bool
}

// GeneratedDocumentInput is the payload for CreateGeneratedDocument.
type GeneratedDocumentInput struct {
	UserID     string          `json:"-"`
	TemplateID string          `json:"templateId"`
	Title      string          `json:"title"`
	FormData   json.RawMessage `json:"formData"`
}

// ListDocumentTemplates returns active templates ordered by name.
func ListDocumentTemplates(ctx context.Context, db *gorm.DB, category models.Category) ([]models.DocumentTemplate, error) {
	templates := []models.DocumentTemplate{}
	err := reader(ctx, db, "listDocumentTemplates").
		Scopes(whereEq("category", category)).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&templates).Error
	if err != nil {
		return nil, translateError(err)
	}
	return templates, nil
}

// GetDocumentTemplate retrieves a template by id, active or not.
func GetDocumentTemplate(ctx context.Context, db *gorm.DB, id string) (*models.DocumentTemplate, error) {
	return findByID[models.DocumentTemplate](ctx, db, "getDocumentTemplate", id)
}

// EnsureDocumentTemplate creates the template unless one with the same name
// exists, in which case the existing row is returned unchanged.
func EnsureDocumentTemplate(ctx context.Context, db *gorm.DB, in TemplateInput) (*models.DocumentTemplate, bool, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, false, invalid("name", "is required")
	}
	if err := validateCategory(in.Category); err != nil {
		return nil, false, err
	}
	schema, ok := models.ParseJSON(in.Template)
	if !ok {
		return nil, false, invalid("template", "must be a JSON document")
	}

	var existing models.DocumentTemplate
	err := reader(ctx, db, "ensureDocumentTemplate").Where("name = ?", in.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if terr := translateError(err); !errors.Is(terr, ErrNotFound) {
		return nil, false, terr
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	tpl := models.DocumentTemplate{
		Name:         in.Name,
		Description:  in.Description,
		Category:     in.Category,
		Template:     schema,
		HTMLTemplate: in.HTMLTemplate,
		IsActive:     active,
	}
	if err := db.WithContext(ctx).Create(&tpl).Error; err != nil {
		return nil, false, translateError(err)
	}
	return &tpl, true, nil
}

// ListUserGeneratedDocuments returns the user's generated documents newest
// first, each with its template.
func ListUserGeneratedDocuments(ctx context.Context, db *gorm.DB, userID string) ([]models.GeneratedDocument, error) {
	docs := []models.GeneratedDocument{}
	err := reader(ctx, db, "listUserGeneratedDocuments").
		Preload("Template").
		Scopes(ownedBy("user_id", userID)).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, translateError(err)
	}
	return docs, nil
}

// CreateGeneratedDocument stores a filled-in template for the user. Output
// urls are left null.
func CreateGeneratedDocument(ctx context.Context, db *gorm.DB, in GeneratedDocumentInput) (*models.GeneratedDocument, error) {
	if in.UserID == "" {
		return nil, invalid("userId", "is required")
	}
	if in.TemplateID == "" {
		return nil, invalid("templateId", "is required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, invalid("title", "is required")
	}
	formData := in.FormData
	if len(formData) == 0 {
		formData = json.RawMessage("{}")
	}
	form, ok := models.ParseJSON(formData)
	if !ok {
		return nil, invalid("formData", "must be a JSON document")
	}

	if _, err := GetDocumentTemplate(ctx, db, in.TemplateID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, invalid("templateId", "unknown template")
		}
		return nil, err
	}

	doc := models.GeneratedDocument{
		UserID:     in.UserID,
		TemplateID: in.TemplateID,
		Title:      in.Title,
		FormData:   form,
	}
	if err := db.WithContext(ctx).Create(&doc).Error; err != nil {
		return nil, translateError(err)
	}
	return &doc, nil
}
