package models

import (
	"time"

	"gorm.io/gorm"
)

// DocumentTemplate describes a fillable legal document: Template holds the
// form-field schema, HTMLTemplate an optional rendering template.
type DocumentTemplate struct {
	ID           string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null;index" json:"name"`
	Description  *string   `gorm:"type:text" json:"description"`
	Category     Category  `gorm:"size:32;not null" json:"category"`
	Template     JSON      `gorm:"not null" json:"template"`
	HTMLTemplate *string   `gorm:"type:text" json:"htmlTemplate"`
	IsActive     bool      `gorm:"not null;index" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName overrides the table name for DocumentTemplate
func (DocumentTemplate) TableName() string {
	return "document_templates"
}

// BeforeCreate assigns an id.
func (t *DocumentTemplate) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = newID()
	}
	return nil
}

// GeneratedDocument is a user's filled-in template. The PDF and DOCX urls stay
// null until a rendering pipeline populates them.
type GeneratedDocument struct {
	ID         string            `gorm:"type:varchar(64);primaryKey" json:"id"`
	UserID     string            `gorm:"type:varchar(64);not null;index" json:"userId"`
	User       *User             `gorm:"foreignKey:UserID;references:ID" json:"-"`
	TemplateID string            `gorm:"type:varchar(64);not null;index" json:"templateId"`
	Template   *DocumentTemplate `gorm:"foreignKey:TemplateID;references:ID" json:"template,omitempty"`
	Title      string            `gorm:"size:500;not null" json:"title"`
	FormData   JSON              `gorm:"not null" json:"formData"`
	PdfURL     *string           `gorm:"size:1024" json:"pdfUrl"`
	DocxURL    *string           `gorm:"size:1024" json:"docxUrl"`
	CreatedAt  time.Time         `gorm:"index" json:"createdAt"`
}

// TableName overrides the table name for GeneratedDocument
func (GeneratedDocument) TableName() string {
	return "generated_documents"
}

// BeforeCreate assigns an id.
func (d *GeneratedDocument) BeforeCreate(_ *gorm.DB) error {
	if d.ID == "" {
		d.ID = newID()
	}
	return nil
}
