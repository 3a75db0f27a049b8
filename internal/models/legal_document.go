package models

import (
	"time"

	"gorm.io/gorm"
)

// LegalDocument is a piece of browsable legal content (constitution articles,
// acts, guides). It has no owner.
type LegalDocument struct {
	ID              string     `gorm:"type:varchar(64);primaryKey" json:"id"`
	Title           string     `gorm:"size:500;not null" json:"title"`
	Content         string     `gorm:"type:text;not null" json:"content"`
	Summary         *string    `gorm:"type:text" json:"summary"`
	Category        Category   `gorm:"size:32;not null;index" json:"category"`
	DifficultyLevel int        `gorm:"not null;default:1" json:"difficultyLevel"`
	Language        string     `gorm:"size:10;not null;default:'en'" json:"language"`
	Tags            StringList `json:"tags"`
	SourceURL       *string    `gorm:"size:1024" json:"sourceUrl"`
	IsOfficial      bool       `gorm:"not null;default:false" json:"isOfficial"`
	CreatedAt       time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// TableName overrides the table name for LegalDocument
func (LegalDocument) TableName() string {
	return "legal_documents"
}

// BeforeCreate assigns an id and column defaults.
func (d *LegalDocument) BeforeCreate(_ *gorm.DB) error {
	if d.ID == "" {
		d.ID = newID()
	}
	if d.DifficultyLevel == 0 {
		d.DifficultyLevel = 1
	}
	if d.Language == "" {
		d.Language = "en"
	}
	return nil
}
