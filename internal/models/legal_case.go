package models

import (
	"time"

	"gorm.io/gorm"
)

// LegalCase is a case tracked by a lawyer for one client.
type LegalCase struct {
	ID            string     `gorm:"type:varchar(64);primaryKey" json:"id"`
	LawyerID      string     `gorm:"type:varchar(64);not null;index" json:"lawyerId"`
	Lawyer        *User      `gorm:"foreignKey:LawyerID;references:ID" json:"-"`
	ClientName    string     `gorm:"size:255;not null" json:"clientName"`
	ClientContact *string    `gorm:"size:255" json:"clientContact"`
	Title         string     `gorm:"size:500;not null" json:"title"`
	Description   *string    `gorm:"type:text" json:"description"`
	Category      Category   `gorm:"size:32;not null" json:"category"`
	Status        CaseStatus `gorm:"size:16;not null;default:'active';index" json:"status"`
	CourtName     *string    `gorm:"size:255" json:"courtName"`
	CaseNumber    *string    `gorm:"size:255" json:"caseNumber"`
	NextHearing   *time.Time `json:"nextHearing"`
	Documents     StringList `json:"documents"`
	Notes         *string    `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"index" json:"updatedAt"`
}

// TableName overrides the table name for LegalCase
func (LegalCase) TableName() string {
	return "legal_cases"
}

// BeforeCreate assigns an id and the active status.
func (c *LegalCase) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = newID()
	}
	if c.Status == "" {
		c.Status = CaseActive
	}
	return nil
}
