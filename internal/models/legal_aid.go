package models

import (
	"time"

	"gorm.io/gorm"
)

// LegalAidApplication is a request for state-funded legal assistance.
// Status is free-form; see the Application* constants for the conventional values.
type LegalAidApplication struct {
	ID                  string     `gorm:"type:varchar(64);primaryKey" json:"id"`
	UserID              string     `gorm:"type:varchar(64);not null;index" json:"userId"`
	User                *User      `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	CaseDescription     string     `gorm:"type:text;not null" json:"caseDescription"`
	FinancialStatus     JSON       `gorm:"not null" json:"financialStatus"`
	SupportingDocuments StringList `json:"supportingDocuments"`
	Status              string     `gorm:"size:32;not null;default:'pending';index" json:"status"`
	AssignedLawyerID    *string    `gorm:"type:varchar(64)" json:"assignedLawyerId"`
	AssignedLawyer      *User      `gorm:"foreignKey:AssignedLawyerID;references:ID" json:"-"`
	CreatedAt           time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// TableName overrides the table name for LegalAidApplication
func (LegalAidApplication) TableName() string {
	return "legal_aid_applications"
}

// BeforeCreate assigns an id and the pending status.
func (a *LegalAidApplication) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = newID()
	}
	if a.Status == "" {
		a.Status = ApplicationPending
	}
	return nil
}

// All returns every entity model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&LegalDocument{},
		&ForumQuestion{},
		&ForumAnswer{},
		&LegalCase{},
		&DocumentTemplate{},
		&GeneratedDocument{},
		&LegalAidApplication{},
	}
}
