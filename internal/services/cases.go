// cases.go
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

package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/localnerve/legalaid-api/internal/models"
	"github.com/localnerve/legalaid-api/internal/types"
	"gorm.io/gorm"
)

// CaseFilter narrows ListLegalCases within one lawyer's cases.
type CaseFilter struct {
	Status models.CaseStatus
	Page
}

// CaseInput is the payload for CreateLegalCase. LawyerID is always the
// authenticated lawyer, never client supplied.
type CaseInput struct {
	LawyerID      string                 `json:"-"`
	ClientName    string                 `json:"clientName"`
	ClientContact *string                `json:"clientContact"`
	Title         string                 `json:"title"`
	Description   *string                `json:"description"`
	Category      models.Category        `json:"category"`
	Status        models.CaseStatus      `json:"status"`
	CourtName     *string                `json:"courtName"`
	CaseNumber    *string                `json:"caseNumber"`
	NextHearing   *time.Time             `json:"nextHearing"`
	Documents     types.FlexList[string] `json:"documents"`
	Notes         *string                `json:"notes"`
}

// CaseUpdate is a partial update; nil fields are left untouched.
type CaseUpdate struct {
	ClientName    *string                 `json:"clientName"`
	ClientContact *string                 `json:"clientContact"`
	Title         *string                 `json:"title"`
	Description   *string                 `json:"description"`
	Category      *models.Category        `json:"category"`
	Status        *models.CaseStatus      `json:"status"`
	CourtName     *string                 `json:"courtName"`
	CaseNumber    *string                 `json:"caseNumber"`
	NextHearing   *time.Time              `json:"nextHearing"`
	Documents     *types.FlexList[string] `json:"documents"`
	Notes         *string                 `json:"notes"`
}

func ownedBy(column, id string) scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", id)
	}
}

func validateClientName(name string) error {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < 2 {
		return invalid("clientName", "must be at least 2 characters")
	}
	return nil
}

func validateCaseTitle(title string) error {
	if utf8.RuneCountInString(strings.TrimSpace(title)) < 5 {
		return invalid("title", "must be at least 5 characters")
	}
	return nil
}

func validateCaseStatus(status models.CaseStatus) error {
	if !status.Valid() {
		return invalid("status", "unknown case status %q", status)
	}
	return nil
}

// ListLegalCases returns the cases owned by lawyerID, most recently updated first.
func ListLegalCases(ctx context.Context, db *gorm.DB, lawyerID string, f CaseFilter) ([]models.LegalCase, error) {
	if lawyerID == "" {
		return nil, invalid("lawyerId", "is required")
	}
	cases := []models.LegalCase{}
	err := reader(ctx, db, "listLegalCases").
		Scopes(
			ownedBy("lawyer_id", lawyerID),
			whereEq("status", f.Status),
			paginate(f.Page),
		).
		Order("updated_at DESC").
		Find(&cases).Error
	if err != nil {
		return nil, translateError(err)
	}
	return cases, nil
}

// GetLegalCase returns a case owned by lawyerID. A case owned by another
// lawyer is ErrForbidden; a missing case is ErrNotFound.
func GetLegalCase(ctx context.Context, db *gorm.DB, lawyerID, id string) (*models.LegalCase, error) {
	legalCase, err := findByID[models.LegalCase](ctx, db, "getLegalCase", id)
	if err != nil {
		return nil, err
	}
	if legalCase.LawyerID != lawyerID {
		return nil, ErrForbidden
	}
	return legalCase, nil
}

// CreateLegalCase validates and stores a case for in.LawyerID.
func CreateLegalCase(ctx context.Context, db *gorm.DB, in CaseInput) (*models.LegalCase, error) {
	if in.LawyerID == "" {
		return nil, invalid("lawyerId", "is required")
	}
	if err := validateClientName(in.ClientName); err != nil {
		return nil, err
	}
	if err := validateCaseTitle(in.Title); err != nil {
		return nil, err
	}
	if err := validateCategory(in.Category); err != nil {
		return nil, err
	}
	if in.Status != "" {
		if err := validateCaseStatus(in.Status); err != nil {
			return nil, err
		}
	}

	legalCase := models.LegalCase{
		LawyerID:      in.LawyerID,
		ClientName:    in.ClientName,
		ClientContact: in.ClientContact,
		Title:         in.Title,
		Description:   in.Description,
		Category:      in.Category,
		Status:        in.Status,
		CourtName:     in.CourtName,
		CaseNumber:    in.CaseNumber,
		NextHearing:   in.NextHearing,
		Documents:     models.StringList(in.Documents.Slice()),
		Notes:         in.Notes,
	}
	if err := db.WithContext(ctx).Create(&legalCase).Error; err != nil {
		return nil, translateError(err)
	}
	return &legalCase, nil
}

// UpdateLegalCase applies a partial update to a case owned by lawyerID.
// Status may move between any two values.
func UpdateLegalCase(ctx context.Context, db *gorm.DB, lawyerID, id string, in CaseUpdate) (*models.LegalCase, error) {
	fields := map[string]interface{}{}
	if in.ClientName != nil {
		if err := validateClientName(*in.ClientName); err != nil {
			return nil, err
		}
		fields["client_name"] = *in.ClientName
	}
	if in.ClientContact != nil {
		fields["client_contact"] = *in.ClientContact
	}
	if in.Title != nil {
		if err := validateCaseTitle(*in.Title); err != nil {
			return nil, err
		}
		fields["title"] = *in.Title
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Category != nil {
		if err := validateCategory(*in.Category); err != nil {
			return nil, err
		}
		fields["category"] = *in.Category
	}
	if in.Status != nil {
		if err := validateCaseStatus(*in.Status); err != nil {
			return nil, err
		}
		fields["status"] = *in.Status
	}
	if in.CourtName != nil {
		fields["court_name"] = *in.CourtName
	}
	if in.CaseNumber != nil {
		fields["case_number"] = *in.CaseNumber
	}
	if in.NextHearing != nil {
		fields["next_hearing"] = *in.NextHearing
	}
	if in.Documents != nil {
		fields["documents"] = models.StringList(in.Documents.Slice())
	}
	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}

	if _, err := GetLegalCase(ctx, db, lawyerID, id); err != nil {
		return nil, err
	}
	if err := updateByID[models.LegalCase](ctx, db, id, fields, ownedBy("lawyer_id", lawyerID)); err != nil {
		return nil, err
	}
	return GetLegalCase(ctx, db, lawyerID, id)
}
