// legal_aid.go
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
	"encoding/json"
	"errors"
	"strings"

	"github.com/localnerve/legalaid-api/internal/models"
	"github.com/localnerve/legalaid-api/internal/types"
	"gorm.io/gorm"
)

// ApplicationFilter narrows the admin listing of legal aid applications.
type ApplicationFilter struct {
	Status string
	Page
}

// ApplicationInput is the payload for CreateLegalAidApplication.
type ApplicationInput struct {
	UserID              string                 `json:"-"`
	CaseDescription     string                 `json:"caseDescription"`
	FinancialStatus     json.RawMessage        `json:"financialStatus"`
	SupportingDocuments types.FlexList[string] `json:"supportingDocuments"`
}

// ApplicationUpdate is a partial update; nil fields are left untouched.
// Status is free-form.
type ApplicationUpdate struct {
	Status           *string `json:"status"`
	AssignedLawyerID *string `json:"assignedLawyerId"`
	CaseDescription  *string `json:"caseDescription"`
}

// ListLegalAidApplications returns all applications newest first, each with
// its submitting user.
func ListLegalAidApplications(ctx context.Context, db *gorm.DB, f ApplicationFilter) ([]models.LegalAidApplication, error) {
	apps := []models.LegalAidApplication{}
	err := reader(ctx, db, "listLegalAidApplications").
		Preload("User").
		Scopes(whereEq("status", f.Status), paginate(f.Page)).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, translateError(err)
	}
	return apps, nil
}

// ListUserLegalAidApplications returns the user's own applications newest first.
func ListUserLegalAidApplications(ctx context.Context, db *gorm.DB, userID string) ([]models.LegalAidApplication, error) {
	apps := []models.LegalAidApplication{}
	err := reader(ctx, db, "listUserLegalAidApplications").
		Scopes(ownedBy("user_id", userID)).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, translateError(err)
	}
	return apps, nil
}

// CreateLegalAidApplication stores a pending application for in.UserID.
func CreateLegalAidApplication(ctx context.Context, db *gorm.DB, in ApplicationInput) (*models.LegalAidApplication, error) {
	if in.UserID == "" {
		return nil, invalid("userId", "is required")
	}
	if strings.TrimSpace(in.CaseDescription) == "" {
		return nil, invalid("caseDescription", "is required")
	}
	financial, ok := models.ParseJSON(in.FinancialStatus)
	if !ok {
		return nil, invalid("financialStatus", "must be a JSON document")
	}

	app := models.LegalAidApplication{
		UserID:              in.UserID,
		CaseDescription:     in.CaseDescription,
		FinancialStatus:     financial,
		SupportingDocuments: models.StringList(in.SupportingDocuments.Slice()),
	}
	if err := db.WithContext(ctx).Create(&app).Error; err != nil {
		return nil, translateError(err)
	}
	return &app, nil
}

// UpdateLegalAidApplication applies a partial update. An assigned lawyer must
// be an existing user with the lawyer role.
func UpdateLegalAidApplication(ctx context.Context, db *gorm.DB, id string, in ApplicationUpdate) (*models.LegalAidApplication, error) {
	fields := map[string]interface{}{}
	if in.Status != nil {
		if strings.TrimSpace(*in.Status) == "" {
			return nil, invalid("status", "must not be empty")
		}
		fields["status"] = *in.Status
	}
	if in.CaseDescription != nil {
		if strings.TrimSpace(*in.CaseDescription) == "" {
			return nil, invalid("caseDescription", "is required")
		}
		fields["case_description"] = *in.CaseDescription
	}
	if in.AssignedLawyerID != nil {
		lawyer, err := GetUser(ctx, db, *in.AssignedLawyerID)
		if errors.Is(err, ErrNotFound) || (err == nil && lawyer.Role != models.RoleLawyer) {
			return nil, invalid("assignedLawyerId", "must reference a lawyer")
		}
		if err != nil {
			return nil, err
		}
		fields["assigned_lawyer_id"] = *in.AssignedLawyerID
	}

	if err := updateByID[models.LegalAidApplication](ctx, db, id, fields); err != nil {
		return nil, err
	}
	return findByID[models.LegalAidApplication](ctx, db, "getLegalAidApplication", id, preloadUser)
}

func preloadUser(db *gorm.DB) *gorm.DB {
	return db.Preload("User")
}
