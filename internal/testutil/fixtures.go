// fixtures.go
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

package testutil

import (
	"testing"
	"time"

	"github.com/localnerve/legalaid-api/internal/models"
	"gorm.io/gorm"
)

// Str returns a pointer to s.
func Str(s string) *string {
	return &s
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// CreateUser inserts a user with the given id and role.
func CreateUser(t *testing.T, db *gorm.DB, id string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		ID:        id,
		Email:     Str(id + "@example.com"),
		FirstName: Str("Test"),
		LastName:  Str(id),
		Role:      role,
	}
	mustCreate(t, db, user)
	return user
}

// CreateQuestion inserts a forum question created at the given time.
func CreateQuestion(t *testing.T, db *gorm.DB, userID string, category models.Category, createdAt time.Time) *models.ForumQuestion {
	t.Helper()
	question := &models.ForumQuestion{
		UserID:    userID,
		Title:     "How do I register a land title transfer?",
		Content:   "I bought a plot in Nakuru and need to know the steps for transferring the title into my name.",
		Category:  category,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	mustCreate(t, db, question)
	return question
}

// CreateAnswer inserts an answer with the given vote count and creation time.
func CreateAnswer(t *testing.T, db *gorm.DB, questionID, userID string, upvotes int, createdAt time.Time) *models.ForumAnswer {
	t.Helper()
	answer := &models.ForumAnswer{
		QuestionID: questionID,
		UserID:     userID,
		Content:    "Visit the lands registry with the sale agreement and a search certificate.",
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
	mustCreate(t, db, answer)
	if upvotes > 0 {
		if err := db.Model(answer).UpdateColumn("upvotes", upvotes).Error; err != nil {
			t.Fatalf("Failed to set upvotes: %v", err)
		}
		answer.Upvotes = upvotes
	}
	return answer
}

// CreateLegalDocument inserts a legal document created at the given time.
func CreateLegalDocument(t *testing.T, db *gorm.DB, title, content string, category models.Category, createdAt time.Time) *models.LegalDocument {
	t.Helper()
	doc := &models.LegalDocument{
		Title:     title,
		Content:   content,
		Category:  category,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	mustCreate(t, db, doc)
	return doc
}

// CreateCase inserts a case owned by lawyerID, last updated at updatedAt.
func CreateCase(t *testing.T, db *gorm.DB, lawyerID string, status models.CaseStatus, updatedAt time.Time) *models.LegalCase {
	t.Helper()
	legalCase := &models.LegalCase{
		LawyerID:   lawyerID,
		ClientName: "Wanjiku Kamau",
		Title:      "Boundary dispute",
		Category:   models.CategoryProperty,
		Status:     status,
		CreatedAt:  updatedAt,
		UpdatedAt:  updatedAt,
	}
	mustCreate(t, db, legalCase)
	return legalCase
}

// CreateTemplate inserts a document template.
func CreateTemplate(t *testing.T, db *gorm.DB, name string, category models.Category, active bool) *models.DocumentTemplate {
	t.Helper()
	tpl := &models.DocumentTemplate{
		Name:     name,
		Category: category,
		Template: models.NewJSON([]byte(`{"fields":[{"name":"fullName","type":"text"}]}`)),
		IsActive: active,
	}
	mustCreate(t, db, tpl)
	return tpl
}

// CreateApplication inserts a legal aid application created at the given time.
func CreateApplication(t *testing.T, db *gorm.DB, userID, status string, createdAt time.Time) *models.LegalAidApplication {
	t.Helper()
	app := &models.LegalAidApplication{
		UserID:          userID,
		CaseDescription: "Wrongful dismissal without notice",
		FinancialStatus: models.NewJSON([]byte(`{"monthlyIncome":0}`)),
		Status:          status,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
	mustCreate(t, db, app)
	return app
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("Failed to create %T: %v", value, err)
	}
}
