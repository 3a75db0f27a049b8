// enums.go
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

package models

// Role is the platform role of a user.
type Role string

const (
	RoleCitizen  Role = "citizen"
	RoleLawyer   Role = "lawyer"
	RolePrisoner Role = "prisoner"
	RoleAdmin    Role = "admin"
)

// Category is the shared document_category enum used by legal documents,
// forum questions, legal cases and document templates.
type Category string

const (
	CategoryConstitutional Category = "constitutional"
	CategoryCivil          Category = "civil"
	CategoryCriminal       Category = "criminal"
	CategoryFamily         Category = "family"
	CategoryProperty       Category = "property"
	CategoryBusiness       Category = "business"
	CategoryEmployment     Category = "employment"
	CategoryHumanRights    Category = "human_rights"
)

// QuestionStatus is the status of a forum question.
type QuestionStatus string

const (
	QuestionOpen     QuestionStatus = "open"
	QuestionAnswered QuestionStatus = "answered"
	QuestionClosed   QuestionStatus = "closed"
)

// CaseStatus is the status of a lawyer's case.
type CaseStatus string

const (
	CaseActive   CaseStatus = "active"
	CasePending  CaseStatus = "pending"
	CaseClosed   CaseStatus = "closed"
	CaseAppealed CaseStatus = "appealed"
)

// VoteDirection selects which of the two vote counters is incremented.
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

// Legal aid application statuses. The column is free-form; these are conventions.
const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

var (
	validRoles            = []Role{RoleCitizen, RoleLawyer, RolePrisoner, RoleAdmin}
	validCategories       = []Category{CategoryConstitutional, CategoryCivil, CategoryCriminal, CategoryFamily, CategoryProperty, CategoryBusiness, CategoryEmployment, CategoryHumanRights}
	validQuestionStatuses = []QuestionStatus{QuestionOpen, QuestionAnswered, QuestionClosed}
	validCaseStatuses     = []CaseStatus{CaseActive, CasePending, CaseClosed, CaseAppealed}
)

func contains[T comparable](values []T, v T) bool {
	for _, valid := range values {
		if v == valid {
			return true
		}
	}
	return false
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool { return contains(validRoles, r) }

// Valid reports whether c is a member of the document_category enum.
func (c Category) Valid() bool { return contains(validCategories, c) }

// Valid reports whether s is a known question status.
func (s QuestionStatus) Valid() bool { return contains(validQuestionStatuses, s) }

// Valid reports whether s is a known case status.
func (s CaseStatus) Valid() bool { return contains(validCaseStatuses, s) }

// Valid reports whether d is up or down.
func (d VoteDirection) Valid() bool { return d == VoteUp || d == VoteDown }

// Categories returns the document_category enum labels in declaration order.
func Categories() []Category {
	out := make([]Category, len(validCategories))
	copy(out, validCategories)
	return out
}
