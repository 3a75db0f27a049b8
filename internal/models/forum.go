// forum.go
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

import (
	"time"

	"gorm.io/gorm"
)

// ForumQuestion is a question posted to the Q&A forum.
type ForumQuestion struct {
	ID         string         `gorm:"type:varchar(64);primaryKey" json:"id"`
	UserID     string         `gorm:"type:varchar(64);not null;index" json:"userId"`
	Author     *User          `gorm:"foreignKey:UserID;references:ID" json:"user"`
	Title      string         `gorm:"size:500;not null" json:"title"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	Category   Category       `gorm:"size:32;not null;index" json:"category"`
	Status     QuestionStatus `gorm:"size:16;not null;default:'open';index" json:"status"`
	ViewsCount int            `gorm:"not null;default:0" json:"viewsCount"`
	Upvotes    int            `gorm:"not null;default:0" json:"upvotes"`
	Downvotes  int            `gorm:"not null;default:0" json:"downvotes"`
	Featured   bool           `gorm:"not null;default:false" json:"featured"`
	CreatedAt  time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`

	// AnswersCount is computed per read from forum_answers; never stored.
	AnswersCount int64 `gorm:"->;-:migration" json:"answersCount"`
}

// TableName overrides the table name for ForumQuestion
func (ForumQuestion) TableName() string {
	return "forum_questions"
}

// BeforeCreate assigns an id and the open status.
func (q *ForumQuestion) BeforeCreate(_ *gorm.DB) error {
	if q.ID == "" {
		q.ID = newID()
	}
	if q.Status == "" {
		q.Status = QuestionOpen
	}
	return nil
}

// ForumAnswer is an answer to a ForumQuestion.
type ForumAnswer struct {
	ID             string         `gorm:"type:varchar(64);primaryKey" json:"id"`
	QuestionID     string         `gorm:"type:varchar(64);not null;index" json:"questionId"`
	Question       *ForumQuestion `gorm:"foreignKey:QuestionID;references:ID" json:"-"`
	UserID         string         `gorm:"type:varchar(64);not null;index" json:"userId"`
	Author         *User          `gorm:"foreignKey:UserID;references:ID" json:"user"`
	Content        string         `gorm:"type:text;not null" json:"content"`
	Upvotes        int            `gorm:"not null;default:0" json:"upvotes"`
	Downvotes      int            `gorm:"not null;default:0" json:"downvotes"`
	IsAccepted     bool           `gorm:"not null;default:false" json:"isAccepted"`
	ExpertVerified bool           `gorm:"not null;default:false" json:"expertVerified"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// TableName overrides the table name for ForumAnswer
func (ForumAnswer) TableName() string {
	return "forum_answers"
}

// BeforeCreate assigns an id.
func (a *ForumAnswer) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = newID()
	}
	return nil
}
