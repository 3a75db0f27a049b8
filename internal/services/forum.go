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

package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/localnerve/legalaid-api/internal/models"
	"gorm.io/gorm"
)

const (
	minQuestionTitle   = 10
	minQuestionContent = 50
)

// answersCountSelect projects every question column plus the live answer count.
const answersCountSelect = "forum_questions.*, " +
	"(SELECT COUNT(*) FROM forum_answers WHERE forum_answers.question_id = forum_questions.id) AS answers_count"

// QuestionFilter narrows ListForumQuestions. Empty fields apply no predicate.
type QuestionFilter struct {
	Category models.Category
	Status   models.QuestionStatus
	Page
}

// QuestionInput is the payload for CreateForumQuestion.
type QuestionInput struct {
	UserID   string          `json:"-"`
	Title    string          `json:"title"`
	Content  string          `json:"content"`
	Category models.Category `json:"category"`
}

// QuestionUpdate is a partial update; nil fields are left untouched.
type QuestionUpdate struct {
	Title    *string                `json:"title"`
	Content  *string                `json:"content"`
	Category *models.Category       `json:"category"`
	Status   *models.QuestionStatus `json:"status"`
	Featured *bool                  `json:"featured"`
}

// AnswerInput is the payload for CreateForumAnswer.
type AnswerInput struct {
	QuestionID string `json:"-"`
	UserID     string `json:"-"`
	Content    string `json:"content"`
}

// AnswerUpdate is a partial update; nil fields are left untouched.
type AnswerUpdate struct {
	Content        *string `json:"content"`
	IsAccepted     *bool   `json:"isAccepted"`
	ExpertVerified *bool   `json:"expertVerified"`
}

func withQuestionEnrichment(db *gorm.DB) *gorm.DB {
	return db.Select(answersCountSelect).Preload("Author")
}

func validateQuestionTitle(title string) error {
	if utf8.RuneCountInString(strings.TrimSpace(title)) < minQuestionTitle {
		return invalid("title", "must be at least %d characters", minQuestionTitle)
	}
	return nil
}

func validateQuestionContent(content string) error {
	if utf8.RuneCountInString(strings.TrimSpace(content)) < minQuestionContent {
		return invalid("content", "must be at least %d characters", minQuestionContent)
	}
	return nil
}

// ListForumQuestions returns questions newest first, each with its author
// (nil when the user row is absent) and its current answer count.
func ListForumQuestions(ctx context.Context, db *gorm.DB, f QuestionFilter) ([]models.ForumQuestion, error) {
	questions := []models.ForumQuestion{}
	err := reader(ctx, db, "listForumQuestions").
		Scopes(
			withQuestionEnrichment,
			whereEq("forum_questions.category", f.Category),
			whereEq("forum_questions.status", f.Status),
			paginate(f.Page),
		).
		Order("forum_questions.created_at DESC").
		Find(&questions).Error
	if err != nil {
		return nil, translateError(err)
	}
	return questions, nil
}

// FindForumQuestion loads an enriched question without counting a view.
func FindForumQuestion(ctx context.Context, db *gorm.DB, id string) (*models.ForumQuestion, error) {
	return findByID[models.ForumQuestion](ctx, db, "findForumQuestion", id, withQuestionEnrichment)
}

// GetForumQuestion counts one view and returns the enriched question. The
// increment is a single atomic UPDATE, so the returned viewsCount includes it.
func GetForumQuestion(ctx context.Context, db *gorm.DB, id string) (*models.ForumQuestion, error) {
	if err := increment(ctx, db, &models.ForumQuestion{}, id, "views_count"); err != nil {
		return nil, err
	}
	return FindForumQuestion(ctx, db, id)
}

// CreateForumQuestion validates and stores a new open question.
func CreateForumQuestion(ctx context.Context, db *gorm.DB, in QuestionInput) (*models.ForumQuestion, error) {
	if in.UserID == "" {
		return nil, invalid("userId", "is required")
	}
	if err := validateQuestionTitle(in.Title); err != nil {
		return nil, err
	}
	if err := validateQuestionContent(in.Content); err != nil {
		return nil, err
	}
	if err := validateCategory(in.Category); err != nil {
		return nil, err
	}

	question := models.ForumQuestion{
		UserID:   in.UserID,
		Title:    in.Title,
		Content:  in.Content,
		Category: in.Category,
	}
	if err := db.WithContext(ctx).Create(&question).Error; err != nil {
		return nil, translateError(err)
	}
	return &question, nil
}

// UpdateForumQuestion applies a partial update. Any status value in the enum
// may be set regardless of the current one.
func UpdateForumQuestion(ctx context.Context, db *gorm.DB, id string, in QuestionUpdate) (*models.ForumQuestion, error) {
	fields := map[string]interface{}{}
	if in.Title != nil {
		if err := validateQuestionTitle(*in.Title); err != nil {
			return nil, err
		}
		fields["title"] = *in.Title
	}
	if in.Content != nil {
		if err := validateQuestionContent(*in.Content); err != nil {
			return nil, err
		}
		fields["content"] = *in.Content
	}
	if in.Category != nil {
		if err := validateCategory(*in.Category); err != nil {
			return nil, err
		}
		fields["category"] = *in.Category
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, invalid("status", "unknown question status %q", *in.Status)
		}
		fields["status"] = *in.Status
	}
	if in.Featured != nil {
		fields["featured"] = *in.Featured
	}
	if err := updateByID[models.ForumQuestion](ctx, db, id, fields); err != nil {
		return nil, err
	}
	return FindForumQuestion(ctx, db, id)
}

// VoteForumQuestion adds one vote in the given direction.
func VoteForumQuestion(ctx context.Context, db *gorm.DB, id string, direction models.VoteDirection) (*models.ForumQuestion, error) {
	column, err := voteColumn(direction)
	if err != nil {
		return nil, err
	}
	if err := increment(ctx, db, &models.ForumQuestion{}, id, column); err != nil {
		return nil, err
	}
	return FindForumQuestion(ctx, db, id)
}

// ListForumAnswers returns the answers to a question with their authors,
// highest voted first and most recent first among equals.
func ListForumAnswers(ctx context.Context, db *gorm.DB, questionID string) ([]models.ForumAnswer, error) {
	answers := []models.ForumAnswer{}
	err := reader(ctx, db, "listForumAnswers").
		Preload("Author").
		Where("question_id = ?", questionID).
		Order("upvotes DESC").
		Order("created_at DESC").
		Find(&answers).Error
	if err != nil {
		return nil, translateError(err)
	}
	return answers, nil
}

// FindForumAnswer loads an answer with its author.
func FindForumAnswer(ctx context.Context, db *gorm.DB, id string) (*models.ForumAnswer, error) {
	return findByID[models.ForumAnswer](ctx, db, "findForumAnswer", id, preloadAuthor)
}

// CreateForumAnswer stores an answer to an existing question.
func CreateForumAnswer(ctx context.Context, db *gorm.DB, in AnswerInput) (*models.ForumAnswer, error) {
	if in.UserID == "" {
		return nil, invalid("userId", "is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, invalid("content", "is required")
	}

	var count int64
	if err := db.WithContext(ctx).Model(&models.ForumQuestion{}).Where("id = ?", in.QuestionID).Count(&count).Error; err != nil {
		return nil, translateError(err)
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	answer := models.ForumAnswer{
		QuestionID: in.QuestionID,
		UserID:     in.UserID,
		Content:    in.Content,
	}
	if err := db.WithContext(ctx).Create(&answer).Error; err != nil {
		return nil, translateError(err)
	}
	return &answer, nil
}

// UpdateForumAnswer applies a partial update to an answer.
func UpdateForumAnswer(ctx context.Context, db *gorm.DB, id string, in AnswerUpdate) (*models.ForumAnswer, error) {
	fields := map[string]interface{}{}
	if in.Content != nil {
		if strings.TrimSpace(*in.Content) == "" {
			return nil, invalid("content", "is required")
		}
		fields["content"] = *in.Content
	}
	if in.IsAccepted != nil {
		fields["is_accepted"] = *in.IsAccepted
	}
	if in.ExpertVerified != nil {
		fields["expert_verified"] = *in.ExpertVerified
	}
	if err := updateByID[models.ForumAnswer](ctx, db, id, fields); err != nil {
		return nil, err
	}
	return FindForumAnswer(ctx, db, id)
}

// VoteForumAnswer adds one vote in the given direction.
func VoteForumAnswer(ctx context.Context, db *gorm.DB, id string, direction models.VoteDirection) (*models.ForumAnswer, error) {
	column, err := voteColumn(direction)
	if err != nil {
		return nil, err
	}
	if err := increment(ctx, db, &models.ForumAnswer{}, id, column); err != nil {
		return nil, err
	}
	return FindForumAnswer(ctx, db, id)
}

func preloadAuthor(db *gorm.DB) *gorm.DB {
	return db.Preload("Author")
}
