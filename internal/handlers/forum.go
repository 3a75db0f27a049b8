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

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/legalaid-api/internal/models"
	"github.com/localnerve/legalaid-api/internal/policy"
	"github.com/localnerve/legalaid-api/internal/services"
	"github.com/localnerve/legalaid-api/internal/utils"
	"gorm.io/gorm"
)

// ForumHandler handles Q&A forum routes
type ForumHandler struct {
	DB       *gorm.DB
	Policy   *policy.Authorizer
	PageSize int
}

// VoteRequest is the body of a vote.
type VoteRequest struct {
	Type models.VoteDirection `json:"type" example:"up"`
}

// ListQuestions handles GET /api/forum/questions
// @Summary List forum questions
// @Description Newest first, each with its author and answer count.
// @Tags Forum
// @Produce json
// @Param category query string false "Category"
// @Param status query string false "open, answered or closed"
// @Param limit query int false "Page size"
// @Param offset query int false "Rows to skip"
// @Success 200 {array} models.ForumQuestion
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /forum/questions [get]
func (h *ForumHandler) ListQuestions(c *fiber.Ctx) error {
	page, err := parsePage(c, h.PageSize)
	if err != nil {
		return respondError(c, err, "questions", "list questions")
	}

	questions, err := services.ListForumQuestions(c.UserContext(), h.DB, services.QuestionFilter{
		Category: models.Category(c.Query("category")),
		Status:   models.QuestionStatus(c.Query("status")),
		Page:     page,
	})
	if err != nil {
		return respondError(c, err, "questions", "list questions")
	}
	return utils.SuccessResponse(c, questions, fiber.StatusOK)
}

// GetQuestion handles GET /api/forum/questions/:id
// @Summary Get a forum question
// @Description Counts one view.
// @Tags Forum
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} models.ForumQuestion
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /forum/questions/{id} [get]
func (h *ForumHandler) GetQuestion(c *fiber.Ctx) error {
	question, err := services.GetForumQuestion(c.UserContext(), h.DB, c.Params("id"))
	if err != nil {
		return respondError(c, err, "Question", "fetch question")
	}
	return utils.SuccessResponse(c, question, fiber.StatusOK)
}

// CreateQuestion handles POST /api/forum/questions
// @Summary Ask a question
// @Tags Forum
// @Accept json
// @Produce json
// @Param question body services.QuestionInput true "Question"
// @Success 201 {object} models.ForumQuestion
// @Header 201 {string} Location "URL of the new resource"
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /forum/questions [post]
func (h *ForumHandler) CreateQuestion(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if user == nil {
		return err
	}

	var in services.QuestionInput
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err, "Question", "create question")
	}
	in.UserID = user.ID

	question, err := services.CreateForumQuestion(c.UserContext(), h.DB, in)
	if err != nil {
		return respondError(c, err, "Question", "create question")
	}
	return utils.CreatedResponse(c, "/api/forum/questions/"+question.ID, question)
}

// UpdateQuestion handles PATCH /api/forum/questions/:id
// @Summary Update a question
// @Description Author or admin. Only admins may change featured.
// @Tags Forum
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param question body services.QuestionUpdate true "Fields to change"
// @Success 200 {object} models.ForumQuestion
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /forum/questions/{id} [patch]
func (h *ForumHandler) UpdateQuestion(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if user == nil {
		return err
	}

	var in services.QuestionUpdate
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err, "Question", "update question")
	}

	existing, err := services.FindForumQuestion(c.UserContext(), h.DB, c.Params("id"))
	if err != nil {
		return respondError(c, err, "Question", "update question")
	}
	resource := policy.Resource{Type: policy.QuestionResource, ID: existing.ID, Owner: existing.UserID}
	if ok, err := authorize(c, h.Policy, user, policy.UpdateQuestion, resource); !ok {
		return err
	}
	if in.Featured != nil {
		if ok, err := authorize(c, h.Policy, user, policy.FeatureQuestion, resource); !ok {
			return err
		}
	}

	question, err := services.UpdateForumQuestion(c.UserContext(), h.DB, existing.ID, in)
	if err != nil {
		return respondError(c, err, "Question", "update question")
	}
	return utils.SuccessResponse(c, question, fiber.StatusOK)
}

// VoteQuestion handles POST /api/forum/questions/:id/vote
// @Summary Vote on a question
// @Description Adds one to upvotes or downvotes. Votes are not tracked per user.
// @Tags Forum
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param vote body VoteRequest true "Vote"
// @Success 200 {object} models.ForumQuestion
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /forum/questions/{id}/vote [post]
func (h *ForumHandler) VoteQuestion(c *fiber.Ctx) error {
	var vote VoteRequest
	if err := bindJSON(c, &vote); err != nil {
		return respondError(c, err, "Question", "vote on question")
	}

	question, err := services.VoteForumQuestion(c.UserContext(), h.DB, c.Params("id"), vote.Type)
	if err != nil {
		return respondError(c, err, "Question", "vote on question")
	}
	return utils.SuccessResponse(c, question, fiber.StatusOK)
}

// ListAnswers handles GET /api/forum/questions/:id/answers
// @Summary List answers to a question
// @Description Highest voted first, then most recent.
// @Tags Forum
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {array} models.ForumAnswer
// @Router /forum/questions/{id}/answers [get]
func (h *ForumHandler) ListAnswers(c *fiber.Ctx) error {
	answers, err := services.ListForumAnswers(c.UserContext(), h.DB, c.Params("id"))
	if err != nil {
		return respondError(c, err, "answers", "list answers")
	}
	return utils.SuccessResponse(c, answers, fiber.StatusOK)
}

// CreateAnswer handles POST /api/forum/questions/:id/answers
// @Summary Answer a question
// @Tags Forum
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param answer body services.AnswerInput true "Answer"
// @Success 201 {object} models.ForumAnswer
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /forum/questions/{id}/answers [post]
func (h *ForumHandler) CreateAnswer(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if user == nil {
		return err
	}

	var in services.AnswerInput
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err, "Question", "create answer")
	}
	in.QuestionID = c.Params("id")
	in.UserID = user.ID

	answer, err := services.CreateForumAnswer(c.UserContext(), h.DB, in)
	if err != nil {
		return respondError(c, err, "Question", "create answer")
	}
	return utils.SuccessResponse(c, answer, fiber.StatusCreated)
}

// UpdateAnswer handles PATCH /api/forum/answers/:id
// @Summary Update an answer
// @Description Content: author or admin. isAccepted: question author or admin. expertVerified: lawyer or admin.
// @Tags Forum
// @Accept json
// @Produce json
// @Param id path string true "Answer ID"
// @Param answer body services.AnswerUpdate true "Fields to change"
// @Success 200 {object} models.ForumAnswer
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /forum/answers/{id} [patch]
func (h *ForumHandler) UpdateAnswer(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if user == nil {
		return err
	}

	var in services.AnswerUpdate
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err, "Answer", "update answer")
	}

	existing, err := services.FindForumAnswer(c.UserContext(), h.DB, c.Params("id"))
	if err != nil {
		return respondError(c, err, "Answer", "update answer")
	}
	resource := policy.Resource{Type: policy.AnswerResource, ID: existing.ID, Owner: existing.UserID}
	if question, err := services.FindForumQuestion(c.UserContext(), h.DB, existing.QuestionID); err == nil {
		resource.QuestionOwner = question.UserID
	}

	checks := []struct {
		set    bool
		action policy.Action
	}{
		{in.Content != nil, policy.UpdateAnswer},
		{in.IsAccepted != nil, policy.AcceptAnswer},
		{in.ExpertVerified != nil, policy.VerifyAnswer},
	}
	for _, check := range checks {
		if !check.set {
			continue
		}
		if ok, err := authorize(c, h.Policy, user, check.action, resource); !ok {
			return err
		}
	}

	answer, err := services.UpdateForumAnswer(c.UserContext(), h.DB, existing.ID, in)
	if err != nil {
		return respondError(c, err, "Answer", "update answer")
	}
	return utils.SuccessResponse(c, answer, fiber.StatusOK)
}

// VoteAnswer handles POST /api/forum/answers/:id/vote
// @Summary Vote on an answer
// @Tags Forum
// @Accept json
// @Produce json
// @Param id path string true "Answer ID"
// @Param vote body VoteRequest true "Vote"
// @Success 200 {object} models.ForumAnswer
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /forum/answers/{id}/vote [post]
func (h *ForumHandler) VoteAnswer(c *fiber.Ctx) error {
	var vote VoteRequest
	if err := bindJSON(c, &vote); err != nil {
		return respondError(c, err, "Answer", "vote on answer")
	}

	answer, err := services.VoteForumAnswer(c.UserContext(), h.DB, c.Params("id"), vote.Type)
	if err != nil {
		return respondError(c, err, "Answer", "vote on answer")
	}
	return utils.SuccessResponse(c, answer, fiber.StatusOK)
}
