// forum_test.go
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

package handlers_test

import (
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/legalaid-api/internal/models"
)

type questionBody struct {
	ID           string       `json:"id"`
	UserID       string       `json:"userId"`
	Title        string       `json:"title"`
	Status       string       `json:"status"`
	ViewsCount   int          `json:"viewsCount"`
	Upvotes      int          `json:"upvotes"`
	Featured     bool         `json:"featured"`
	AnswersCount int          `json:"answersCount"`
	Author       *models.User `json:"user"`
}

type answerBody struct {
	ID             string `json:"id"`
	QuestionID     string `json:"questionId"`
	Content        string `json:"content"`
	Upvotes        int    `json:"upvotes"`
	Downvotes      int    `json:"downvotes"`
	IsAccepted     bool   `json:"isAccepted"`
	ExpertVerified bool   `json:"expertVerified"`
}

func postQuestion(t *testing.T, env *testEnv, cookie string) questionBody {
	t.Helper()
	status, data := env.do(t, "POST", "/api/forum/questions", map[string]string{
		"title":    "Can my landlord keep the deposit?",
		"content":  strings.Repeat("The landlord refuses to return my deposit. ", 3),
		"category": "property",
	}, cookie)
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", status, data)
	}
	return decode[questionBody](t, data)
}

func TestForumQuestionLifecycle(t *testing.T) {
	env := newTestEnv(t, false)
	asker := env.login("asker", models.RoleCitizen)
	other := env.login("other", models.RoleCitizen)
	admin := env.login("admin", models.RoleAdmin)

	created := postQuestion(t, env, asker)
	if created.UserID != "asker" || created.Status != "open" {
		t.Fatalf("unexpected question %+v", created)
	}

	status, data := env.do(t, "GET", "/api/forum/questions?category=property", nil, "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, data)
	}
	list := decode[[]questionBody](t, data)
	if len(list) != 1 || list[0].Author == nil || list[0].Author.ID != "asker" {
		t.Fatalf("unexpected list %+v", list)
	}

	status, data = env.do(t, "GET", "/api/forum/questions/"+created.ID, nil, "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, data)
	}
	if got := decode[questionBody](t, data); got.ViewsCount != 1 {
		t.Errorf("expected the fetch to count as a view, got %d", got.ViewsCount)
	}

	title := map[string]string{"title": "Can my landlord keep my whole deposit?"}
	status, data = env.do(t, "PATCH", "/api/forum/questions/"+created.ID, title, other)
	expectError(t, status, data, fiber.StatusForbidden, "updateQuestion")

	status, data = env.do(t, "PATCH", "/api/forum/questions/"+created.ID, title, asker)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, data)
	}

	feature := map[string]bool{"featured": true}
	status, data = env.do(t, "PATCH", "/api/forum/questions/"+created.ID, feature, asker)
	expectError(t, status, data, fiber.StatusForbidden, "featureQuestion")

	status, data = env.do(t, "PATCH", "/api/forum/questions/"+created.ID, feature, admin)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, data)
	}
	if got := decode[questionBody](t, data); !got.Featured {
		t.Error("expected the question to be featured")
	}
}

func TestForumQuestionValidationAndNotFound(t *testing.T) {
	env := newTestEnv(t, false)
	asker := env.login("asker", models.RoleCitizen)

	status, data := env.do(t, "POST", "/api/forum/questions", map[string]string{
		"title":    "Short",
		"content":  strings.Repeat("x", 60),
		"category": "civil",
	}, asker)
	expectError(t, status, data, fiber.StatusBadRequest, "validation")

	status, data = env.do(t, "GET", "/api/forum/questions/missing", nil, "")
	expectError(t, status, data, fiber.StatusNotFound, "notFound")

	status, data = env.do(t, "GET", "/api/forum/questions?limit=-1", nil, "")
	expectError(t, status, data, fiber.StatusBadRequest, "validation")
}

func TestForumVoting(t *testing.T) {
	env := newTestEnv(t, false)
	asker := env.login("asker", models.RoleCitizen)
	question := postQuestion(t, env, asker)

	path := "/api/forum/questions/" + question.ID + "/vote"
	status, data := env.do(t, "POST", path, map[string]string{"type": "sideways"}, asker)
	expectError(t, status, data, fiber.StatusBadRequest, "validation")

	status, data = env.do(t, "POST", path, map[string]string{"type": "up"}, asker)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, data)
	}
	if got := decode[questionBody](t, data); got.Upvotes != 1 {
		t.Errorf("expected 1 upvote, got %d", got.Upvotes)
	}

	status, data = env.do(t, "POST", "/api/forum/questions/missing/vote", map[string]string{"type": "up"}, asker)
	expectError(t, status, data, fiber.StatusNotFound, "notFound")
}

func TestForumAnswers(t *testing.T) {
	env := newTestEnv(t, false)
	asker := env.login("asker", models.RoleCitizen)
	helper := env.login("helper", models.RoleCitizen)
	lawyer := env.login("lawyer", models.RoleLawyer)
	question := postQuestion(t, env, asker)

	answersPath := "/api/forum/questions/" + question.ID + "/answers"
	status, data := env.do(t, "POST", answersPath, map[string]string{"content": "Write to the landlord first."}, helper)
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", status, data)
	}
	answer := decode[answerBody](t, data)
	if answer.QuestionID != question.ID {
		t.Fatalf("unexpected answer %+v", answer)
	}

	status, data = env.do(t, "POST", "/api/forum/questions/missing/answers", map[string]string{"content": "x"}, helper)
	expectError(t, status, data, fiber.StatusNotFound, "notFound")

	answerPath := "/api/forum/answers/" + answer.ID
	accept := map[string]bool{"isAccepted": true}
	status, data = env.do(t, "PATCH", answerPath, accept, helper)
	expectError(t, status, data, fiber.StatusForbidden, "acceptAnswer")

	status, data = env.do(t, "PATCH", answerPath, accept, asker)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, data)
	}

	verify := map[string]bool{"expertVerified": true}
	status, data = env.do(t, "PATCH", answerPath, verify, asker)
	expectError(t, status, data, fiber.StatusForbidden, "verifyAnswer")

	status, data = env.do(t, "PATCH", answerPath, verify, lawyer)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, data)
	}
	got := decode[answerBody](t, data)
	if !got.IsAccepted || !got.ExpertVerified {
		t.Errorf("expected an accepted and verified answer, got %+v", got)
	}

	status, data = env.do(t, "PATCH", answerPath, map[string]string{"content": "Edited"}, lawyer)
	expectError(t, status, data, fiber.StatusForbidden, "updateAnswer")

	status, data = env.do(t, "POST", answerPath+"/vote", map[string]string{"type": "down"}, lawyer)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, data)
	}
	if got := decode[answerBody](t, data); got.Downvotes != 1 {
		t.Errorf("expected 1 downvote, got %d", got.Downvotes)
	}

	status, data = env.do(t, "GET", answersPath, nil, "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, data)
	}
	if answers := decode[[]answerBody](t, data); len(answers) != 1 {
		t.Errorf("expected 1 answer, got %d", len(answers))
	}

	status, data = env.do(t, "GET", "/api/forum/questions?status=open", nil, "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, data)
	}
	for _, q := range decode[[]questionBody](t, data) {
		if q.ID == question.ID && q.AnswersCount != 1 {
			t.Errorf("expected answersCount 1, got %d", q.AnswersCount)
		}
	}
}
