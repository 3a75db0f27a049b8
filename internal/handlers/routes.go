// routes.go
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
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/legalaid-api/internal/ai"
	"github.com/localnerve/legalaid-api/internal/config"
	"github.com/localnerve/legalaid-api/internal/middleware"
	"github.com/localnerve/legalaid-api/internal/policy"
	"github.com/localnerve/legalaid-api/internal/services"
	"github.com/localnerve/legalaid-api/internal/types"
	"github.com/localnerve/legalaid-api/internal/utils"
	"gorm.io/gorm"
)

// APIVersion is the version reported in X-Api-Version.
const APIVersion = "1.0.0"

// Deps are the collaborators the routes need. A nil Assistant disables the
// AI routes.
type Deps struct {
	Config    *config.Config
	DB        *gorm.DB
	Sessions  services.SessionValidator
	Policy    *policy.Authorizer
	Assistant *ai.Assistant
}

// Register mounts every /api route on router.
func Register(router fiber.Router, d Deps) {
	api := router.Group("/api")
	api.Use(middleware.VersionMiddleware(APIVersion))

	auth := middleware.AuthUser(d.Sessions, d.DB)
	pageSize := d.Config.DefaultPageSize

	health := &HealthHandler{Config: d.Config, DB: d.DB}
	api.Get("/health", health.Check)

	authHandler := &AuthHandler{DB: d.DB, AuthzURL: d.Config.AuthzURL}
	api.Get("/login", authHandler.Login)
	api.Get("/logout", authHandler.Logout)
	api.Get("/auth/user", auth, authHandler.CurrentUser)

	docs := &LegalDocumentHandler{DB: d.DB, PageSize: pageSize}
	api.Get("/legal-documents", docs.List)
	api.Get("/legal-documents/:id", docs.Get)
	api.Post("/legal-documents", auth, docs.Create)
	api.Patch("/legal-documents/:id", auth, docs.Update)

	forum := &ForumHandler{DB: d.DB, Policy: d.Policy, PageSize: pageSize}
	api.Get("/forum/questions", forum.ListQuestions)
	api.Get("/forum/questions/:id", forum.GetQuestion)
	api.Post("/forum/questions", auth, forum.CreateQuestion)
	api.Patch("/forum/questions/:id", auth, forum.UpdateQuestion)
	api.Post("/forum/questions/:id/vote", auth, forum.VoteQuestion)
	api.Get("/forum/questions/:id/answers", forum.ListAnswers)
	api.Post("/forum/questions/:id/answers", auth, forum.CreateAnswer)
	api.Patch("/forum/answers/:id", auth, forum.UpdateAnswer)
	api.Post("/forum/answers/:id/vote", auth, forum.VoteAnswer)

	cases := &CaseHandler{DB: d.DB, Policy: d.Policy, PageSize: pageSize}
	api.Get("/cases", auth, cases.List)
	api.Post("/cases", auth, cases.Create)
	api.Get("/cases/:id", auth, cases.Get)
	api.Patch("/cases/:id", auth, cases.Update)

	templates := &TemplateHandler{DB: d.DB}
	api.Get("/document-templates", templates.ListTemplates)
	api.Get("/document-templates/:id", templates.GetTemplate)
	api.Get("/generated-documents", auth, templates.ListGenerated)
	api.Post("/generate-document", auth, templates.Generate)

	legalAid := &LegalAidHandler{DB: d.DB, Policy: d.Policy, PageSize: pageSize}
	api.Get("/legal-aid/applications", auth, legalAid.List)
	api.Post("/legal-aid/applications", auth, legalAid.Create)
	api.Patch("/legal-aid/applications/:id", auth, legalAid.Update)

	assistant := &AIHandler{Assistant: d.Assistant}
	api.Post("/ai/legal-summary", assistant.Summarize)
	api.Post("/ai/analyze-question", assistant.Analyze)
	api.Post("/ai/generate-document", assistant.Draft)

	api.Get("/constitution/search", SearchConstitution)
}

// NotFound is the catch-all handler mounted after every route.
func NotFound(c *fiber.Ctx) error {
	return utils.NotFoundResponse(c, "[404] Resource Not Found")
}

// ErrorHandler writes the error envelope for errors returned by handlers
// and middleware.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var customErr *types.CustomError
	if errors.As(err, &customErr) {
		return utils.ErrorResponse(c, customErr.Message, customErr.Code, customErr.Type)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return utils.ErrorResponse(c, fiberErr.Message, fiberErr.Code, "unknown")
	}

	slog.Error("unhandled error", "url", c.OriginalURL(), "error", err)
	return utils.ErrorResponse(c, "Internal Server Error", fiber.StatusInternalServerError, "unknown")
}
