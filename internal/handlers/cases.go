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

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/legalaid-api/internal/models"
	"github.com/localnerve/legalaid-api/internal/policy"
	"github.com/localnerve/legalaid-api/internal/services"
	"github.com/localnerve/legalaid-api/internal/utils"
	"gorm.io/gorm"
)

// CaseHandler handles lawyer case management routes. Every route is
// restricted to lawyers and scoped to the caller's own cases.
type CaseHandler struct {
	DB       *gorm.DB
	Policy   *policy.Authorizer
	PageSize int
}

func (h *CaseHandler) lawyer(c *fiber.Ctx) (*models.User, error) {
	user, err := requireUser(c)
	if user == nil {
		return nil, err
	}
	resource := policy.Resource{Type: policy.CaseResource, ID: c.Params("id"), Owner: user.ID}
	if ok, err := authorize(c, h.Policy, user, policy.ManageCases, resource); !ok {
		return nil, err
	}
	return user, nil
}

// List handles GET /api/cases
// @Summary List my cases
// @Description Lawyers only. Most recently updated first.
// @Tags Cases
// @Produce json
// @Param status query string false "active, pending, closed or appealed"
// @Param limit query int false "Page size"
// @Param offset query int false "Rows to skip"
// @Success 200 {array} models.LegalCase
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /cases [get]
func (h *CaseHandler) List(c *fiber.Ctx) error {
	user, err := h.lawyer(c)
	if user == nil {
		return err
	}

	page, err := parsePage(c, h.PageSize)
	if err != nil {
		return respondError(c, err, "cases", "list cases")
	}

	cases, err := services.ListLegalCases(c.UserContext(), h.DB, user.ID, services.CaseFilter{
		Status: models.CaseStatus(c.Query("status")),
		Page:   page,
	})
	if err != nil {
		return respondError(c, err, "cases", "list cases")
	}
	return utils.SuccessResponse(c, cases, fiber.StatusOK)
}

// Get handles GET /api/cases/:id
// @Summary Get one of my cases
// @Tags Cases
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} models.LegalCase
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /cases/{id} [get]
func (h *CaseHandler) Get(c *fiber.Ctx) error {
	user, err := h.lawyer(c)
	if user == nil {
		return err
	}

	legalCase, err := services.GetLegalCase(c.UserContext(), h.DB, user.ID, c.Params("id"))
	if err != nil {
		return respondError(c, err, "Case", "fetch case")
	}
	return utils.SuccessResponse(c, legalCase, fiber.StatusOK)
}

// Create handles POST /api/cases
// @Summary Open a case
// @Tags Cases
// @Accept json
// @Produce json
// @Param case body services.CaseInput true "Case"
// @Success 201 {object} models.LegalCase
// @Header 201 {string} Location "URL of the new resource"
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /cases [post]
func (h *CaseHandler) Create(c *fiber.Ctx) error {
	user, err := h.lawyer(c)
	if user == nil {
		return err
	}

	var in services.CaseInput
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err, "Case", "create case")
	}
	in.LawyerID = user.ID

	legalCase, err := services.CreateLegalCase(c.UserContext(), h.DB, in)
	if err != nil {
		return respondError(c, err, "Case", "create case")
	}
	return utils.CreatedResponse(c, "/api/cases/"+legalCase.ID, legalCase)
}

// Update handles PATCH /api/cases/:id
// @Summary Update one of my cases
// @Tags Cases
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param case body services.CaseUpdate true "Fields to change"
// @Success 200 {object} models.LegalCase
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /cases/{id} [patch]
func (h *CaseHandler) Update(c *fiber.Ctx) error {
	user, err := h.lawyer(c)
	if user == nil {
		return err
	}

	var in services.CaseUpdate
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err, "Case", "update case")
	}

	legalCase, err := services.UpdateLegalCase(c.UserContext(), h.DB, user.ID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "Case", "update case")
	}
	return utils.SuccessResponse(c, legalCase, fiber.StatusOK)
}
