package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/legalaid-api/internal/models"
	"github.com/localnerve/legalaid-api/internal/policy"
	"github.com/localnerve/legalaid-api/internal/services"
	"github.com/localnerve/legalaid-api/internal/utils"
	"gorm.io/gorm"
)

// LegalAidHandler handles legal aid application routes
type LegalAidHandler struct {
	DB       *gorm.DB
	Policy   *policy.Authorizer
	PageSize int
}

func (h *LegalAidHandler) canReview(user *models.User) bool {
	allowed, err := h.Policy.IsAuthorized(principalOf(user), policy.ReviewApplications,
		policy.Resource{Type: policy.ApplicationResource})
	return err == nil && allowed
}

// List handles GET /api/legal-aid/applications
// @Summary List legal aid applications
// @Description Reviewers see every application with its applicant and may filter by status; everyone else sees their own.
// @Tags LegalAid
// @Produce json
// @Param status query string false "Status (reviewers only)"
// @Param limit query int false "Page size (reviewers only)"
// @Param offset query int false "Rows to skip (reviewers only)"
// @Success 200 {array} models.LegalAidApplication
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /legal-aid/applications [get]
func (h *LegalAidHandler) List(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if user == nil {
		return err
	}

	if !h.canReview(user) {
		apps, err := services.ListUserLegalAidApplications(c.UserContext(), h.DB, user.ID)
		if err != nil {
			return respondError(c, err, "applications", "list applications")
		}
		return utils.SuccessResponse(c, apps, fiber.StatusOK)
	}

	page, err := parsePage(c, h.PageSize)
	if err != nil {
		return respondError(c, err, "applications", "list applications")
	}
	apps, err := services.ListLegalAidApplications(c.UserContext(), h.DB, services.ApplicationFilter{
		Status: c.Query("status"),
		Page:   page,
	})
	if err != nil {
		return respondError(c, err, "applications", "list applications")
	}
	return utils.SuccessResponse(c, apps, fiber.StatusOK)
}

// Create handles POST /api/legal-aid/applications
// @Summary Apply for legal aid
// @Tags LegalAid
// @Accept json
// @Produce json
// @Param application body services.ApplicationInput true "Application"
// @Success 201 {object} models.LegalAidApplication
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /legal-aid/applications [post]
func (h *LegalAidHandler) Create(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if user == nil {
		return err
	}

	var in services.ApplicationInput
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err, "Application", "create application")
	}
	in.UserID = user.ID

	app, err := services.CreateLegalAidApplication(c.UserContext(), h.DB, in)
	if err != nil {
		return respondError(c, err, "Application", "create application")
	}
	return utils.SuccessResponse(c, app, fiber.StatusCreated)
}

// Update handles PATCH /api/legal-aid/applications/:id
// @Summary Review a legal aid application
// @Description Reviewers only. Status is free-form; an assigned lawyer must have the lawyer role.
// @Tags LegalAid
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param application body services.ApplicationUpdate true "Fields to change"
// @Success 200 {object} models.LegalAidApplication
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /legal-aid/applications/{id} [patch]
func (h *LegalAidHandler) Update(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if user == nil {
		return err
	}
	resource := policy.Resource{Type: policy.ApplicationResource, ID: c.Params("id")}
	if ok, err := authorize(c, h.Policy, user, policy.ReviewApplications, resource); !ok {
		return err
	}

	var in services.ApplicationUpdate
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err, "Application", "update application")
	}

	app, err := services.UpdateLegalAidApplication(c.UserContext(), h.DB, c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "Application", "update application")
	}
	return utils.SuccessResponse(c, app, fiber.StatusOK)
}
