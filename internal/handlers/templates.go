package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/legalaid-api/internal/models"
	"github.com/localnerve/legalaid-api/internal/services"
	"github.com/localnerve/legalaid-api/internal/utils"
	"gorm.io/gorm"
)

// TemplateHandler handles document template and generated document routes
type TemplateHandler struct {
	DB *gorm.DB
}

// ListTemplates handles GET /api/document-templates
// @Summary List active document templates
// @Tags Templates
// @Produce json
// @Param category query string false "Category"
// @Success 200 {array} models.DocumentTemplate
// @Router /document-templates [get]
func (h *TemplateHandler) ListTemplates(c *fiber.Ctx) error {
	templates, err := services.ListDocumentTemplates(c.UserContext(), h.DB, models.Category(c.Query("category")))
	if err != nil {
		return respondError(c, err, "templates", "list document templates")
	}
	return utils.SuccessResponse(c, templates, fiber.StatusOK)
}

// GetTemplate handles GET /api/document-templates/:id
// @Summary Get a document template
// @Tags Templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} models.DocumentTemplate
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /document-templates/{id} [get]
func (h *TemplateHandler) GetTemplate(c *fiber.Ctx) error {
	tpl, err := services.GetDocumentTemplate(c.UserContext(), h.DB, c.Params("id"))
	if err != nil {
		return respondError(c, err, "Template", "fetch document template")
	}
	return utils.SuccessResponse(c, tpl, fiber.StatusOK)
}

// ListGenerated handles GET /api/generated-documents
// @Summary List my generated documents
// @Tags Templates
// @Produce json
// @Success 200 {array} models.GeneratedDocument
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /generated-documents [get]
func (h *TemplateHandler) ListGenerated(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if user == nil {
		return err
	}

	docs, err := services.ListUserGeneratedDocuments(c.UserContext(), h.DB, user.ID)
	if err != nil {
		return respondError(c, err, "documents", "list generated documents")
	}
	return utils.SuccessResponse(c, docs, fiber.StatusOK)
}

// Generate handles POST /api/generate-document
// @Summary Save a filled-in template
// @Tags Templates
// @Accept json
// @Produce json
// @Param document body services.GeneratedDocumentInput true "Template and form data"
// @Success 201 {object} models.GeneratedDocument
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /generate-document [post]
func (h *TemplateHandler) Generate(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if user == nil {
		return err
	}

	var in services.GeneratedDocumentInput
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err, "Template", "generate document")
	}
	in.UserID = user.ID

	doc, err := services.CreateGeneratedDocument(c.UserContext(), h.DB, in)
	if err != nil {
		return respondError(c, err, "Template", "generate document")
	}
	return utils.SuccessResponse(c, doc, fiber.StatusCreated)
}
