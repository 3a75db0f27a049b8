package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/legalaid-api/internal/models"
	"github.com/localnerve/legalaid-api/internal/services"
	"github.com/localnerve/legalaid-api/internal/utils"
	"gorm.io/gorm"
)

// LegalDocumentHandler handles legal document routes
type LegalDocumentHandler struct {
	DB       *gorm.DB
	PageSize int
}

// List handles GET /api/legal-documents
// @Summary List legal documents
// @Description Newest first. search matches title or content.
// @Tags LegalDocuments
// @Produce json
// @Param category query string false "Category"
// @Param search query string false "Search text"
// @Param limit query int false "Page size"
// @Param offset query int false "Rows to skip"
// @Success 200 {array} models.LegalDocument
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /legal-documents [get]
func (h *LegalDocumentHandler) List(c *fiber.Ctx) error {
	page, err := parsePage(c, h.PageSize)
	if err != nil {
		return respondError(c, err, "legal documents", "list legal documents")
	}

	docs, err := services.ListLegalDocuments(c.UserContext(), h.DB, services.LegalDocumentFilter{
		Category: models.Category(c.Query("category")),
		Search:   c.Query("search"),
		Page:     page,
	})
	if err != nil {
		return respondError(c, err, "legal documents", "list legal documents")
	}
	return utils.SuccessResponse(c, docs, fiber.StatusOK)
}

// Get handles GET /api/legal-documents/:id
// @Summary Get a legal document
// @Tags LegalDocuments
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} models.LegalDocument
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /legal-documents/{id} [get]
func (h *LegalDocumentHandler) Get(c *fiber.Ctx) error {
	doc, err := services.GetLegalDocument(c.UserContext(), h.DB, c.Params("id"))
	if err != nil {
		return respondError(c, err, "Legal document", "fetch legal document")
	}
	return utils.SuccessResponse(c, doc, fiber.StatusOK)
}

// Create handles POST /api/legal-documents
// @Summary Create a legal document
// @Tags LegalDocuments
// @Accept json
// @Produce json
// @Param document body services.LegalDocumentInput true "Legal document"
// @Success 201 {object} models.LegalDocument
// @Header 201 {string} Location "URL of the new resource"
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /legal-documents [post]
func (h *LegalDocumentHandler) Create(c *fiber.Ctx) error {
	var in services.LegalDocumentInput
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err, "Legal document", "create legal document")
	}

	doc, err := services.CreateLegalDocument(c.UserContext(), h.DB, in)
	if err != nil {
		return respondError(c, err, "Legal document", "create legal document")
	}
	return utils.CreatedResponse(c, "/api/legal-documents/"+doc.ID, doc)
}

// Update handles PATCH /api/legal-documents/:id
// @Summary Update a legal document
// @Tags LegalDocuments
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param document body services.LegalDocumentUpdate true "Fields to change"
// @Success 200 {object} models.LegalDocument
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /legal-documents/{id} [patch]
func (h *LegalDocumentHandler) Update(c *fiber.Ctx) error {
	var in services.LegalDocumentUpdate
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err, "Legal document", "update legal document")
	}

	doc, err := services.UpdateLegalDocument(c.UserContext(), h.DB, c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "Legal document", "update legal document")
	}
	return utils.SuccessResponse(c, doc, fiber.StatusOK)
}
