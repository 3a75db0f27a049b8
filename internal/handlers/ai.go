package handlers

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/legalaid-api/internal/ai"
	"github.com/localnerve/legalaid-api/internal/utils"
)

// AIHandler handles LLM backed routes. A nil Assistant disables them.
type AIHandler struct {
	Assistant *ai.Assistant
}

// SummaryRequest is the body of a legal summary request.
type SummaryRequest struct {
	Text string `json:"text"`
}

// AnalyzeRequest is the body of a question analysis request.
type AnalyzeRequest struct {
	Question string `json:"question"`
}

// DraftRequest is the body of a document drafting request.
type DraftRequest struct {
	TemplateType string          `json:"templateType"`
	FormData     json.RawMessage `json:"formData" swaggertype:"object"`
}

func (h *AIHandler) available() bool {
	return h.Assistant != nil
}

func unavailable(c *fiber.Ctx) error {
	return utils.ErrorResponse(c, "AI features are not configured", fiber.StatusServiceUnavailable, "ai")
}

// Summarize handles POST /api/ai/legal-summary
// @Summary Summarize legal text in plain language
// @Tags AI
// @Accept json
// @Produce json
// @Param request body SummaryRequest true "Text"
// @Success 200 {object} map[string]string
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 503 {object} utils.ErrorResponseStruct
// @Router /ai/legal-summary [post]
func (h *AIHandler) Summarize(c *fiber.Ctx) error {
	if !h.available() {
		return unavailable(c)
	}

	var req SummaryRequest
	if err := bindJSON(c, &req); err != nil || strings.TrimSpace(req.Text) == "" {
		return utils.ErrorResponse(c, "Text is required", fiber.StatusBadRequest, "validation")
	}

	summary, err := h.Assistant.Summarize(c.UserContext(), req.Text)
	if err != nil {
		slog.Error("legal summary failed", "error", err)
		return utils.ErrorResponse(c, "Failed to generate legal summary", fiber.StatusInternalServerError, "ai")
	}
	return utils.SuccessResponse(c, fiber.Map{"summary": summary}, fiber.StatusOK)
}

// Analyze handles POST /api/ai/analyze-question
// @Summary Categorize a legal question
// @Description Falls back to a default analysis when the model fails.
// @Tags AI
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Question"
// @Success 200 {object} map[string]ai.QuestionAnalysis
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /ai/analyze-question [post]
func (h *AIHandler) Analyze(c *fiber.Ctx) error {
	if !h.available() {
		return unavailable(c)
	}

	var req AnalyzeRequest
	if err := bindJSON(c, &req); err != nil || strings.TrimSpace(req.Question) == "" {
		return utils.ErrorResponse(c, "Question is required", fiber.StatusBadRequest, "validation")
	}

	analysis := h.Assistant.AnalyzeQuestion(c.UserContext(), req.Question)
	return utils.SuccessResponse(c, fiber.Map{"analysis": analysis}, fiber.StatusOK)
}

// Draft handles POST /api/ai/generate-document
// @Summary Draft document text from form data
// @Tags AI
// @Accept json
// @Produce json
// @Param request body DraftRequest true "Template type and form data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /ai/generate-document [post]
func (h *AIHandler) Draft(c *fiber.Ctx) error {
	if !h.available() {
		return unavailable(c)
	}

	var req DraftRequest
	if err := bindJSON(c, &req); err != nil || strings.TrimSpace(req.TemplateType) == "" || len(req.FormData) == 0 {
		return utils.ErrorResponse(c, "Template type and form data are required", fiber.StatusBadRequest, "validation")
	}

	content, err := h.Assistant.GenerateDocument(c.UserContext(), req.TemplateType, req.FormData)
	if err != nil {
		slog.Error("document drafting failed", "templateType", req.TemplateType, "error", err)
		return utils.ErrorResponse(c, "Failed to generate document content", fiber.StatusInternalServerError, "ai")
	}
	return utils.SuccessResponse(c, fiber.Map{"content": content}, fiber.StatusOK)
}
