package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/legalaid-api/internal/services"
	"github.com/localnerve/legalaid-api/internal/utils"
)

// SearchConstitution handles GET /api/constitution/search
// @Summary Search constitution excerpts
// @Description Case-insensitive match on title or content over a fixed excerpt set.
// @Tags Constitution
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {array} services.ConstitutionExcerpt
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /constitution/search [get]
func SearchConstitution(c *fiber.Ctx) error {
	results, err := services.SearchConstitution(c.Query("q"))
	if err != nil {
		return respondError(c, err, "excerpts", "search constitution")
	}
	return utils.SuccessResponse(c, results, fiber.StatusOK)
}
