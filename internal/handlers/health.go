package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/legalaid-api/internal/config"
	"github.com/localnerve/legalaid-api/internal/services"
	"gorm.io/gorm"
)

// HealthHandler handles the health route
type HealthHandler struct {
	Config *config.Config
	DB     *gorm.DB
}

// Check handles GET /api/health
// @Summary Health check
// @Description Pings the database and the identity provider.
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	result := services.HealthCheck(c.UserContext(), h.Config, h.DB)
	if result.Status != "healthy" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(result)
	}
	return c.JSON(result)
}
