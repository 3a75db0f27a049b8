package handlers

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/legalaid-api/internal/services"
	"github.com/localnerve/legalaid-api/internal/utils"
	"gorm.io/gorm"
)

// AuthHandler handles login, logout and the current user
type AuthHandler struct {
	DB       *gorm.DB
	AuthzURL string
}

func (h *AuthHandler) providerURL(c *fiber.Ctx, path string) string {
	redirect := c.BaseURL() + "/"
	if next := c.Query("redirect"); strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		redirect = c.BaseURL() + next
	}
	return strings.TrimSuffix(h.AuthzURL, "/") + path + "?" + url.Values{"redirect_uri": {redirect}}.Encode()
}

// Login handles GET /api/login
// @Summary Redirect to the identity provider login page
// @Tags Auth
// @Param redirect query string false "Local path to return to after login"
// @Success 302
// @Router /login [get]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	return c.Redirect(h.providerURL(c, "/app"), fiber.StatusFound)
}

// Logout handles GET /api/logout
// @Summary Redirect to the identity provider logout endpoint
// @Tags Auth
// @Param redirect query string false "Local path to return to after logout"
// @Success 302
// @Router /logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(services.SessionCookie)
	return c.Redirect(h.providerURL(c, "/logout"), fiber.StatusFound)
}

// CurrentUser handles GET /api/auth/user
// @Summary Get the signed-in user
// @Tags Auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/user [get]
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if user == nil {
		return err
	}

	fresh, err := services.GetUser(c.UserContext(), h.DB, user.ID)
	if err != nil {
		return respondError(c, err, "User", "fetch user")
	}
	return utils.SuccessResponse(c, fresh, fiber.StatusOK)
}
