// auth.go
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

package middleware

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/legalaid-api/internal/models"
	"github.com/localnerve/legalaid-api/internal/services"
	"github.com/localnerve/legalaid-api/internal/types"
	"gorm.io/gorm"
)

// UserKey is the fiber Locals key holding the authenticated *models.User.
const UserKey = "user"

// AuthUser validates the session cookie with the identity provider, refreshes
// the user's profile from the session and stores the user in context.
func AuthUser(sessions services.SessionValidator, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := c.Cookies(services.SessionCookie)
		if session == "" {
			return types.Unauthenticated(fmt.Sprintf("Authorizer cookie %q not found", services.SessionCookie), nil)
		}

		identity, err := sessions.ValidateSession(c.UserContext(), session)
		if err != nil {
			return types.Unauthenticated(fmt.Sprintf("Invalid session: %v", err), err)
		}

		user, err := services.UpsertUser(c.UserContext(), db, *identity)
		if err != nil {
			if services.IsValidation(err) || errors.Is(err, services.ErrConflict) {
				return types.Unauthenticated(fmt.Sprintf("Unusable identity: %v", err), err)
			}
			slog.Error("failed to upsert session user", "userID", identity.ID, "error", err)
			return err
		}

		c.Locals(UserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil outside AuthUser.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(UserKey).(*models.User)
	return user
}
