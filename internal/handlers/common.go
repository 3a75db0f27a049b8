// common.go
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
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/legalaid-api/internal/middleware"
	"github.com/localnerve/legalaid-api/internal/models"
	"github.com/localnerve/legalaid-api/internal/policy"
	"github.com/localnerve/legalaid-api/internal/services"
	"github.com/localnerve/legalaid-api/internal/utils"
)

// parsePage reads limit and offset from the query string. An absent limit
// falls back to defaultLimit.
func parsePage(c *fiber.Ctx, defaultLimit int) (services.Page, error) {
	limit, err := queryInt(c, "limit", defaultLimit)
	if err != nil {
		return services.Page{}, err
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return services.Page{}, err
	}
	return services.Page{Limit: limit, Offset: offset}, nil
}

func queryInt(c *fiber.Ctx, key string, defaultValue int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, &services.ValidationError{Field: key, Message: "must be a non-negative integer"}
	}
	return value, nil
}

// bindJSON parses the request body into v.
func bindJSON(c *fiber.Ctx, v interface{}) error {
	if err := c.BodyParser(v); err != nil {
		return &services.ValidationError{Message: fmt.Sprintf("invalid request body: %v", err)}
	}
	return nil
}

func principalOf(user *models.User) policy.Principal {
	return policy.Principal{ID: user.ID, Role: user.Role}
}

// requireUser returns the authenticated user, failing with 401 when the
// route was not mounted behind AuthUser.
func requireUser(c *fiber.Ctx) (*models.User, error) {
	user := middleware.CurrentUser(c)
	if user == nil {
		return nil, utils.ErrorResponse(c, "Authentication required", fiber.StatusUnauthorized, "authentication")
	}
	return user, nil
}

// authorize evaluates the policy and writes a 403 when denied. It returns
// false when the handler must stop.
func authorize(c *fiber.Ctx, authz *policy.Authorizer, user *models.User, action policy.Action, resource policy.Resource) (bool, error) {
	allowed, err := authz.IsAuthorized(principalOf(user), action, resource)
	if err != nil {
		slog.Error("policy evaluation failed", "action", action, "error", err)
		return false, utils.ErrorResponse(c, "Authorization check failed", fiber.StatusInternalServerError, string(action))
	}
	if !allowed {
		return false, utils.ErrorResponse(c, "Access denied", fiber.StatusForbidden, string(action))
	}
	return true, nil
}

// respondError maps a service error onto the error envelope. resource names
// the entity for not-found messages; op names the failed operation.
func respondError(c *fiber.Ctx, err error, resource, op string) error {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		return utils.ErrorResponse(c, ve.Error(), fiber.StatusBadRequest, "validation")
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, fmt.Sprintf("%s not found", resource))
	case errors.Is(err, services.ErrForbidden):
		return utils.ErrorResponse(c, "Access denied", fiber.StatusForbidden, op)
	case errors.Is(err, services.ErrConflict):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusConflict, op)
	}

	slog.Error("request failed", "op", op, "url", c.OriginalURL(), "error", err)
	return utils.ErrorResponse(c, fmt.Sprintf("Failed to %s", op), fiber.StatusInternalServerError, op)
}
