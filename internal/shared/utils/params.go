package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"vitrine/internal/shared/constants"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/id"
)

// ParseSIDParam parses and validates a Stripe-style prefixed ID from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id", "installationId").
// prefix is the expected SID prefix (e.g., id.PrefixTheme).
// entityName is used in error messages (e.g., "theme", "installation").
func ParseSIDParam(c *gin.Context, paramName, prefix, entityName string) (string, error) {
	sid := c.Param(paramName)
	if sid == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}

	if err := id.ValidatePrefix(sid, prefix); err != nil {
		return "", errors.NewValidationError(
			fmt.Sprintf("invalid %s ID format, expected %s_xxxxx", entityName, prefix),
		)
	}

	return sid, nil
}

// ParsePagination reads page/page_size query parameters with sane bounds.
func ParsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.Query("page"))
	if page < 1 {
		page = constants.DefaultPage
	}

	pageSize, _ = strconv.Atoi(c.Query("page_size"))
	if pageSize < 1 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	return page, pageSize
}

// CurrentUserID extracts the authenticated user id set by the auth middleware.
func CurrentUserID(c *gin.Context) (uint, error) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, errors.NewUnauthorizedError("authentication required")
	}
	userID, ok := v.(uint)
	if !ok || userID == 0 {
		return 0, errors.NewUnauthorizedError("authentication required")
	}
	return userID, nil
}
