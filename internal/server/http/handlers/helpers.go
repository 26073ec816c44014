package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/vantran-dev/storefront/internal/pkg/auth"
	"github.com/vantran-dev/storefront/internal/server/http/middleware"
)

// CurrentPrincipal extracts the authenticated principal from context.
func CurrentPrincipal(c *gin.Context) *pkgAuth.Principal {
	val, ok := c.Get(middleware.PrincipalContextKey)
	if !ok {
		return nil
	}
	principal, _ := val.(*pkgAuth.Principal)
	return principal
}

// pathID parses a numeric path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// pageQuery reads page/limit query parameters with the shared defaults.
func pageQuery(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

// monthYearQuery reads month/year query parameters for statistics.
func monthYearQuery(c *gin.Context) (int, int, bool) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		return 0, 0, false
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return 0, 0, false
	}
	return month, year, true
}
