package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const bypassCacheKey = "bypass_cache"

// CacheDirective records whether the client asked the backend to skip its
// cache for this request.
func CacheDirective() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(bypassCacheKey, parseBypass(c.GetHeader("Cache-Control"), c.GetHeader("Pragma")))
		c.Next()
	}
}

// BypassCache returns the directive recorded by CacheDirective, parsing the
// request headers when the middleware did not run.
func BypassCache(c *gin.Context) bool {
	if c == nil {
		return false
	}
	if v, exists := c.Get(bypassCacheKey); exists {
		if typed, ok := v.(bool); ok {
			return typed
		}
	}
	if c.Request == nil {
		return false
	}
	return parseBypass(c.GetHeader("Cache-Control"), c.GetHeader("Pragma"))
}

// parseBypass reports true when Cache-Control carries a no-cache directive.
// Pragma is consulted only when Cache-Control is absent.
func parseBypass(cacheControl, pragma string) bool {
	if cacheControl == "" {
		return strings.EqualFold(strings.TrimSpace(pragma), "no-cache")
	}
	for _, directive := range strings.Split(cacheControl, ",") {
		name := strings.TrimSpace(directive)
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			name = strings.TrimSpace(name[:eq])
		}
		if strings.EqualFold(name, "no-cache") {
			return true
		}
	}
	return false
}
