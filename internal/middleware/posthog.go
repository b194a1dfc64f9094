package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/rotalivre/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that are never tracked.
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// PosthogMiddleware enqueues one analytics event per successful request made
// with a valid session. Anonymous traffic is not tracked.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// "/api/search/category/:category" -> "api_search_category_:category"
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		for _, param := range c.Params {
			props["param_"+param.Key] = param.Value
		}
		posthogClient.Enqueue(strconv.FormatInt(userID, 10), eventName, props)
	}
}

// TrackEvent sends a named event for an explicit user, e.g. right after sign-up
// when the request itself carried no session yet.
func TrackEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, userID int64, eventName string, properties map[string]any) {
	if !posthogClient.IsInitialized() {
		return
	}
	if properties == nil {
		properties = make(map[string]any)
	}
	properties["path"] = c.Request.URL.Path
	posthogClient.Enqueue(strconv.FormatInt(userID, 10), eventName, properties)
}
