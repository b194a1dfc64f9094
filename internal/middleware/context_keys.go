package middleware

import "github.com/gin-gonic/gin"

const (
	userIDKey    = contextKey("userID")
	userEmailKey = contextKey("userEmail")
)

// GetUserIDFromContext retrieves the authenticated user's ID.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (int64, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		userID, ok := v.(int64)
		return userID, ok
	}
	// check in the request context as well
	if v, ok := c.Request.Context().Value(userIDKey).(int64); ok {
		return v, true
	}
	return 0, false
}

// GetUserEmailFromContext retrieves the email asserted by the session token.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get(string(userEmailKey))
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
