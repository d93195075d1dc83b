package middleware

import "github.com/gin-gonic/gin"

// Keys used to store the authenticated identity in the request context.
const (
	userIDKey   = contextKey("userID")
	tenantIDKey = contextKey("tenantID")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetTenantIDFromContext retrieves the tenant the token was issued for.
// An empty string means the token carried no tenant.
func GetTenantIDFromContext(c *gin.Context) string {
	tenantID, _ := c.Request.Context().Value(tenantIDKey).(string)
	return tenantID
}
