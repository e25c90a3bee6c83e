package middleware

import "github.com/gin-gonic/gin"

const (
	userIDKey  = contextKey("userID")
	isStaffKey = contextKey("isStaff")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// IsStaffFromContext reports whether the authenticated user carries the
// staff claim. Absent claim means not staff.
func IsStaffFromContext(c *gin.Context) bool {
	staffVal := c.Request.Context().Value(isStaffKey)
	staff, ok := staffVal.(bool)
	return ok && staff
}
