package middleware

import (
	"github.com/gin-gonic/gin"

	"photoshare-backend/internal/domains/identity"
	"photoshare-backend/internal/shared/response"
)

// RequireSession chặn request khi chưa có active session
// Services re-check phía dưới, middleware này chỉ để trả 401 sớm và gọn
func RequireSession(sessions identity.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := sessions.Current()
		if current == nil {
			response.Unauthorized(c, "You must sign in to perform this action")
			c.Abort()
			return
		}

		// Handlers downstream có thể lấy user id từ context
		c.Set("userID", current.ID)

		c.Next()
	}
}
