package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stayhub/models"
	"stayhub/services"
)

// AuthMiddleware xác thực token và kiểm tra vai trò.
// Token chỉ chứa userid; vai trò luôn đọc lại từ bản ghi User trong DB,
// không tin role do client gửi lên hay nhúng trong token.
func AuthMiddleware(db *gorm.DB, requiredRoles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 0, "mess": "Authorization header is missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		currentUserID, err := services.ParseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 0, "mess": "Invalid token"})
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, currentUserID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 0, "mess": "Người dùng không tồn tại"})
			c.Abort()
			return
		}

		hasRole := false
		for _, role := range requiredRoles {
			if user.Role == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			c.JSON(http.StatusForbidden, gin.H{"code": 0, "mess": "Bạn không có quyền truy cập"})
			c.Abort()
			return
		}

		c.Set("currentUserID", user.ID)
		c.Set("currentUserRole", user.Role)
		c.Next()
	}
}
