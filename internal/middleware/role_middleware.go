package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles пропускает запрос, только если роль пользователя входит в список.
// Пустой список ролей ничего не ограничивает — ручки без RequireRoles
// доступны любому аутентифицированному пользователю.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(roles) == 0 {
			c.Next()
			return
		}

		role := c.GetString("role")
		if role == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden resource"})
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden resource"})
	}
}
