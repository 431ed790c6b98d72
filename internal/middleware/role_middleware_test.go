package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anosenkoalex/NewHorizonBuild/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func roleTestRouter(userRole string, required ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected",
		func(c *gin.Context) {
			if userRole != "" {
				c.Set("role", userRole)
			}
			c.Next()
		},
		RequireRoles(required...),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	return r
}

func performGet(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRoles_Allowed(t *testing.T) {
	r := roleTestRouter(models.RoleLegal, models.RoleAdmin, models.RoleLegal)
	assert.Equal(t, http.StatusOK, performGet(r).Code)
}

func TestRequireRoles_Forbidden(t *testing.T) {
	r := roleTestRouter(models.RoleViewer, models.RoleAdmin, models.RoleLegal)
	assert.Equal(t, http.StatusForbidden, performGet(r).Code)
}

func TestRequireRoles_NoRoleInContext(t *testing.T) {
	r := roleTestRouter("", models.RoleAdmin)
	assert.Equal(t, http.StatusForbidden, performGet(r).Code)
}

func TestRequireRoles_EmptyListAllowsEveryone(t *testing.T) {
	// Ручки без списка ролей ничего не ограничивают
	r := roleTestRouter(models.RoleViewer)
	assert.Equal(t, http.StatusOK, performGet(r).Code)

	r = roleTestRouter("")
	assert.Equal(t, http.StatusOK, performGet(r).Code)
}
